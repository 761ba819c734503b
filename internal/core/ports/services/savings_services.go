package services

import (
	"context"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// SavingsSvcFacade exposes the savings goal tracker: the active and completed
// goal lists and their progress arithmetic. It does not move wallet funds;
// GoalFundingSvcFacade coordinates the two.
type SavingsSvcFacade interface {
	// GetSavings returns both goal lists, empty when nothing is persisted yet.
	GetSavings(ctx context.Context, userID string) (*domain.SavingsBook, error)

	// GetSaving finds a goal by ID in either list.
	GetSaving(ctx context.Context, userID string, savingID string) (*domain.SavingsGoal, error)

	// CreateSaving appends a new active goal with the product price
	// snapshotted as the target and a completion date projected from the
	// contribution cadence. contributionAmount must be positive.
	CreateSaving(ctx context.Context, userID string, product domain.Product, contributionAmount int64, frequency domain.Frequency) (*domain.SavingsGoal, error)

	// ContributeTo credits an active goal. Crossing the target clamps the
	// goal to exactly the target and moves it to the completed list. The
	// returned credited amount is what was actually applied after clamping.
	ContributeTo(ctx context.Context, userID string, savingID string, amount int64) (goal *domain.SavingsGoal, credited int64, err error)

	// CancelSaving removes an active goal and returns it so the caller can
	// release the funds it had accumulated. Unknown IDs fail with
	// apperrors.ErrNotFound.
	CancelSaving(ctx context.Context, userID string, savingID string) (*domain.SavingsGoal, error)
}
