package services

import (
	"context"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// GoalFundingSvcFacade coordinates the wallet ledger and the savings tracker
// so that goal money movements update both containers or neither. Both live
// in-process, so an ordered two-step with a compensating rollback suffices.
type GoalFundingSvcFacade interface {
	// StartGoal creates a goal for the product and commits the first
	// contribution (locking matching wallet funds). If funding fails the goal
	// is cancelled again.
	StartGoal(ctx context.Context, userID string, productID string, contributionAmount int64, frequency domain.Frequency) (*domain.SavingsGoal, error)

	// FundGoal locks wallet funds and credits the goal in one operation. Only
	// the amount actually credited (after target clamping) stays locked.
	FundGoal(ctx context.Context, userID string, savingID string, amount int64) (goal *domain.SavingsGoal, credited int64, err error)

	// CancelGoal removes an active goal and releases its accumulated funds
	// back to the withdrawable balance.
	CancelGoal(ctx context.Context, userID string, savingID string) (*domain.SavingsGoal, error)
}
