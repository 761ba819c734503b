package repositories

import (
	"context"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// SavingsRepository defines persistence operations for the savings state
// record (active + completed goal lists). Both lists are written together.
type SavingsRepository interface {
	// FindSavingsByUserID loads the savings record. Returns
	// apperrors.ErrNotFound when the user has no record yet and
	// apperrors.ErrSchemaVersion on an incompatible layout.
	FindSavingsByUserID(ctx context.Context, userID string) (*domain.SavingsBook, error)

	// SaveSavings upserts both goal lists atomically.
	SaveSavings(ctx context.Context, userID string, book domain.SavingsBook) error
}
