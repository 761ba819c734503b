package repositories

import (
	"context"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// WalletRepository defines persistence operations for the wallet state record.
// The record is written whole on every save; there is no partial update.
type WalletRepository interface {
	// FindWalletByUserID loads the wallet record. Returns apperrors.ErrNotFound
	// when the user has no record yet and apperrors.ErrSchemaVersion when the
	// stored record was written with an incompatible layout.
	FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error)

	// SaveWallet upserts the full wallet state atomically.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error
}
