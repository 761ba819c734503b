package repositories

import (
	"context"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// FavoritesRepository defines persistence operations for the favorites state
// record (the user's marked product IDs).
type FavoritesRepository interface {
	// FindFavoritesByUserID loads the favorites record. Returns
	// apperrors.ErrNotFound when the user has no record yet and
	// apperrors.ErrSchemaVersion on an incompatible layout.
	FindFavoritesByUserID(ctx context.Context, userID string) (*domain.Favorites, error)

	// SaveFavorites upserts the full favorites list.
	SaveFavorites(ctx context.Context, favorites domain.Favorites) error
}
