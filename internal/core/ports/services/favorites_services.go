package services

import (
	"context"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// FavoritesSvcFacade manages the products a user has marked as favorites.
type FavoritesSvcFacade interface {
	// GetFavorites returns the favorites list, zero-initialized for users
	// who have never marked a product.
	GetFavorites(ctx context.Context, userID string) (*domain.Favorites, error)

	// ToggleFavorite adds the product to the front of the list, or removes it
	// when already present. The bool reports whether the product is a
	// favorite after the call.
	ToggleFavorite(ctx context.Context, userID string, productID string) (*domain.Favorites, bool, error)

	// ClearFavorites empties the list.
	ClearFavorites(ctx context.Context, userID string) (*domain.Favorites, error)
}
