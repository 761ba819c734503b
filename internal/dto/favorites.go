package dto

import "github.com/owna-app/owna_backend/internal/core/domain"

// FavoritesResponse lists the user's favorite product IDs, most recently
// added first.
type FavoritesResponse struct {
	ProductIDs []string `json:"productIDs"`
}

// ToggleFavoriteResponse is returned after toggling a favorite. Favorited
// reports the product's state after the toggle.
type ToggleFavoriteResponse struct {
	ProductIDs []string `json:"productIDs"`
	Favorited  bool     `json:"favorited"`
}

// ToFavoritesResponse converts domain Favorites to a FavoritesResponse DTO
func ToFavoritesResponse(f *domain.Favorites) FavoritesResponse {
	productIDs := f.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}
	return FavoritesResponse{ProductIDs: productIDs}
}
