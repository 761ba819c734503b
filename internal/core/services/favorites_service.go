package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/owna-app/owna_backend/internal/apperrors"
	"github.com/owna-app/owna_backend/internal/core/domain"
	portsrepo "github.com/owna-app/owna_backend/internal/core/ports/repositories"
	portssvc "github.com/owna-app/owna_backend/internal/core/ports/services"
)

// favoritesService implements the FavoritesSvcFacade interface. Like the
// wallet and savings services, load-modify-save cycles are serialized behind
// a mutex so writes reach storage in call order.
type favoritesService struct {
	BaseService
	mu            sync.Mutex
	favoritesRepo portsrepo.FavoritesRepository
}

// NewFavoritesService creates a new favorites service.
func NewFavoritesService(repo portsrepo.FavoritesRepository) portssvc.FavoritesSvcFacade {
	return &favoritesService{favoritesRepo: repo}
}

// Ensure favoritesService implements the FavoritesSvcFacade interface
var _ portssvc.FavoritesSvcFacade = (*favoritesService)(nil)

// loadFavorites fetches the favorites record, zero-initializing it when the
// user has never persisted one.
func (s *favoritesService) loadFavorites(ctx context.Context, userID string) (*domain.Favorites, error) {
	favorites, err := s.favoritesRepo.FindFavoritesByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.Favorites{UserID: userID, ProductIDs: []string{}}, nil
		}
		s.LogError(ctx, err, "Failed to load favorites", slog.String("user_id", userID))
		return nil, err
	}
	return favorites, nil
}

func (s *favoritesService) GetFavorites(ctx context.Context, userID string) (*domain.Favorites, error) {
	return s.loadFavorites(ctx, userID)
}

func (s *favoritesService) ToggleFavorite(ctx context.Context, userID string, productID string) (*domain.Favorites, bool, error) {
	if productID == "" {
		return nil, false, fmt.Errorf("product ID must not be empty: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.loadFavorites(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	favorited := !favorites.Contains(productID)
	if favorited {
		// Newest favorite goes to the front
		favorites.ProductIDs = append([]string{productID}, favorites.ProductIDs...)
	} else {
		kept := make([]string, 0, len(favorites.ProductIDs))
		for _, id := range favorites.ProductIDs {
			if id != productID {
				kept = append(kept, id)
			}
		}
		favorites.ProductIDs = kept
	}

	if err := s.favoritesRepo.SaveFavorites(ctx, *favorites); err != nil {
		s.LogError(ctx, err, "Failed to persist favorites after toggle", slog.String("user_id", userID))
		return nil, false, err
	}

	s.LogInfo(ctx, "Favorite toggled",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.Bool("favorited", favorited))
	return favorites, favorited, nil
}

func (s *favoritesService) ClearFavorites(ctx context.Context, userID string) (*domain.Favorites, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.loadFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	favorites.ProductIDs = []string{}
	if err := s.favoritesRepo.SaveFavorites(ctx, *favorites); err != nil {
		s.LogError(ctx, err, "Failed to persist favorites after clear", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Favorites cleared", slog.String("user_id", userID))
	return favorites, nil
}
