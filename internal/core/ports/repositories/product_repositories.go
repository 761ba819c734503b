package repositories

import (
	"context"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// ProductRepository defines read operations for the static product catalog.
type ProductRepository interface {
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts returns catalog entries, optionally filtered by a name
	// substring (query) and an exact category.
	ListProducts(ctx context.Context, query string, category string, limit int, offset int) ([]domain.Product, error)
}
