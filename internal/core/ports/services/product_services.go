package services

import (
	"context"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// ProductSvcFacade exposes read access to the product catalog.
type ProductSvcFacade interface {
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, query string, category string, limit int, offset int) ([]domain.Product, error)
}
