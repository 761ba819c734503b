package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/owna-app/owna_backend/internal/apperrors"
	"github.com/owna-app/owna_backend/internal/core/domain"
	portsrepo "github.com/owna-app/owna_backend/internal/core/ports/repositories"
	portssvc "github.com/owna-app/owna_backend/internal/core/ports/services"
)

// productService implements the ProductSvcFacade interface over the static
// catalog. The catalog is seeded by migration and read-only at runtime.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepository
}

// NewProductService creates a new product catalog service.
func NewProductService(repo portsrepo.ProductRepository) portssvc.ProductSvcFacade {
	return &productService{productRepo: repo}
}

// Ensure productService implements the ProductSvcFacade interface
var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product", slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, query string, category string, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.productRepo.ListProducts(ctx, query, category, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products",
			slog.String("query", query),
			slog.String("category", category))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}
