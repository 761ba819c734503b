package mapping

import (
	"github.com/owna-app/owna_backend/internal/core/domain"
	"github.com/owna-app/owna_backend/internal/models"
)

// ToDomainProduct converts a catalog row to a domain Product.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		Name:        m.Name,
		Price:       m.Price,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
		Description: m.Description,
	}
}

// ToDomainProductSlice converts a slice of catalog rows to domain Products.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
