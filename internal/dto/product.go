package dto

import (
	"github.com/owna-app/owna_backend/internal/core/domain"
	"github.com/owna-app/owna_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// ProductResponse defines the data returned for a catalog product.
// Price is in Naira.
type ProductResponse struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// ListProductsParams defines query parameters for browsing the catalog.
type ListProductsParams struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain.Product to a ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Price:       utils.KoboToNaira(p.Price),
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Description: p.Description,
	}
}

// ToListProductResponse converts a slice of domain.Product to ProductResponse DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}
