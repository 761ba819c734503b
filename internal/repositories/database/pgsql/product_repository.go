package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/owna-app/owna_backend/internal/apperrors"
	"github.com/owna-app/owna_backend/internal/core/domain"
	portsrepo "github.com/owna-app/owna_backend/internal/core/ports/repositories"
	"github.com/owna-app/owna_backend/internal/models"
	"github.com/owna-app/owna_backend/internal/utils/mapping"
)

type PgxProductRepository struct {
	db *pgxpool.Pool
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{db: db}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepository
var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT product_id, name, price, image_url, category, description
		FROM products
		WHERE product_id = $1;
	`
	var modelProduct models.Product
	err := r.db.QueryRow(ctx, query, productID).Scan(
		&modelProduct.ProductID,
		&modelProduct.Name,
		&modelProduct.Price,
		&modelProduct.ImageURL,
		&modelProduct.Category,
		&modelProduct.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}

	domainProduct := mapping.ToDomainProduct(modelProduct)
	return &domainProduct, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, search string, category string, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT product_id, name, price, image_url, category, description
		FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR category = $2)
		ORDER BY name
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, search, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	modelProducts := []models.Product{}
	for rows.Next() {
		var modelProduct models.Product
		err := rows.Scan(
			&modelProduct.ProductID,
			&modelProduct.Name,
			&modelProduct.Price,
			&modelProduct.ImageURL,
			&modelProduct.Category,
			&modelProduct.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		modelProducts = append(modelProducts, modelProduct)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}

	return mapping.ToDomainProductSlice(modelProducts), nil
}
