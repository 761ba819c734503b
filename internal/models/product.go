package models

// Product is the catalog row as stored in the products table. Price is in kobo.
type Product struct {
	ProductID   string `db:"product_id"`
	Name        string `db:"name"`
	Price       int64  `db:"price"`
	ImageURL    string `db:"image_url"`
	Category    string `db:"category"`
	Description string `db:"description"`
}
