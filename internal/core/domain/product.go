package domain

// Product is a catalog entry users can save toward. Price is in kobo.
type Product struct {
	ProductID   string `json:"productID"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageURL"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
