package domain

// Favorites is the ordered set of catalog products a user has marked, most
// recently added first.
type Favorites struct {
	UserID     string   `json:"userID"`
	ProductIDs []string `json:"productIDs"`
}

// Contains reports whether the product is currently marked as a favorite.
func (f *Favorites) Contains(productID string) bool {
	for _, id := range f.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
