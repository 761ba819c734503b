package mapping

import (
	"github.com/owna-app/owna_backend/internal/core/domain"
	"github.com/owna-app/owna_backend/internal/models"
)

// ToFavoritesRecord converts domain Favorites to the persisted record shape,
// stamping the current schema version.
func ToFavoritesRecord(f domain.Favorites) models.FavoritesRecord {
	return models.FavoritesRecord{
		SchemaVersion: models.FavoritesSchemaVersion,
		ProductIDs:    f.ProductIDs,
	}
}

// ToDomainFavorites converts a persisted favorites record back to the domain type.
func ToDomainFavorites(userID string, r models.FavoritesRecord) domain.Favorites {
	productIDs := r.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}
	return domain.Favorites{
		UserID:     userID,
		ProductIDs: productIDs,
	}
}
