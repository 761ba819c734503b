package pgsql

import (
	"context"
	"encoding/json"
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

// PgxFavoritesRepository stores the favorites list as a single versioned
// JSONB state record per user.
type PgxFavoritesRepository struct {
	db *pgxpool.Pool
}

func newPgxFavoritesRepository(db *pgxpool.Pool) portsrepo.FavoritesRepository {
	return &PgxFavoritesRepository{db: db}
}

// Ensure PgxFavoritesRepository implements portsrepo.FavoritesRepository
var _ portsrepo.FavoritesRepository = (*PgxFavoritesRepository)(nil)

func (r *PgxFavoritesRepository) FindFavoritesByUserID(ctx context.Context, userID string) (*domain.Favorites, error) {
	query := `
		SELECT schema_version, data
		FROM favorite_states
		WHERE user_id = $1;
	`
	var schemaVersion int
	var data []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(&schemaVersion, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find favorites for user %s: %w", userID, err)
	}

	if schemaVersion != models.FavoritesSchemaVersion {
		return nil, fmt.Errorf("favorites record for user %s has schema version %d, want %d: %w",
			userID, schemaVersion, models.FavoritesSchemaVersion, apperrors.ErrSchemaVersion)
	}

	var record models.FavoritesRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode favorites record for user %s: %w", userID, err)
	}

	favorites := mapping.ToDomainFavorites(userID, record)
	return &favorites, nil
}

func (r *PgxFavoritesRepository) SaveFavorites(ctx context.Context, favorites domain.Favorites) error {
	record := mapping.ToFavoritesRecord(favorites)
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode favorites record: %w", err)
	}

	query := `
		INSERT INTO favorite_states (user_id, schema_version, data, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE SET
			schema_version = EXCLUDED.schema_version,
			data = EXCLUDED.data,
			updated_at = now();
	`
	_, err = r.db.Exec(ctx, query, favorites.UserID, record.SchemaVersion, data)
	if err != nil {
		return fmt.Errorf("failed to save favorites for user %s: %w", favorites.UserID, err)
	}
	return nil
}
