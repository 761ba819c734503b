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

// PgxSavingsRepository stores the active and completed goal lists as a single
// versioned JSONB state record per user, so both lists move together.
type PgxSavingsRepository struct {
	db *pgxpool.Pool
}

func newPgxSavingsRepository(db *pgxpool.Pool) portsrepo.SavingsRepository {
	return &PgxSavingsRepository{db: db}
}

// Ensure PgxSavingsRepository implements portsrepo.SavingsRepository
var _ portsrepo.SavingsRepository = (*PgxSavingsRepository)(nil)

func (r *PgxSavingsRepository) FindSavingsByUserID(ctx context.Context, userID string) (*domain.SavingsBook, error) {
	query := `
		SELECT schema_version, data
		FROM savings_states
		WHERE user_id = $1;
	`
	var schemaVersion int
	var data []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(&schemaVersion, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find savings for user %s: %w", userID, err)
	}

	if schemaVersion != models.SavingsSchemaVersion {
		return nil, fmt.Errorf("savings record for user %s has schema version %d, want %d: %w",
			userID, schemaVersion, models.SavingsSchemaVersion, apperrors.ErrSchemaVersion)
	}

	var record models.SavingsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode savings record for user %s: %w", userID, err)
	}

	book := mapping.ToDomainSavingsBook(record)
	return &book, nil
}

func (r *PgxSavingsRepository) SaveSavings(ctx context.Context, userID string, book domain.SavingsBook) error {
	record := mapping.ToSavingsRecord(book)
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode savings record: %w", err)
	}

	query := `
		INSERT INTO savings_states (user_id, schema_version, data, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE SET
			schema_version = EXCLUDED.schema_version,
			data = EXCLUDED.data,
			updated_at = now();
	`
	_, err = r.db.Exec(ctx, query, userID, record.SchemaVersion, data)
	if err != nil {
		return fmt.Errorf("failed to save savings for user %s: %w", userID, err)
	}
	return nil
}
