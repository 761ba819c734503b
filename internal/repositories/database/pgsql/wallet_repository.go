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

// PgxWalletRepository stores the wallet as a single versioned JSONB state
// record per user.
type PgxWalletRepository struct {
	db *pgxpool.Pool
}

func newPgxWalletRepository(db *pgxpool.Pool) portsrepo.WalletRepository {
	return &PgxWalletRepository{db: db}
}

// Ensure PgxWalletRepository implements portsrepo.WalletRepository
var _ portsrepo.WalletRepository = (*PgxWalletRepository)(nil)

func (r *PgxWalletRepository) FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `
		SELECT schema_version, data
		FROM wallet_states
		WHERE user_id = $1;
	`
	var schemaVersion int
	var data []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(&schemaVersion, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet for user %s: %w", userID, err)
	}

	if schemaVersion != models.WalletSchemaVersion {
		return nil, fmt.Errorf("wallet record for user %s has schema version %d, want %d: %w",
			userID, schemaVersion, models.WalletSchemaVersion, apperrors.ErrSchemaVersion)
	}

	var record models.WalletRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode wallet record for user %s: %w", userID, err)
	}

	wallet := mapping.ToDomainWallet(userID, record)
	return &wallet, nil
}

func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	record := mapping.ToWalletRecord(wallet)
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode wallet record: %w", err)
	}

	query := `
		INSERT INTO wallet_states (user_id, schema_version, data, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE SET
			schema_version = EXCLUDED.schema_version,
			data = EXCLUDED.data,
			updated_at = now();
	`
	_, err = r.db.Exec(ctx, query, wallet.UserID, record.SchemaVersion, data)
	if err != nil {
		return fmt.Errorf("failed to save wallet for user %s: %w", wallet.UserID, err)
	}
	return nil
}
