package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/owna-app/owna_backend/internal/apperrors"
	"github.com/owna-app/owna_backend/internal/core/domain"
	portsrepo "github.com/owna-app/owna_backend/internal/core/ports/repositories"
	"github.com/owna-app/owna_backend/internal/models"
	"github.com/owna-app/owna_backend/internal/utils/mapping"
)

const uniqueViolationCode = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, full_name, phone_number, email, password_hash, is_verified, avatar_url, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.FullName,
		modelUser.PhoneNumber,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.IsVerified,
		modelUser.AvatarURL,
		modelUser.CreatedAt,
		modelUser.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("phone number already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, full_name, phone_number, email, password_hash, is_verified, avatar_url, refresh_token_hash, refresh_token_expiry_time, created_at, last_updated_at
		FROM users
		WHERE user_id = $1;
	`
	return r.scanUserRow(r.db.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	query := `
		SELECT user_id, full_name, phone_number, email, password_hash, is_verified, avatar_url, refresh_token_hash, refresh_token_expiry_time, created_at, last_updated_at
		FROM users
		WHERE phone_number = $1;
	`
	return r.scanUserRow(r.db.QueryRow(ctx, query, phoneNumber))
}

func (r *PgxUserRepository) scanUserRow(row pgx.Row) (*domain.User, error) {
	var modelUser models.User
	err := row.Scan(
		&modelUser.UserID,
		&modelUser.FullName,
		&modelUser.PhoneNumber,
		&modelUser.Email,
		&modelUser.PasswordHash,
		&modelUser.IsVerified,
		&modelUser.AvatarURL,
		&modelUser.RefreshTokenHash,
		&modelUser.RefreshTokenExpiryTime,
		&modelUser.CreatedAt,
		&modelUser.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET full_name = $1, email = $2, avatar_url = $3, is_verified = $4, last_updated_at = $5
		WHERE user_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		modelUser.FullName,
		modelUser.Email,
		modelUser.AvatarURL,
		modelUser.IsVerified,
		modelUser.LastUpdatedAt,
		modelUser.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2, last_updated_at = now()
		WHERE user_id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, tokenHash, expiry, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
