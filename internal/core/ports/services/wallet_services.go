package services

import (
	"context"

	"github.com/owna-app/owna_backend/internal/core/domain"
)

// WalletSvcFacade exposes the wallet ledger: spendable vs earmarked funds and
// the audit trail of money movements. Every mutation persists the full wallet
// state before returning.
type WalletSvcFacade interface {
	// GetWallet returns the user's wallet, zero-initialized when no state has
	// been persisted yet.
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)

	// AddFunds credits the balance and appends a completed deposit
	// transaction. amount must be positive (apperrors.ErrValidation).
	AddFunds(ctx context.Context, userID string, amount int64) (*domain.Wallet, error)

	// WithdrawFunds debits the balance and appends a withdrawal transaction.
	// Fails with apperrors.ErrInsufficientFunds when amount exceeds the
	// withdrawable balance; locked funds are checked but never touched.
	WithdrawFunds(ctx context.Context, userID string, amount int64) (*domain.Wallet, error)

	// LockFunds earmarks part of the balance against savings goals. Locking
	// more than the withdrawable balance fails with
	// apperrors.ErrInsufficientFunds, keeping lockedFunds <= balance.
	LockFunds(ctx context.Context, userID string, amount int64) (*domain.Wallet, error)

	// LockForSavings locks funds and records a completed savings transaction
	// in the audit trail, used when a goal contribution is committed.
	LockForSavings(ctx context.Context, userID string, amount int64, memo string) (*domain.Wallet, error)

	// UnlockFunds releases earmarked funds, clamping at zero; releasing more
	// than is locked is absorbed silently.
	UnlockFunds(ctx context.Context, userID string, amount int64) (*domain.Wallet, error)

	// ListTransactions returns a page of the audit trail, most recent first.
	ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error)
}
