package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/owna-app/owna_backend/internal/apperrors"
	"github.com/owna-app/owna_backend/internal/core/domain"
	portsrepo "github.com/owna-app/owna_backend/internal/core/ports/repositories"
	portssvc "github.com/owna-app/owna_backend/internal/core/ports/services"
)

// walletService implements the WalletSvcFacade interface.
//
// The in-memory mutation and the persistence write for one operation happen
// under a single mutex, so writes reach storage in call order (last writer
// wins matches the caller's view).
type walletService struct {
	BaseService
	mu         sync.Mutex
	walletRepo portsrepo.WalletRepository
}

// NewWalletService creates a new wallet ledger service.
func NewWalletService(repo portsrepo.WalletRepository) portssvc.WalletSvcFacade {
	return &walletService{walletRepo: repo}
}

// Ensure walletService implements the WalletSvcFacade interface
var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// loadWallet fetches the wallet record, zero-initializing it when the user
// has never persisted one.
func (s *walletService) loadWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.Wallet{UserID: userID, Transactions: []domain.Transaction{}}, nil
		}
		s.LogError(ctx, err, "Failed to load wallet", slog.String("user_id", userID))
		return nil, err
	}
	return wallet, nil
}

func newTransaction(txnType domain.TransactionType, amount int64, description string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          txnType,
		Amount:        amount,
		Description:   description,
		Date:          time.Now(),
		Status:        domain.StatusCompleted,
	}
}

func (s *walletService) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	return s.loadWallet(ctx, userID)
}

func (s *walletService) AddFunds(ctx context.Context, userID string, amount int64) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("deposit amount must be positive: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, err := s.loadWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	wallet.Balance += amount
	// Audit trail is most-recent-first
	wallet.Transactions = append([]domain.Transaction{newTransaction(domain.TransactionDeposit, amount, "Wallet Top-up")}, wallet.Transactions...)

	if err := s.walletRepo.SaveWallet(ctx, *wallet); err != nil {
		s.LogError(ctx, err, "Failed to persist wallet after deposit", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Funds added to wallet",
		slog.String("user_id", userID),
		slog.Int64("amount", amount),
		slog.Int64("balance", wallet.Balance))
	return wallet, nil
}

func (s *walletService) WithdrawFunds(ctx context.Context, userID string, amount int64) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("withdrawal amount must be positive: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, err := s.loadWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Locked funds are checked against but never debited here.
	if amount > wallet.Withdrawable() {
		return nil, fmt.Errorf("withdrawal of %d exceeds withdrawable balance %d: %w", amount, wallet.Withdrawable(), apperrors.ErrInsufficientFunds)
	}

	wallet.Balance -= amount
	wallet.Transactions = append([]domain.Transaction{newTransaction(domain.TransactionWithdrawal, amount, "Withdrawal")}, wallet.Transactions...)

	if err := s.walletRepo.SaveWallet(ctx, *wallet); err != nil {
		s.LogError(ctx, err, "Failed to persist wallet after withdrawal", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Funds withdrawn from wallet",
		slog.String("user_id", userID),
		slog.Int64("amount", amount),
		slog.Int64("balance", wallet.Balance))
	return wallet, nil
}

func (s *walletService) LockFunds(ctx context.Context, userID string, amount int64) (*domain.Wallet, error) {
	return s.lock(ctx, userID, amount, "")
}

func (s *walletService) LockForSavings(ctx context.Context, userID string, amount int64, memo string) (*domain.Wallet, error) {
	if memo == "" {
		memo = "Savings contribution"
	}
	return s.lock(ctx, userID, amount, memo)
}

// lock earmarks funds; when memo is non-empty a savings transaction is
// recorded in the audit trail.
func (s *walletService) lock(ctx context.Context, userID string, amount int64, memo string) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("lock amount must be positive: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, err := s.loadWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	// lockedFunds <= balance must hold at all times.
	if amount > wallet.Withdrawable() {
		return nil, fmt.Errorf("lock of %d exceeds withdrawable balance %d: %w", amount, wallet.Withdrawable(), apperrors.ErrInsufficientFunds)
	}

	wallet.LockedFunds += amount
	if memo != "" {
		wallet.Transactions = append([]domain.Transaction{newTransaction(domain.TransactionSavings, amount, memo)}, wallet.Transactions...)
	}

	if err := s.walletRepo.SaveWallet(ctx, *wallet); err != nil {
		s.LogError(ctx, err, "Failed to persist wallet after lock", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Funds locked",
		slog.String("user_id", userID),
		slog.Int64("amount", amount),
		slog.Int64("locked_funds", wallet.LockedFunds))
	return wallet, nil
}

func (s *walletService) UnlockFunds(ctx context.Context, userID string, amount int64) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("unlock amount must be positive: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, err := s.loadWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Over-unlock is absorbed: locked funds clamp at zero.
	wallet.LockedFunds -= amount
	if wallet.LockedFunds < 0 {
		s.LogDebug(ctx, "Unlock exceeded locked funds, clamping to zero",
			slog.String("user_id", userID),
			slog.Int64("amount", amount))
		wallet.LockedFunds = 0
	}

	if err := s.walletRepo.SaveWallet(ctx, *wallet); err != nil {
		s.LogError(ctx, err, "Failed to persist wallet after unlock", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Funds unlocked",
		slog.String("user_id", userID),
		slog.Int64("amount", amount),
		slog.Int64("locked_funds", wallet.LockedFunds))
	return wallet, nil
}

func (s *walletService) ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error) {
	wallet, err := s.loadWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 20
	}
	if offset >= len(wallet.Transactions) {
		return []domain.Transaction{}, nil
	}

	end := offset + limit
	if end > len(wallet.Transactions) {
		end = len(wallet.Transactions)
	}
	return wallet.Transactions[offset:end], nil
}
