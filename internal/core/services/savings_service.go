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

// savingsService implements the SavingsSvcFacade interface. Like the wallet,
// load-modify-save cycles are serialized behind a mutex so persisted state
// follows call order.
type savingsService struct {
	BaseService
	mu          sync.Mutex
	savingsRepo portsrepo.SavingsRepository
}

// NewSavingsService creates a new savings goal tracker service.
func NewSavingsService(repo portsrepo.SavingsRepository) portssvc.SavingsSvcFacade {
	return &savingsService{savingsRepo: repo}
}

// Ensure savingsService implements the SavingsSvcFacade interface
var _ portssvc.SavingsSvcFacade = (*savingsService)(nil)

// loadBook fetches the savings record, zero-initializing it when the user has
// never persisted one.
func (s *savingsService) loadBook(ctx context.Context, userID string) (*domain.SavingsBook, error) {
	book, err := s.savingsRepo.FindSavingsByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.SavingsBook{Active: []domain.SavingsGoal{}, Completed: []domain.SavingsGoal{}}, nil
		}
		s.LogError(ctx, err, "Failed to load savings", slog.String("user_id", userID))
		return nil, err
	}
	return book, nil
}

func (s *savingsService) GetSavings(ctx context.Context, userID string) (*domain.SavingsBook, error) {
	return s.loadBook(ctx, userID)
}

func (s *savingsService) GetSaving(ctx context.Context, userID string, savingID string) (*domain.SavingsGoal, error) {
	book, err := s.loadBook(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range book.Active {
		if book.Active[i].SavingID == savingID {
			return &book.Active[i], nil
		}
	}
	for i := range book.Completed {
		if book.Completed[i].SavingID == savingID {
			return &book.Completed[i], nil
		}
	}
	return nil, fmt.Errorf("saving %s: %w", savingID, apperrors.ErrNotFound)
}

func (s *savingsService) CreateSaving(ctx context.Context, userID string, product domain.Product, contributionAmount int64, frequency domain.Frequency) (*domain.SavingsGoal, error) {
	if contributionAmount <= 0 {
		return nil, fmt.Errorf("contribution amount must be positive: %w", apperrors.ErrValidation)
	}
	if product.Price <= 0 {
		return nil, fmt.Errorf("product %s has no price: %w", product.ProductID, apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.loadBook(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	goal := domain.SavingsGoal{
		SavingID: uuid.NewString(),
		Product:  product,
		// Price is snapshotted; later catalog changes don't move the target.
		TargetAmount:       product.Price,
		CurrentAmount:      0,
		ContributionAmount: contributionAmount,
		Frequency:          frequency,
		StartDate:          now,
		EstimatedEndDate:   domain.EstimateEndDate(now, product.Price, contributionAmount, frequency),
		Status:             domain.SavingActive,
	}

	book.Active = append(book.Active, goal)

	if err := s.savingsRepo.SaveSavings(ctx, userID, *book); err != nil {
		s.LogError(ctx, err, "Failed to persist savings after create", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Savings goal created",
		slog.String("user_id", userID),
		slog.String("saving_id", goal.SavingID),
		slog.String("product", product.Name),
		slog.Int64("target_amount", goal.TargetAmount))
	return &goal, nil
}

func (s *savingsService) ContributeTo(ctx context.Context, userID string, savingID string, amount int64) (*domain.SavingsGoal, int64, error) {
	if amount <= 0 {
		return nil, 0, fmt.Errorf("contribution amount must be positive: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.loadBook(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	idx := -1
	for i := range book.Active {
		if book.Active[i].SavingID == savingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, 0, fmt.Errorf("active saving %s: %w", savingID, apperrors.ErrNotFound)
	}

	goal := book.Active[idx]
	newAmount := goal.CurrentAmount + amount
	credited := amount

	if newAmount >= goal.TargetAmount {
		// Clamp to the target; any excess is discarded, not credited elsewhere.
		credited = goal.TargetAmount - goal.CurrentAmount
		now := time.Now()
		goal.CurrentAmount = goal.TargetAmount
		goal.Status = domain.SavingCompleted
		goal.CompletedDate = &now

		book.Active = append(book.Active[:idx], book.Active[idx+1:]...)
		book.Completed = append(book.Completed, goal)
	} else {
		goal.CurrentAmount = newAmount
		book.Active[idx] = goal
	}

	if err := s.savingsRepo.SaveSavings(ctx, userID, *book); err != nil {
		s.LogError(ctx, err, "Failed to persist savings after contribution", slog.String("user_id", userID))
		return nil, 0, err
	}

	s.LogInfo(ctx, "Contribution applied",
		slog.String("user_id", userID),
		slog.String("saving_id", savingID),
		slog.Int64("credited", credited),
		slog.String("status", string(goal.Status)))
	return &goal, credited, nil
}

func (s *savingsService) CancelSaving(ctx context.Context, userID string, savingID string) (*domain.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.loadBook(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range book.Active {
		if book.Active[i].SavingID == savingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("active saving %s: %w", savingID, apperrors.ErrNotFound)
	}

	goal := book.Active[idx]
	goal.Status = domain.SavingCancelled
	// Cancelled goals are removed outright, not kept with a cancelled status.
	book.Active = append(book.Active[:idx], book.Active[idx+1:]...)

	if err := s.savingsRepo.SaveSavings(ctx, userID, *book); err != nil {
		s.LogError(ctx, err, "Failed to persist savings after cancel", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Savings goal cancelled",
		slog.String("user_id", userID),
		slog.String("saving_id", savingID),
		slog.Int64("accumulated", goal.CurrentAmount))
	return &goal, nil
}
