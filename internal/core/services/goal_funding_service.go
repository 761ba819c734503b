package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/owna-app/owna_backend/internal/apperrors"
	"github.com/owna-app/owna_backend/internal/core/domain"
	portssvc "github.com/owna-app/owna_backend/internal/core/ports/services"
)

// goalFundingService coordinates the wallet ledger and the savings tracker.
// The two containers have no shared transaction boundary, so every operation
// here is an ordered two-step with a compensating rollback: funds are locked
// before a goal is credited, and unlocked again if crediting fails.
type goalFundingService struct {
	BaseService
	walletSvc  portssvc.WalletSvcFacade
	savingsSvc portssvc.SavingsSvcFacade
	productSvc portssvc.ProductSvcFacade
}

// NewGoalFundingService creates the coordinator over the wallet, savings and
// product services.
func NewGoalFundingService(walletSvc portssvc.WalletSvcFacade, savingsSvc portssvc.SavingsSvcFacade, productSvc portssvc.ProductSvcFacade) portssvc.GoalFundingSvcFacade {
	return &goalFundingService{
		walletSvc:  walletSvc,
		savingsSvc: savingsSvc,
		productSvc: productSvc,
	}
}

// Ensure goalFundingService implements the GoalFundingSvcFacade interface
var _ portssvc.GoalFundingSvcFacade = (*goalFundingService)(nil)

func (s *goalFundingService) StartGoal(ctx context.Context, userID string, productID string, contributionAmount int64, frequency domain.Frequency) (*domain.SavingsGoal, error) {
	product, err := s.productSvc.GetProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("resolving product %s: %w", productID, err)
	}

	goal, err := s.savingsSvc.CreateSaving(ctx, userID, *product, contributionAmount, frequency)
	if err != nil {
		return nil, err
	}

	funded, _, err := s.FundGoal(ctx, userID, goal.SavingID, contributionAmount)
	if err != nil {
		// Compensate: remove the goal we just created so the containers stay
		// consistent. A failure here is logged and the original error returned.
		if _, cancelErr := s.savingsSvc.CancelSaving(ctx, userID, goal.SavingID); cancelErr != nil {
			s.LogError(ctx, cancelErr, "Failed to roll back goal after funding failure",
				slog.String("user_id", userID),
				slog.String("saving_id", goal.SavingID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Goal started with initial contribution",
		slog.String("user_id", userID),
		slog.String("saving_id", funded.SavingID),
		slog.Int64("contribution", contributionAmount))
	return funded, nil
}

func (s *goalFundingService) FundGoal(ctx context.Context, userID string, savingID string, amount int64) (*domain.SavingsGoal, int64, error) {
	if amount <= 0 {
		return nil, 0, fmt.Errorf("contribution amount must be positive: %w", apperrors.ErrValidation)
	}

	goal, err := s.savingsSvc.GetSaving(ctx, userID, savingID)
	if err != nil {
		return nil, 0, err
	}
	if goal.Status != domain.SavingActive {
		return nil, 0, fmt.Errorf("saving %s is not active: %w", savingID, apperrors.ErrNotFound)
	}

	// Lock exactly what the goal can absorb; excess over the target is never
	// taken from the wallet in the first place.
	credited := amount
	if remaining := goal.Remaining(); credited > remaining {
		credited = remaining
	}

	memo := fmt.Sprintf("Savings: %s", goal.Product.Name)
	if _, err := s.walletSvc.LockForSavings(ctx, userID, credited, memo); err != nil {
		return nil, 0, err
	}

	funded, applied, err := s.savingsSvc.ContributeTo(ctx, userID, savingID, credited)
	if err != nil {
		// Compensate the lock so the wallet doesn't hold funds for a
		// contribution that was never credited.
		if _, unlockErr := s.walletSvc.UnlockFunds(ctx, userID, credited); unlockErr != nil {
			s.LogError(ctx, unlockErr, "Failed to unlock funds after contribution failure",
				slog.String("user_id", userID),
				slog.String("saving_id", savingID),
				slog.Int64("amount", credited))
		}
		return nil, 0, err
	}

	// Another contribution may have landed between the Remaining() read and the
	// credit, clamping it below what was locked. Release the surplus so locked
	// funds keep matching the sum of goal balances.
	if applied < credited {
		if _, unlockErr := s.walletSvc.UnlockFunds(ctx, userID, credited-applied); unlockErr != nil {
			s.LogError(ctx, unlockErr, "Failed to release surplus lock after clamped contribution",
				slog.String("user_id", userID),
				slog.String("saving_id", savingID),
				slog.Int64("surplus", credited-applied))
			return funded, applied, unlockErr
		}
	}

	return funded, applied, nil
}

func (s *goalFundingService) CancelGoal(ctx context.Context, userID string, savingID string) (*domain.SavingsGoal, error) {
	goal, err := s.savingsSvc.CancelSaving(ctx, userID, savingID)
	if err != nil {
		return nil, err
	}

	if goal.CurrentAmount > 0 {
		if _, err := s.walletSvc.UnlockFunds(ctx, userID, goal.CurrentAmount); err != nil {
			// The goal is gone but its funds are still locked; surface the
			// error so the caller knows the release didn't happen.
			s.LogError(ctx, err, "Failed to release funds for cancelled goal",
				slog.String("user_id", userID),
				slog.String("saving_id", savingID),
				slog.Int64("amount", goal.CurrentAmount))
			return goal, err
		}
	}

	s.LogInfo(ctx, "Goal cancelled and funds released",
		slog.String("user_id", userID),
		slog.String("saving_id", savingID),
		slog.Int64("released", goal.CurrentAmount))
	return goal, nil
}
