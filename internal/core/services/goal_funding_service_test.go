package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/owna-app/owna_backend/internal/apperrors"
	"github.com/owna-app/owna_backend/internal/core/domain"
	portssvc "github.com/owna-app/owna_backend/internal/core/ports/services"
	"github.com/owna-app/owna_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock WalletSvcFacade ---

type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) AddFunds(ctx context.Context, userID string, amount int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) WithdrawFunds(ctx context.Context, userID string, amount int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) LockFunds(ctx context.Context, userID string, amount int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) LockForSavings(ctx context.Context, userID string, amount int64, memo string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, amount, memo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) UnlockFunds(ctx context.Context, userID string, amount int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) ListTransactions(ctx context.Context, userID string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

// --- Mock SavingsSvcFacade ---

type MockSavingsService struct {
	mock.Mock
}

func (m *MockSavingsService) GetSavings(ctx context.Context, userID string) (*domain.SavingsBook, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsBook), args.Error(1)
}

func (m *MockSavingsService) GetSaving(ctx context.Context, userID string, savingID string) (*domain.SavingsGoal, error) {
	args := m.Called(ctx, userID, savingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsGoal), args.Error(1)
}

func (m *MockSavingsService) CreateSaving(ctx context.Context, userID string, product domain.Product, contributionAmount int64, frequency domain.Frequency) (*domain.SavingsGoal, error) {
	args := m.Called(ctx, userID, product, contributionAmount, frequency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsGoal), args.Error(1)
}

func (m *MockSavingsService) ContributeTo(ctx context.Context, userID string, savingID string, amount int64) (*domain.SavingsGoal, int64, error) {
	args := m.Called(ctx, userID, savingID, amount)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*domain.SavingsGoal), args.Get(1).(int64), args.Error(2)
}

func (m *MockSavingsService) CancelSaving(ctx context.Context, userID string, savingID string) (*domain.SavingsGoal, error) {
	args := m.Called(ctx, userID, savingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsGoal), args.Error(1)
}

var _ portssvc.SavingsSvcFacade = (*MockSavingsService)(nil)

// --- Mock ProductSvcFacade ---

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, query string, category string, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, query, category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Test Suite Setup ---

type GoalFundingServiceTestSuite struct {
	suite.Suite
	mockWallet  *MockWalletService
	mockSavings *MockSavingsService
	mockProduct *MockProductService
	service     portssvc.GoalFundingSvcFacade
	userID      string
	product     domain.Product
}

func (suite *GoalFundingServiceTestSuite) SetupTest() {
	suite.mockWallet = new(MockWalletService)
	suite.mockSavings = new(MockSavingsService)
	suite.mockProduct = new(MockProductService)
	suite.service = services.NewGoalFundingService(suite.mockWallet, suite.mockSavings, suite.mockProduct)
	suite.userID = uuid.NewString()
	suite.product = domain.Product{ProductID: "1", Name: "PlayStation 5", Price: 40000000}
}

// --- Test Cases ---

func (suite *GoalFundingServiceTestSuite) TestStartGoal_Success() {
	ctx := context.Background()
	goal := &domain.SavingsGoal{
		SavingID:     "goal-1",
		Product:      suite.product,
		TargetAmount: suite.product.Price,
		Status:       domain.SavingActive,
	}
	funded := *goal
	funded.CurrentAmount = 1000000

	suite.mockProduct.On("GetProductByID", ctx, "1").Return(&suite.product, nil).Once()
	suite.mockSavings.On("CreateSaving", ctx, suite.userID, suite.product, int64(1000000), domain.FrequencyWeekly).Return(goal, nil).Once()
	suite.mockSavings.On("GetSaving", ctx, suite.userID, "goal-1").Return(goal, nil).Once()
	suite.mockWallet.On("LockForSavings", ctx, suite.userID, int64(1000000), "Savings: PlayStation 5").Return(&domain.Wallet{}, nil).Once()
	suite.mockSavings.On("ContributeTo", ctx, suite.userID, "goal-1", int64(1000000)).Return(&funded, int64(1000000), nil).Once()

	result, err := suite.service.StartGoal(ctx, suite.userID, "1", 1000000, domain.FrequencyWeekly)

	suite.Require().NoError(err)
	suite.Equal(int64(1000000), result.CurrentAmount)
	suite.mockProduct.AssertExpectations(suite.T())
	suite.mockSavings.AssertExpectations(suite.T())
	suite.mockWallet.AssertExpectations(suite.T())
}

func (suite *GoalFundingServiceTestSuite) TestStartGoal_UnknownProduct() {
	ctx := context.Background()
	suite.mockProduct.On("GetProductByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.StartGoal(ctx, suite.userID, "nope", 1000, domain.FrequencyDaily)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSavings.AssertNotCalled(suite.T(), "CreateSaving", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalFundingServiceTestSuite) TestStartGoal_FundingFailureRollsBackGoal() {
	ctx := context.Background()
	goal := &domain.SavingsGoal{
		SavingID:     "goal-1",
		Product:      suite.product,
		TargetAmount: suite.product.Price,
		Status:       domain.SavingActive,
	}

	suite.mockProduct.On("GetProductByID", ctx, "1").Return(&suite.product, nil).Once()
	suite.mockSavings.On("CreateSaving", ctx, suite.userID, suite.product, int64(1000000), domain.FrequencyMonthly).Return(goal, nil).Once()
	suite.mockSavings.On("GetSaving", ctx, suite.userID, "goal-1").Return(goal, nil).Once()
	// Wallet can't cover the first contribution
	suite.mockWallet.On("LockForSavings", ctx, suite.userID, int64(1000000), "Savings: PlayStation 5").
		Return(nil, apperrors.ErrInsufficientFunds).Once()
	suite.mockSavings.On("CancelSaving", ctx, suite.userID, "goal-1").Return(goal, nil).Once()

	_, err := suite.service.StartGoal(ctx, suite.userID, "1", 1000000, domain.FrequencyMonthly)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockSavings.AssertExpectations(suite.T())
	suite.mockWallet.AssertExpectations(suite.T())
}

func (suite *GoalFundingServiceTestSuite) TestFundGoal_LocksOnlyWhatTheGoalAbsorbs() {
	ctx := context.Background()
	goal := &domain.SavingsGoal{
		SavingID:      "goal-1",
		Product:       suite.product,
		TargetAmount:  suite.product.Price,
		CurrentAmount: 39500000, // 500000 remaining
		Status:        domain.SavingActive,
	}
	completed := *goal
	completed.CurrentAmount = completed.TargetAmount
	completed.Status = domain.SavingCompleted

	suite.mockSavings.On("GetSaving", ctx, suite.userID, "goal-1").Return(goal, nil).Once()
	// Only the remaining 500000 is locked, not the offered 2000000
	suite.mockWallet.On("LockForSavings", ctx, suite.userID, int64(500000), "Savings: PlayStation 5").Return(&domain.Wallet{}, nil).Once()
	suite.mockSavings.On("ContributeTo", ctx, suite.userID, "goal-1", int64(500000)).Return(&completed, int64(500000), nil).Once()

	result, credited, err := suite.service.FundGoal(ctx, suite.userID, "goal-1", 2000000)

	suite.Require().NoError(err)
	suite.Equal(int64(500000), credited)
	suite.Equal(domain.SavingCompleted, result.Status)
	suite.mockWallet.AssertExpectations(suite.T())
	suite.mockSavings.AssertExpectations(suite.T())
}

func (suite *GoalFundingServiceTestSuite) TestFundGoal_ReleasesSurplusWhenCreditIsClamped() {
	ctx := context.Background()
	goal := &domain.SavingsGoal{
		SavingID:      "goal-1",
		Product:       suite.product,
		TargetAmount:  suite.product.Price,
		CurrentAmount: 39990000, // 10000 remaining at read time
		Status:        domain.SavingActive,
	}
	completed := *goal
	completed.CurrentAmount = completed.TargetAmount
	completed.Status = domain.SavingCompleted

	suite.mockSavings.On("GetSaving", ctx, suite.userID, "goal-1").Return(goal, nil).Once()
	suite.mockWallet.On("LockForSavings", ctx, suite.userID, int64(10000), "Savings: PlayStation 5").Return(&domain.Wallet{}, nil).Once()
	// A parallel contribution got in first, so only 4000 is actually credited
	suite.mockSavings.On("ContributeTo", ctx, suite.userID, "goal-1", int64(10000)).Return(&completed, int64(4000), nil).Once()
	// The 6000 locked beyond the credit must be released again
	suite.mockWallet.On("UnlockFunds", ctx, suite.userID, int64(6000)).Return(&domain.Wallet{}, nil).Once()

	result, credited, err := suite.service.FundGoal(ctx, suite.userID, "goal-1", 10000)

	suite.Require().NoError(err)
	suite.Equal(int64(4000), credited)
	suite.Equal(domain.SavingCompleted, result.Status)
	suite.mockWallet.AssertExpectations(suite.T())
	suite.mockSavings.AssertExpectations(suite.T())
}

func (suite *GoalFundingServiceTestSuite) TestFundGoal_ContributionFailureUnlocksFunds() {
	ctx := context.Background()
	goal := &domain.SavingsGoal{
		SavingID:     "goal-1",
		Product:      suite.product,
		TargetAmount: suite.product.Price,
		Status:       domain.SavingActive,
	}
	persistErr := fmt.Errorf("write failed")

	suite.mockSavings.On("GetSaving", ctx, suite.userID, "goal-1").Return(goal, nil).Once()
	suite.mockWallet.On("LockForSavings", ctx, suite.userID, int64(1000000), "Savings: PlayStation 5").Return(&domain.Wallet{}, nil).Once()
	suite.mockSavings.On("ContributeTo", ctx, suite.userID, "goal-1", int64(1000000)).Return(nil, int64(0), persistErr).Once()
	// Compensating unlock
	suite.mockWallet.On("UnlockFunds", ctx, suite.userID, int64(1000000)).Return(&domain.Wallet{}, nil).Once()

	_, _, err := suite.service.FundGoal(ctx, suite.userID, "goal-1", 1000000)

	suite.Require().Error(err)
	suite.ErrorIs(err, persistErr)
	suite.mockWallet.AssertExpectations(suite.T())
	suite.mockSavings.AssertExpectations(suite.T())
}

func (suite *GoalFundingServiceTestSuite) TestFundGoal_InactiveGoal() {
	ctx := context.Background()
	goal := &domain.SavingsGoal{
		SavingID:     "goal-1",
		Product:      suite.product,
		TargetAmount: suite.product.Price,
		Status:       domain.SavingCompleted,
	}
	suite.mockSavings.On("GetSaving", ctx, suite.userID, "goal-1").Return(goal, nil).Once()

	_, _, err := suite.service.FundGoal(ctx, suite.userID, "goal-1", 1000)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockWallet.AssertNotCalled(suite.T(), "LockForSavings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalFundingServiceTestSuite) TestFundGoal_NonPositiveAmount() {
	ctx := context.Background()

	_, _, err := suite.service.FundGoal(ctx, suite.userID, "goal-1", 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSavings.AssertNotCalled(suite.T(), "GetSaving", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalFundingServiceTestSuite) TestCancelGoal_ReleasesAccumulatedFunds() {
	ctx := context.Background()
	goal := &domain.SavingsGoal{
		SavingID:      "goal-1",
		Product:       suite.product,
		TargetAmount:  suite.product.Price,
		CurrentAmount: 3000000,
		Status:        domain.SavingCancelled,
	}

	suite.mockSavings.On("CancelSaving", ctx, suite.userID, "goal-1").Return(goal, nil).Once()
	suite.mockWallet.On("UnlockFunds", ctx, suite.userID, int64(3000000)).Return(&domain.Wallet{}, nil).Once()

	cancelled, err := suite.service.CancelGoal(ctx, suite.userID, "goal-1")

	suite.Require().NoError(err)
	suite.Equal(domain.SavingCancelled, cancelled.Status)
	suite.mockWallet.AssertExpectations(suite.T())
	suite.mockSavings.AssertExpectations(suite.T())
}

func (suite *GoalFundingServiceTestSuite) TestCancelGoal_NothingToReleaseForEmptyGoal() {
	ctx := context.Background()
	goal := &domain.SavingsGoal{
		SavingID: "goal-1",
		Product:  suite.product,
		Status:   domain.SavingCancelled,
	}

	suite.mockSavings.On("CancelSaving", ctx, suite.userID, "goal-1").Return(goal, nil).Once()

	_, err := suite.service.CancelGoal(ctx, suite.userID, "goal-1")

	suite.Require().NoError(err)
	suite.mockWallet.AssertNotCalled(suite.T(), "UnlockFunds", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalFundingServiceTestSuite) TestCancelGoal_UnknownGoal() {
	ctx := context.Background()
	suite.mockSavings.On("CancelSaving", ctx, suite.userID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CancelGoal(ctx, suite.userID, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockWallet.AssertNotCalled(suite.T(), "UnlockFunds", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalFundingServiceTestSuite) TestCancelGoal_ReleaseFailureIsSurfaced() {
	ctx := context.Background()
	goal := &domain.SavingsGoal{
		SavingID:      "goal-1",
		Product:       suite.product,
		CurrentAmount: 500000,
		Status:        domain.SavingCancelled,
	}
	unlockErr := fmt.Errorf("write failed")

	suite.mockSavings.On("CancelSaving", ctx, suite.userID, "goal-1").Return(goal, nil).Once()
	suite.mockWallet.On("UnlockFunds", ctx, suite.userID, int64(500000)).Return(nil, unlockErr).Once()

	_, err := suite.service.CancelGoal(ctx, suite.userID, "goal-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, unlockErr)
}

func TestGoalFundingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalFundingServiceTestSuite))
}
