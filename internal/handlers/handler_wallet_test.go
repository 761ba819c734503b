package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/owna-app/owna_backend/internal/apperrors"
	"github.com/owna-app/owna_backend/internal/core/domain"
	portssvc "github.com/owna-app/owna_backend/internal/core/ports/services"
	"github.com/owna-app/owna_backend/internal/dto"
	"github.com/owna-app/owna_backend/internal/handlers"
	"github.com/owna-app/owna_backend/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock WalletService ---
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

// Ensure mock implements the interface
var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

// --- Test Suite ---
type WalletHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockWalletService *MockWalletService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *WalletHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "owna-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockWalletService = new(MockWalletService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterWalletRoutes(v1, suite.mockWalletService)
}

// --- Test Cases ---

func (suite *WalletHandlerTestSuite) TestGetWallet_Success() {
	userID := uuid.NewString()
	wallet := &domain.Wallet{
		UserID:      userID,
		Balance:     2550050, // 25500.50 Naira
		LockedFunds: 1000000,
		Transactions: []domain.Transaction{
			{TransactionID: uuid.NewString(), Type: domain.TransactionDeposit, Amount: 2550050, Description: "Wallet Top-up", Date: time.Now(), Status: domain.StatusCompleted},
		},
	}
	suite.mockWalletService.On("GetWallet", mock.Anything, userID).Return(wallet, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/wallet", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.WalletResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.RequireFromString("25500.5")))
	suite.True(resp.LockedFunds.Equal(decimal.RequireFromString("10000")))
	suite.True(resp.Withdrawable.Equal(decimal.RequireFromString("15500.5")))
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal(domain.TransactionDeposit, resp.Transactions[0].Type)

	suite.mockWalletService.AssertExpectations(suite.T())
}

func (suite *WalletHandlerTestSuite) TestGetWallet_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/wallet", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockWalletService.AssertNotCalled(suite.T(), "GetWallet", mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestDeposit_Success() {
	userID := uuid.NewString()
	wallet := &domain.Wallet{UserID: userID, Balance: 500000}
	// 5000 Naira becomes 500000 kobo
	suite.mockWalletService.On("AddFunds", mock.Anything, userID, int64(500000)).Return(wallet, nil).Once()

	body := strings.NewReader(`{"amount": 5000}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/wallet/deposit", body)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.WalletResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.RequireFromString("5000")))

	suite.mockWalletService.AssertExpectations(suite.T())
}

func (suite *WalletHandlerTestSuite) TestDeposit_SubKoboPrecisionRejected() {
	userID := uuid.NewString()

	body := strings.NewReader(`{"amount": 10.005}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/wallet/deposit", body)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockWalletService.AssertNotCalled(suite.T(), "AddFunds", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestDeposit_MissingAmount() {
	userID := uuid.NewString()

	body := strings.NewReader(`{}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/wallet/deposit", body)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockWalletService.AssertNotCalled(suite.T(), "AddFunds", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestWithdraw_InsufficientFunds() {
	userID := uuid.NewString()
	suite.mockWalletService.On("WithdrawFunds", mock.Anything, userID, int64(100000)).
		Return(nil, fmt.Errorf("not enough: %w", apperrors.ErrInsufficientFunds)).Once()

	body := strings.NewReader(`{"amount": 1000}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/wallet/withdraw", body)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Insufficient withdrawable funds", resp.Error)

	suite.mockWalletService.AssertExpectations(suite.T())
}

func (suite *WalletHandlerTestSuite) TestListTransactions_PassesPagination() {
	userID := uuid.NewString()
	txns := []domain.Transaction{
		{TransactionID: "t1", Type: domain.TransactionWithdrawal, Amount: 5000, Date: time.Now(), Status: domain.StatusCompleted},
	}
	suite.mockWalletService.On("ListTransactions", mock.Anything, userID, 5, 10).Return(txns, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/wallet/transactions?limit=5&offset=10", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("t1", resp.Transactions[0].TransactionID)

	suite.mockWalletService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestWalletHandler(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}
