package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/owna-app/owna_backend/internal/apperrors"
	portssvc "github.com/owna-app/owna_backend/internal/core/ports/services"
	"github.com/owna-app/owna_backend/internal/dto"
	"github.com/owna-app/owna_backend/internal/middleware"
	"github.com/owna-app/owna_backend/internal/utils"
)

// walletHandler handles HTTP requests for the wallet ledger.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws}
}

// RegisterWalletRoutes registers routes related to the wallet.
func RegisterWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	wallet := rg.Group("/wallet")
	{
		wallet.GET("", h.getWallet)
		wallet.POST("/deposit", h.deposit)
		wallet.POST("/withdraw", h.withdraw)
		wallet.GET("/transactions", h.listTransactions)
	}
}

// getWallet godoc
// @Summary Get the wallet
// @Description Retrieves the balance, locked funds and transaction history for the logged-in user
// @Tags wallet
// @Produce json
// @Success 200 {object} dto.WalletResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	wallet, err := h.walletService.GetWallet(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get wallet from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve wallet"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// deposit godoc
// @Summary Top up the wallet
// @Description Credits the wallet balance and records a deposit transaction
// @Tags wallet
// @Accept json
// @Produce json
// @Param deposit body dto.AddFundsRequest true "Deposit amount in Naira"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} ErrorResponse "Invalid or non-positive amount"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/deposit [post]
func (h *walletHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	amount, err := utils.NairaToKobo(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	wallet, err := h.walletService.AddFunds(c.Request.Context(), userID, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to add funds in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add funds"})
		return
	}

	logger.Info("Funds added", slog.String("user_id", userID), slog.Int64("amount_kobo", amount))
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// withdraw godoc
// @Summary Withdraw from the wallet
// @Description Debits the withdrawable balance and records a withdrawal transaction. Locked funds cannot be withdrawn.
// @Tags wallet
// @Accept json
// @Produce json
// @Param withdraw body dto.WithdrawFundsRequest true "Withdrawal amount in Naira"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} ErrorResponse "Invalid or non-positive amount"
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient withdrawable funds"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/withdraw [post]
func (h *walletHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.WithdrawFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	amount, err := utils.NairaToKobo(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	wallet, err := h.walletService.WithdrawFunds(c.Request.Context(), userID, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Warn("Withdrawal exceeds withdrawable balance", slog.String("user_id", userID))
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Insufficient withdrawable funds"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to withdraw funds in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to withdraw funds"})
		return
	}

	logger.Info("Funds withdrawn", slog.String("user_id", userID), slog.Int64("amount_kobo", amount))
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// listTransactions godoc
// @Summary List wallet transactions
// @Description Retrieves a page of the transaction history, most recent first
// @Tags wallet
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/transactions [get]
func (h *walletHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.walletService.ListTransactions(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToListTransactionResponse(txns)})
}
