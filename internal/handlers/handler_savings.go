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

// savingsHandler handles HTTP requests for savings goals. Reads go straight to
// the savings service; money movements go through the goal funding service so
// the wallet stays consistent.
type savingsHandler struct {
	savingsService portssvc.SavingsSvcFacade
	fundingService portssvc.GoalFundingSvcFacade
}

func newSavingsHandler(ss portssvc.SavingsSvcFacade, fs portssvc.GoalFundingSvcFacade) *savingsHandler {
	return &savingsHandler{
		savingsService: ss,
		fundingService: fs,
	}
}

// registerSavingsRoutes registers routes related to savings goals.
func registerSavingsRoutes(rg *gin.RouterGroup, savingsService portssvc.SavingsSvcFacade, fundingService portssvc.GoalFundingSvcFacade) {
	h := newSavingsHandler(savingsService, fundingService)

	savings := rg.Group("/savings")
	{
		savings.GET("", h.listSavings)
		savings.GET("/:id", h.getSaving)
		savings.POST("", h.createSaving)
		savings.POST("/:id/contribute", h.contribute)
		savings.DELETE("/:id", h.cancelSaving)
	}
}

// listSavings godoc
// @Summary List savings goals
// @Description Retrieves the active and completed goal lists with the total saved amount
// @Tags savings
// @Produce json
// @Success 200 {object} dto.SavingsBookResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings [get]
func (h *savingsHandler) listSavings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	book, err := h.savingsService.GetSavings(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get savings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve savings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingsBookResponse(book))
}

// getSaving godoc
// @Summary Get a savings goal by ID
// @Description Retrieves a single goal from either the active or completed list
// @Tags savings
// @Produce json
// @Param id path string true "Saving ID"
// @Success 200 {object} dto.SavingResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Saving not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings/{id} [get]
func (h *savingsHandler) getSaving(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	savingID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	goal, err := h.savingsService.GetSaving(c.Request.Context(), userID, savingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Saving not found"})
			return
		}
		logger.Error("Failed to get saving from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve saving"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingResponse(goal))
}

// createSaving godoc
// @Summary Start a savings goal
// @Description Creates a goal towards a catalog product and commits the first contribution from the wallet
// @Tags savings
// @Accept json
// @Produce json
// @Param saving body dto.CreateSavingRequest true "Goal details"
// @Success 201 {object} dto.SavingResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown product"
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient wallet funds for the first contribution"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings [post]
func (h *savingsHandler) createSaving(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSaving", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	contribution, err := utils.NairaToKobo(req.ContributionAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("product_id", req.ProductID))
	logger.Info("Received request to start savings goal")

	goal, err := h.fundingService.StartGoal(c.Request.Context(), userID, req.ProductID, contribution, req.Frequency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Product not found"})
			return
		}
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Insufficient wallet funds for the first contribution"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to start savings goal in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start savings goal"})
		return
	}

	logger.Info("Savings goal started", slog.String("saving_id", goal.SavingID))
	c.JSON(http.StatusCreated, dto.ToSavingResponse(goal))
}

// contribute godoc
// @Summary Pay into a savings goal
// @Description Locks wallet funds and credits the goal. Amounts beyond the target are clamped; only the credited amount leaves the withdrawable balance.
// @Tags savings
// @Accept json
// @Produce json
// @Param id path string true "Saving ID"
// @Param contribution body dto.ContributeRequest true "Contribution amount in Naira"
// @Success 200 {object} dto.ContributionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or goal not active"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Saving not found"
// @Failure 422 {object} ErrorResponse "Insufficient wallet funds"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings/{id}/contribute [post]
func (h *savingsHandler) contribute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	savingID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Contribute", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	amount, err := utils.NairaToKobo(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("saving_id", savingID))

	goal, credited, err := h.fundingService.FundGoal(c.Request.Context(), userID, savingID, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Saving not found"})
			return
		}
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Insufficient wallet funds"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to fund savings goal in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fund savings goal"})
		return
	}

	logger.Info("Goal funded", slog.Int64("credited_kobo", credited), slog.String("status", string(goal.Status)))
	c.JSON(http.StatusOK, dto.ContributionResponse{
		Saving:   dto.ToSavingResponse(goal),
		Credited: utils.KoboToNaira(credited),
	})
}

// cancelSaving godoc
// @Summary Cancel a savings goal
// @Description Removes an active goal and releases its accumulated funds back to the withdrawable balance
// @Tags savings
// @Produce json
// @Param id path string true "Saving ID"
// @Success 200 {object} dto.SavingResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Saving not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings/{id} [delete]
func (h *savingsHandler) cancelSaving(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	savingID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("saving_id", savingID))

	goal, err := h.fundingService.CancelGoal(c.Request.Context(), userID, savingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Saving not found"})
			return
		}
		logger.Error("Failed to cancel savings goal in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to cancel savings goal"})
		return
	}

	logger.Info("Savings goal cancelled")
	c.JSON(http.StatusOK, dto.ToSavingResponse(goal))
}
