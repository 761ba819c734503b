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
)

// favoritesHandler handles HTTP requests for the product favorites list.
type favoritesHandler struct {
	favoritesService portssvc.FavoritesSvcFacade
}

func newFavoritesHandler(fs portssvc.FavoritesSvcFacade) *favoritesHandler {
	return &favoritesHandler{favoritesService: fs}
}

// registerFavoritesRoutes registers routes related to product favorites.
func registerFavoritesRoutes(rg *gin.RouterGroup, favoritesService portssvc.FavoritesSvcFacade) {
	h := newFavoritesHandler(favoritesService)

	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.listFavorites)
		favorites.POST("/:productID", h.toggleFavorite)
		favorites.DELETE("", h.clearFavorites)
	}
}

// listFavorites godoc
// @Summary List favorite products
// @Description Retrieves the logged-in user's favorite product IDs, most recently added first
// @Tags favorites
// @Produce json
// @Success 200 {object} dto.FavoritesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /favorites [get]
func (h *favoritesHandler) listFavorites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	favorites, err := h.favoritesService.GetFavorites(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get favorites from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve favorites"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFavoritesResponse(favorites))
}

// toggleFavorite godoc
// @Summary Toggle a favorite product
// @Description Marks the product as a favorite, or unmarks it when already marked
// @Tags favorites
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.ToggleFavoriteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /favorites/{productID} [post]
func (h *favoritesHandler) toggleFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	favorites, favorited, err := h.favoritesService.ToggleFavorite(c.Request.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to toggle favorite in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to toggle favorite"})
		return
	}

	c.JSON(http.StatusOK, dto.ToggleFavoriteResponse{
		ProductIDs: dto.ToFavoritesResponse(favorites).ProductIDs,
		Favorited:  favorited,
	})
}

// clearFavorites godoc
// @Summary Clear all favorites
// @Description Removes every product from the favorites list
// @Tags favorites
// @Produce json
// @Success 200 {object} dto.FavoritesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /favorites [delete]
func (h *favoritesHandler) clearFavorites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	favorites, err := h.favoritesService.ClearFavorites(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to clear favorites in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clear favorites"})
		return
	}

	logger.Info("Favorites cleared")
	c.JSON(http.StatusOK, dto.ToFavoritesResponse(favorites))
}
