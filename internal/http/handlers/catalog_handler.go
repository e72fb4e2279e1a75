package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/http/middleware"
)

// CatalogHandler serves games, commissions and sub-accounts
type CatalogHandler struct {
	gameUseCase       domain.GameUseCase
	commissionUseCase domain.CommissionUseCase
	subAccountUseCase domain.SubAccountUseCase
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	gameUseCase domain.GameUseCase,
	commissionUseCase domain.CommissionUseCase,
	subAccountUseCase domain.SubAccountUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		gameUseCase:       gameUseCase,
		commissionUseCase: commissionUseCase,
		subAccountUseCase: subAccountUseCase,
	}
}

// CreateSubAccountRequest represents the create sub-account request body
type CreateSubAccountRequest struct {
	Username string `json:"username" binding:"required,max=255" example:"cashier_one"`
	Password string `json:"password" binding:"required" example:"cashier123"`
	Status   string `json:"status" binding:"omitempty,oneof=active inactive" example:"active"`
}

// ListGames handles the game catalog listing
// @Summary List games
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Game
// @Router /games [get]
func (h *CatalogHandler) ListGames(c *gin.Context) {
	games, err := h.gameUseCase.ListGames(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// SyncBalance refreshes a game balance from the game platform
// @Summary Sync game balance
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} domain.Game
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /games/{id}/sync-balance [post]
func (h *CatalogHandler) SyncBalance(c *gin.Context) {
	gameID, err := idParam(c, "id")
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	game, err := h.gameUseCase.SyncBalance(c.Request.Context(), gameID, middleware.ActorFromContext(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// ListCommissions handles the commission listing
// @Summary List commissions
// @Tags commissions
// @Produce json
// @Security BearerAuth
// @Param agent query string false "Agent username substring"
// @Param start_date query string false "YYYY-MM-DD or RFC3339"
// @Param end_date query string false "YYYY-MM-DD or RFC3339, a date covers the whole day"
// @Success 200 {array} domain.Commission
// @Failure 400 {object} ErrorResponse
// @Router /commissions [get]
func (h *CatalogHandler) ListCommissions(c *gin.Context) {
	rng, err := dateRangeQuery(c)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	commissions, err := h.commissionUseCase.ListCommissions(c.Request.Context(), domain.CommissionFilter{
		AgentUsername: c.Query("agent"),
		DateRange:     rng,
	})
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, commissions)
}

// ListSubAccounts handles the sub-account listing
// @Summary List sub-accounts
// @Tags sub-accounts
// @Produce json
// @Security BearerAuth
// @Param username query string false "Username substring"
// @Success 200 {array} domain.SubAccount
// @Router /sub-accounts [get]
func (h *CatalogHandler) ListSubAccounts(c *gin.Context) {
	accounts, err := h.subAccountUseCase.ListSubAccounts(c.Request.Context(), domain.SubAccountFilter{
		Username: c.Query("username"),
	})
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// CreateSubAccount handles sub-account creation
// @Summary Create sub-account
// @Tags sub-accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSubAccountRequest true "Sub-account details"
// @Success 201 {object} domain.SubAccount
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sub-accounts [post]
func (h *CatalogHandler) CreateSubAccount(c *gin.Context) {
	var req CreateSubAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindError(err))
		return
	}

	account, err := h.subAccountUseCase.CreateSubAccount(c.Request.Context(), domain.CreateSubAccountInput{
		Username: req.Username,
		Password: req.Password,
		Status:   domain.UserStatus(req.Status),
	}, middleware.ActorFromContext(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}
