package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/http/middleware"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// DashboardHandler handles game account provisioning and user search
type DashboardHandler struct {
	provisioningUseCase domain.ProvisioningUseCase
	dashboardUseCase    domain.DashboardUseCase
	logger              *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	provisioningUseCase domain.ProvisioningUseCase,
	dashboardUseCase domain.DashboardUseCase,
	logger *logger.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		provisioningUseCase: provisioningUseCase,
		dashboardUseCase:    dashboardUseCase,
		logger:              logger,
	}
}

// CreateAccountsRequest represents the provisioning request body
type CreateAccountsRequest struct {
	UserID  int64   `json:"user_id" binding:"required,gt=0" example:"7"`
	GameIDs []int64 `json:"game_ids" binding:"required,min=1" example:"1,2"`
}

// CreateAccounts provisions one game account per requested game
// @Summary Create game accounts
// @Description Provision game accounts for a user in one all-or-nothing batch. Unknown games and exhausted identifier retries are reported in skipped.
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAccountsRequest true "User and games"
// @Success 201 {object} domain.ProvisioningResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/create-accounts [post]
func (h *DashboardHandler) CreateAccounts(c *gin.Context) {
	var req CreateAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindError(err))
		return
	}

	result, err := h.provisioningUseCase.ProvisionGameAccounts(
		c.Request.Context(), middleware.ActorFromContext(c), req.UserID, req.GameIDs)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).Error("Create game accounts failed",
			zap.Int64("user_id", req.UserID),
			zap.Int64s("game_ids", req.GameIDs),
			zap.Error(err))
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Search finds a user by username and lists its game accounts
// @Summary Search user
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param username query string true "Exact username"
// @Success 200 {object} domain.UserAccounts
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/search [get]
func (h *DashboardHandler) Search(c *gin.Context) {
	result, err := h.dashboardUseCase.SearchUser(c.Request.Context(), c.Query("username"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
