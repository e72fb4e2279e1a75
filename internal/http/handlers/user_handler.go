package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/http/middleware"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for authentication and account maintenance
type UserHandler struct {
	authUseCase domain.AuthUseCase
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(authUseCase domain.AuthUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token string             `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  domain.UserSummary `json:"user"`
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=255" example:"viewer_two"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	RoleName string `json:"role_name" example:"viewer"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID          int64   `json:"id" example:"5"`
	Username    string  `json:"username" example:"agent_one"`
	Name        string  `json:"name,omitempty" example:"Agent One"`
	Role        string  `json:"role,omitempty" example:"agent_manager"`
	Status      string  `json:"status" example:"active"`
	Type        string  `json:"type,omitempty" example:"reseller"`
	LastLoginAt *string `json:"last_login_at,omitempty" example:"2025-03-01T10:00:00Z"`
	CreatedAt   string  `json:"created_at" example:"2025-03-01T10:00:00Z"`
}

// ChangePasswordRequest represents the change password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func newUserResponse(u *domain.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role.Name,
		Status:    string(u.Status),
		Type:      u.Type,
		CreatedAt: u.CreatedAt.UTC().Format(timeLayout),
	}
	if u.LastLoginAt != nil {
		at := u.LastLoginAt.UTC().Format(timeLayout)
		resp.LastLoginAt = &at
	}
	return resp
}

// Login handles user authentication
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindError(err))
		return
	}

	token, user, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password, middleware.ActorFromContext(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: *user})
}

// Register handles self-service account creation
// @Summary Register
// @Description Create a viewer or player account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindError(err))
		return
	}

	user, err := h.authUseCase.Register(c.Request.Context(), req.Username, req.Password, req.RoleName, middleware.ActorFromContext(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// ChangePassword handles a password change for the authenticated user
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindError(err))
		return
	}

	if err := h.authUseCase.ChangePassword(c.Request.Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	h.logger.WithContext(c.Request.Context()).Info("Password changed", zap.Int64("user_id", actor.UserID))
	c.JSON(http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}
