package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/http/middleware"
)

// AgentHandler handles agent management and the player directory
type AgentHandler struct {
	agentUseCase domain.AgentUseCase
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentUseCase domain.AgentUseCase) *AgentHandler {
	return &AgentHandler{agentUseCase: agentUseCase}
}

// CreateAgentRequest represents the create agent request body
type CreateAgentRequest struct {
	Username string `json:"username" binding:"required,max=255" example:"agent_three"`
	Name     string `json:"name" binding:"required,max=255" example:"Agent Three"`
	Password string `json:"password" binding:"required" example:"agent123"`
	Status   string `json:"status" binding:"omitempty,oneof=active inactive" example:"active"`
	Type     string `json:"type" binding:"max=50" example:"reseller"`
}

// CreateAgent handles agent creation
// @Summary Create agent
// @Tags agents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAgentRequest true "Agent details"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindError(err))
		return
	}

	agent, err := h.agentUseCase.CreateAgent(c.Request.Context(), domain.CreateAgentInput{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
		Status:   domain.UserStatus(req.Status),
		Type:     req.Type,
	}, middleware.ActorFromContext(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(agent))
}

// ListAgents handles the agent listing
// @Summary List agents
// @Tags agents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Failure 403 {object} ErrorResponse
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	agents, err := h.agentUseCase.ListAgents(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponses(agents))
}

// ListPlayers handles the player listing
// @Summary List players
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Failure 403 {object} ErrorResponse
// @Router /users/players [get]
func (h *AgentHandler) ListPlayers(c *gin.Context) {
	players, err := h.agentUseCase.ListPlayers(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponses(players))
}

func newUserResponses(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}
