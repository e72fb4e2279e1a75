package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/http/middleware"
)

// ActivityHandler serves the audit trail
type ActivityHandler struct {
	activityUseCase domain.ActivityUseCase
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityUseCase domain.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{activityUseCase: activityUseCase}
}

// List handles the activity log listing
// @Summary List activity logs
// @Tags activity-logs
// @Produce json
// @Security BearerAuth
// @Param username query string false "Agent username substring, case-insensitive"
// @Param ip query string false "IP address substring"
// @Param start_date query string false "YYYY-MM-DD or RFC3339"
// @Param end_date query string false "YYYY-MM-DD or RFC3339, a date covers the whole day"
// @Success 200 {array} domain.ActivityLog
// @Failure 400 {object} ErrorResponse
// @Router /activity-logs [get]
func (h *ActivityHandler) List(c *gin.Context) {
	rng, err := dateRangeQuery(c)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	entries, err := h.activityUseCase.List(c.Request.Context(), domain.ActivityLogFilter{
		Username:  c.Query("username"),
		IP:        c.Query("ip"),
		DateRange: rng,
	})
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
