package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/backoffice/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = time.RFC3339
)

// ErrorResponse documents the error envelope for swagger
type ErrorResponse = domain.ErrorResponse

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"Password updated successfully"`
}

// dateRangeQuery reads start_date and end_date. Both accept YYYY-MM-DD or RFC3339;
// a date-only end_date covers the whole day.
func dateRangeQuery(c *gin.Context) (domain.DateRange, error) {
	var rng domain.DateRange

	if raw := c.Query("start_date"); raw != "" {
		start, _, err := parseDate(raw)
		if err != nil {
			return rng, domain.NewValidationError("start_date", "must be YYYY-MM-DD or RFC3339")
		}
		rng.Start = &start
	}

	if raw := c.Query("end_date"); raw != "" {
		end, dateOnly, err := parseDate(raw)
		if err != nil {
			return rng, domain.NewValidationError("end_date", "must be YYYY-MM-DD or RFC3339")
		}
		if dateOnly {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		rng.End = &end
	}

	if !rng.Valid() {
		return rng, domain.NewValidationError("end_date", "must not be before start_date")
	}
	return rng, nil
}

func parseDate(raw string) (time.Time, bool, error) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	return t.UTC(), false, err
}

func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

func bindError(err error) *domain.AppError {
	return domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err).
		WithDetails(err.Error())
}
