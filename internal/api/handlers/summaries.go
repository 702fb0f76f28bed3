package handlers

import (
	"context"
	"errors"

	"github.com/dhima/calorie-tracker/internal/api/response"
	"github.com/dhima/calorie-tracker/internal/logging"
	"github.com/dhima/calorie-tracker/internal/models"
	"github.com/dhima/calorie-tracker/internal/summaries"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SummaryService builds daily summaries.
type SummaryService interface {
	Summarize(ctx context.Context, day string) (*models.DailySummary, error)
}

// SummaryHandler handles daily summary requests.
type SummaryHandler struct {
	logger  logging.Logger
	service SummaryService
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(logger logging.Logger, service SummaryService) *SummaryHandler {
	return &SummaryHandler{
		logger:  logger.With(zap.String("handler", "summary")),
		service: service,
	}
}

// GetDailySummary godoc
// @Summary Daily calorie summary
// @Description Totals the entries whose loggedOn starts with the given day, grouped by category
// @Tags Summaries
// @Produce json
// @Param day path string true "Day as YYYY-MM-DD" example(2020-10-01)
// @Success 200 {object} models.DailySummary
// @Failure 400 {object} response.ErrorResponse "Malformed day"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /summaries/{day} [get]
func (h *SummaryHandler) GetDailySummary(c *gin.Context) {
	summary, err := h.service.Summarize(c.Request.Context(), c.Param("day"))
	if err != nil {
		if errors.Is(err, summaries.ErrInvalidDay) {
			response.BadRequest(c, "invalid day", err.Error())
			return
		}
		h.logger.Error("summarize day failed",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.InternalServerError(c, "internal server error")
		return
	}

	response.OK(c, summary)
}
