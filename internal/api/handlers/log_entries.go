package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dhima/calorie-tracker/internal/api/response"
	"github.com/dhima/calorie-tracker/internal/logentries"
	"github.com/dhima/calorie-tracker/internal/logging"
	"github.com/dhima/calorie-tracker/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LogEntryService is the validation and persistence core behind /log.
type LogEntryService interface {
	List(ctx context.Context) ([]models.LogEntry, error)
	FindByType(ctx context.Context, entryType models.LogEntryType) ([]models.LogEntry, error)
	FindByID(ctx context.Context, id int) (*models.LogEntry, error)
	Create(ctx context.Context, entry *models.LogEntry) (*logentries.Result, error)
	Update(ctx context.Context, entry *models.LogEntry) (*logentries.Result, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

// LogEntryHandler handles log entry requests.
type LogEntryHandler struct {
	logger  logging.Logger
	service LogEntryService
}

// NewLogEntryHandler creates a new log entry handler.
func NewLogEntryHandler(logger logging.Logger, service LogEntryService) *LogEntryHandler {
	return &LogEntryHandler{
		logger:  logger.With(zap.String("handler", "log_entry")),
		service: service,
	}
}

// ListLogEntries godoc
// @Summary List log entries
// @Description Returns every log entry ordered by id
// @Tags Log
// @Produce json
// @Success 200 {array} models.LogEntry
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /log [get]
func (h *LogEntryHandler) ListLogEntries(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if h.handleServiceError(c, err, "list log entries") {
		return
	}

	response.OK(c, entries)
}

// ListLogEntriesByType godoc
// @Summary List log entries of one category
// @Description Returns the log entries of a meal category
// @Tags Log
// @Produce json
// @Param type path string true "Category" Enums(BREAKFAST, LUNCH, DINNER, SNACK, SECOND_BREAKFAST)
// @Success 200 {array} models.LogEntry
// @Failure 400 {object} response.ErrorResponse "Unknown category"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /log/type/{type} [get]
func (h *LogEntryHandler) ListLogEntriesByType(c *gin.Context) {
	entryType, err := models.ParseLogEntryType(strings.ToUpper(c.Param("type")))
	if err != nil {
		response.BadRequest(c, "unknown log entry type", err.Error())
		return
	}

	entries, err := h.service.FindByType(c.Request.Context(), entryType)
	if h.handleServiceError(c, err, "list log entries by type") {
		return
	}

	response.OK(c, entries)
}

// GetLogEntry godoc
// @Summary Get a log entry
// @Description Returns a log entry by id
// @Tags Log
// @Produce json
// @Param id path int true "Log entry ID"
// @Success 200 {object} models.LogEntry
// @Failure 400 {object} response.ErrorResponse "Invalid id"
// @Failure 404 {object} response.ErrorResponse "Log entry not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /log/{id} [get]
func (h *LogEntryHandler) GetLogEntry(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if id <= 0 {
		response.BadRequest(c, "invalid id", "id must be positive")
		return
	}

	entry, err := h.service.FindByID(c.Request.Context(), id)
	if h.handleServiceError(c, err, "get log entry") {
		return
	}
	if entry == nil {
		response.NotFound(c, "log entry not found")
		return
	}

	response.OK(c, entry)
}

// CreateLogEntry godoc
// @Summary Create a log entry
// @Description Validates and stores a new log entry. The id is assigned by the store and must not be sent.
// @Tags Log
// @Accept json
// @Produce json
// @Param entry body models.LogEntry true "Log entry without id"
// @Success 201 {object} LogEntryResult
// @Failure 400 {object} LogEntryResult "Validation failed"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /log [post]
func (h *LogEntryHandler) CreateLogEntry(c *gin.Context) {
	entry, ok := h.bindLogEntry(c)
	if !ok {
		return
	}

	result, err := h.service.Create(c.Request.Context(), entry)
	if h.handleServiceError(c, err, "create log entry") {
		return
	}

	if !result.Successful() {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	h.logger.Info("log entry created",
		zap.Int("entry_id", result.Payload().ID),
		zap.String("request_id", response.GetRequestID(c)),
	)
	response.Created(c, result)
}

// UpdateLogEntry godoc
// @Summary Replace a log entry
// @Description Validates and replaces every field of the log entry identified by the path id
// @Tags Log
// @Accept json
// @Produce json
// @Param id path int true "Log entry ID"
// @Param entry body models.LogEntry true "Replacement log entry"
// @Success 200 {object} LogEntryResult
// @Failure 400 {object} LogEntryResult "Validation failed or nothing updated"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /log/{id} [put]
func (h *LogEntryHandler) UpdateLogEntry(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	entry, ok := h.bindLogEntry(c)
	if !ok {
		return
	}
	if entry != nil {
		entry.ID = id
	}

	result, err := h.service.Update(c.Request.Context(), entry)
	if h.handleServiceError(c, err, "update log entry") {
		return
	}

	if !result.Successful() {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	response.OK(c, result)
}

// DeleteLogEntry godoc
// @Summary Delete a log entry
// @Tags Log
// @Param id path int true "Log entry ID"
// @Success 204 "Log entry deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid id"
// @Failure 404 {object} response.ErrorResponse "Log entry not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /log/{id} [delete]
func (h *LogEntryHandler) DeleteLogEntry(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteByID(c.Request.Context(), id)
	if h.handleServiceError(c, err, "delete log entry") {
		return
	}
	if !deleted {
		response.NotFound(c, "log entry not found")
		return
	}

	response.NoContent(c)
}

func (h *LogEntryHandler) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid id", "id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *LogEntryHandler) bindLogEntry(c *gin.Context) (*models.LogEntry, bool) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return nil, false
	}

	entry, err := decodeLogEntry(body)
	if err != nil {
		h.logger.Warn("invalid log entry request",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		var shapeErr *schemaError
		if errors.As(err, &shapeErr) {
			response.BadRequest(c, "request body does not match the log entry schema", shapeErr.problems)
			return nil, false
		}
		response.BadRequest(c, "invalid request body", err.Error())
		return nil, false
	}
	return entry, true
}

func (h *LogEntryHandler) handleServiceError(c *gin.Context, err error, operation string) bool {
	if err == nil {
		return false
	}

	h.logger.Error(operation+" failed",
		zap.Error(err),
		zap.Bool("unknown_category", errors.Is(err, models.ErrUnknownCategory)),
		zap.String("request_id", response.GetRequestID(c)),
	)
	response.InternalServerError(c, "internal server error")
	return true
}

// LogEntryResult documents the JSON form of a log entry operation result.
type LogEntryResult struct {
	Successful bool             `json:"successful" example:"false"`
	Messages   []string         `json:"messages" example:"calories is too high"`
	Payload    *models.LogEntry `json:"payload"`
} // @name LogEntryResult
