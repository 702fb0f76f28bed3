package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhima/calorie-tracker/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_WhenCalled_ThenServesPrometheusText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics.RecordEntryOperation("create", metrics.OutcomeCreated)
	router := gin.New()
	router.GET("/metrics", NewMetricsHandler(metrics.Handler()).Metrics)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), `calorie_tracker_log_entries_operations_total{operation="create",outcome="created"}`)
}
