package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhima/calorie-tracker/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func scrape(t *testing.T) string {
	t.Helper()
	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return w.Body.String()
}

func TestMetrics_LabelsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics())
	router.GET("/log/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, path := range []string{"/log/1", "/log/2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Contains(t, scrape(t), `calorie_tracker_http_requests_total{method="GET",route="/log/:id",status="404"} 2`)
}

func TestMetrics_UnmatchedRoutesShareOneLabel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/123", nil))

	body := scrape(t)
	assert.Contains(t, body, `route="unmatched",status="404"} 1`)
	assert.NotContains(t, body, "/nope/123")
}
