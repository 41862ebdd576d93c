//go:build unit
// +build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsMatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/products/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/products/:id", "200"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/products/:id", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordRateRefresh(t *testing.T) {
	before := testutil.ToFloat64(rateRefreshes.WithLabelValues("failure"))
	RecordRateRefresh(false)
	assert.Equal(t, before+1, testutil.ToFloat64(rateRefreshes.WithLabelValues("failure")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordOrderCreated("NGN")

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "electrify_orders_created_total")
}
