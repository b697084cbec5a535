package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleOp(t *testing.T) {
	m := New()
	m.ArticleOp("add", nil)
	m.ArticleOp("add", nil)
	m.ArticleOp("add", errors.New("x"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.articleOps.WithLabelValues("add", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.articleOps.WithLabelValues("add", ResultError)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ArticleOp("add", nil)
	m.ObserveRequest("GET", "/x", 200, time.Millisecond)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/api/admin/articles", 200, 10*time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `news_admin_http_requests_total{method="GET",route="/api/admin/articles",status="200"} 1`)
}
