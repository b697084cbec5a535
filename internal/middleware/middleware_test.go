package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/news-admin/internal/metrics"
	"github.com/nsxzhou1114/news-admin/pkg/auth"
	"github.com/nsxzhou1114/news-admin/pkg/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(tokens *auth.TokenManager) *gin.Engine {
	r := gin.New()
	r.GET("/me", AdminAuth(tokens), func(c *gin.Context) {
		id, ok := GetAdminID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin_id": id})
	})
	return r
}

func TestAdminAuth(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "news-admin", time.Hour)
	r := newAuthRouter(tokens)
	tok, err := tokens.Generate(3, "editor")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + tok.AccessToken, http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"valid token", "Bearer " + tok.AccessToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAdminAuth_RevokedToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "news-admin", time.Hour)
	r := newAuthRouter(tokens)
	tok, err := tokens.Generate(3, "editor")
	require.NoError(t, err)
	claims, err := tokens.Parse(tok.AccessToken)
	require.NoError(t, err)
	tokens.Revoke(claims)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "令牌已失效")
}

func TestRequestID(t *testing.T) {
	gen, err := idgen.New(1)
	require.NoError(t, err)
	r := gin.New()
	r.Use(RequestID(gen))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestID")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	assert.Equal(t, w.Header().Get(HeaderRequestID), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "given-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "given-id", w.Body.String())
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/1", nil))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `route="/items/:id",status="204"`)
}
