package web

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var ginModeOnce sync.Once

func setupGinTestMode() {
	ginModeOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})
}

// TestAllowCORS verifies the permissive cross-origin policy: any origin is
// echoed back with credentials allowed, and preflights are answered directly.
func TestAllowCORS(t *testing.T) {
	setupGinTestMode()
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		origin         string
		requestHeaders string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "no origin header passes through untouched",
			method:         http.MethodGet,
			origin:         "",
			expectedStatus: http.StatusOK,
			expectedOrigin: "",
		},
		{
			name:           "any origin is echoed on GET",
			method:         http.MethodGet,
			origin:         "https://example.com",
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://example.com",
		},
		{
			name:           "preflight answered with 204",
			method:         http.MethodOptions,
			origin:         "https://another.example.org",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "https://another.example.org",
		},
		{
			name:           "requested headers echoed on preflight",
			method:         http.MethodOptions,
			origin:         "https://example.com",
			requestHeaders: "X-Custom-Header",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := gin.New()
			engine.Use(allowCORS)
			engine.Any("/ping", func(ctx *gin.Context) {
				ctx.String(http.StatusOK, "pong")
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.requestHeaders != "" {
				req.Header.Set("Access-Control-Request-Headers", tt.requestHeaders)
			}
			engine.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			require.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.expectedOrigin != "" {
				require.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			}
			if tt.requestHeaders != "" {
				require.Equal(t, tt.requestHeaders, w.Header().Get("Access-Control-Allow-Headers"))
			}
		})
	}
}
