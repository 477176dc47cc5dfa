package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/devhub-api/internal/web/tool/service"
	"github.com/Laisky/devhub-api/library/log"
)

// newTestRouter mounts the controller on a throwaway engine. The service
// gets no dao on purpose: requests that should be rejected before any
// store access must never reach it.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	ctl := New(service.New(log.Logger.Named("test"), nil))
	ctl.RegisterRoutes(engine.Group("/api/tools"))
	return engine
}

// TestListRejectsInvalidSort verifies an out-of-enum sort value fails with
// 422 without touching the store.
func TestListRejectsInvalidSort(t *testing.T) {
	engine := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tools?sort=bogus", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), "sort must be")
}

// TestListRejectsMalformedPage verifies non-numeric pagination fails binding.
func TestListRejectsMalformedPage(t *testing.T) {
	engine := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tools?page=abc", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// TestCreateRejectsMissingFields verifies required creation fields.
func TestCreateRejectsMissingFields(t *testing.T) {
	engine := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools",
		strings.NewReader(`{"name":"ripgrep"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
