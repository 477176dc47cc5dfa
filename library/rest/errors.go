// Package rest carries shared HTTP plumbing: the error taxonomy,
// error→status mapping and list pagination.
package rest

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/devhub-api/library/log"
)

var (
	// ErrNotFound indicates an id lookup missed on get/update/delete.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates malformed or out-of-range input,
	// rejected before any store access.
	ErrValidation = errors.New("invalid argument")
)

// ErrorDetail is the error response body, matching `{"detail": "..."}`.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// AbortWithError maps a service error onto an HTTP response.
// Unrecognized errors are treated as store failures and logged,
// the client only sees a generic message.
func AbortWithError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorDetail{Detail: err.Error()})
	case errors.Is(err, ErrValidation):
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorDetail{Detail: err.Error()})
	default:
		log.Logger.Error("request failed",
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err))
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorDetail{Detail: "internal server error"})
	}
}
