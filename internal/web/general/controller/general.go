// Package controller exposes the hello-world and status-check endpoints.
package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/devhub-api/internal/web/general/service"
	"github.com/Laisky/devhub-api/library/rest"
)

// General general controller
type General struct {
	svc *service.General
}

// New create new controller
func New(svc *service.General) *General {
	return &General{svc: svc}
}

// RegisterRoutes mounts the general endpoints on the api group root.
func (c *General) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/", c.hello)
	g.POST("/status", c.createStatus)
	g.GET("/status", c.listStatus)
}

func (c *General) hello(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

type newStatusCheck struct {
	ClientName string `json:"client_name" binding:"required"`
}

func (c *General) createStatus(ctx *gin.Context) {
	var req newStatusCheck
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rest.AbortWithError(ctx, errors.Wrapf(rest.ErrValidation, "bind payload: %v", err))
		return
	}

	check, err := c.svc.CreateStatusCheck(ctx.Request.Context(), req.ClientName)
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, check)
}

func (c *General) listStatus(ctx *gin.Context) {
	checks, err := c.svc.ListStatusChecks(ctx.Request.Context())
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, checks)
}
