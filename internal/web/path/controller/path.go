// Package controller exposes the learning-path REST endpoints.
package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/devhub-api/internal/web/path/dto"
	"github.com/Laisky/devhub-api/internal/web/path/service"
	"github.com/Laisky/devhub-api/library/rest"
)

// Path learning-path controller
type Path struct {
	svc *service.Path
}

// New create new controller
func New(svc *service.Path) *Path {
	return &Path{svc: svc}
}

// RegisterRoutes mounts the path endpoints on the given group.
// There is no get-by-id, the path is always consumed as a whole.
func (c *Path) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("", c.create)
	g.GET("", c.list)
	g.PATCH("/:id", c.update)
	g.DELETE("/:id", c.remove)
}

func (c *Path) create(ctx *gin.Context) {
	var req dto.NewStep
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rest.AbortWithError(ctx, errors.Wrapf(rest.ErrValidation, "bind payload: %v", err))
		return
	}

	step, err := c.svc.Create(ctx.Request.Context(), req)
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, step)
}

func (c *Path) list(ctx *gin.Context) {
	steps, err := c.svc.List(ctx.Request.Context())
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, steps)
}

func (c *Path) update(ctx *gin.Context) {
	var patch dto.StepPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		rest.AbortWithError(ctx, errors.Wrapf(rest.ErrValidation, "bind payload: %v", err))
		return
	}

	step, err := c.svc.Update(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, step)
}

func (c *Path) remove(ctx *gin.Context) {
	if err := c.svc.Remove(ctx.Request.Context(), ctx.Param("id")); err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rest.OkResponse{Ok: true})
}
