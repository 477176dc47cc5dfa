// Package controller exposes the tools REST endpoints.
package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/devhub-api/internal/web/tool/dto"
	"github.com/Laisky/devhub-api/internal/web/tool/service"
	"github.com/Laisky/devhub-api/library/rest"
)

// Tool tools controller
type Tool struct {
	svc *service.Tool
}

// New create new controller
func New(svc *service.Tool) *Tool {
	return &Tool{svc: svc}
}

// RegisterRoutes mounts the tools endpoints on the given group.
func (c *Tool) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("", c.create)
	g.GET("", c.list)
	g.GET("/:id", c.get)
	g.PATCH("/:id", c.update)
	g.DELETE("/:id", c.remove)
}

func (c *Tool) create(ctx *gin.Context) {
	var req dto.NewTool
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rest.AbortWithError(ctx, errors.Wrapf(rest.ErrValidation, "bind payload: %v", err))
		return
	}

	tool, err := c.svc.Create(ctx.Request.Context(), req)
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tool)
}

func (c *Tool) list(ctx *gin.Context) {
	var q dto.ListToolsQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		rest.AbortWithError(ctx, errors.Wrapf(rest.ErrValidation, "bind query: %v", err))
		return
	}

	page, err := c.svc.List(ctx.Request.Context(), q)
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page)
}

func (c *Tool) get(ctx *gin.Context) {
	tool, err := c.svc.Load(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tool)
}

func (c *Tool) update(ctx *gin.Context) {
	var patch dto.ToolPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		rest.AbortWithError(ctx, errors.Wrapf(rest.ErrValidation, "bind payload: %v", err))
		return
	}

	tool, err := c.svc.Update(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tool)
}

func (c *Tool) remove(ctx *gin.Context) {
	if err := c.svc.Remove(ctx.Request.Context(), ctx.Param("id")); err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rest.OkResponse{Ok: true})
}
