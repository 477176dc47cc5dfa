// Package controller exposes the blog REST endpoints.
package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/devhub-api/internal/web/blog/dto"
	"github.com/Laisky/devhub-api/internal/web/blog/service"
	"github.com/Laisky/devhub-api/library/rest"
)

// Blog blog controller
type Blog struct {
	svc *service.Blog
}

// New create new controller
func New(svc *service.Blog) *Blog {
	return &Blog{svc: svc}
}

// RegisterRoutes mounts the blog endpoints on the given group.
func (c *Blog) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("", c.create)
	g.GET("", c.list)
	g.GET("/:id", c.get)
	g.PATCH("/:id", c.update)
	g.DELETE("/:id", c.remove)
}

func (c *Blog) create(ctx *gin.Context) {
	var req dto.NewBlog
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rest.AbortWithError(ctx, errors.Wrapf(rest.ErrValidation, "bind payload: %v", err))
		return
	}

	blog, err := c.svc.Create(ctx.Request.Context(), req)
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, blog)
}

func (c *Blog) list(ctx *gin.Context) {
	var q dto.ListBlogsQuery
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

func (c *Blog) get(ctx *gin.Context) {
	blog, err := c.svc.Load(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, blog)
}

func (c *Blog) update(ctx *gin.Context) {
	var patch dto.BlogPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		rest.AbortWithError(ctx, errors.Wrapf(rest.ErrValidation, "bind payload: %v", err))
		return
	}

	blog, err := c.svc.Update(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, blog)
}

func (c *Blog) remove(ctx *gin.Context) {
	if err := c.svc.Remove(ctx.Request.Context(), ctx.Param("id")); err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rest.OkResponse{Ok: true})
}
