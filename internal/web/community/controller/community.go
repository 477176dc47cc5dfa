// Package controller exposes the community REST endpoints.
package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/devhub-api/internal/web/community/dto"
	"github.com/Laisky/devhub-api/internal/web/community/service"
	"github.com/Laisky/devhub-api/library/rest"
)

// Community community controller
type Community struct {
	svc *service.Community
}

// New create new controller
func New(svc *service.Community) *Community {
	return &Community{svc: svc}
}

// RegisterRoutes mounts the community endpoints on the given group.
// Channels and messages are append-only: create and list only.
func (c *Community) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/channels", c.listChannels)
	g.POST("/channels", c.createChannel)
	g.GET("/messages", c.listMessages)
	g.POST("/messages", c.createMessage)
}

func (c *Community) createChannel(ctx *gin.Context) {
	var req dto.NewChannel
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rest.AbortWithError(ctx, errors.Wrapf(rest.ErrValidation, "bind payload: %v", err))
		return
	}

	ch, err := c.svc.CreateChannel(ctx.Request.Context(), req)
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ch)
}

func (c *Community) listChannels(ctx *gin.Context) {
	channels, err := c.svc.ListChannels(ctx.Request.Context())
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, channels)
}

func (c *Community) createMessage(ctx *gin.Context) {
	var req dto.NewMessage
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rest.AbortWithError(ctx, errors.Wrapf(rest.ErrValidation, "bind payload: %v", err))
		return
	}

	msg, err := c.svc.CreateMessage(ctx.Request.Context(), req)
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, msg)
}

func (c *Community) listMessages(ctx *gin.Context) {
	var q dto.ListMessagesQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		rest.AbortWithError(ctx, errors.Wrapf(rest.ErrValidation, "bind query: %v", err))
		return
	}

	page, err := c.svc.ListMessages(ctx.Request.Context(), q)
	if err != nil {
		rest.AbortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page)
}
