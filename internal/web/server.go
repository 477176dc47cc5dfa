// Package web gin server
package web

import (
	"context"
	"net/http"
	"time"

	ginMw "github.com/Laisky/gin-middlewares/v7"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/devhub-api/internal/global"
	blogCtl "github.com/Laisky/devhub-api/internal/web/blog/controller"
	blogDao "github.com/Laisky/devhub-api/internal/web/blog/dao"
	blogSvc "github.com/Laisky/devhub-api/internal/web/blog/service"
	communityCtl "github.com/Laisky/devhub-api/internal/web/community/controller"
	communityDao "github.com/Laisky/devhub-api/internal/web/community/dao"
	communitySvc "github.com/Laisky/devhub-api/internal/web/community/service"
	generalCtl "github.com/Laisky/devhub-api/internal/web/general/controller"
	generalDao "github.com/Laisky/devhub-api/internal/web/general/dao"
	generalSvc "github.com/Laisky/devhub-api/internal/web/general/service"
	pathCtl "github.com/Laisky/devhub-api/internal/web/path/controller"
	pathDao "github.com/Laisky/devhub-api/internal/web/path/dao"
	pathSvc "github.com/Laisky/devhub-api/internal/web/path/service"
	toolCtl "github.com/Laisky/devhub-api/internal/web/tool/controller"
	toolDao "github.com/Laisky/devhub-api/internal/web/tool/dao"
	toolSvc "github.com/Laisky/devhub-api/internal/web/tool/service"
	"github.com/Laisky/devhub-api/library/log"
)

var server = gin.New()

// Controllers bundles every mounted module controller.
type Controllers struct {
	General   *generalCtl.General
	Blog      *blogCtl.Blog
	Tool      *toolCtl.Tool
	Path      *pathCtl.Path
	Community *communityCtl.Community
}

// NewControllers wires dao → service → controller for every module against
// the shared store handle; the handle is passed explicitly rather than read
// from ambient globals inside the modules.
func NewControllers() *Controllers {
	db := global.DB
	return &Controllers{
		General:   generalCtl.New(generalSvc.New(log.Logger.Named("general"), generalDao.New(db))),
		Blog:      blogCtl.New(blogSvc.New(log.Logger.Named("blog"), blogDao.New(db))),
		Tool:      toolCtl.New(toolSvc.New(log.Logger.Named("tool"), toolDao.New(db))),
		Path:      pathCtl.New(pathSvc.New(log.Logger.Named("path"), pathDao.New(db))),
		Community: communityCtl.New(communitySvc.New(log.Logger.Named("community"), communityDao.New(db))),
	}
}

// RunServer mounts all routes under /api and serves until ctx is canceled,
// then drains in-flight requests before returning.
func RunServer(ctx context.Context, addr string, ctl *Controllers) {
	server.Use(
		gin.Recovery(),
		ginMw.NewLoggerMiddleware(
			ginMw.WithLoggerMwColored(),
			ginMw.WithLevel(log.Logger.Level().String()),
			ginMw.WithLogger(log.Logger.Named("gin")),
		),
		allowCORS,
	)
	if !gconfig.Shared.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := ginMw.EnableMetric(server); err != nil {
		log.Logger.Panic("enable metric server", zap.Error(err))
	}

	server.Any("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world")
	})

	api := server.Group("/api")
	ctl.General.RegisterRoutes(api)
	ctl.Blog.RegisterRoutes(api.Group("/blogs"))
	ctl.Tool.RegisterRoutes(api.Group("/tools"))
	ctl.Path.RegisterRoutes(api.Group("/path"))
	ctl.Community.RegisterRoutes(api.Group("/community"))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: server,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Logger.Error("shutdown http server", zap.Error(err))
		}
	}()

	log.Logger.Info("listening on http", zap.String("addr", addr))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Logger.Panic("http server exit", zap.Error(err))
	}
}

// allowCORS is deliberately permissive: there is no auth surface, so any
// origin may call the API. Credentials force echoing the origin instead
// of a wildcard.
func allowCORS(ctx *gin.Context) {
	origin := ctx.Request.Header.Get("Origin")
	if origin == "" {
		ctx.Next()
		return
	}

	ctx.Header("Access-Control-Allow-Origin", origin)
	ctx.Header("Access-Control-Allow-Credentials", "true")
	ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS, HEAD")
	ctx.Header("Vary", "Origin")

	reqHeaders := ctx.Request.Header.Get("Access-Control-Request-Headers")
	if reqHeaders == "" {
		reqHeaders = "Content-Type, Authorization, Accept, Origin, X-Requested-With"
	}
	ctx.Header("Access-Control-Allow-Headers", reqHeaders)

	if ctx.Request.Method == http.MethodOptions {
		ctx.AbortWithStatus(http.StatusNoContent)
		return
	}

	ctx.Next()
}
