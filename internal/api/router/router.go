package router

import (
	"context"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-match-go/internal/api/handler"
	"resume-match-go/internal/config"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, cfg *config.Config, analyzeHandler *handler.AnalyzeHandler) {
	api := h.Group("/api/v1")

	api.POST("/analyze", analyzeHandler.HandleAnalyze)
	api.GET("/health", analyzeHandler.HandleHealth)

	// 前端构建产物整体挂在站点根路径下，静态路由优先级高于通配，
	// API 路由不受影响。未配置目录时只有 API 可用
	if cfg.Server.StaticDir != "" {
		indexPath := filepath.Join(cfg.Server.StaticDir, "index.html")
		h.StaticFS("/", &app.FS{
			Root:       cfg.Server.StaticDir,
			IndexNames: []string{"index.html"},
			PathNotFound: func(c context.Context, ctx *app.RequestContext) {
				// SPA 的客户端路由统一回退到 index.html
				ctx.File(indexPath)
				ctx.SetStatusCode(consts.StatusOK)
			},
		})
	}
}
