// Package api 仪表盘 JSON API
package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/loader"
)

// Handler API 处理器
type Handler struct {
	loader    *loader.Loader
	exportDir string
	downloads *exportDownloadStore
	ttl       time.Duration
}

// NewHandler 创建 API 处理器
// exportDir 存放导出的工作簿文件；ttl 为下载令牌有效期
func NewHandler(l *loader.Loader, exportDir string, ttl time.Duration) *Handler {
	return &Handler{
		loader:    l,
		exportDir: exportDir,
		downloads: newExportDownloadStore(),
		ttl:       ttl,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 行业目录
	router.GET("/industries", h.ListIndustries)

	// 报表与派生视图
	router.GET("/industries/:slug/statements/:kind", h.GetStatement)
	router.GET("/industries/:slug/kpis", h.GetKPIs)
	router.GET("/industries/:slug/trend", h.GetTrend)
	router.GET("/industries/:slug/spatial", h.GetSpatial)

	// 数据导出
	router.POST("/industries/:slug/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
