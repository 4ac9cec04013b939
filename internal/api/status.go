package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized bool   `json:"initialized"` // 样例数据是否可加载
	Industries  int    `json:"industries"`  // 行业数量
	Version     string `json:"version"`
}

// Version 应用版本（构建时可通过 -ldflags 覆盖）
var Version = "dev"

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	// 尝试加载第一份行业报表探测数据目录是否就绪
	initialized := false
	if len(model.Catalog) > 0 {
		if _, err := h.loader.LoadStatement(model.Catalog[0].Files.ProfitLoss); err == nil {
			initialized = true
		}
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized: initialized,
		Industries:  len(model.Catalog),
		Version:     Version,
	})
}

// ListIndustries 获取行业目录
// GET /api/industries
func (h *Handler) ListIndustries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": model.Catalog})
}
