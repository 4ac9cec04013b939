package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/exporter"
	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
)

// Export 生成一个行业的 xlsx 工作簿并返回下载令牌
// POST /api/industries/:slug/export
func (h *Handler) Export(c *gin.Context) {
	ind, ok := industryFromParam(c)
	if !ok {
		return
	}

	// 损益表是必需的；其余报表缺失时对应 sheet 留空
	pl, err := h.loader.LoadStatement(ind.Files.ProfitLoss)
	if err != nil {
		respondLoadError(c, err)
		return
	}

	bundle := exporter.Bundle{Industry: ind, PL: pl}
	if bs, err := h.loader.LoadStatement(ind.Files.BalanceSheet); err == nil {
		bundle.Balance = bs
	}
	if cf, err := h.loader.LoadStatement(ind.Files.CashFlow); err == nil {
		bundle.CashFlow = cf
	}
	if recs, err := h.loader.LoadTrend(ind.Files.MonthlyTrend); err == nil {
		bundle.Trend = recs
	}
	if table, err := h.loader.LoadSpatial(ind.Files.Spatial); err == nil {
		bundle.Spatial = table
	}

	wb, err := exporter.Export(bundle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed: " + err.Error()})
		return
	}
	defer wb.Close()

	if err := os.MkdirAll(h.exportDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := exportFilename(ind)
	path := filepath.Join(h.exportDir, filename)
	if err := wb.SaveAs(path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save export file: " + err.Error()})
		return
	}

	token := h.downloads.put(path, ind.Slug, h.ttl)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": filename,
	})
}

// DownloadExport 按令牌下载导出文件
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download link is invalid or has expired"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		h.downloads.delete(token)
		c.JSON(http.StatusNotFound, gin.H{"error": "export file is no longer available"})
		return
	}

	c.Header("Content-Disposition", buildExportContentDisposition(item.industry))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(item.filePath)
}

func exportFilename(ind model.Industry) string {
	return fmt.Sprintf("financials-%s.xlsx", ind.Slug)
}

func buildExportContentDisposition(slug string) string {
	return fmt.Sprintf("attachment; filename=\"financials-%s.xlsx\"", slug)
}
