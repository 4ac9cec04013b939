package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
)

// industryFromParam 解析 :slug 路径参数
func industryFromParam(c *gin.Context) (model.Industry, bool) {
	slug := c.Param("slug")
	ind, ok := model.IndustryBySlug(slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown industry: " + slug})
		return model.Industry{}, false
	}
	return ind, true
}

// GetStatement 获取一张原始报表（pl / balance / cashflow）
// GET /api/industries/:slug/statements/:kind
func (h *Handler) GetStatement(c *gin.Context) {
	ind, ok := industryFromParam(c)
	if !ok {
		return
	}

	kind := model.StatementKind(c.Param("kind"))
	switch kind {
	case model.KindProfitLoss, model.KindBalanceSheet, model.KindCashFlow:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown statement kind: " + string(kind)})
		return
	}

	source, _ := ind.Files.File(kind)
	st, err := h.loader.LoadStatement(source)
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"industry": ind.Slug,
		"kind":     kind,
		"rows":     st.Rows,
	})
}
