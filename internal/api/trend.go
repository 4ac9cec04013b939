package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/trend"
)

// GetTrend 获取按日历序排列的月度趋势
// GET /api/industries/:slug/trend
func (h *Handler) GetTrend(c *gin.Context) {
	ind, ok := industryFromParam(c)
	if !ok {
		return
	}

	recs, err := h.loader.LoadTrend(ind.Files.MonthlyTrend)
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"industry": ind.Slug,
		"rows":     trend.Normalize(recs),
	})
}
