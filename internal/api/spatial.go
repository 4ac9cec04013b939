package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/spatial"
)

// GetSpatial 获取邮编明细和高/低表现分级结论
// GET /api/industries/:slug/spatial
func (h *Handler) GetSpatial(c *gin.Context) {
	ind, ok := industryFromParam(c)
	if !ok {
		return
	}

	table, err := h.loader.LoadSpatial(ind.Files.Spatial)
	if err != nil {
		respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"industry":  ind.Slug,
		"records":   table.Records,
		"narrative": spatial.Classify(table),
	})
}
