package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/loader"
)

// respondLoadError 把加载层错误翻译为 HTTP 响应
// 源缺失 / 表不可解析 / 列缺失都只影响当前视图，错误信息直接给到前端展示
func respondLoadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, loader.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, loader.ErrMalformedInput), errors.Is(err, loader.ErrSchema):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
