package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/kpi"
	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/pnl"
)

type kpiResponse struct {
	Industry string      `json:"industry"`
	Metrics  kpi.Metrics `json:"metrics"`
	Cards    []model.KPI `json:"cards"`
	Balance  []model.KPI `json:"balance"`
	Cash     []model.KPI `json:"cash"`
}

// GetKPIs 计算指标卡
// 损益表缺失是致命错误；资产负债表 / 现金流量表缺失时对应分组为空，
// 不影响损益指标的渲染
// GET /api/industries/:slug/kpis
func (h *Handler) GetKPIs(c *gin.Context) {
	ind, ok := industryFromParam(c)
	if !ok {
		return
	}

	pl, err := h.loader.LoadStatement(ind.Files.ProfitLoss)
	if err != nil {
		respondLoadError(c, err)
		return
	}

	sections := pnl.Split(pl)
	metrics := kpi.Compute(sections)

	resp := kpiResponse{
		Industry: ind.Slug,
		Metrics:  metrics,
		Cards:    kpi.BuildKPIs(metrics),
	}

	if bs, err := h.loader.LoadStatement(ind.Files.BalanceSheet); err == nil {
		resp.Balance = kpi.BuildBalanceKPIs(bs)
	}
	if cf, err := h.loader.LoadStatement(ind.Files.CashFlow); err == nil {
		resp.Cash = kpi.BuildCashKPIs(cf)
	}

	c.JSON(http.StatusOK, resp)
}
