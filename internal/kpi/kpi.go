// Package kpi 从拆分后的损益表派生指标卡
package kpi

import (
	"strings"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/pnl"
	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/util"
)

// 汇总区固定键（与内置样例报表的科目命名一致）
const (
	KeyGrossProfit     = "GROSS PROFIT (LOSS)"
	KeyOperatingProfit = "OPERATING PROFIT (LOSS)"
	KeyNetIncome       = "NET INCOME (LOSS)"
)

// Metrics 损益表派生出的标量指标
type Metrics struct {
	TotalRevenueCurrent float64 `json:"totalRevenueCurrent"`
	TotalRevenuePrior   float64 `json:"totalRevenuePrior"`
	GrossProfit         float64 `json:"grossProfit"`
	OperatingProfit     float64 `json:"operatingProfit"`
	NetIncome           float64 `json:"netIncome"`
	GrossMargin         float64 `json:"grossMargin"`
	OperatingMargin     float64 `json:"operatingMargin"`
	NetMargin           float64 `json:"netMargin"`
}

// Compute 计算标量指标
// 营收合计取科目名含 "TOTAL"（忽略大小写）的营收行之和：
// 样例报表把小计行内联在分区里，没有独立的小计标记，按名称匹配是既定约定。
// 多行命中会全部求和，源数据布局不同于内置样例时可能重复计数
func Compute(s pnl.Sections) Metrics {
	var m Metrics

	for _, row := range s.Revenues {
		if !strings.Contains(strings.ToUpper(row.LineItem), "TOTAL") {
			continue
		}
		m.TotalRevenueCurrent += row.CurrentOrZero()
		m.TotalRevenuePrior += row.PriorOrZero()
	}

	m.GrossProfit = pnl.SummaryValue(s.Summary, KeyGrossProfit)
	m.OperatingProfit = pnl.SummaryValue(s.Summary, KeyOperatingProfit)
	m.NetIncome = pnl.SummaryValue(s.Summary, KeyNetIncome)

	// 零营收时比率置 0，不向展示层传播 NaN/Inf
	if m.TotalRevenueCurrent != 0 {
		m.GrossMargin = m.GrossProfit / m.TotalRevenueCurrent
		m.OperatingMargin = m.OperatingProfit / m.TotalRevenueCurrent
		m.NetMargin = m.NetIncome / m.TotalRevenueCurrent
	}

	return m
}

// BuildKPIs 把标量指标格式化为指标卡
func BuildKPIs(m Metrics) []model.KPI {
	return []model.KPI{
		{
			Label: "Total Revenue",
			Value: util.FormatCurrency(m.TotalRevenueCurrent),
			Delta: util.FormatSignedCurrency(m.TotalRevenueCurrent - m.TotalRevenuePrior),
		},
		{
			Label: "Gross Profit",
			Value: util.FormatCurrency(m.GrossProfit),
			Delta: util.FormatPercent(m.GrossMargin) + " margin",
		},
		{
			Label: "Operating Profit",
			Value: util.FormatCurrency(m.OperatingProfit),
			Delta: util.FormatPercent(m.OperatingMargin) + " margin",
		},
		{
			Label: "Net Income",
			Value: util.FormatCurrency(m.NetIncome),
			Delta: util.FormatPercent(m.NetMargin) + " margin",
		},
	}
}

// StatementValue 按科目名在整张报表中取本期值（首个精确匹配；缺失为 0）
// 用于资产负债表 / 现金流量表的固定键取数
func StatementValue(st *model.Statement, name string) float64 {
	if st == nil {
		return 0
	}
	for _, row := range st.Rows {
		if strings.EqualFold(strings.TrimSpace(row.LineItem), name) {
			return row.CurrentOrZero()
		}
	}
	return 0
}

// BuildBalanceKPIs 资产负债表指标卡
func BuildBalanceKPIs(st *model.Statement) []model.KPI {
	assets := StatementValue(st, "TOTAL ASSETS")
	liabilities := StatementValue(st, "TOTAL LIABILITIES")
	equity := StatementValue(st, "TOTAL EQUITY")
	return []model.KPI{
		{Label: "Total Assets", Value: util.FormatCurrency(assets), Delta: ""},
		{Label: "Total Liabilities", Value: util.FormatCurrency(liabilities), Delta: ""},
		{Label: "Total Equity", Value: util.FormatCurrency(equity), Delta: ""},
	}
}

// BuildCashKPIs 现金流量表指标卡
func BuildCashKPIs(st *model.Statement) []model.KPI {
	change := StatementValue(st, "NET CHANGE IN CASH")
	ending := StatementValue(st, "ENDING CASH BALANCE")
	return []model.KPI{
		{Label: "Net Change in Cash", Value: util.FormatSignedCurrency(change), Delta: ""},
		{Label: "Ending Cash Balance", Value: util.FormatCurrency(ending), Delta: ""},
	}
}
