package kpi

import (
	"testing"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/pnl"
)

func num(v float64) *float64 { return &v }

func sections(revs, cogs []model.StatementRow, summary map[string]float64) pnl.Sections {
	s := pnl.Sections{Revenues: revs, COGS: cogs, Summary: make(map[string]model.StatementRow)}
	for name, v := range summary {
		s.Summary[name] = model.StatementRow{
			Section: model.SectionSummary, LineItem: name, Current: num(v),
		}
	}
	return s
}

func TestCompute_ReferenceScenario(t *testing.T) {
	t.Parallel()

	s := sections(
		[]model.StatementRow{
			{Section: model.SectionRevenues, LineItem: "TOTAL REVENUE", Current: num(100000), Prior: num(90000)},
		},
		[]model.StatementRow{
			{Section: model.SectionCOGS, LineItem: "TOTAL COST OF GOODS SOLD", Current: num(40000)},
		},
		map[string]float64{
			KeyGrossProfit:     60000,
			KeyOperatingProfit: 20000,
			KeyNetIncome:       15000,
		},
	)

	m := Compute(s)

	if m.TotalRevenueCurrent != 100000 || m.TotalRevenuePrior != 90000 {
		t.Fatalf("revenue: got %v / %v", m.TotalRevenueCurrent, m.TotalRevenuePrior)
	}
	if m.GrossMargin != 0.6 || m.OperatingMargin != 0.2 || m.NetMargin != 0.15 {
		t.Fatalf("margins: got %v %v %v", m.GrossMargin, m.OperatingMargin, m.NetMargin)
	}

	cards := BuildKPIs(m)
	if cards[0].Value != "$100,000" {
		t.Fatalf("revenue card value want=$100,000 got=%s", cards[0].Value)
	}
	if cards[0].Delta != "+$10,000" {
		t.Fatalf("revenue card delta want=+$10,000 got=%s", cards[0].Delta)
	}
	if cards[1].Delta != "60.0% margin" {
		t.Fatalf("gross margin want=60.0%% margin got=%s", cards[1].Delta)
	}
	if cards[2].Delta != "20.0% margin" || cards[3].Delta != "15.0% margin" {
		t.Fatalf("margins: %s / %s", cards[2].Delta, cards[3].Delta)
	}
}

func TestCompute_ZeroRevenueMarginsAreZero(t *testing.T) {
	t.Parallel()

	// 营收为 0 时比率必须为 0，无论利润符号如何，不得出现 NaN/Inf
	s := sections(nil, nil, map[string]float64{
		KeyGrossProfit: -5000,
		KeyNetIncome:   3000,
	})

	m := Compute(s)
	if m.GrossMargin != 0 || m.OperatingMargin != 0 || m.NetMargin != 0 {
		t.Fatalf("zero-revenue margins: %v %v %v", m.GrossMargin, m.OperatingMargin, m.NetMargin)
	}
}

func TestCompute_TotalMatchIsCaseInsensitiveAndSumsAll(t *testing.T) {
	t.Parallel()

	s := sections([]model.StatementRow{
		{Section: model.SectionRevenues, LineItem: "Service Revenue", Current: num(999)},
		{Section: model.SectionRevenues, LineItem: "Total Revenue", Current: num(100), Prior: num(80)},
		{Section: model.SectionRevenues, LineItem: "TOTAL OTHER INCOME", Current: num(20), Prior: num(10)},
	}, nil, nil)

	m := Compute(s)
	// 所有命中 "TOTAL" 的行求和（既定约定，源布局不同时可能重复计数）
	if m.TotalRevenueCurrent != 120 || m.TotalRevenuePrior != 90 {
		t.Fatalf("total sums: got %v / %v", m.TotalRevenueCurrent, m.TotalRevenuePrior)
	}
}

func TestStatementValue(t *testing.T) {
	t.Parallel()

	st := &model.Statement{Rows: []model.StatementRow{
		{Section: "ASSETS", LineItem: "Cash & Equivalents", Current: num(5000)},
		{Section: "ASSETS", LineItem: "TOTAL ASSETS", Current: num(42000)},
	}}

	if got := StatementValue(st, "TOTAL ASSETS"); got != 42000 {
		t.Fatalf("want=42000 got=%v", got)
	}
	if got := StatementValue(st, "TOTAL LIABILITIES"); got != 0 {
		t.Fatalf("absent item want=0 got=%v", got)
	}
	if got := StatementValue(nil, "TOTAL ASSETS"); got != 0 {
		t.Fatalf("nil statement want=0 got=%v", got)
	}
}
