package exporter

import (
	"testing"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
)

func num(v float64) *float64 { return &v }

func TestExport_WorkbookLayout(t *testing.T) {
	t.Parallel()

	ind, _ := model.IndustryBySlug("restaurant")
	bundle := Bundle{
		Industry: ind,
		PL: &model.Statement{Rows: []model.StatementRow{
			{Section: model.SectionRevenues, LineItem: "TOTAL REVENUE", Current: num(100000), Prior: num(90000), Change: num(10000)},
		}},
		Trend: []model.TrendRecord{
			{Month: "Jan", TotalRevenue: num(8000)},
		},
		Spatial: &model.SpatialTable{Records: []model.SpatialRecord{
			{Zip: "30301", City: "Atlanta", State: "GA", Latitude: 33.7, Longitude: -84.3, RevenueCur: num(1200)},
		}},
	}

	f, err := Export(bundle)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{
		"Profit & Loss": false, "Balance Sheet": false, "Cash Flow": false,
		"Monthly Trend": false, "ZIP Performance": false,
	}
	for _, s := range sheets {
		if s == "Sheet1" {
			t.Fatalf("default sheet should be removed")
		}
		want[s] = true
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("missing sheet %s (got %v)", name, sheets)
		}
	}

	if v, _ := f.GetCellValue("Profit & Loss", "B2"); v != "TOTAL REVENUE" {
		t.Fatalf("P&L B2 want=TOTAL REVENUE got=%s", v)
	}
	if v, _ := f.GetCellValue("Profit & Loss", "C2"); v != "100000" {
		t.Fatalf("P&L C2 want=100000 got=%s", v)
	}
	if v, _ := f.GetCellValue("Monthly Trend", "A2"); v != "Jan" {
		t.Fatalf("trend A2 want=Jan got=%s", v)
	}
	if v, _ := f.GetCellValue("ZIP Performance", "A2"); v != "30301" {
		t.Fatalf("zip A2 want=30301 got=%s", v)
	}

	// 缺失的报表生成空 sheet，仅有表头
	if v, _ := f.GetCellValue("Balance Sheet", "A1"); v != "Section" {
		t.Fatalf("balance header want=Section got=%s", v)
	}
	if v, _ := f.GetCellValue("Balance Sheet", "A2"); v != "" {
		t.Fatalf("balance body should be empty, got %s", v)
	}
}
