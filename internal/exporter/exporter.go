// Package exporter 把单个行业的五套报表组装成一个 xlsx 工作簿
package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
)

// Bundle 待导出的一个行业的全部报表
type Bundle struct {
	Industry model.Industry
	PL       *model.Statement
	Balance  *model.Statement
	CashFlow *model.Statement
	Trend    []model.TrendRecord
	Spatial  *model.SpatialTable
}

// Export 生成工作簿：每种报表一个 sheet
func Export(b Bundle) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeStatementSheet(f, "Profit & Loss", b.PL, headerStyle); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeStatementSheet(f, "Balance Sheet", b.Balance, headerStyle); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeStatementSheet(f, "Cash Flow", b.CashFlow, headerStyle); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeTrendSheet(f, b.Trend, headerStyle); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeSpatialSheet(f, b.Spatial, headerStyle); err != nil {
		_ = f.Close()
		return nil, err
	}

	// 去掉 excelize 默认创建的空表，首个报表作为活动表
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, err
	}
	idx, err := f.GetSheetIndex("Profit & Loss")
	if err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	return f, nil
}

func writeStatementSheet(f *excelize.File, sheet string, st *model.Statement, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	header := []any{"Section", "Line Item", "Current Period", "Prior Period", "Change"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	_ = f.SetRowStyle(sheet, 1, 1, headerStyle)
	_ = f.SetColWidth(sheet, "A", "B", 28)
	_ = f.SetColWidth(sheet, "C", "E", 16)

	if st == nil {
		return nil
	}
	for i, row := range st.Rows {
		cells := []any{string(row.Section), row.LineItem, numOrBlank(row.Current), numOrBlank(row.Prior), numOrBlank(row.Change)}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return err
		}
	}
	return nil
}

func writeTrendSheet(f *excelize.File, recs []model.TrendRecord, headerStyle int) error {
	const sheet = "Monthly Trend"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	header := []any{"Month", "Total Revenue", "Net Income", "Gross Profit", "Operating Expenses"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	_ = f.SetRowStyle(sheet, 1, 1, headerStyle)
	_ = f.SetColWidth(sheet, "A", "E", 18)

	for i, r := range recs {
		cells := []any{r.Month, numOrBlank(r.TotalRevenue), numOrBlank(r.NetIncome), numOrBlank(r.GrossProfit), numOrBlank(r.Opex)}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return err
		}
	}
	return nil
}

func writeSpatialSheet(f *excelize.File, table *model.SpatialTable, headerStyle int) error {
	const sheet = "ZIP Performance"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	header := []any{"Zip", "City", "State", "Latitude", "Longitude", "New Customers", "Visits",
		"Revenue (Current)", "Revenue (Prior)", "Profit (Current)", "Profit (Prior)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	_ = f.SetRowStyle(sheet, 1, 1, headerStyle)
	_ = f.SetColWidth(sheet, "A", "K", 16)

	if table == nil {
		return nil
	}
	for i, r := range table.Records {
		cells := []any{r.Zip, r.City, r.State, r.Latitude, r.Longitude,
			numOrBlank(r.NewCustomers), numOrBlank(r.Visits),
			numOrBlank(r.RevenueCur), numOrBlank(r.RevenuePrior),
			numOrBlank(r.ProfitCur), numOrBlank(r.ProfitPrior)}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return err
		}
	}
	return nil
}

// numOrBlank 可空数值写入单元格：nil 留空，不写 0
func numOrBlank(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
