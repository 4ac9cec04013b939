// Package pnl 将损益表按分区拆分，并提供汇总区取值
package pnl

import (
	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
)

// Sections 损益表拆分结果
// 三个明细分区保持源文件行序；汇总区按科目名建为查找表
// （汇总区内科目名唯一，是固定键查找的前提）
type Sections struct {
	Revenues []model.StatementRow
	COGS     []model.StatementRow
	Opex     []model.StatementRow
	Summary  map[string]model.StatementRow
}

// Split 按 Section 精确匹配拆分损益表
// 四个已知分区以外的行（如资产负债表分区混入）静默丢弃；
// 某分区整体缺失不报错，对应输出为空
func Split(st *model.Statement) Sections {
	out := Sections{Summary: make(map[string]model.StatementRow)}
	if st == nil {
		return out
	}

	for _, row := range st.Rows {
		switch row.Section {
		case model.SectionRevenues:
			out.Revenues = append(out.Revenues, row)
		case model.SectionCOGS:
			out.COGS = append(out.COGS, row)
		case model.SectionOpex:
			out.Opex = append(out.Opex, row)
		case model.SectionSummary:
			out.Summary[row.LineItem] = row
		}
	}

	return out
}

// SummaryValue 取汇总区某科目的本期值
// 科目不存在或值为空时返回 0：缺失是“无值”而非错误，
// 调用方需接受由缺失科目推出的比率呈现为 0
func SummaryValue(summary map[string]model.StatementRow, name string) float64 {
	row, ok := summary[name]
	if !ok {
		return 0
	}
	return row.CurrentOrZero()
}
