package model

// Section 报表分区标签
type Section string

const (
	SectionRevenues Section = "REVENUES"
	SectionCOGS     Section = "COST OF GOODS SOLD"
	SectionOpex     Section = "OPERATING EXPENSES"
	SectionSummary  Section = "SUMMARY"
)

// StatementKind 报表类型
type StatementKind string

const (
	KindProfitLoss   StatementKind = "pl"
	KindBalanceSheet StatementKind = "balance"
	KindCashFlow     StatementKind = "cashflow"
	KindTrend        StatementKind = "trend"
	KindSpatial      StatementKind = "spatial"
)

// StatementRow 报表中的一行科目
// Current/Prior/Change 为可空数值：源文件中无法解析的单元格置为 nil，
// 不因单元格级错误导致整表加载失败
type StatementRow struct {
	Section  Section  `json:"section"`
	LineItem string   `json:"lineItem"`
	Current  *float64 `json:"current"`
	Prior    *float64 `json:"prior"`
	Change   *float64 `json:"change"`
}

// Statement 一张完整报表（行序与源文件一致，加载后只读）
type Statement struct {
	Source string         `json:"source"` // 源文件标识
	Rows   []StatementRow `json:"rows"`
}

// CurrentOrZero 返回本期值，nil 视为 0
func (r StatementRow) CurrentOrZero() float64 {
	if r.Current == nil {
		return 0
	}
	return *r.Current
}

// PriorOrZero 返回上期值，nil 视为 0
func (r StatementRow) PriorOrZero() float64 {
	if r.Prior == nil {
		return 0
	}
	return *r.Prior
}
