package model

// StatementSet 单个行业的五套报表文件
// 按行业一条记录聚合五个文件引用，保证每个行业必然具备全部报表类型
type StatementSet struct {
	ProfitLoss   string `json:"profitLoss"`
	BalanceSheet string `json:"balanceSheet"`
	CashFlow     string `json:"cashFlow"`
	MonthlyTrend string `json:"monthlyTrend"`
	Spatial      string `json:"spatial"`
}

// Industry 行业条目
type Industry struct {
	Slug  string       `json:"slug"`  // URL 标识
	Name  string       `json:"name"`  // 展示名称
	Files StatementSet `json:"files"` // 报表文件集
}

// statementSetFor 按统一命名规则生成文件集
func statementSetFor(slug string) StatementSet {
	return StatementSet{
		ProfitLoss:   "pl_" + slug + ".csv",
		BalanceSheet: "bs_" + slug + ".csv",
		CashFlow:     "cf_" + slug + ".csv",
		MonthlyTrend: "trend_" + slug + ".csv",
		Spatial:      "zip_" + slug + ".csv",
	}
}

// Catalog 内置的七个示例行业（展示顺序固定）
var Catalog = []Industry{
	{Slug: "construction", Name: "Construction Company", Files: statementSetFor("construction")},
	{Slug: "dental", Name: "Dental Practice", Files: statementSetFor("dental")},
	{Slug: "medical_office", Name: "Medical Office / Clinic", Files: statementSetFor("medical_office")},
	{Slug: "lawn_care", Name: "Lawn Care & Landscaping", Files: statementSetFor("lawn_care")},
	{Slug: "kitchen_contractor", Name: "Kitchen / Home Contractor", Files: statementSetFor("kitchen_contractor")},
	{Slug: "restaurant", Name: "Restaurant", Files: statementSetFor("restaurant")},
	{Slug: "trucking_longhaul", Name: "Long-Haul Trucking", Files: statementSetFor("trucking_longhaul")},
}

// IndustryBySlug 按 slug 查找行业
func IndustryBySlug(slug string) (Industry, bool) {
	for _, ind := range Catalog {
		if ind.Slug == slug {
			return ind, true
		}
	}
	return Industry{}, false
}

// File 返回指定报表类型对应的文件名
func (s StatementSet) File(kind StatementKind) (string, bool) {
	switch kind {
	case KindProfitLoss:
		return s.ProfitLoss, true
	case KindBalanceSheet:
		return s.BalanceSheet, true
	case KindCashFlow:
		return s.CashFlow, true
	case KindTrend:
		return s.MonthlyTrend, true
	case KindSpatial:
		return s.Spatial, true
	}
	return "", false
}
