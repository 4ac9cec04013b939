package model

// TrendRecord 月度趋势表中的一行
// 数值列可空，缺失月份在图表端呈现为断点
type TrendRecord struct {
	Month        string   `json:"month"`
	TotalRevenue *float64 `json:"totalRevenue"`
	NetIncome    *float64 `json:"netIncome"`
	GrossProfit  *float64 `json:"grossProfit"`
	Opex         *float64 `json:"operatingExpenses"`
}

// KPI 单个指标卡：标签 + 格式化后的值 + 格式化后的变化量或比率
// 纯派生数据，每次请求重新计算，不做任何持久化
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
}
