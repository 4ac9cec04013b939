package model

// SpatialRecord 单个邮编区域的经营记录
// Zip/City/State/Latitude/Longitude 为必填；任一缺失或无法解析的行在建表时剔除。
// 指标列均可空：缺失指标的行不参与分级，但保留在原始列表中
type SpatialRecord struct {
	Zip       string  `json:"zip"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	NewCustomers *float64 `json:"newCustomers"`
	Visits       *float64 `json:"visits"`
	RevenueCur   *float64 `json:"revenueCurrent"`
	RevenuePrior *float64 `json:"revenuePrior"`
	ProfitCur    *float64 `json:"profitCurrent"`
	ProfitPrior  *float64 `json:"profitPrior"`
}

// SpatialTable 邮编表：记录 + 源文件实际出现的列
// 指标偏好（利润优先、营收兜底）依赖“列是否存在”，因此列集合随表携带
type SpatialTable struct {
	Source  string          `json:"source"`
	Columns []string        `json:"columns"`
	Records []SpatialRecord `json:"records"`
}

// HasColumn 判断源表中是否存在某列（按规范化列名）
func (t *SpatialTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
