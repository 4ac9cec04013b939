// Package trend 把月度趋势表按日历顺序排列供图表使用
package trend

import (
	"sort"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
)

// monthOrder 十二个月份缩写的固定顺序
var monthOrder = map[string]int{
	"Jan": 0, "Feb": 1, "Mar": 2, "Apr": 3, "May": 4, "Jun": 5,
	"Jul": 6, "Aug": 7, "Sep": 8, "Oct": 9, "Nov": 10, "Dec": 11,
}

// Normalize 按 Jan..Dec 固定序重排趋势行
// 月份不在十二个缩写内的行排在所有已识别行之后（稳定，保持出现顺序）。
// 不做任何数值处理，缺失值由消费方按时间序列断点处理
func Normalize(recs []model.TrendRecord) []model.TrendRecord {
	out := make([]model.TrendRecord, len(recs))
	copy(out, recs)

	sort.SliceStable(out, func(i, j int) bool {
		oi, oki := monthOrder[out[i].Month]
		oj, okj := monthOrder[out[j].Month]
		if oki && okj {
			return oi < oj
		}
		// 未识别月份统一沉底
		return oki && !okj
	})

	return out
}
