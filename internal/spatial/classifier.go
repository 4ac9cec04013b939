// Package spatial 按分位阈值把邮编区域分为高/低表现段并生成结论文本
package spatial

import (
	"fmt"
	"sort"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
)

// 展示上限：热/冷名单各取前 4 条（按表内行序截断，不按指标排序）
const displayCap = 4

// Line 结论中的一条陈述
type Line struct {
	Label string `json:"label"` // hot / cold / even / empty
	Text  string `json:"text"`
}

// Narrative 分级结论
type Narrative struct {
	Metric string   `json:"metric"` // 实际使用的指标列；无可用指标时为空
	Hot    []string `json:"hot"`    // "zip (city)" 列表，最多 4 条
	Cold   []string `json:"cold"`
	Lines  []Line   `json:"lines"`
}

// metricValue 取记录上指定指标列的值
func metricValue(rec model.SpatialRecord, metric string) *float64 {
	switch metric {
	case "Profit_Current":
		return rec.ProfitCur
	case "Revenue_Current":
		return rec.RevenueCur
	}
	return nil
}

// Classify 对邮编表做高/低表现分级
// 指标优先取 Profit_Current，缺列时回退 Revenue_Current；
// 两者都没有时返回“无可用指标”的空结论（有效结果，不是错误）。
// 指标值缺失的记录不参与分级，但保留在原始列表里
func Classify(table *model.SpatialTable) *Narrative {
	n := &Narrative{}

	metric := ""
	if table.HasColumn("Profit_Current") {
		metric = "Profit_Current"
	} else if table.HasColumn("Revenue_Current") {
		metric = "Revenue_Current"
	}
	if metric == "" {
		n.Lines = append(n.Lines, Line{
			Label: "empty",
			Text:  "No profit or revenue metric is available for this industry's ZIP data.",
		})
		return n
	}
	n.Metric = metric

	var values []float64
	for _, rec := range table.Records {
		if v := metricValue(rec, metric); v != nil {
			values = append(values, *v)
		}
	}
	if len(values) == 0 {
		n.Lines = append(n.Lines, Line{
			Label: "empty",
			Text:  "No valid metric values were found in the ZIP data.",
		})
		return n
	}

	p20 := Percentile(values, 20)
	p80 := Percentile(values, 80)

	// 记录数很小时热/冷集合可能重叠或双双为空，除不等号方向外不做去重
	for _, rec := range table.Records {
		v := metricValue(rec, metric)
		if v == nil {
			continue
		}
		entry := fmt.Sprintf("%s (%s)", rec.Zip, rec.City)
		if *v >= p80 && len(n.Hot) < displayCap {
			n.Hot = append(n.Hot, entry)
		}
		if *v <= p20 && len(n.Cold) < displayCap {
			n.Cold = append(n.Cold, entry)
		}
	}

	if len(n.Hot) == 0 && len(n.Cold) == 0 {
		n.Lines = append(n.Lines, Line{
			Label: "even",
			Text:  "Performance is fairly even across ZIP codes.",
		})
		return n
	}

	if len(n.Hot) > 0 {
		n.Lines = append(n.Lines, Line{
			Label: "hot",
			Text:  "Hot spots: " + joinEntries(n.Hot),
		})
	}
	if len(n.Cold) > 0 {
		n.Lines = append(n.Lines, Line{
			Label: "cold",
			Text:  "Cold spots: " + joinEntries(n.Cold),
		})
	}

	return n
}

func joinEntries(entries []string) string {
	out := ""
	for i, e := range entries {
		if i > 0 {
			out += ", "
		}
		out += e
	}
	return out
}

// Percentile 计算 p 分位数（顺序统计量间线性插值，标准定义）
// p 取 [0,100]；values 无需有序，内部复制后排序
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(rank)
	frac := rank - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
