package util

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency 格式化美元金额（千分位，负数前置负号）
func FormatCurrency(value float64) string {
	neg := value < 0
	s := groupThousands(math.Abs(value))
	if neg {
		return "-$" + s
	}
	return "$" + s
}

// FormatSignedCurrency 格式化带符号的金额变化量
func FormatSignedCurrency(value float64) string {
	if value < 0 {
		return "-$" + groupThousands(math.Abs(value))
	}
	return "+$" + groupThousands(value)
}

// FormatPercent 格式化比率为百分数（1 位小数）
// 入参为比值（0.6 -> "60.0%"）
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value*100)
}

// groupThousands 金额取整后插入千分位分隔符
func groupThousands(v float64) string {
	s := fmt.Sprintf("%.0f", math.Abs(v))
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
