package trend

import (
	"testing"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
)

func months(recs []model.TrendRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Month
	}
	return out
}

func TestNormalize_CalendarOrder(t *testing.T) {
	t.Parallel()

	in := []model.TrendRecord{{Month: "Mar"}, {Month: "Jan"}, {Month: "Feb"}}
	got := months(Normalize(in))

	want := []string{"Jan", "Feb", "Mar"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order want=%v got=%v", want, got)
		}
	}
	// 输入不被修改
	if in[0].Month != "Mar" {
		t.Fatalf("input mutated: %v", months(in))
	}
}

func TestNormalize_UnknownMonthsSortLast(t *testing.T) {
	t.Parallel()

	in := []model.TrendRecord{{Month: "Q5"}, {Month: "Dec"}, {Month: "??"}, {Month: "Jan"}}
	got := months(Normalize(in))

	if got[0] != "Jan" || got[1] != "Dec" {
		t.Fatalf("recognized months first: %v", got)
	}
	// 未识别月份沉底且保持出现顺序（稳定排序）
	if got[2] != "Q5" || got[3] != "??" {
		t.Fatalf("unknown months should keep encounter order: %v", got)
	}
}

func TestNormalize_FullYear(t *testing.T) {
	t.Parallel()

	in := []model.TrendRecord{
		{Month: "Dec"}, {Month: "Nov"}, {Month: "Oct"}, {Month: "Sep"},
		{Month: "Aug"}, {Month: "Jul"}, {Month: "Jun"}, {Month: "May"},
		{Month: "Apr"}, {Month: "Mar"}, {Month: "Feb"}, {Month: "Jan"},
	}
	got := months(Normalize(in))
	want := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order want=%v got=%v", want, got)
		}
	}
}
