package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/data"
	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/loader"
)

// newTestRouter 基于释放到临时目录的示例数据构建路由
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	if _, err := data.Seed(dir); err != nil {
		t.Fatalf("seed samples: %v", err)
	}

	l := loader.New(dir, loader.NewMemoryCache())
	h := NewHandler(l, filepath.Join(dir, "exports"), time.Minute)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func doGET(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListIndustries(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	w := doGET(t, r, "/api/industries")
	if w.Code != http.StatusOK {
		t.Fatalf("status want=200 got=%d", w.Code)
	}

	var resp struct {
		Items []struct {
			Slug string `json:"slug"`
			Name string `json:"name"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Items) != 7 {
		t.Fatalf("industries want=7 got=%d", len(resp.Items))
	}
}

func TestGetKPIs_SampleData(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	w := doGET(t, r, "/api/industries/restaurant/kpis")
	if w.Code != http.StatusOK {
		t.Fatalf("status want=200 got=%d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Metrics struct {
			TotalRevenueCurrent float64 `json:"totalRevenueCurrent"`
			GrossMargin         float64 `json:"grossMargin"`
		} `json:"metrics"`
		Cards []struct {
			Label string `json:"label"`
			Value string `json:"value"`
		} `json:"cards"`
		Balance []any `json:"balance"`
		Cash    []any `json:"cash"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Metrics.TotalRevenueCurrent <= 0 {
		t.Fatalf("revenue should be positive: %v", resp.Metrics.TotalRevenueCurrent)
	}
	if resp.Metrics.GrossMargin <= 0 || resp.Metrics.GrossMargin >= 1 {
		t.Fatalf("gross margin out of range: %v", resp.Metrics.GrossMargin)
	}
	if len(resp.Cards) != 4 {
		t.Fatalf("cards want=4 got=%d", len(resp.Cards))
	}
	if resp.Cards[0].Label != "Total Revenue" {
		t.Fatalf("first card: %s", resp.Cards[0].Label)
	}
	if len(resp.Balance) == 0 || len(resp.Cash) == 0 {
		t.Fatalf("balance/cash kpis should be present for sample data")
	}
}

func TestGetStatement_UnknownIndustry(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	w := doGET(t, r, "/api/industries/florist/statements/pl")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status want=404 got=%d", w.Code)
	}
}

func TestGetStatement_UnknownKind(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	w := doGET(t, r, "/api/industries/restaurant/statements/ledger")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want=400 got=%d", w.Code)
	}
}

func TestGetTrend_SortedByCalendar(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	w := doGET(t, r, "/api/industries/dental/trend")
	if w.Code != http.StatusOK {
		t.Fatalf("status want=200 got=%d", w.Code)
	}

	var resp struct {
		Rows []struct {
			Month string `json:"month"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Rows) != 12 {
		t.Fatalf("months want=12 got=%d", len(resp.Rows))
	}
	if resp.Rows[0].Month != "Jan" || resp.Rows[11].Month != "Dec" {
		t.Fatalf("calendar order: %s .. %s", resp.Rows[0].Month, resp.Rows[11].Month)
	}
}

func TestGetSpatial_NarrativeCapped(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	w := doGET(t, r, "/api/industries/construction/spatial")
	if w.Code != http.StatusOK {
		t.Fatalf("status want=200 got=%d", w.Code)
	}

	var resp struct {
		Records   []any `json:"records"`
		Narrative struct {
			Metric string   `json:"metric"`
			Hot    []string `json:"hot"`
			Cold   []string `json:"cold"`
		} `json:"narrative"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Records) == 0 {
		t.Fatalf("sample spatial records missing")
	}
	if resp.Narrative.Metric != "Profit_Current" {
		t.Fatalf("metric want=Profit_Current got=%s", resp.Narrative.Metric)
	}
	if len(resp.Narrative.Hot) > 4 || len(resp.Narrative.Cold) > 4 {
		t.Fatalf("narrative cap exceeded: hot=%d cold=%d",
			len(resp.Narrative.Hot), len(resp.Narrative.Cold))
	}
}

func TestExportAndDownload(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/industries/lawn_care/export", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("export status want=200 got=%d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token    string `json:"token"`
		Filename string `json:"filename"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Token == "" || resp.Filename != "financials-lawn_care.xlsx" {
		t.Fatalf("export response: %+v", resp)
	}

	dl := doGET(t, r, "/api/export/download/"+resp.Token)
	if dl.Code != http.StatusOK {
		t.Fatalf("download status want=200 got=%d", dl.Code)
	}
	if got := dl.Header().Get("Content-Disposition"); got != "attachment; filename=\"financials-lawn_care.xlsx\"" {
		t.Fatalf("content-disposition: %s", got)
	}
	if dl.Body.Len() == 0 {
		t.Fatalf("empty workbook body")
	}

	// 过期/未知令牌
	missing := doGET(t, r, "/api/export/download/not-a-token")
	if missing.Code != http.StatusNotFound {
		t.Fatalf("unknown token want=404 got=%d", missing.Code)
	}
}

func TestGetStatus(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	w := doGET(t, r, "/api/status")
	if w.Code != http.StatusOK {
		t.Fatalf("status want=200 got=%d", w.Code)
	}

	var resp StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Initialized || resp.Industries != 7 {
		t.Fatalf("status: %+v", resp)
	}
}
