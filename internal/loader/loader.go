package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AhmedMAskar/datadriven-bookkeeping-demo/internal/model"
)

// Loader 报表文件加载器
// 从数据目录读取 CSV，做列定位与数值宽松解析，结果按源标识缓存
type Loader struct {
	dir   string
	cache Cache
}

// New 创建加载器；cache 为 nil 时不做缓存
func New(dir string, cache Cache) *Loader {
	if cache == nil {
		cache = nopCache{}
	}
	return &Loader{dir: dir, cache: cache}
}

// rawTable 解析后的原始表格：规范化表头 + 数据行
type rawTable struct {
	header []string
	rows   [][]string
}

// colIndex 按列名（忽略大小写）定位列，找不到返回 -1
func (t *rawTable) colIndex(name string) int {
	for i, h := range t.header {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

// cell 取单元格，行短于表头时返回空串
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// readTable 读取并解析 CSV 文件
func (l *Loader) readTable(source string) (*rawTable, error) {
	path := filepath.Join(l.dir, source)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, source)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // 行宽不齐交给 cell() 容错
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, source, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: no header row", ErrMalformedInput, source)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = normalizeHeader(h)
	}

	return &rawTable{header: header, rows: records[1:]}, nil
}

// normalizeHeader 规范化表头：去 BOM、去首尾空白
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.TrimSpace(h)
	return h
}

// parseNumber 宽松数值解析
// 容忍货币符号、千分位逗号、百分号与括号负数；解析失败返回 nil 而非报错
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	if neg {
		v = -v
	}
	return &v
}

// LoadStatement 加载一张报表（P&L / 资产负债表 / 现金流量表通用）
// 数值列逐格宽松解析，Section 列缺失时按空分区透传
func (l *Loader) LoadStatement(source string) (*model.Statement, error) {
	if v, ok := l.cache.Get(source); ok {
		if st, ok := v.(*model.Statement); ok {
			return st, nil
		}
	}

	t, err := l.readTable(source)
	if err != nil {
		return nil, err
	}

	secIdx := t.colIndex("Section")
	itemIdx := t.colIndex("Line Item")
	curIdx := t.colIndex("Current Period")
	priIdx := t.colIndex("Prior Period")
	chgIdx := t.colIndex("Change")

	st := &model.Statement{Source: source, Rows: make([]model.StatementRow, 0, len(t.rows))}
	for _, row := range t.rows {
		st.Rows = append(st.Rows, model.StatementRow{
			Section:  model.Section(strings.ToUpper(cell(row, secIdx))),
			LineItem: cell(row, itemIdx),
			Current:  parseNumber(cell(row, curIdx)),
			Prior:    parseNumber(cell(row, priIdx)),
			Change:   parseNumber(cell(row, chgIdx)),
		})
	}

	l.cache.Put(source, st)
	return st, nil
}

// spatialRequired 邮编表必需列，任一缺失即 ErrSchema
var spatialRequired = []string{"Zip", "City", "State", "Latitude", "Longitude"}

// LoadSpatial 加载邮编区域表
// 必需列缺失返回 ErrSchema；必填字段为空或经纬度不可解析的行整行剔除
func (l *Loader) LoadSpatial(source string) (*model.SpatialTable, error) {
	if v, ok := l.cache.Get(source); ok {
		if t, ok := v.(*model.SpatialTable); ok {
			return t, nil
		}
	}

	t, err := l.readTable(source)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, col := range spatialRequired {
		if t.colIndex(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s: missing columns %s", ErrSchema, source, strings.Join(missing, ", "))
	}

	zipIdx := t.colIndex("Zip")
	cityIdx := t.colIndex("City")
	stateIdx := t.colIndex("State")
	latIdx := t.colIndex("Latitude")
	lonIdx := t.colIndex("Longitude")
	newCustIdx := t.colIndex("New_Customers")
	visitsIdx := t.colIndex("Visits")
	revCurIdx := t.colIndex("Revenue_Current")
	revPriIdx := t.colIndex("Revenue_Prior")
	profCurIdx := t.colIndex("Profit_Current")
	profPriIdx := t.colIndex("Profit_Prior")

	table := &model.SpatialTable{Source: source}
	for _, col := range []struct {
		name string
		idx  int
	}{
		{"Zip", zipIdx}, {"City", cityIdx}, {"State", stateIdx},
		{"Latitude", latIdx}, {"Longitude", lonIdx},
		{"New_Customers", newCustIdx}, {"Visits", visitsIdx},
		{"Revenue_Current", revCurIdx}, {"Revenue_Prior", revPriIdx},
		{"Profit_Current", profCurIdx}, {"Profit_Prior", profPriIdx},
	} {
		if col.idx >= 0 {
			table.Columns = append(table.Columns, col.name)
		}
	}

	for _, row := range t.rows {
		zip := cell(row, zipIdx)
		city := cell(row, cityIdx)
		state := cell(row, stateIdx)
		lat := parseNumber(cell(row, latIdx))
		lon := parseNumber(cell(row, lonIdx))
		if zip == "" || city == "" || state == "" || lat == nil || lon == nil {
			continue
		}

		table.Records = append(table.Records, model.SpatialRecord{
			Zip:          zip,
			City:         city,
			State:        state,
			Latitude:     *lat,
			Longitude:    *lon,
			NewCustomers: parseNumber(cell(row, newCustIdx)),
			Visits:       parseNumber(cell(row, visitsIdx)),
			RevenueCur:   parseNumber(cell(row, revCurIdx)),
			RevenuePrior: parseNumber(cell(row, revPriIdx)),
			ProfitCur:    parseNumber(cell(row, profCurIdx)),
			ProfitPrior:  parseNumber(cell(row, profPriIdx)),
		})
	}

	l.cache.Put(source, table)
	return table, nil
}

// LoadTrend 加载月度趋势表
func (l *Loader) LoadTrend(source string) ([]model.TrendRecord, error) {
	if v, ok := l.cache.Get(source); ok {
		if recs, ok := v.([]model.TrendRecord); ok {
			return recs, nil
		}
	}

	t, err := l.readTable(source)
	if err != nil {
		return nil, err
	}

	monthIdx := t.colIndex("Month")
	revIdx := t.colIndex("Total_Revenue")
	niIdx := t.colIndex("Net_Income")
	gpIdx := t.colIndex("Gross_Profit")
	oeIdx := t.colIndex("Operating_Expenses")

	recs := make([]model.TrendRecord, 0, len(t.rows))
	for _, row := range t.rows {
		recs = append(recs, model.TrendRecord{
			Month:        cell(row, monthIdx),
			TotalRevenue: parseNumber(cell(row, revIdx)),
			NetIncome:    parseNumber(cell(row, niIdx)),
			GrossProfit:  parseNumber(cell(row, gpIdx)),
			Opex:         parseNumber(cell(row, oeIdx)),
		})
	}

	l.cache.Put(source, recs)
	return recs, nil
}
