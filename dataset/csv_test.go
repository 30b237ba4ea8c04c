package dataset

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeHeadersWithHeaderRow(t *testing.T) {
	headers, firstRowIsData := AnalyzeHeaders([]string{"date", "Revenue $", "count"})
	assert.False(t, firstRowIsData)
	assert.Equal(t, []string{"date", "revenue", "count"}, headers)
}

func TestAnalyzeHeadersWithDataRow(t *testing.T) {
	headers, firstRowIsData := AnalyzeHeaders([]string{"1.5", "2024-01-01", "42"})
	assert.True(t, firstRowIsData)
	assert.Equal(t, []string{"column_1", "column_2", "column_3"}, headers)
}

func TestAnalyzeHeadersDeduplicates(t *testing.T) {
	headers, _ := AnalyzeHeaders([]string{"value", "value", "value"})
	assert.Equal(t, []string{"value", "value_1", "value_2"}, headers)
}

func TestLoadCSVAndFloatColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "time,speed,comment\n1,10.5,ok\n2,broken,bad\n3,30,ok\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	table, err := LoadCSV(path)
	assert.NoError(t, err)
	assert.Equal(t, []string{"time", "speed", "comment"}, table.Headers)

	speed, ok := table.FloatColumn("speed")
	assert.True(t, ok)
	assert.Equal(t, 10.5, speed[0])
	assert.True(t, math.IsNaN(speed[1]))
	assert.Equal(t, 30.0, speed[2])

	_, ok = table.FloatColumn("missing")
	assert.False(t, ok)
}

func TestNumericColumns(t *testing.T) {
	table := &Table{
		Headers: []string{"id", "speed", "comment"},
		Columns: map[string][]string{
			"id":      {"1", "2", "3"},
			"speed":   {"1.5", "2.5", "x"},
			"comment": {"a", "b", "c"},
		},
	}
	// speed: 2 из 3 парсятся, порога 80% нет
	assert.Equal(t, []string{"id"}, table.NumericColumns())

	table.Columns["speed"] = []string{"1.5", "2.5", "3.5"}
	assert.Equal(t, []string{"id", "speed"}, table.NumericColumns())
}

func TestColumnKind(t *testing.T) {
	assert.Equal(t, KindInt, ColumnKind([]string{"1", "2", "3"}))
	assert.Equal(t, KindFloat, ColumnKind([]string{"1.5", "2", "3.25"}))
	assert.Equal(t, KindString, ColumnKind([]string{"a", "b", "1"}))
	assert.Equal(t, KindString, ColumnKind(nil))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "vyruchka", Slug("Выручка, $"))
	assert.Equal(t, "revenue_2024", Slug("Revenue 2024"))
	assert.Equal(t, "", Slug("$$$"))
}
