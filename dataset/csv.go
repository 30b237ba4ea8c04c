// Package dataset loads tabular files into float columns ready to become
// chart series: CSV parsing with header detection, archive unpacking and
// file-safe slugs for chart names.
package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pivolan/go_utils"
)

// ColumnKind is the rough type of a CSV column.
const (
	KindFloat  = "Float64"
	KindInt    = "Int64"
	KindString = "String"
)

// Table is a parsed CSV file: detected headers plus raw string cells by
// column.
type Table struct {
	Headers []string
	Columns map[string][]string
}

// LoadCSV читает файл целиком и определяет, является ли первая строка
// заголовком или уже данными.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening csv: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading csv: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv is empty: %s", path)
	}

	headers, firstRowIsData := AnalyzeHeaders(rows[0])
	dataRows := rows
	if !firstRowIsData {
		dataRows = rows[1:]
	}

	t := &Table{Headers: headers, Columns: map[string][]string{}}
	for _, row := range dataRows {
		for i, header := range headers {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			t.Columns[header] = append(t.Columns[header], value)
		}
	}
	return t, nil
}

// FloatColumn parses a column into float64 values. Unparseable cells become
// NaN, downstream UpdateValidData drops them.
func (t *Table) FloatColumn(name string) ([]float64, bool) {
	raw, ok := t.Columns[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(raw))
	for i, cell := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			v = math.NaN()
		}
		out[i] = v
	}
	return out, true
}

// NumericColumns returns the headers whose cells are mostly numbers, in
// header order.
func (t *Table) NumericColumns() []string {
	var out []string
	for _, header := range t.Headers {
		if go_utils.InArray(ColumnKind(t.Columns[header]), []string{KindFloat, KindInt}) {
			out = append(out, header)
		}
	}
	return out
}

// ColumnKind classifies raw cells as Int64, Float64 or String. Порог 80%
// оставляет место под грязные ячейки, они потом отсеются как NaN.
func ColumnKind(values []string) string {
	if len(values) == 0 {
		return KindString
	}
	ints, floats := 0, 0
	for _, value := range values {
		value = strings.TrimSpace(value)
		if _, err := strconv.ParseInt(value, 10, 64); err == nil {
			ints++
			floats++
			continue
		}
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			floats++
		}
	}
	switch {
	case float64(ints)/float64(len(values)) >= 0.8:
		return KindInt
	case float64(floats)/float64(len(values)) >= 0.8:
		return KindFloat
	default:
		return KindString
	}
}

// AnalyzeHeaders решает, заголовок ли первая строка. Если большинство полей
// похожи на имена — берём их (очистив), иначе генерируем column_N и первая
// строка считается данными.
func AnalyzeHeaders(firstRow []string) (headers []string, firstRowIsData bool) {
	if len(firstRow) == 0 {
		return nil, false
	}

	headerLikeCount := 0
	for _, field := range firstRow {
		if isLikelyHeader(field) {
			headerLikeCount++
		}
	}

	headers = make([]string, len(firstRow))
	if float64(headerLikeCount)/float64(len(firstRow)) >= 0.5 {
		for i, header := range firstRow {
			headers[i] = cleanHeaderName(header, i)
		}
	} else {
		firstRowIsData = true
		for i := range firstRow {
			headers[i] = generateColumnName(i)
		}
	}
	return dedupeHeaders(headers), firstRowIsData
}

// isLikelyHeader определяет, похож ли текст на заголовок: не число, не дата,
// и буквы составляют заметную долю символов.
func isLikelyHeader(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return false
	}

	letters := 0
	total := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return false
	}
	return letters > 0 && float64(letters)/float64(total) >= 0.3
}

func cleanHeaderName(header string, index int) string {
	header = strings.TrimSpace(header)
	if header == "" || !isLikelyHeader(header) {
		return generateColumnName(index)
	}
	cleaned := Slug(header)
	if cleaned == "" {
		return generateColumnName(index)
	}
	return cleaned
}

func generateColumnName(index int) string {
	return fmt.Sprintf("column_%d", index+1)
}

// dedupeHeaders добавляет счетчик к повторяющимся именам.
func dedupeHeaders(headers []string) []string {
	seen := map[string]bool{}
	result := make([]string, len(headers))
	for i, header := range headers {
		name := header
		for counter := 1; seen[name]; counter++ {
			name = fmt.Sprintf("%s_%d", header, counter)
		}
		seen[name] = true
		result[i] = name
	}
	return result
}
