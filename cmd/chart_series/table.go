package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/chart_series/model"
	"github.com/pivolan/chart_series/series"
)

// GenerateSeriesTable renders a summary of every series in the model: point
// counts, extents and legend/visibility flags.
func GenerateSeriesTable(m *model.Model) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Series", "Visible", "Points", "MinX", "MaxX", "MinY", "MaxY"})

	for i, s := range m.Series() {
		name := s.GetTitle()
		if name == "" {
			name = fmt.Sprintf("series_%d", i)
		}
		points, minX, maxX, minY, maxY := seriesStats(s)
		t.AppendRows([]table.Row{
			{name, s.IsVisible(), points, minX, maxX, minY, maxY},
		})
	}

	t.SetStyle(table.StyleDefault)
	return t.Render()
}

func seriesStats(s series.Series) (points int, minX, maxX, minY, maxY string) {
	format := func(v float64) string { return fmt.Sprintf("%.3f", v) }
	na := "-"
	minX, maxX, minY, maxY = na, na, na, na

	switch v := s.(type) {
	case *series.LineSeries:
		points = len(v.ValidPoints())
		if x0, x1, y0, y1, ok := v.Extent(); ok {
			minX, maxX, minY, maxY = format(x0), format(x1), format(y0), format(y1)
		}
	case *series.ScatterSeries:
		points = len(v.ValidPoints())
		if x0, x1, y0, y1, ok := v.Extent(); ok {
			minX, maxX, minY, maxY = format(x0), format(x1), format(y0), format(y1)
		}
	case *series.BarSeries:
		points = len(v.ValidPoints())
		if x0, x1, y0, y1, ok := v.Extent(); ok {
			minX, maxX, minY, maxY = format(x0), format(x1), format(y0), format(y1)
		}
	case *series.PieSeries:
		points = len(v.ValidValues())
		minY = format(0)
		maxY = format(v.Total())
	}
	return points, minX, maxX, minY, maxY
}
