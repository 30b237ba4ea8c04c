package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pivolan/chart_series/series"
)

func TestLegendByTitle(t *testing.T) {
	m := New("chart")
	m.AddSeries(
		series.NewLineSeries("A", []float64{1}, []float64{1}),
		series.NewLineSeries("", []float64{1}, []float64{1}),
		series.NewScatterSeries("B", []float64{1}, []float64{1}),
	)

	legend := m.Legend()
	assert.Len(t, legend, 2)
	assert.Equal(t, "A", legend[0].Title)
	assert.Equal(t, "B", legend[1].Title)
}

func TestUpdateAggregatesOnlyVisible(t *testing.T) {
	m := New("chart")
	visible := series.NewLineSeries("v", []float64{0, 10}, []float64{0, 100})
	hidden := series.NewLineSeries("h", []float64{-500, 500}, []float64{-500, 500})
	hidden.Hidden = true
	m.AddSeries(visible, hidden)

	m.Update()

	min, max, ok := m.XAxis("").Range()
	assert.True(t, ok)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 10.0, max)

	min, max, ok = m.YAxis("").Range()
	assert.True(t, ok)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 100.0, max)
}

func TestEnsureAxesIdempotent(t *testing.T) {
	m := New("chart")
	s := series.NewLineSeries("a", []float64{1, 2}, []float64{3, 4})
	m.AddSeries(s)

	m.Update()
	x1 := m.XAxis("")
	m.Update()

	assert.True(t, s.UsesAxis(x1))
	assert.Same(t, x1, m.XAxis(""))
}

func TestCustomAxisKeys(t *testing.T) {
	m := New("chart")
	s := series.NewLineSeries("a", []float64{1}, []float64{2})
	s.YAxisKey = "right"
	m.AddSeries(s)

	m.Update()

	assert.True(t, s.UsesAxis(m.YAxis("right")))
	assert.False(t, s.UsesAxis(m.YAxis("")))
}

func TestRemoveAxisGuard(t *testing.T) {
	m := New("chart")
	s := series.NewLineSeries("a", []float64{1}, []float64{2})
	m.AddSeries(s)
	m.Update()

	x := m.XAxis("")
	err := m.RemoveAxis(x)
	assert.Error(t, err)

	m.RemoveSeries(s)
	err = m.RemoveAxis(x)
	assert.NoError(t, err)
}

func TestModelHitTestTopmostFirst(t *testing.T) {
	m := New("chart")
	bottom := series.NewLineSeries("bottom", []float64{0, 10}, []float64{5, 5})
	top := series.NewLineSeries("top", []float64{0, 10}, []float64{5, 5})
	m.AddSeries(bottom, top)
	m.Update()

	hit, ok := m.HitTest(series.Point{X: m.PlotArea().Left, Y: m.PlotArea().Top}, 1e9)
	assert.True(t, ok)
	assert.Equal(t, top, hit.Series)
}

func TestModelHitTestHiddenSkipped(t *testing.T) {
	m := New("chart")
	s := series.NewLineSeries("a", []float64{0, 10}, []float64{5, 5})
	s.Hidden = true
	m.AddSeries(s)
	m.Update()

	_, ok := m.HitTest(series.Point{X: 100, Y: 100}, 1e9)
	assert.False(t, ok)
}

func TestApplyDefaultsKeepsExplicitStyles(t *testing.T) {
	m := New("chart")
	styled := series.NewLineSeries("styled", []float64{1}, []float64{1})
	styled.Stroke = series.SomeColor(drawing.ColorBlack)
	plain := series.NewLineSeries("plain", []float64{1}, []float64{1})
	m.AddSeries(styled, plain)

	m.ApplyDefaults()
	m.ApplyDefaults()

	assert.Equal(t, drawing.ColorBlack, styled.Stroke.Color(drawing.Color{}))
	assert.True(t, plain.Stroke.IsSet())
	assert.Equal(t, series.PaletteColor(1), plain.Stroke.Color(drawing.Color{}))
}
