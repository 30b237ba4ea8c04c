package model

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pivolan/chart_series/series"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	plotPadding   = 40
)

// LegendEntry is one row of the legend: series listed by non-empty title.
type LegendEntry struct {
	Title  string
	Series series.Series
}

// SeriesHit is a model-level hit-test answer, the hit plus the series that
// produced it.
type SeriesHit struct {
	Series series.Series
	Result series.HitResult
}

// Model is the chart container. It owns the series collection and the axis
// table, series reference axes by key and never own them. All methods are
// meant for one logical thread of control, the container does no locking.
type Model struct {
	Title      string
	Width      int
	Height     int
	Background drawing.Color

	seriesList []series.Series
	xAxes      map[string]*LinearAxis
	yAxes      map[string]*LinearAxis
}

var _ series.ChartView = (*Model)(nil)

func New(title string) *Model {
	return &Model{
		Title:      title,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: drawing.ColorWhite,
		xAxes:      map[string]*LinearAxis{},
		yAxes:      map[string]*LinearAxis{},
	}
}

func (m *Model) AddSeries(ss ...series.Series) {
	m.seriesList = append(m.seriesList, ss...)
}

func (m *Model) Series() []series.Series { return m.seriesList }

func (m *Model) RemoveSeries(s series.Series) {
	for i, cur := range m.seriesList {
		if cur == s {
			m.seriesList = append(m.seriesList[:i], m.seriesList[i+1:]...)
			return
		}
	}
}

// XAxis resolves a horizontal axis by key, creating it in the table when
// missing. "" is the container default.
func (m *Model) XAxis(key string) series.Axis {
	if key == "" {
		key = "x"
	}
	a, ok := m.xAxes[key]
	if !ok {
		a = NewLinearAxis(key)
		m.xAxes[key] = a
	}
	return a
}

func (m *Model) YAxis(key string) series.Axis {
	if key == "" {
		key = "y"
	}
	a, ok := m.yAxes[key]
	if !ok {
		a = NewLinearAxis(key)
		m.yAxes[key] = a
	}
	return a
}

// RemoveAxis drops an axis from the table. It refuses while any series still
// references the axis, that is what UsesAxis is for.
func (m *Model) RemoveAxis(a series.Axis) error {
	for _, s := range m.seriesList {
		if s.UsesAxis(a) {
			return fmt.Errorf("axis %q is still used by series %q", a.Key(), s.GetTitle())
		}
	}
	for key, cur := range m.xAxes {
		if series.Axis(cur) == a {
			delete(m.xAxes, key)
			return nil
		}
	}
	for key, cur := range m.yAxes {
		if series.Axis(cur) == a {
			delete(m.yAxes, key)
			return nil
		}
	}
	return fmt.Errorf("axis %q is not owned by this model", a.Key())
}

func (m *Model) PlotArea() series.Box {
	return series.Box{
		Left:   plotPadding,
		Top:    plotPadding,
		Right:  float64(m.Width) - plotPadding,
		Bottom: float64(m.Height) - plotPadding,
	}
}

// Update runs the full refresh pass in contract order for every series:
// data, valid data, own extent, then axis binding and axis aggregation.
// Hidden series recompute their caches but never touch axis ranges.
func (m *Model) Update() {
	for _, s := range m.seriesList {
		s.UpdateData()
		s.UpdateValidData()
		s.UpdateMaxMin()
	}

	for _, a := range m.xAxes {
		a.ResetRange()
	}
	for _, a := range m.yAxes {
		a.ResetRange()
	}

	for _, s := range m.seriesList {
		if s.AxesRequired() {
			s.EnsureAxes(m)
		}
		s.UpdateAxisMaxMin()
	}

	area := m.PlotArea()
	for _, a := range m.xAxes {
		a.SetScreenRange(area.Left, area.Right)
	}
	for _, a := range m.yAxes {
		// экран растёт вниз, поэтому ось Y проецируем от низа к верху
		a.SetScreenRange(area.Bottom, area.Top)
	}
}

// ApplyDefaults fills unset series styles from the default palette. Explicit
// styles survive, the pass is idempotent.
func (m *Model) ApplyDefaults() {
	for i, s := range m.seriesList {
		s.SetDefaults(series.Defaults{
			StrokeColor: series.PaletteColor(i),
			StrokeWidth: 2,
		})
	}
}

// Legend enumerates series with a non-empty title, in insertion order.
func (m *Model) Legend() []LegendEntry {
	var entries []LegendEntry
	for _, s := range m.seriesList {
		if s.GetTitle() == "" {
			continue
		}
		entries = append(entries, LegendEntry{Title: s.GetTitle(), Series: s})
	}
	return entries
}

// HitTest asks series topmost-first (later added draws on top) and returns
// the first hit within tolerance.
func (m *Model) HitTest(pt series.Point, tolerance float64) (SeriesHit, bool) {
	for i := len(m.seriesList) - 1; i >= 0; i-- {
		s := m.seriesList[i]
		if r, ok := series.HitTest(s, pt, tolerance); ok {
			return SeriesHit{Series: s, Result: r}, true
		}
	}
	return SeriesHit{}, false
}

// Render draws the background, every visible series and the legend into rc.
// The visibility gate lives here, series Render assumes it already passed.
func (m *Model) Render(rc series.Renderer) {
	fillRect(rc, series.Box{Left: 0, Top: 0, Right: float64(m.Width), Bottom: float64(m.Height)}, m.Background)

	area := m.PlotArea()
	for _, s := range m.seriesList {
		if !s.IsVisible() {
			continue
		}
		if bg := s.GetBackground(); bg.IsSet() {
			fillRect(rc, area, bg.Color(drawing.Color{}))
		}
		s.Render(rc, m)
	}

	m.renderLegend(rc)

	if m.Title != "" {
		rc.Text(m.Title, area.Left, plotPadding/2)
	}
}

func (m *Model) renderLegend(rc series.Renderer) {
	entries := m.Legend()
	if len(entries) == 0 {
		return
	}
	const glyphW, glyphH, rowH = 24, 12, 18
	x := float64(m.Width) - plotPadding - 120
	y := plotPadding + 4.0
	for _, e := range entries {
		box := series.Box{Left: x, Top: y, Right: x + glyphW, Bottom: y + glyphH}
		e.Series.RenderLegend(rc, box)
		rc.Text(e.Title, box.Right+6, box.Bottom)
		y += rowH
	}
}

func fillRect(rc series.Renderer, box series.Box, c drawing.Color) {
	rc.SetFillColor(c)
	rc.MoveTo(box.Left, box.Top)
	rc.LineTo(box.Right, box.Top)
	rc.LineTo(box.Right, box.Bottom)
	rc.LineTo(box.Left, box.Bottom)
	rc.Close()
	rc.Fill()
}
