package series

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Point это координата в пикселях экрана либо в координатах данных,
// в зависимости от контекста вызова.
type Point struct {
	X float64
	Y float64
}

// Box is a screen rectangle, used for legend glyph placement and the plot area.
type Box struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

func (b Box) Width() float64  { return b.Right - b.Left }
func (b Box) Height() float64 { return b.Bottom - b.Top }

// HitResult is what a series reports for its nearest data point.
// Item is opaque and series-defined: for sample hits it is the original
// data point, for interpolated hits the interpolated data coordinates.
type HitResult struct {
	Screen Point
	Item   interface{}
	Index  int
}

// Axis accumulates the observed data range of the series bound to it and
// projects data values to screen pixels. Axes are owned by the chart
// container, series only reference them.
type Axis interface {
	Key() string
	Include(min, max float64)
	Range() (min, max float64, ok bool)
	Project(v float64) float64
}

// Renderer is the drawing surface a series renders into. It is borrowed for
// the duration of a single Render/RenderLegend call and must not be retained.
type Renderer interface {
	SetStrokeColor(c drawing.Color)
	SetFillColor(c drawing.Color)
	SetStrokeWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ArcTo(cx, cy, rx, ry, startAngle, delta float64)
	Close()
	Stroke()
	Fill()
	FillStroke()
	Circle(radius, x, y float64)
	Text(body string, x, y float64)
}

// ChartView is the series-facing surface of the owning chart container.
// XAxis/YAxis resolve an axis by key, creating it in the container's axis
// table when missing; "" resolves the container default.
type ChartView interface {
	XAxis(key string) Axis
	YAxis(key string) Axis
	PlotArea() Box
}

// Series is the capability set every chart-type variant implements.
// There is no shared base behavior: common settings live in Options (data
// only) and the hit-test protocol is the free function HitTest.
type Series interface {
	GetTitle() string
	IsVisible() bool
	GetBackground() ColorOption
	GetTrackerFormat() string
	GetTrackerKey() string

	// GetNearestPoint returns the data point of this series nearest to a
	// screen coordinate. With interpolate the point may lie on the series
	// geometry between samples; without it only actual samples qualify.
	// Reports ok=false when the series is hidden, empty or has no usable
	// screen geometry.
	GetNearestPoint(pt Point, interpolate bool) (HitResult, bool)

	// Render draws the series into rc using the view's resolved axes.
	// Visibility is the caller's check, Render itself does not gate.
	Render(rc Renderer, view ChartView)

	// RenderLegend draws a representative glyph inside box.
	RenderLegend(rc Renderer, box Box)

	AxesRequired() bool

	// EnsureAxes resolves the axes this series needs from the view.
	// Idempotent, already bound axes are kept.
	EnsureAxes(view ChartView)

	UsesAxis(a Axis) bool

	// SetDefaults fills style attributes that were never set explicitly.
	SetDefaults(d Defaults)

	UpdateData()
	UpdateValidData()
	UpdateMaxMin()

	// UpdateAxisMaxMin extends the bound axes with the series' valid data
	// extent. Hidden series contribute nothing.
	UpdateAxisMaxMin()
}

var (
	_ Series = (*LineSeries)(nil)
	_ Series = (*ScatterSeries)(nil)
	_ Series = (*BarSeries)(nil)
	_ Series = (*PieSeries)(nil)
)
