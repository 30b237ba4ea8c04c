package series

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// LineSeries is a continuous polyline over X/Y value pairs. With Fill set it
// also paints the area down to the bottom of the plot area.
type LineSeries struct {
	Options

	XValues []float64
	YValues []float64

	// Transform, when set, is applied to every raw pair during UpdateData.
	Transform func(x, y float64) (float64, float64)

	points     []Point
	valid      []Point
	validIndex []int

	minX, maxX float64
	minY, maxY float64
	hasExtent  bool

	xAxis Axis
	yAxis Axis
}

func NewLineSeries(title string, xValues, yValues []float64) *LineSeries {
	return &LineSeries{
		Options: Options{Title: title},
		XValues: xValues,
		YValues: yValues,
	}
}

func (s *LineSeries) AxesRequired() bool { return true }

// UpdateData пересобирает кэш точек из сырых значений, применяя Transform.
func (s *LineSeries) UpdateData() {
	n := len(s.XValues)
	if len(s.YValues) < n {
		n = len(s.YValues)
	}
	s.points = make([]Point, 0, n)
	for i := 0; i < n; i++ {
		x, y := s.XValues[i], s.YValues[i]
		if s.Transform != nil {
			x, y = s.Transform(x, y)
		}
		s.points = append(s.points, Point{X: x, Y: y})
	}
}

// UpdateValidData keeps only finite samples, remembering their original
// indices for hit reporting.
func (s *LineSeries) UpdateValidData() {
	s.valid = s.valid[:0]
	s.validIndex = s.validIndex[:0]
	for i, p := range s.points {
		if isFinite(p.X) && isFinite(p.Y) {
			s.valid = append(s.valid, p)
			s.validIndex = append(s.validIndex, i)
		}
	}
}

func (s *LineSeries) UpdateMaxMin() {
	s.hasExtent = false
	for i, p := range s.valid {
		if i == 0 {
			s.minX, s.maxX = p.X, p.X
			s.minY, s.maxY = p.Y, p.Y
			s.hasExtent = true
			continue
		}
		if p.X < s.minX {
			s.minX = p.X
		}
		if p.X > s.maxX {
			s.maxX = p.X
		}
		if p.Y < s.minY {
			s.minY = p.Y
		}
		if p.Y > s.maxY {
			s.maxY = p.Y
		}
	}
}

func (s *LineSeries) EnsureAxes(view ChartView) {
	if s.xAxis == nil {
		s.xAxis = view.XAxis(s.XAxisKey)
	}
	if s.yAxis == nil {
		s.yAxis = view.YAxis(s.YAxisKey)
	}
}

func (s *LineSeries) UsesAxis(a Axis) bool {
	return a != nil && (a == s.xAxis || a == s.yAxis)
}

func (s *LineSeries) UpdateAxisMaxMin() {
	if s.Hidden || !s.hasExtent || s.xAxis == nil || s.yAxis == nil {
		return
	}
	s.xAxis.Include(s.minX, s.maxX)
	s.yAxis.Include(s.minY, s.maxY)
}

// ValidPoints returns the filtered data points of the last update pass.
func (s *LineSeries) ValidPoints() []Point { return s.valid }

// Extent reports the min/max of the valid data, ok=false when empty.
func (s *LineSeries) Extent() (minX, maxX, minY, maxY float64, ok bool) {
	return s.minX, s.maxX, s.minY, s.maxY, s.hasExtent
}

func (s *LineSeries) screenPoints() []Point {
	if s.xAxis == nil || s.yAxis == nil {
		return nil
	}
	out := make([]Point, len(s.valid))
	for i, p := range s.valid {
		out[i] = Point{X: s.xAxis.Project(p.X), Y: s.yAxis.Project(p.Y)}
	}
	return out
}

func (s *LineSeries) GetNearestPoint(pt Point, interpolate bool) (HitResult, bool) {
	if !s.IsVisible() || len(s.valid) == 0 {
		return HitResult{}, false
	}
	screen := s.screenPoints()
	if screen == nil {
		return HitResult{}, false
	}

	best := HitResult{}
	bestDist := math.Inf(1)
	for i, sp := range screen {
		if d := Distance(sp, pt); d < bestDist {
			bestDist = d
			best = HitResult{Screen: sp, Item: s.valid[i], Index: s.validIndex[i]}
		}
	}
	if !interpolate {
		return best, true
	}

	// Интерполяция вдоль сегментов даёт плавное ведение курсора по линии.
	for i := 0; i+1 < len(screen); i++ {
		sp, t := nearestOnSegment(screen[i], screen[i+1], pt)
		if d := Distance(sp, pt); d < bestDist {
			bestDist = d
			a, b := s.valid[i], s.valid[i+1]
			item := Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
			best = HitResult{Screen: sp, Item: item, Index: s.validIndex[i]}
		}
	}
	return best, true
}

func (s *LineSeries) Render(rc Renderer, view ChartView) {
	screen := s.screenPoints()
	if len(screen) < 2 {
		return
	}
	stroke := s.Stroke.Color(drawing.ColorBlue)

	if s.Fill.IsSet() {
		bottom := view.PlotArea().Bottom
		rc.SetFillColor(s.Fill.Color(drawing.Color{}))
		rc.MoveTo(screen[0].X, bottom)
		for _, p := range screen {
			rc.LineTo(p.X, p.Y)
		}
		rc.LineTo(screen[len(screen)-1].X, bottom)
		rc.Close()
		rc.Fill()
	}

	rc.SetStrokeColor(stroke)
	rc.SetStrokeWidth(s.strokeWidth())
	rc.MoveTo(screen[0].X, screen[0].Y)
	for _, p := range screen[1:] {
		rc.LineTo(p.X, p.Y)
	}
	rc.Stroke()
}

func (s *LineSeries) RenderLegend(rc Renderer, box Box) {
	midY := box.Top + box.Height()/2
	rc.SetStrokeColor(s.Stroke.Color(drawing.ColorBlue))
	rc.SetStrokeWidth(s.strokeWidth())
	rc.MoveTo(box.Left, midY)
	rc.LineTo(box.Right, midY)
	rc.Stroke()
}

func (s *LineSeries) strokeWidth() float64 {
	if s.StrokeWidth > 0 {
		return s.StrokeWidth
	}
	return 2
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
