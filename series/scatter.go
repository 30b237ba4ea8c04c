package series

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ScatterSeries draws discrete markers. There is no geometry between samples,
// so interpolated nearest-point lookups report nothing and the hit-test
// protocol falls back to exact samples.
type ScatterSeries struct {
	Options

	XValues []float64
	YValues []float64

	// DotRadius in pixels, 0 uses the default.
	DotRadius float64

	valid      []Point
	validIndex []int

	minX, maxX float64
	minY, maxY float64
	hasExtent  bool

	xAxis Axis
	yAxis Axis
}

func NewScatterSeries(title string, xValues, yValues []float64) *ScatterSeries {
	return &ScatterSeries{
		Options: Options{Title: title},
		XValues: xValues,
		YValues: yValues,
	}
}

func (s *ScatterSeries) AxesRequired() bool { return true }

func (s *ScatterSeries) UpdateData() {
	// Точки берутся из значений как есть, преобразований у скаттера нет.
}

func (s *ScatterSeries) UpdateValidData() {
	n := len(s.XValues)
	if len(s.YValues) < n {
		n = len(s.YValues)
	}
	s.valid = s.valid[:0]
	s.validIndex = s.validIndex[:0]
	for i := 0; i < n; i++ {
		if isFinite(s.XValues[i]) && isFinite(s.YValues[i]) {
			s.valid = append(s.valid, Point{X: s.XValues[i], Y: s.YValues[i]})
			s.validIndex = append(s.validIndex, i)
		}
	}
}

func (s *ScatterSeries) UpdateMaxMin() {
	s.hasExtent = false
	for i, p := range s.valid {
		if i == 0 {
			s.minX, s.maxX = p.X, p.X
			s.minY, s.maxY = p.Y, p.Y
			s.hasExtent = true
			continue
		}
		s.minX = math.Min(s.minX, p.X)
		s.maxX = math.Max(s.maxX, p.X)
		s.minY = math.Min(s.minY, p.Y)
		s.maxY = math.Max(s.maxY, p.Y)
	}
}

func (s *ScatterSeries) EnsureAxes(view ChartView) {
	if s.xAxis == nil {
		s.xAxis = view.XAxis(s.XAxisKey)
	}
	if s.yAxis == nil {
		s.yAxis = view.YAxis(s.YAxisKey)
	}
}

func (s *ScatterSeries) UsesAxis(a Axis) bool {
	return a != nil && (a == s.xAxis || a == s.yAxis)
}

func (s *ScatterSeries) UpdateAxisMaxMin() {
	if s.Hidden || !s.hasExtent || s.xAxis == nil || s.yAxis == nil {
		return
	}
	s.xAxis.Include(s.minX, s.maxX)
	s.yAxis.Include(s.minY, s.maxY)
}

func (s *ScatterSeries) ValidPoints() []Point { return s.valid }

func (s *ScatterSeries) Extent() (minX, maxX, minY, maxY float64, ok bool) {
	return s.minX, s.maxX, s.minY, s.maxY, s.hasExtent
}

func (s *ScatterSeries) GetNearestPoint(pt Point, interpolate bool) (HitResult, bool) {
	if interpolate {
		return HitResult{}, false
	}
	if !s.IsVisible() || len(s.valid) == 0 || s.xAxis == nil || s.yAxis == nil {
		return HitResult{}, false
	}
	best := HitResult{}
	bestDist := math.Inf(1)
	for i, p := range s.valid {
		sp := Point{X: s.xAxis.Project(p.X), Y: s.yAxis.Project(p.Y)}
		if d := Distance(sp, pt); d < bestDist {
			bestDist = d
			best = HitResult{Screen: sp, Item: p, Index: s.validIndex[i]}
		}
	}
	return best, true
}

func (s *ScatterSeries) Render(rc Renderer, view ChartView) {
	if s.xAxis == nil || s.yAxis == nil {
		return
	}
	fill := s.Stroke.Color(drawing.ColorBlue)
	rc.SetFillColor(fill)
	for _, p := range s.valid {
		rc.Circle(s.dotRadius(), s.xAxis.Project(p.X), s.yAxis.Project(p.Y))
		rc.Fill()
	}
}

func (s *ScatterSeries) RenderLegend(rc Renderer, box Box) {
	rc.SetFillColor(s.Stroke.Color(drawing.ColorBlue))
	rc.Circle(s.dotRadius(), box.Left+box.Width()/2, box.Top+box.Height()/2)
	rc.Fill()
}

func (s *ScatterSeries) dotRadius() float64 {
	if s.DotRadius > 0 {
		return s.DotRadius
	}
	return 3
}
