package series

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// BarSeries draws vertical bars from the y=0 baseline. Nearest-point lookups
// answer with bar-top centers; interpolation between bars is meaningless, so
// both modes report the same sample.
type BarSeries struct {
	Options

	XValues []float64
	YValues []float64

	// BarWidth in pixels, 0 uses the default.
	BarWidth float64

	valid      []Point
	validIndex []int

	minX, maxX float64
	minY, maxY float64
	hasExtent  bool

	xAxis Axis
	yAxis Axis
}

func NewBarSeries(title string, xValues, yValues []float64) *BarSeries {
	return &BarSeries{
		Options: Options{Title: title},
		XValues: xValues,
		YValues: yValues,
	}
}

func (s *BarSeries) AxesRequired() bool { return true }

func (s *BarSeries) UpdateData() {}

func (s *BarSeries) UpdateValidData() {
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

func (s *BarSeries) UpdateMaxMin() {
	s.hasExtent = false
	for i, p := range s.valid {
		if i == 0 {
			s.minX, s.maxX = p.X, p.X
			// Бары растут от нулевой базовой линии, ноль всегда в экстенте.
			s.minY, s.maxY = math.Min(0, p.Y), math.Max(0, p.Y)
			s.hasExtent = true
			continue
		}
		s.minX = math.Min(s.minX, p.X)
		s.maxX = math.Max(s.maxX, p.X)
		s.minY = math.Min(s.minY, p.Y)
		s.maxY = math.Max(s.maxY, p.Y)
	}
}

func (s *BarSeries) EnsureAxes(view ChartView) {
	if s.xAxis == nil {
		s.xAxis = view.XAxis(s.XAxisKey)
	}
	if s.yAxis == nil {
		s.yAxis = view.YAxis(s.YAxisKey)
	}
}

func (s *BarSeries) UsesAxis(a Axis) bool {
	return a != nil && (a == s.xAxis || a == s.yAxis)
}

func (s *BarSeries) UpdateAxisMaxMin() {
	if s.Hidden || !s.hasExtent || s.xAxis == nil || s.yAxis == nil {
		return
	}
	s.xAxis.Include(s.minX, s.maxX)
	s.yAxis.Include(s.minY, s.maxY)
}

func (s *BarSeries) ValidPoints() []Point { return s.valid }

func (s *BarSeries) Extent() (minX, maxX, minY, maxY float64, ok bool) {
	return s.minX, s.maxX, s.minY, s.maxY, s.hasExtent
}

func (s *BarSeries) GetNearestPoint(pt Point, interpolate bool) (HitResult, bool) {
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

func (s *BarSeries) Render(rc Renderer, view ChartView) {
	if s.xAxis == nil || s.yAxis == nil {
		return
	}
	half := s.barWidth() / 2
	baseline := s.yAxis.Project(0)
	rc.SetFillColor(s.Fill.Color(s.Stroke.Color(drawing.ColorBlue)))
	for _, p := range s.valid {
		cx := s.xAxis.Project(p.X)
		top := s.yAxis.Project(p.Y)
		rc.MoveTo(cx-half, baseline)
		rc.LineTo(cx-half, top)
		rc.LineTo(cx+half, top)
		rc.LineTo(cx+half, baseline)
		rc.Close()
		rc.Fill()
	}
}

func (s *BarSeries) RenderLegend(rc Renderer, box Box) {
	rc.SetFillColor(s.Fill.Color(s.Stroke.Color(drawing.ColorBlue)))
	rc.MoveTo(box.Left, box.Bottom)
	rc.LineTo(box.Left, box.Top)
	rc.LineTo(box.Right, box.Top)
	rc.LineTo(box.Right, box.Bottom)
	rc.Close()
	rc.Fill()
}

func (s *BarSeries) barWidth() float64 {
	if s.BarWidth > 0 {
		return s.BarWidth
	}
	return 30
}
