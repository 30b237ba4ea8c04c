package series

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PieValue is one labelled slice of a pie.
type PieValue struct {
	Label string
	Value float64
}

// PieSeries needs no axes at all. Slice geometry exists only after a render
// pass laid the wedges out, so hit-testing before the first Render reports
// nothing.
type PieSeries struct {
	Options

	Values []PieValue

	// SliceColors override the default palette per slice.
	SliceColors []drawing.Color

	valid      []PieValue
	validIndex []int
	total      float64

	minVal, maxVal float64
	hasExtent      bool

	// центры долей в пикселях после последней отрисовки
	centroids []Point
}

func NewPieSeries(title string, values []PieValue) *PieSeries {
	return &PieSeries{
		Options: Options{Title: title},
		Values:  values,
	}
}

func (s *PieSeries) AxesRequired() bool { return false }

func (s *PieSeries) UpdateData() {}

// UpdateValidData drops non-finite and non-positive slices, a wedge with no
// area is out of domain.
func (s *PieSeries) UpdateValidData() {
	s.valid = s.valid[:0]
	s.validIndex = s.validIndex[:0]
	s.total = 0
	for i, v := range s.Values {
		if !isFinite(v.Value) || v.Value <= 0 {
			continue
		}
		s.valid = append(s.valid, v)
		s.validIndex = append(s.validIndex, i)
		s.total += v.Value
	}
}

func (s *PieSeries) UpdateMaxMin() {
	s.hasExtent = false
	for i, v := range s.valid {
		if i == 0 {
			s.minVal, s.maxVal = v.Value, v.Value
			s.hasExtent = true
			continue
		}
		s.minVal = math.Min(s.minVal, v.Value)
		s.maxVal = math.Max(s.maxVal, v.Value)
	}
}

func (s *PieSeries) EnsureAxes(view ChartView) {}

func (s *PieSeries) UsesAxis(a Axis) bool { return false }

func (s *PieSeries) UpdateAxisMaxMin() {}

func (s *PieSeries) ValidValues() []PieValue { return s.valid }

// Total is the sum of valid slice values.
func (s *PieSeries) Total() float64 { return s.total }

func (s *PieSeries) GetNearestPoint(pt Point, interpolate bool) (HitResult, bool) {
	if interpolate {
		return HitResult{}, false
	}
	if !s.IsVisible() || len(s.centroids) == 0 || len(s.centroids) != len(s.valid) {
		return HitResult{}, false
	}
	best := HitResult{}
	bestDist := math.Inf(1)
	for i, c := range s.centroids {
		if d := Distance(c, pt); d < bestDist {
			bestDist = d
			best = HitResult{Screen: c, Item: s.valid[i], Index: s.validIndex[i]}
		}
	}
	return best, true
}

func (s *PieSeries) Render(rc Renderer, view ChartView) {
	if s.total <= 0 {
		return
	}
	area := view.PlotArea()
	cx := area.Left + area.Width()/2
	cy := area.Top + area.Height()/2
	r := math.Min(area.Width(), area.Height()) / 2 * 0.9

	s.centroids = make([]Point, len(s.valid))
	angle := -math.Pi / 2
	for i, v := range s.valid {
		delta := v.Value / s.total * 2 * math.Pi
		rc.SetFillColor(s.sliceColor(i))
		rc.SetStrokeColor(drawing.ColorWhite)
		rc.SetStrokeWidth(1)
		rc.MoveTo(cx, cy)
		rc.LineTo(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		rc.ArcTo(cx, cy, r, r, angle, delta)
		rc.Close()
		rc.FillStroke()

		mid := angle + delta/2
		s.centroids[i] = Point{X: cx + r/2*math.Cos(mid), Y: cy + r/2*math.Sin(mid)}
		angle += delta
	}
}

func (s *PieSeries) RenderLegend(rc Renderer, box Box) {
	rc.SetFillColor(s.sliceColor(0))
	rc.MoveTo(box.Left, box.Bottom)
	rc.LineTo(box.Left, box.Top)
	rc.LineTo(box.Right, box.Top)
	rc.LineTo(box.Right, box.Bottom)
	rc.Close()
	rc.Fill()
}

func (s *PieSeries) sliceColor(i int) drawing.Color {
	if i < len(s.SliceColors) {
		return s.SliceColors[i]
	}
	if s.Fill.IsSet() && len(s.valid) <= 1 {
		return s.Fill.Color(drawing.ColorBlue)
	}
	return PaletteColor(i)
}
