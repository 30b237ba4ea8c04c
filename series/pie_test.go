package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestPieValidData(t *testing.T) {
	s := NewPieSeries("doli", []PieValue{
		{Label: "a", Value: 3},
		{Label: "bad", Value: math.NaN()},
		{Label: "negative", Value: -1},
		{Label: "b", Value: 7},
	})
	s.UpdateData()
	s.UpdateValidData()
	s.UpdateMaxMin()

	assert.Equal(t, []PieValue{{Label: "a", Value: 3}, {Label: "b", Value: 7}}, s.ValidValues())
	assert.Equal(t, 10.0, s.Total())
	assert.Equal(t, 3.0, s.minVal)
	assert.Equal(t, 7.0, s.maxVal)
}

func TestPieNeedsNoAxes(t *testing.T) {
	s := NewPieSeries("doli", []PieValue{{Label: "a", Value: 1}})
	assert.False(t, s.AxesRequired())
	assert.False(t, s.UsesAxis(&identityAxis{key: "x"}))

	// UpdateAxisMaxMin и EnsureAxes для пирога безопасные no-op
	s.UpdateAxisMaxMin()
	s.EnsureAxes(nil)
}

func TestPieHitBeforeRender(t *testing.T) {
	s := NewPieSeries("doli", []PieValue{{Label: "a", Value: 1}})
	s.UpdateData()
	s.UpdateValidData()

	// до первой отрисовки у долей нет экранной геометрии
	_, ok := HitTest(s, Point{}, 1e9)
	assert.False(t, ok)
}

type nopRenderer struct{}

func (nopRenderer) SetStrokeColor(drawing.Color)               {}
func (nopRenderer) SetFillColor(drawing.Color)                 {}
func (nopRenderer) SetStrokeWidth(float64)                     {}
func (nopRenderer) MoveTo(x, y float64)                        {}
func (nopRenderer) LineTo(x, y float64)                        {}
func (nopRenderer) ArcTo(cx, cy, rx, ry, start, delta float64) {}
func (nopRenderer) Close()                                     {}
func (nopRenderer) Stroke()                                    {}
func (nopRenderer) Fill()                                      {}
func (nopRenderer) FillStroke()                                {}
func (nopRenderer) Circle(radius, x, y float64)                {}
func (nopRenderer) Text(body string, x, y float64)             {}

type fixedView struct{ area Box }

func (v fixedView) XAxis(key string) Axis { return &identityAxis{key: key} }
func (v fixedView) YAxis(key string) Axis { return &identityAxis{key: key} }
func (v fixedView) PlotArea() Box         { return v.area }

func TestPieHitAfterRender(t *testing.T) {
	s := NewPieSeries("doli", []PieValue{{Label: "a", Value: 1}})
	s.UpdateData()
	s.UpdateValidData()
	s.Render(nopRenderer{}, fixedView{area: Box{Left: 0, Top: 0, Right: 100, Bottom: 100}})

	// единственная доля: центроид на половине радиуса ниже центра
	r, ok := HitTest(s, Point{X: 50, Y: 70}, 10)
	assert.True(t, ok)
	assert.Equal(t, PieValue{Label: "a", Value: 1}, r.Item)
	assert.Equal(t, 0, r.Index)
}
