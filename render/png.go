// Package render supplies concrete drawing backends for the series contract:
// a raster PNG context on top of go-chart and an HTML export through
// go-echarts.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pivolan/chart_series/series"
)

// PNGContext is a series.Renderer backed by go-chart's raster renderer.
type PNGContext struct {
	r chart.Renderer
}

func NewPNGContext(width, height int) (*PNGContext, error) {
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("error creating png renderer: %v", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("error loading default font: %v", err)
	}
	r.SetFont(font)
	r.SetFontSize(10)
	r.SetFontColor(drawing.ColorBlack)
	return &PNGContext{r: r}, nil
}

func (c *PNGContext) SetStrokeColor(col drawing.Color) { c.r.SetStrokeColor(col) }
func (c *PNGContext) SetFillColor(col drawing.Color)   { c.r.SetFillColor(col) }
func (c *PNGContext) SetStrokeWidth(w float64)         { c.r.SetStrokeWidth(w) }

func (c *PNGContext) MoveTo(x, y float64) { c.r.MoveTo(px(x), px(y)) }
func (c *PNGContext) LineTo(x, y float64) { c.r.LineTo(px(x), px(y)) }

func (c *PNGContext) ArcTo(cx, cy, rx, ry, startAngle, delta float64) {
	c.r.ArcTo(px(cx), px(cy), rx, ry, startAngle, delta)
}

func (c *PNGContext) Close()      { c.r.Close() }
func (c *PNGContext) Stroke()     { c.r.Stroke() }
func (c *PNGContext) Fill()       { c.r.Fill() }
func (c *PNGContext) FillStroke() { c.r.FillStroke() }

func (c *PNGContext) Circle(radius, x, y float64) {
	c.r.Circle(radius, px(x), px(y))
}

func (c *PNGContext) Text(body string, x, y float64) {
	c.r.Text(body, px(x), px(y))
}

// Save encodes the rendered image as PNG into w.
func (c *PNGContext) Save(w io.Writer) error {
	return c.r.Save(w)
}

func px(v float64) int {
	return int(math.Round(v))
}

var _ series.Renderer = (*PNGContext)(nil)
