package series

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ColorOption различает "цвет не задан" и "задан, в том числе прозрачный".
// Нулевое значение — не задан.
type ColorOption struct {
	value drawing.Color
	set   bool
}

func SomeColor(c drawing.Color) ColorOption {
	return ColorOption{value: c, set: true}
}

func (o ColorOption) IsSet() bool { return o.set }

// Color returns the value, or def when the option was never set.
func (o ColorOption) Color(def drawing.Color) drawing.Color {
	if o.set {
		return o.value
	}
	return def
}

// Defaults is what the container hands a series during the defaults pass,
// built from its palette. SetDefaults fills only attributes left unset.
type Defaults struct {
	StrokeColor drawing.Color
	FillColor   drawing.Color
	StrokeWidth float64
}

// Options are the settings every series variant carries. It is plain data,
// embedded by concrete series; behavior stays on the variants and in free
// functions.
type Options struct {
	// Title lists the series in the legend; empty keeps it out.
	Title string
	// Hidden excludes the series from rendering, axis aggregation and
	// hit-testing. Zero value means visible.
	Hidden bool
	// Background paints the plot area occupied by this series; unset
	// means inherit/transparent.
	Background ColorOption

	Stroke      ColorOption
	Fill        ColorOption
	StrokeWidth float64

	// TrackerFormat is the tooltip template, see FormatTracker.
	TrackerFormat string
	// TrackerKey lets a host UI pick a custom tracker presentation.
	TrackerKey string

	// XAxisKey/YAxisKey name axes in the container's table; "" binds the
	// container defaults.
	XAxisKey string
	YAxisKey string
}

func (o *Options) GetTitle() string           { return o.Title }
func (o *Options) IsVisible() bool            { return !o.Hidden }
func (o *Options) GetBackground() ColorOption { return o.Background }
func (o *Options) GetTrackerFormat() string   { return o.TrackerFormat }
func (o *Options) GetTrackerKey() string      { return o.TrackerKey }

// SetDefaults fills stroke/fill/width from d for everything the caller left
// unset. Explicitly set values are never overwritten, so the pass is safe to
// run any number of times.
func (o *Options) SetDefaults(d Defaults) {
	if !o.Stroke.IsSet() {
		o.Stroke = SomeColor(d.StrokeColor)
	}
	if !o.Fill.IsSet() && !d.FillColor.IsZero() {
		o.Fill = SomeColor(d.FillColor)
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = d.StrokeWidth
	}
}
