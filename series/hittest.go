package series

import (
	"fmt"
	"math"
	"strings"
)

// HitTest runs the hit-test protocol shared by all series variants:
// interpolated lookup first, exact samples as fallback, then the tolerance
// gate on screen distance. Hidden series are never hit. Absence is ok=false,
// never a panic.
func HitTest(s Series, pt Point, tolerance float64) (HitResult, bool) {
	if s == nil || !s.IsVisible() {
		return HitResult{}, false
	}
	r, ok := s.GetNearestPoint(pt, true)
	if !ok {
		r, ok = s.GetNearestPoint(pt, false)
	}
	if !ok {
		return HitResult{}, false
	}
	if Distance(r.Screen, pt) > tolerance {
		return HitResult{}, false
	}
	return r, true
}

// Distance is the Euclidean screen distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// nearestOnSegment проецирует p на отрезок ab и возвращает ближайшую точку
// отрезка и параметр t в [0,1].
func nearestOnSegment(a, b, p Point) (Point, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a, 0
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point{X: a.X + t*dx, Y: a.Y + t*dy}, t
}

// FormatTracker renders the tooltip text for a hit. The template supports
// {title}, {x}, {y} and {index}; an empty template falls back to
// "title: (x, y)". X/Y come from Item when it is a data Point, otherwise
// from the screen position.
func FormatTracker(s Series, r HitResult) string {
	x, y := r.Screen.X, r.Screen.Y
	if p, ok := r.Item.(Point); ok {
		x, y = p.X, p.Y
	}
	format := s.GetTrackerFormat()
	if format == "" {
		return fmt.Sprintf("%s: (%g, %g)", s.GetTitle(), x, y)
	}
	replacer := strings.NewReplacer(
		"{title}", s.GetTitle(),
		"{x}", fmt.Sprintf("%g", x),
		"{y}", fmt.Sprintf("%g", y),
		"{index}", fmt.Sprintf("%d", r.Index),
	)
	return replacer.Replace(format)
}
