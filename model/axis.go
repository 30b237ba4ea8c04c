package model

// LinearAxis is a container-owned axis: it accumulates the observed data
// range pushed by series during UpdateAxisMaxMin and linearly projects data
// values onto a screen span. Before the container fits a screen span (or
// before any range is observed) Project is the identity, which keeps the
// series contract testable without a render pass.
type LinearAxis struct {
	key string

	min      float64
	max      float64
	hasRange bool

	screenStart float64
	screenEnd   float64
	hasScreen   bool
}

func NewLinearAxis(key string) *LinearAxis {
	return &LinearAxis{key: key}
}

func (a *LinearAxis) Key() string { return a.key }

// Include extends the observed data range.
func (a *LinearAxis) Include(min, max float64) {
	if min > max {
		min, max = max, min
	}
	if !a.hasRange {
		a.min, a.max = min, max
		a.hasRange = true
		return
	}
	if min < a.min {
		a.min = min
	}
	if max > a.max {
		a.max = max
	}
}

func (a *LinearAxis) Range() (min, max float64, ok bool) {
	return a.min, a.max, a.hasRange
}

// ResetRange forgets the observed range before a fresh update pass.
func (a *LinearAxis) ResetRange() {
	a.min, a.max = 0, 0
	a.hasRange = false
}

// SetScreenRange binds the axis to a pixel span. For y axes start is the
// bottom pixel and end the top one, so projection flips naturally.
func (a *LinearAxis) SetScreenRange(start, end float64) {
	a.screenStart, a.screenEnd = start, end
	a.hasScreen = true
}

func (a *LinearAxis) Project(v float64) float64 {
	if !a.hasScreen || !a.hasRange || a.max == a.min {
		return v
	}
	t := (v - a.min) / (a.max - a.min)
	return a.screenStart + t*(a.screenEnd-a.screenStart)
}
