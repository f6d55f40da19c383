// Package chart maps a bounded sequence of numeric samples onto a line plot
// inside a fixed viewport. Render is a pure function: it never mutates its
// input and keeps no state between calls. Painting the result (braille
// cells, PNG pixels) is left to the caller.
package chart

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Point is a position in viewport coordinates. The origin is the
// bottom-left corner and Y grows upward, so larger sample values have
// larger Y.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle from Min (bottom-left) to Max
// (top-right).
type Rect struct {
	Min, Max Point
}

// Dx returns the rectangle width.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the rectangle height.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Tick is an axis label anchored at a point on the Y axis.
type Tick struct {
	At    Point
	Value float64
	Text  string
}

// Axis holds the axis lines and optional tick labels.
type Axis struct {
	X     [2]Point // baseline, left to right
	Y     [2]Point // vertical axis, bottom to top
	Ticks []Tick   // empty unless AxisLabelsVisible
}

// RenderedChart is ready for painting.
type RenderedChart struct {
	Label       string
	Points      []Point // one per finite sample, in input order
	Path        []Point // polyline to stroke; equals Points when not smoothed
	Plot        Rect
	LabelArea   Rect
	Min, Max    float64 // sample range used for scaling
	Smooth      bool
	StrokeColor string
	Axis        *Axis
}

// RelX returns p's horizontal position as a fraction of the plot width.
func (rc RenderedChart) RelX(p Point) float64 {
	if rc.Plot.Dx() == 0 {
		return 0
	}
	return (p.X - rc.Plot.Min.X) / rc.Plot.Dx()
}

// RelY returns p's vertical position as a fraction of the plot height.
func (rc RenderedChart) RelY(p Point) float64 {
	if rc.Plot.Dy() == 0 {
		return 0
	}
	return (p.Y - rc.Plot.Min.Y) / rc.Plot.Dy()
}

// Render scales samples into cfg's viewport. An empty sequence yields a
// chart with no points and the label intact. Non-finite samples are skipped
// and take no part in scaling.
func Render(label string, samples []float64, cfg Config) (RenderedChart, error) {
	if err := cfg.Validate(); err != nil {
		return RenderedChart{}, err
	}

	plotW := cfg.Width * cfg.ViewportWidthFraction
	rc := RenderedChart{
		Label:       label,
		Plot:        Rect{Max: Point{X: plotW, Y: cfg.Height}},
		LabelArea:   Rect{Min: Point{X: plotW}, Max: Point{X: cfg.Width, Y: cfg.Height}},
		Smooth:      cfg.SmoothCurve,
		StrokeColor: cfg.StrokeColor,
	}

	lo, hi, ok := finiteRange(samples)
	if ok {
		rc.Min, rc.Max = lo, hi
		rc.Points = place(samples, lo, hi, rc.Plot)
	}

	switch {
	case len(rc.Points) == 0:
		rc.Path = nil
	case cfg.SmoothCurve:
		rc.Path = clampPath(smoothPath(rc.Points, smoothSteps), rc.Plot)
	default:
		rc.Path = append([]Point(nil), rc.Points...)
	}

	if cfg.ShowAxis {
		rc.Axis = buildAxis(rc, cfg.AxisLabelsVisible && ok)
	}
	return rc, nil
}

// finiteRange returns the min and max of the finite samples.
func finiteRange(samples []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	return lo, hi, ok
}

// place maps every finite sample to the plot rect. X depends only on the
// sample index so skipped samples leave a gap rather than shifting the rest.
func place(samples []float64, lo, hi float64, plot Rect) []Point {
	n := len(samples)
	pts := make([]Point, 0, n)
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		fx := 0.5
		if n > 1 {
			fx = float64(i) / float64(n-1)
		}
		pts = append(pts, Point{
			X: plot.Min.X + fx*plot.Dx(),
			Y: plot.Min.Y + normalize(v, lo, hi)*plot.Dy(),
		})
	}
	return pts
}

// normalize maps v from [lo, hi] to [0, 1]. Equal bounds map to mid-height.
// Spans that overflow float64 are computed on halves.
func normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	span := hi - lo
	frac := (v - lo) / span
	if math.IsInf(span, 0) {
		frac = (v/2 - lo/2) / (hi/2 - lo/2)
	}
	return clamp01(frac)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// clampPath pins flattened points to the plot rect, absorbing rounding in
// the Bézier evaluation.
func clampPath(path []Point, plot Rect) []Point {
	for i, p := range path {
		path[i] = Point{
			X: clampTo(p.X, plot.Min.X, plot.Max.X),
			Y: clampTo(p.Y, plot.Min.Y, plot.Max.Y),
		}
	}
	return path
}

// clampTo limits v to [lo, hi]; NaN maps to lo.
func clampTo(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// buildAxis draws the baseline and vertical axis along the plot edges.
func buildAxis(rc RenderedChart, withTicks bool) *Axis {
	p := rc.Plot
	ax := &Axis{
		X: [2]Point{p.Min, {X: p.Max.X, Y: p.Min.Y}},
		Y: [2]Point{p.Min, {X: p.Min.X, Y: p.Max.Y}},
	}
	if !withTicks {
		return ax
	}
	ax.Ticks = []Tick{
		{At: p.Min, Value: rc.Min, Text: FormatValue(rc.Min)},
		{At: Point{X: p.Min.X, Y: p.Max.Y}, Value: rc.Max, Text: FormatValue(rc.Max)},
	}
	return ax
}

// FormatValue formats a sample for labels with at most one decimal digit,
// dropping trailing zeros ("150", "37.5").
func FormatValue(v float64) string {
	return humanize.FtoaWithDigits(v, 1)
}
