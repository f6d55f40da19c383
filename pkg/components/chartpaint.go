package components

import (
	"math"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/chart"
)

// ChartConfig fits cfg to a cols x rows cell box so that one chart unit is
// one braille dot.
func ChartConfig(cfg chart.Config, cols, rows int) chart.Config {
	cfg.Width = float64(max(cols, 1) * 2)
	cfg.Height = float64(max(rows, 1) * 4)
	return cfg
}

// PaintChart paints rc into a cols x rows cell box. The plot takes the
// left share of the columns given by rc's viewport split; the label sits in
// the remaining columns, vertically centered, with min/max tick labels at
// the bottom and top when the chart carries them.
func PaintChart(rc chart.RenderedChart, cols, rows int, p Palette) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	if p.Line == "" {
		p.Line = rc.StrokeColor
	}

	total := rc.LabelArea.Max.X
	plotCols := cols
	if total > 0 {
		plotCols = int(math.Round(rc.Plot.Dx() / total * float64(cols)))
	}
	plotCols = min(max(plotCols, 1), cols)

	c := NewCanvas(cols, rows)
	toDot := func(pt chart.Point) (int, int) {
		x := int(math.Round(rc.RelX(pt) * float64(plotCols*2-1)))
		y := int(math.Round((1 - rc.RelY(pt)) * float64(rows*4-1)))
		return x, y
	}

	if ax := rc.Axis; ax != nil {
		x0, y0 := toDot(ax.X[0])
		x1, y1 := toDot(ax.X[1])
		c.Line(x0, y0, x1, y1, InkAxis)
		x0, y0 = toDot(ax.Y[0])
		x1, y1 = toDot(ax.Y[1])
		c.Line(x0, y0, x1, y1, InkAxis)
	}

	switch len(rc.Path) {
	case 0:
	case 1:
		x, y := toDot(rc.Path[0])
		c.Set(x, y, InkLine)
	default:
		px, py := toDot(rc.Path[0])
		for _, pt := range rc.Path[1:] {
			x, y := toDot(pt)
			c.Line(px, py, x, y, InkLine)
			px, py = x, y
		}
	}

	labelCols := cols - plotCols
	if labelCols > 1 {
		left := plotCols + 1
		w := labelCols - 1
		c.Text(left, rows/2, Fit(rc.Label, w))
		if ax := rc.Axis; ax != nil && len(ax.Ticks) == 2 && rows >= 3 {
			c.Text(left, rows-1, Fit(ax.Ticks[0].Text, w))
			c.Text(left, 0, Fit(ax.Ticks[1].Text, w))
		}
	}
	return c.Render(p)
}
