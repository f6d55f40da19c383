// Package export rasterizes stats charts to PNG. Each chart is a bordered
// panel; the line and axes come from the same chart.RenderedChart the
// terminal painter uses, so the file matches what the screen shows.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/chart"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/theme"
)

const (
	dpi         = 72
	fontSize    = 14
	strokeWidth = 2.0
	axisWidth   = 1.0
)

// Panel is one chart row in the exported image.
type Panel struct {
	Label   string
	Samples []float64
}

// Options size the exported panels.
type Options struct {
	PanelWidth  int // pixels, border included
	PanelHeight int
	Padding     int // between border and chart viewport
}

// DefaultOptions returns 640x160 panels with 12px padding.
func DefaultOptions() Options {
	return Options{PanelWidth: 640, PanelHeight: 160, Padding: 12}
}

// Exporter draws chart panels with one palette and chart configuration.
type Exporter struct {
	opts  Options
	chart chart.Config
	pal   palette
	ctx   *freetype.Context
	face  font.Face
}

type palette struct {
	bg, fg, border, axis color.NRGBA
}

// New parses the label font and prepares an exporter. cfg's Width and
// Height are replaced by the panel viewport.
func New(cfg chart.Config, th theme.Theme, opts Options) (*Exporter, error) {
	if opts.PanelWidth <= 2*opts.Padding || opts.PanelHeight <= 2*opts.Padding {
		return nil, fmt.Errorf("export: panel %dx%d too small for padding %d",
			opts.PanelWidth, opts.PanelHeight, opts.Padding)
	}
	cfg.Width = float64(opts.PanelWidth - 2*opts.Padding)
	cfg.Height = float64(opts.PanelHeight - 2*opts.Padding)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	parsed, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("export: parsing font: %w", err)
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(parsed)
	ctx.SetFontSize(fontSize)
	ctx.SetHinting(font.HintingNone)

	pal := palette{}
	for _, c := range []struct {
		dst *color.NRGBA
		hex string
	}{
		{&pal.bg, th.Background},
		{&pal.fg, th.Foreground},
		{&pal.border, th.Border},
		{&pal.axis, th.ChartAxis},
	} {
		if *c.dst, err = parseHex(c.hex); err != nil {
			return nil, fmt.Errorf("export: theme %s: %w", th.Name, err)
		}
	}

	return &Exporter{
		opts:  opts,
		chart: cfg,
		pal:   pal,
		ctx:   ctx,
		face: truetype.NewFace(parsed, &truetype.Options{
			Size:    fontSize,
			DPI:     dpi,
			Hinting: font.HintingNone,
		}),
	}, nil
}

// Close releases the font face.
func (e *Exporter) Close() error {
	return e.face.Close()
}

// Draw renders panels stacked top to bottom.
func (e *Exporter) Draw(panels []Panel) (*image.RGBA, error) {
	w, h := e.opts.PanelWidth, e.opts.PanelHeight*max(len(panels), 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{e.pal.bg}, image.Point{}, draw.Src)

	e.ctx.SetDst(img)
	e.ctx.SetClip(img.Bounds())
	for i, p := range panels {
		if err := e.drawPanel(img, i*e.opts.PanelHeight, p); err != nil {
			return nil, fmt.Errorf("drawing panel %q: %w", p.Label, err)
		}
	}
	return img, nil
}

// WritePNG draws panels and encodes them to wr.
func (e *Exporter) WritePNG(wr io.Writer, panels []Panel) error {
	img, err := e.Draw(panels)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := png.Encode(wr, img); err != nil {
		return fmt.Errorf("export: encoding png: %w", err)
	}
	return nil
}

func (e *Exporter) drawPanel(img *image.RGBA, top int, p Panel) error {
	rc, err := chart.Render(p.Label, p.Samples, e.chart)
	if err != nil {
		return err
	}
	stroke, err := parseHex(rc.StrokeColor)
	if err != nil {
		return err
	}

	frame := image.Rect(0, top, e.opts.PanelWidth, top+e.opts.PanelHeight)
	drawBorder(img, frame.Inset(2), e.pal.border)

	// Chart space is Y-up; flip into the panel.
	ox := float32(e.opts.Padding)
	oy := float32(top + e.opts.Padding)
	toPx := func(pt chart.Point) (float32, float32) {
		return ox + float32(pt.X), oy + float32(e.chart.Height-pt.Y)
	}

	if ax := rc.Axis; ax != nil {
		x0, y0 := toPx(ax.X[0])
		x1, y1 := toPx(ax.X[1])
		strokeLine(img, []float32{x0, y0, x1, y1}, axisWidth, e.pal.axis)
		x0, y0 = toPx(ax.Y[0])
		x1, y1 = toPx(ax.Y[1])
		strokeLine(img, []float32{x0, y0, x1, y1}, axisWidth, e.pal.axis)
	}

	pts := make([]float32, 0, 2*len(rc.Path))
	for _, pt := range rc.Path {
		x, y := toPx(pt)
		pts = append(pts, x, y)
	}
	if len(pts) == 2 {
		pts = append(pts, pts[0]+0.5, pts[1])
	}
	strokeLine(img, pts, strokeWidth, stroke)

	e.ctx.SetSrc(&image.Uniform{e.pal.fg})
	metrics := e.face.Metrics()
	ascent := metrics.Ascent.Round()

	labelX := int(ox+float32(rc.LabelArea.Min.X)) + 8
	midY := top + e.opts.PanelHeight/2 + ascent/2
	if _, err := e.ctx.DrawString(rc.Label, freetype.Pt(labelX, midY)); err != nil {
		return fmt.Errorf("drawing label: %w", err)
	}

	if rc.Axis != nil {
		for _, tk := range rc.Axis.Ticks {
			_, y := toPx(tk.At)
			pt := freetype.Pt(labelX, int(y)+ascent/2)
			if _, err := e.ctx.DrawString(tk.Text, pt); err != nil {
				return fmt.Errorf("drawing tick: %w", err)
			}
		}
	}
	return nil
}

// strokeLine fills a quad of the given width around each segment of the
// polyline pts (x0, y0, x1, y1, ...).
func strokeLine(img *image.RGBA, pts []float32, width float32, c color.Color) {
	if len(pts) < 4 {
		return
	}
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	half := width / 2
	for i := 0; i+3 < len(pts); i += 2 {
		x0, y0, x1, y1 := pts[i], pts[i+1], pts[i+2], pts[i+3]
		dx, dy := x1-x0, y1-y0
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		z.MoveTo(x0+nx, y0+ny)
		z.LineTo(x1+nx, y1+ny)
		z.LineTo(x1-nx, y1-ny)
		z.LineTo(x0-nx, y0-ny)
		z.ClosePath()
	}
	z.Draw(img, b, &image.Uniform{c}, image.Point{})
}

func drawBorder(img *image.RGBA, r image.Rectangle, c color.Color) {
	src := &image.Uniform{c}
	for _, edge := range []image.Rectangle{
		{r.Min, image.Pt(r.Max.X, r.Min.Y+1)},
		{image.Pt(r.Min.X, r.Max.Y-1), r.Max},
		{r.Min, image.Pt(r.Min.X+1, r.Max.Y)},
		{image.Pt(r.Max.X-1, r.Min.Y), r.Max},
	} {
		draw.Draw(img, edge, src, image.Point{}, draw.Src)
	}
}

func parseHex(hex string) (color.NRGBA, error) {
	var r, g, b uint8
	if len(hex) != 7 || hex[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("color %q is not #RRGGBB", hex)
	}
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
