package chart

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func straight() Config {
	cfg := DefaultConfig()
	cfg.SmoothCurve = false
	return cfg
}

func TestRenderEmptySamples(t *testing.T) {
	for _, smooth := range []bool{true, false} {
		cfg := DefaultConfig()
		cfg.SmoothCurve = smooth
		cfg.ShowAxis = true
		cfg.AxisLabelsVisible = true

		rc, err := Render("SpO2", nil, cfg)
		if err != nil {
			t.Fatalf("Render(empty, smooth=%v) error: %v", smooth, err)
		}
		if rc.Label != "SpO2" {
			t.Errorf("Label = %q, want %q", rc.Label, "SpO2")
		}
		if len(rc.Points) != 0 || len(rc.Path) != 0 {
			t.Errorf("got %d points, %d path points; want 0", len(rc.Points), len(rc.Path))
		}
		if rc.Axis == nil {
			t.Fatal("Axis = nil with ShowAxis")
		}
		if len(rc.Axis.Ticks) != 0 {
			t.Errorf("empty chart has %d ticks, want 0", len(rc.Axis.Ticks))
		}
	}
}

func TestRenderConstantSamplesFlat(t *testing.T) {
	for _, v := range []float64{5, 0, -3.25, 1e300} {
		rc, err := Render("flat", []float64{v, v, v, v}, DefaultConfig())
		if err != nil {
			t.Fatalf("Render(const %v) error: %v", v, err)
		}
		if len(rc.Points) != 4 {
			t.Fatalf("got %d points, want 4", len(rc.Points))
		}
		mid := rc.Plot.Min.Y + rc.Plot.Dy()/2
		for i, p := range rc.Path {
			if math.Abs(p.Y-mid) > eps {
				t.Errorf("const %v: path[%d].Y = %v, want %v", v, i, p.Y, mid)
			}
		}
	}
}

func TestRenderEdgesStraight(t *testing.T) {
	rc, err := Render("x", []float64{0, 10, 20}, straight())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if got := rc.RelX(rc.Points[0]); got != 0 {
		t.Errorf("RelX(first) = %v, want 0", got)
	}
	if got := rc.RelX(rc.Points[2]); got != 1 {
		t.Errorf("RelX(last) = %v, want 1", got)
	}
}

func TestRenderHbScenario(t *testing.T) {
	rc, err := Render("Hb", []float64{150.0, 200.0, 250.0}, straight())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if len(rc.Points) != 3 {
		t.Fatalf("got %d points, want 3", len(rc.Points))
	}
	wantX := []float64{0, 0.5, 1}
	for i, p := range rc.Points {
		if got := rc.RelX(p); math.Abs(got-wantX[i]) > eps {
			t.Errorf("RelX(points[%d]) = %v, want %v", i, got, wantX[i])
		}
		if i > 0 && !(p.Y > rc.Points[i-1].Y) {
			t.Errorf("points[%d].Y = %v not above points[%d].Y = %v", i, p.Y, i-1, rc.Points[i-1].Y)
		}
	}
	if len(rc.Path) != 3 {
		t.Errorf("straight path has %d points, want 3", len(rc.Path))
	}
	if rc.Min != 150 || rc.Max != 250 {
		t.Errorf("range = [%v, %v], want [150, 250]", rc.Min, rc.Max)
	}
}

func TestRenderSingleSampleCentered(t *testing.T) {
	rc, err := Render("one", []float64{42}, straight())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if len(rc.Points) != 1 {
		t.Fatalf("got %d points, want 1", len(rc.Points))
	}
	if got := rc.RelX(rc.Points[0]); got != 0.5 {
		t.Errorf("RelX = %v, want 0.5", got)
	}
	if got := rc.RelY(rc.Points[0]); got != 0.5 {
		t.Errorf("RelY = %v, want 0.5", got)
	}
}

func TestRenderInvalidConfig(t *testing.T) {
	mod := func(f func(*Config)) Config {
		c := DefaultConfig()
		f(&c)
		return c
	}
	tests := []struct {
		name string
		cfg  Config
	}{
		{"fraction 1.5", mod(func(c *Config) { c.ViewportWidthFraction = 1.5 })},
		{"fraction 0", mod(func(c *Config) { c.ViewportWidthFraction = 0 })},
		{"fraction negative", mod(func(c *Config) { c.ViewportWidthFraction = -0.2 })},
		{"fraction NaN", mod(func(c *Config) { c.ViewportWidthFraction = math.NaN() })},
		{"zero width", mod(func(c *Config) { c.Width = 0 })},
		{"inf height", mod(func(c *Config) { c.Height = math.Inf(1) })},
		{"bad color", mod(func(c *Config) { c.StrokeColor = "green" })},
		{"zero value", Config{}},
	}
	for _, tt := range tests {
		_, err := Render("bad", []float64{1, 2}, tt.cfg)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: error = %v, want ErrInvalidConfig", tt.name, err)
		}
	}
}

func TestFractionOneAccepted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ViewportWidthFraction = 1
	rc, err := Render("full", []float64{1, 2}, cfg)
	if err != nil {
		t.Fatalf("fraction 1 rejected: %v", err)
	}
	if rc.LabelArea.Dx() != 0 {
		t.Errorf("LabelArea.Dx() = %v, want 0", rc.LabelArea.Dx())
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	in := []float64{3, 1, 2, math.NaN()}
	snapshot := append([]float64(nil), in...)
	if _, err := Render("x", in, DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	for i := range in {
		if in[i] != snapshot[i] && !(math.IsNaN(in[i]) && math.IsNaN(snapshot[i])) {
			t.Errorf("input[%d] changed from %v to %v", i, snapshot[i], in[i])
		}
	}
}

func TestPathStaysInsidePlot(t *testing.T) {
	inputs := [][]float64{
		{1, 100, 1, 100, 1},
		{-1e308, 1e308, 0},
		{math.MaxFloat64, -math.MaxFloat64},
		{0.001, 0.002, 0.0015},
		{150, 250, 180, 240, 160, 200},
	}
	huge := DefaultConfig()
	huge.Width, huge.Height = math.MaxFloat64, math.MaxFloat64
	huge.ViewportWidthFraction = 1
	for _, smooth := range []bool{true, false} {
		cfgs := []Config{DefaultConfig(), huge}
		for _, cfg := range cfgs {
			cfg.SmoothCurve = smooth
			checkPathInside(t, cfg, inputs)
		}
	}
}

func checkPathInside(t *testing.T, cfg Config, inputs [][]float64) {
	t.Helper()
	for _, in := range inputs {
		rc, err := Render("bounds", in, cfg)
		if err != nil {
			t.Fatalf("Render(%v) error: %v", in, err)
		}
		for i, p := range rc.Path {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				t.Fatalf("width %g: path[%d] is NaN for %v", cfg.Width, i, in)
			}
			if !rc.Plot.Contains(p) {
				t.Errorf("width %g smooth=%v input %v: path[%d] = %+v outside %+v",
					cfg.Width, cfg.SmoothCurve, in, i, p, rc.Plot)
			}
		}
	}
}

func TestNonFiniteSamplesSkipped(t *testing.T) {
	rc, err := Render("gap", []float64{0, math.NaN(), 10, math.Inf(1)}, straight())
	if err != nil {
		t.Fatal(err)
	}
	if len(rc.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(rc.Points))
	}
	if got := rc.RelX(rc.Points[1]); math.Abs(got-2.0/3.0) > eps {
		t.Errorf("RelX(second point) = %v, want 2/3", got)
	}
	if rc.Max != 10 {
		t.Errorf("Max = %v, want 10", rc.Max)
	}
}

func TestSmoothPathPassesThroughPoints(t *testing.T) {
	rc, err := Render("smooth", []float64{1, 5, 2, 8}, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if want := (len(rc.Points)-1)*smoothSteps + 1; len(rc.Path) != want {
		t.Fatalf("path length = %d, want %d", len(rc.Path), want)
	}
	for i, p := range rc.Points {
		q := rc.Path[i*smoothSteps]
		if math.Abs(p.X-q.X) > eps || math.Abs(p.Y-q.Y) > eps {
			t.Errorf("path[%d] = %+v, want sample point %+v", i*smoothSteps, q, p)
		}
	}
	for i := 1; i < len(rc.Path); i++ {
		if rc.Path[i].X < rc.Path[i-1].X {
			t.Errorf("path X not monotonic at %d", i)
		}
	}
}

func TestViewportSplit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 40
	rc, err := Render("split", []float64{1, 2}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if rc.Plot.Dx() != 160 || rc.Plot.Dy() != 40 {
		t.Errorf("Plot = %+v, want 160x40", rc.Plot)
	}
	if rc.LabelArea.Min.X != 160 || rc.LabelArea.Max.X != 200 {
		t.Errorf("LabelArea = %+v, want x in [160, 200]", rc.LabelArea)
	}
	if rc.StrokeColor != DefaultStrokeColor {
		t.Errorf("StrokeColor = %q, want %q", rc.StrokeColor, DefaultStrokeColor)
	}
}

func TestAxisAndTicks(t *testing.T) {
	cfg := straight()
	rc, _ := Render("no axis", []float64{1, 2}, cfg)
	if rc.Axis != nil {
		t.Error("Axis present without ShowAxis")
	}

	cfg.ShowAxis = true
	rc, _ = Render("axis", []float64{150, 250}, cfg)
	if rc.Axis == nil || len(rc.Axis.Ticks) != 0 {
		t.Fatalf("ShowAxis without labels: Axis = %+v", rc.Axis)
	}

	cfg.AxisLabelsVisible = true
	rc, _ = Render("ticks", []float64{150, 250, 37.5}, cfg)
	if len(rc.Axis.Ticks) != 2 {
		t.Fatalf("got %d ticks, want 2", len(rc.Axis.Ticks))
	}
	if rc.Axis.Ticks[0].Text != "37.5" || rc.Axis.Ticks[1].Text != "250" {
		t.Errorf("tick texts = %q, %q; want 37.5, 250", rc.Axis.Ticks[0].Text, rc.Axis.Ticks[1].Text)
	}

	cfg.ShowAxis = false
	rc, _ = Render("labels only", []float64{1, 2}, cfg)
	if rc.Axis != nil {
		t.Error("AxisLabelsVisible alone should not produce an axis")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{150, "150"},
		{37.5, "37.5"},
		{-12, "-12"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
