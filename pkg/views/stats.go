package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/chart"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/components"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/sample"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
)

// Stats shows a readout per metric above one chart per metric. The demo
// toggle swaps the chart column for three hemoglobin charts.
type Stats struct {
	d         Deps
	feed      *sample.Feed
	demoFeed  *sample.Feed
	cfg       chart.Config
	chartRows int
	seriesLen int

	demo  bool
	snaps []sample.Snapshot
	demos []sample.Snapshot
}

// NewStats wires the stats screen to its feeds. Nil feeds fall back to
// random generators over the built-in metrics.
func NewStats(d Deps, o Options) *Stats {
	if o.Feed == nil {
		o.Feed = sample.NewFeed(sample.DefaultMetrics(), 0)
	}
	if o.DemoFeed == nil {
		o.DemoFeed = sample.NewFeed([]sample.Metric{sample.Hemoglobin, sample.Hemoglobin, sample.Hemoglobin}, 0)
	}
	if o.ChartRows <= 0 {
		o.ChartRows = 4
	}
	if o.SeriesLength <= 0 {
		o.SeriesLength = 20
	}
	if o.Chart.Width == 0 {
		o.Chart = chart.DefaultConfig()
	}
	v := &Stats{
		d:         d,
		feed:      o.Feed,
		demoFeed:  o.DemoFeed,
		cfg:       o.Chart,
		chartRows: o.ChartRows,
		seriesLen: o.SeriesLength,
	}
	v.feed.Subscribe(func(s []sample.Snapshot) { v.snaps = s })
	v.demoFeed.Subscribe(func(s []sample.Snapshot) { v.demos = s })
	return v
}

func (v *Stats) ID() screen.ID { return screen.Stats }
func (v *Stats) Title() string { return screen.Stats.Title() }

// Enter redraws every reading.
func (v *Stats) Enter() tea.Cmd {
	v.refresh()
	return nil
}

func (v *Stats) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(RefreshMsg); ok {
		v.refresh()
	}
	return nil
}

func (v *Stats) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r":
		v.refresh()
	case "d":
		v.demo = !v.demo
		v.refresh()
	}
	return nil
}

// Demo reports whether the demo column is shown.
func (v *Stats) Demo() bool { return v.demo }

// Snapshots returns the draw currently on screen.
func (v *Stats) Snapshots() []sample.Snapshot {
	if v.demo {
		return v.demos
	}
	return v.snaps
}

func (v *Stats) refresh() {
	v.feed.Refresh(v.seriesLen)
	if v.demo {
		v.demoFeed.Refresh(v.seriesLen)
	}
}

func (v *Stats) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := v.d.Styles

	readouts := make([]string, 0, len(v.snaps))
	for _, sn := range v.snaps {
		r := sn.Reading
		val := s.Value.Render(chart.FormatValue(r.Value))
		if r.Unit != "" {
			val += " " + s.Readout.Render(r.Unit)
		}
		body := s.Readout.Render(r.Label) + "\n" + val
		if trend := v.trend(r.Label); trend != "" {
			body += "\n" + s.Dim.Render(trend)
		}
		readouts = append(readouts, s.Panel.Padding(0, 1).Render(body))
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, readouts...)
	if lipgloss.Width(top) > width {
		top = strings.Join(readoutLines(v.snaps), "  ")
		top = components.Fit(top, width)
	}

	rows := []string{top}
	used := lipgloss.Height(top)
	inner := width - 2
	for _, sn := range v.Snapshots() {
		if used+v.chartRows+2 > height || inner < 4 {
			break
		}
		rows = append(rows, v.chartPanel(sn, inner))
		used += v.chartRows + 2
	}
	if len(v.Snapshots()) == 0 {
		rows = append(rows, s.Dim.Render("no readings yet, press r"))
	}
	return fill(lipgloss.JoinVertical(lipgloss.Left, rows...), height)
}

func (v *Stats) chartPanel(sn sample.Snapshot, cols int) string {
	s := v.d.Styles
	cfg := components.ChartConfig(v.cfg, cols, v.chartRows)
	rc, err := chart.Render(sn.Metric.Label, sn.Series, cfg)
	if err != nil {
		v.d.Logger.Error("stats: render chart", "metric", sn.Metric.Label, "err", err)
		return s.Panel.Render(s.Notice.Render(components.Fit(err.Error(), cols)))
	}
	body := components.PaintChart(rc, cols, v.chartRows, components.Palette{
		Profile: v.d.Profile,
		Axis:    s.Theme.ChartAxis,
		Text:    s.Theme.Foreground,
	})
	return s.Panel.Render(body)
}

// trend summarizes the recorded readings of one metric, or returns "" when
// the feed keeps no history or has fewer than two readings.
func (v *Stats) trend(label string) string {
	h := v.feed.History()
	if h == nil {
		return ""
	}
	w, ok := h.Window(label)
	if !ok || w.Len() < 2 {
		return ""
	}
	return fmt.Sprintf("avg %s (%s-%s)",
		chart.FormatValue(w.Avg()), chart.FormatValue(w.Min()), chart.FormatValue(w.Max()))
}

func readoutLines(snaps []sample.Snapshot) []string {
	out := make([]string, len(snaps))
	for i, sn := range snaps {
		out[i] = sn.Reading.String()
	}
	return out
}
