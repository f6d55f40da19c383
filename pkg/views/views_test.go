package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/conversation"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/history"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/nav"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/sample"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/theme"
)

func newDeps(t *testing.T) Deps {
	t.Helper()
	c, err := nav.New(screen.Home)
	if err != nil {
		t.Fatalf("nav.New error: %v", err)
	}
	z := zone.New()
	t.Cleanup(z.Close)
	return Deps{
		Nav:     c,
		Styles:  theme.NewStyles(theme.Get("night")),
		Zones:   z,
		Profile: termenv.Ascii,
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

func TestNewBuildsEveryScreen(t *testing.T) {
	vs := New(newDeps(t), Options{Conversation: conversation.Sample()})
	for _, id := range screen.All() {
		v, ok := vs[id]
		if !ok {
			t.Errorf("no view for %v", id)
			continue
		}
		if v.ID() != id {
			t.Errorf("view for %v reports ID %v", id, v.ID())
		}
		if v.Title() != id.Title() {
			t.Errorf("view %v Title() = %q, want %q", id, v.Title(), id.Title())
		}
	}
}

func TestViewsFillRequestedHeight(t *testing.T) {
	vs := New(newDeps(t), Options{Conversation: conversation.Sample()})
	for id, v := range vs {
		v.Enter()
		out := v.View(80, 30)
		if n := lineCount(out); n != 30 {
			t.Errorf("%v: View(80, 30) has %d lines, want 30", id, n)
		}
		if v.View(0, 10) != "" {
			t.Errorf("%v: zero-width view should be empty", id)
		}
	}
}

func TestHomeKeysNavigate(t *testing.T) {
	d := newDeps(t)
	h := NewHome(d)

	h.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	if h.Cursor() != 0 {
		t.Errorf("Cursor() after up at top = %d, want 0", h.Cursor())
	}
	h.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if got := d.Nav.Current(); got != screen.FpvStream {
		t.Errorf("Current() = %v, want %v", got, screen.FpvStream)
	}

	h.HandleKey(keyRunes("1"))
	if got := d.Nav.Current(); got != screen.Stats {
		t.Errorf("Current() after 1 = %v, want %v", got, screen.Stats)
	}
	h.HandleKey(keyRunes("9"))
	if d.Nav.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3 (out-of-range digit ignored)", d.Nav.Depth())
	}
}

// waitForZone polls until the manager has recorded id; Scan stores zones
// on a background worker.
func waitForZone(t *testing.T, z *zone.Manager, id string) *zone.ZoneInfo {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if info := z.Get(id); info != nil && !info.IsZero() {
			return info
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("zone %q was never recorded", id)
	return nil
}

func release(x, y int, b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: b}
}

func TestHomeClickOpensScreen(t *testing.T) {
	d := newDeps(t)
	h := NewHome(d)
	d.Zones.Scan(h.View(80, 24))
	info := waitForZone(t, d.Zones, h.zoneID(2))

	h.Update(release(info.StartX, info.StartY, tea.MouseButtonRight))
	h.Update(release(info.StartX, 500, tea.MouseButtonLeft))
	h.Update(tea.MouseMsg{X: info.StartX, Y: info.StartY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if d.Nav.Depth() != 1 {
		t.Fatalf("Depth() = %d after clicks that miss, want 1", d.Nav.Depth())
	}

	h.Update(release(info.StartX, info.StartY, tea.MouseButtonLeft))
	if got := d.Nav.Current(); got != screen.Conversation {
		t.Errorf("Current() after click = %v, want %v", got, screen.Conversation)
	}
	if h.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", h.Cursor())
	}
}

func TestHomeViewListsButtons(t *testing.T) {
	out := NewHome(newDeps(t)).View(80, 24)
	for _, want := range []string{"Health stats", "Camera", "Messages", "Day", "Night"} {
		if !strings.Contains(out, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestStatsRefreshes(t *testing.T) {
	feed := sample.NewFeed(sample.DefaultMetrics(), 7)
	refreshes := 0
	feed.Subscribe(func([]sample.Snapshot) { refreshes++ })

	v := NewStats(newDeps(t), Options{Feed: feed, SeriesLength: 12})
	if len(v.Snapshots()) != 0 {
		t.Fatal("snapshots before Enter")
	}

	v.Enter()
	v.Update(RefreshMsg{})
	v.HandleKey(keyRunes("r"))
	if refreshes != 3 {
		t.Errorf("refreshes = %d, want 3", refreshes)
	}
	snaps := v.Snapshots()
	if len(snaps) != 4 {
		t.Fatalf("len(Snapshots()) = %d, want 4", len(snaps))
	}
	for _, s := range snaps {
		if len(s.Series) != 12 {
			t.Errorf("%s series length = %d, want 12", s.Metric.Label, len(s.Series))
		}
	}

	out := v.View(100, 40)
	for _, m := range sample.DefaultMetrics() {
		if !strings.Contains(out, m.Label) {
			t.Errorf("stats view missing %q", m.Label)
		}
	}
}

func TestStatsTrendFromHistory(t *testing.T) {
	feed := sample.NewFeed([]sample.Metric{sample.HeartRate}, 5)
	at := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	feed.RecordTo(history.New(history.Config{}), func() time.Time {
		at = at.Add(time.Second)
		return at
	})
	v := NewStats(newDeps(t), Options{Feed: feed, SeriesLength: 10})

	v.Enter()
	if strings.Contains(v.View(100, 30), "avg ") {
		t.Error("trend shown after a single reading")
	}
	v.HandleKey(keyRunes("r"))
	if !strings.Contains(v.View(100, 30), "avg ") {
		t.Errorf("trend missing after two readings:\n%s", v.View(100, 30))
	}
}

func TestStatsDemoColumn(t *testing.T) {
	v := NewStats(newDeps(t), Options{})
	v.Enter()
	v.HandleKey(keyRunes("d"))
	if !v.Demo() {
		t.Fatal("d did not enable the demo column")
	}
	snaps := v.Snapshots()
	if len(snaps) != 3 {
		t.Fatalf("demo column has %d charts, want 3", len(snaps))
	}
	for _, s := range snaps {
		if s.Metric != sample.Hemoglobin {
			t.Errorf("demo metric = %v, want Hb", s.Metric)
		}
		for _, x := range s.Series {
			if x < 150 || x > 250 {
				t.Errorf("demo sample %v outside [150, 250]", x)
			}
		}
	}
}

func TestCameraView(t *testing.T) {
	c := New(newDeps(t), Options{})[screen.FpvStream]
	out := c.View(60, 20)
	if !strings.Contains(out, "No signal") {
		t.Error("camera view missing the no-signal notice")
	}
	if !strings.Contains(out, "▀") {
		t.Error("camera view missing the halfblock test card")
	}

	cmd := c.HandleKey(keyRunes("h"))
	if cmd == nil {
		t.Fatal("h returned no command")
	}
	if msg, ok := cmd().(nav.NavigateToMsg); !ok || msg.Screen != screen.Home {
		t.Errorf("h command = %#v, want NavigateToMsg{Home}", msg)
	}
}

func TestMessagesToggleLongCard(t *testing.T) {
	v := NewMessages(newDeps(t), conversation.NewThread(conversation.Sample()))
	v.View(60, 20)

	// First message fits at 60 columns; the second does not.
	v.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if v.Thread().Expanded(0) {
		t.Error("short card expanded")
	}
	v.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	v.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !v.Thread().Expanded(1) {
		t.Fatal("long card did not expand")
	}

	out := v.View(60, 20)
	if !strings.Contains(out, "optical sensor") {
		t.Error("expanded card does not show its full text")
	}
	if n := lineCount(out); n != 20 {
		t.Errorf("View has %d lines, want 20", n)
	}

	v.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if v.Thread().Expanded(1) {
		t.Error("second enter did not collapse the card")
	}
}

func TestMessagesSelectionScrolls(t *testing.T) {
	v := NewMessages(newDeps(t), conversation.NewThread(conversation.Sample()))
	v.View(60, 6)
	for range 6 {
		v.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	}
	out := v.View(60, 6)
	if !strings.Contains(out, "Thanks!") {
		t.Errorf("last message not scrolled into view:\n%s", out)
	}
}

func TestPreviewCards(t *testing.T) {
	vs := New(newDeps(t), Options{})
	tests := []struct {
		id      screen.ID
		text    string
		sibling screen.ID
	}{
		{screen.Day, "This page is Day", screen.Night},
		{screen.Night, "This page is Night", screen.Day},
	}
	for _, tt := range tests {
		v := vs[tt.id]
		out := v.View(80, 10)
		if !strings.Contains(out, tt.text) {
			t.Errorf("%v view missing %q", tt.id, tt.text)
		}
		if !strings.Contains(out, "Developer") {
			t.Errorf("%v view missing author", tt.id)
		}
		msg := v.HandleKey(tea.KeyMsg{Type: tea.KeyTab})()
		if got, ok := msg.(nav.NavigateToMsg); !ok || got.Screen != tt.sibling {
			t.Errorf("%v tab = %#v, want NavigateToMsg{%v}", tt.id, msg, tt.sibling)
		}
	}
}
