package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the file layout of a custom theme.
type tomlTheme struct {
	Name  string    `toml:"name"`
	Base  tomlBase  `toml:"base"`
	Card  tomlCard  `toml:"card"`
	Chart tomlChart `toml:"chart"`
	Stat  tomlStat  `toml:"status"`
	Help  tomlHelp  `toml:"help"`
}

type tomlBase struct {
	Background  string `toml:"background"`
	Foreground  string `toml:"foreground"`
	Dim         string `toml:"dim"`
	Accent      string `toml:"accent"`
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
}

type tomlCard struct {
	Surface  string `toml:"surface"`
	Expanded string `toml:"expanded"`
}

type tomlChart struct {
	Line string `toml:"line"`
	Axis string `toml:"axis"`
}

type tomlStat struct {
	OK    string `toml:"ok"`
	Warn  string `toml:"warn"`
	Error string `toml:"error"`
}

type tomlHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses and validates a theme definition.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:        tt.Name,
		Background:  tt.Base.Background,
		Foreground:  tt.Base.Foreground,
		Dim:         tt.Base.Dim,
		Accent:      tt.Base.Accent,
		Border:      tt.Base.Border,
		BorderFocus: tt.Base.BorderFocus,
		Title:       tt.Base.Title,

		CardSurface:  tt.Card.Surface,
		CardExpanded: tt.Card.Expanded,

		ChartLine: tt.Chart.Line,
		ChartAxis: tt.Chart.Axis,

		StatusOK:    tt.Stat.OK,
		StatusWarn:  tt.Stat.Warn,
		StatusError: tt.Stat.Error,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := validate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a theme from path and registers it.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, err
	}
	if err := Register(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// SaveToTOML serializes a theme in the LoadFromTOML layout.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := tomlTheme{
		Name: t.Name,
		Base: tomlBase{
			Background:  t.Background,
			Foreground:  t.Foreground,
			Dim:         t.Dim,
			Accent:      t.Accent,
			Border:      t.Border,
			BorderFocus: t.BorderFocus,
			Title:       t.Title,
		},
		Card:  tomlCard{Surface: t.CardSurface, Expanded: t.CardExpanded},
		Chart: tomlChart{Line: t.ChartLine, Axis: t.ChartAxis},
		Stat:  tomlStat{OK: t.StatusOK, Warn: t.StatusWarn, Error: t.StatusError},
		Help:  tomlHelp{Key: t.HelpKey, Desc: t.HelpDesc},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// validate checks that the theme is named and every color is #RRGGBB.
func validate(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	colors := []struct{ field, value string }{
		{"background", t.Background},
		{"foreground", t.Foreground},
		{"dim", t.Dim},
		{"accent", t.Accent},
		{"border", t.Border},
		{"border_focus", t.BorderFocus},
		{"title", t.Title},
		{"card.surface", t.CardSurface},
		{"card.expanded", t.CardExpanded},
		{"chart.line", t.ChartLine},
		{"chart.axis", t.ChartAxis},
		{"status.ok", t.StatusOK},
		{"status.warn", t.StatusWarn},
		{"status.error", t.StatusError},
		{"help.key", t.HelpKey},
		{"help.desc", t.HelpDesc},
	}
	for _, c := range colors {
		if !hexColorRegex.MatchString(c.value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", c.value, c.field)
		}
	}
	return nil
}
