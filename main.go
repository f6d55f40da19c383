// collar-pulse is a terminal dashboard for a smart pet collar.
//
// It shows a home menu, live vitals with time-series charts, a camera
// placeholder, a message list and two preview pages, navigated as a stack.
//
// Usage:
//
//	collar-pulse [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/collar-pulse/config.toml)
//	-start string     Start screen (home|stats|fpvstream|conversation|day|night)
//	-theme string     Theme name (night|day|gruvbox|nord)
//	-seed uint        Seed for the vitals generator (0 = random)
//	-messages string  YAML conversation to show instead of the demo
//	-export string    Write the vitals charts to a PNG file and exit
//	-preview string   Draw the vitals charts inline (auto|halfblocks|kitty|iterm2|sixel) and exit
//	-verbose          Enable debug logging
//	-version          Print version and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/collar-pulse/pkg/app"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/config"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/conversation"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/export"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/history"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/image"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/nav"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/sample"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/screen"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/terminal"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/theme"
	"gitlab.com/tinyland/lab/collar-pulse/pkg/views"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Path to configuration file")
		startScreen  = flag.String("start", "", "Start screen (home|stats|fpvstream|conversation|day|night)")
		themeName    = flag.String("theme", "", "Theme name (night|day|gruvbox|nord)")
		seed         = flag.Uint64("seed", 0, "Seed for the vitals generator (0 = random)")
		messagesPath = flag.String("messages", "", "YAML conversation to show instead of the demo")
		exportPath   = flag.String("export", "", "Write the vitals charts to a PNG file and exit")
		preview      = flag.String("preview", "", "Draw the vitals charts inline (auto|halfblocks|kitty|iterm2|sixel) and exit")
		verbose      = flag.Bool("verbose", false, "Enable debug logging")
		showVersion  = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("collar-pulse %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *startScreen != "" {
		if cfg.General.StartScreen, err = screen.Parse(*startScreen); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -start: %v\n", err)
			os.Exit(1)
		}
	}
	if *themeName != "" {
		cfg.Theme.Name = *themeName
	}
	if *seed != 0 {
		cfg.Stats.Seed = *seed
	}
	if *verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	th, err := resolveTheme(cfg.Theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load theme: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(cfg.General)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Info("starting", "version", version, "start", cfg.General.StartScreen, "theme", th.Name)

	feed := sample.NewFeed(cfg.SampleMetrics(), cfg.Stats.Seed)
	feed.RecordTo(history.New(history.Config{Retention: cfg.Stats.HistoryRetention.Duration}), nil)

	switch {
	case *exportPath != "":
		if err := exportPNG(*exportPath, cfg, th, feed); err != nil {
			fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
			os.Exit(1)
		}
		logger.Info("exported charts", "path", *exportPath)

	case *preview != "":
		if err := previewCharts(*preview, cfg, th, feed, logger); err != nil {
			fmt.Fprintf(os.Stderr, "preview failed: %v\n", err)
			os.Exit(1)
		}

	default:
		if !terminal.IsTerminal(os.Stdout) {
			fmt.Fprintln(os.Stderr, "collar-pulse needs a terminal; use -export to write charts to a file")
			os.Exit(1)
		}
		msgs, err := loadConversation(*messagesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load messages: %v\n", err)
			os.Exit(1)
		}
		if err := runTUI(cfg, th, feed, msgs, logger); err != nil {
			logger.Error("TUI error", "error", err)
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func resolveTheme(tc config.ThemeConfig) (theme.Theme, error) {
	if tc.File != "" {
		return theme.LoadFile(tc.File)
	}
	th, ok := theme.Lookup(tc.Name)
	if !ok {
		return theme.Theme{}, fmt.Errorf("unknown theme %q (available: %v)", tc.Name, theme.Names())
	}
	return th, nil
}

func openLogger(g config.GeneralConfig) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(g.LogFile), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: g.SlogLevel()}))
	return logger, func() { f.Close() }, nil
}

func loadConversation(path string) (conversation.Conversation, error) {
	if path == "" {
		return conversation.Sample(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return conversation.Parse(f)
}

func runTUI(cfg *config.Config, th theme.Theme, feed *sample.Feed, msgs conversation.Conversation, logger *slog.Logger) error {
	zones := zone.New()
	defer zones.Close()

	styles := theme.NewStyles(th)
	host := terminal.Detect()
	profile := terminal.ColorProfile(host)
	logger.Debug("terminal", "emulator", host, "profile", profile, "ssh", terminal.IsSSH())
	demo := []sample.Metric{sample.Hemoglobin, sample.Hemoglobin, sample.Hemoglobin}

	model, err := app.New(app.Config{
		Start:           cfg.General.StartScreen,
		RefreshInterval: cfg.Stats.RefreshInterval.Duration,
		Styles:          styles,
		Logger:          logger,
	}, zones, func(c *nav.Controller) map[screen.ID]views.View {
		return views.New(views.Deps{
			Nav:     c,
			Styles:  styles,
			Zones:   zones,
			Profile: profile,
			Logger:  logger,
		}, views.Options{
			Feed:         feed,
			DemoFeed:     sample.NewFeed(demo, cfg.Stats.Seed),
			Chart:        cfg.Chart.ChartOptions(),
			ChartRows:    cfg.Chart.Height,
			SeriesLength: cfg.Stats.SeriesLength,
			Conversation: msgs,
			Camera:       image.NewRenderer(image.Halfblocks, logger),
		})
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func chartPanels(cfg *config.Config, feed *sample.Feed) []export.Panel {
	snaps := feed.Refresh(cfg.Stats.SeriesLength)
	panels := make([]export.Panel, len(snaps))
	for i, s := range snaps {
		panels[i] = export.Panel{Label: s.Reading.String(), Samples: s.Series}
	}
	return panels
}

func exportPNG(path string, cfg *config.Config, th theme.Theme, feed *sample.Feed) error {
	ex, err := export.New(cfg.Chart.ChartOptions(), th, export.DefaultOptions())
	if err != nil {
		return err
	}
	defer ex.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ex.WritePNG(f, chartPanels(cfg, feed)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func previewCharts(protoName string, cfg *config.Config, th theme.Theme, feed *sample.Feed, logger *slog.Logger) error {
	proto, err := terminal.ResolveProtocol(protoName)
	if err != nil {
		return err
	}
	if !terminal.IsTerminal(os.Stdout) {
		return errors.New("stdout is not a terminal")
	}
	size := terminal.GetSize()
	logger.Debug("preview", "protocol", proto, "cols", size.Cols, "rows", size.Rows)

	ex, err := export.New(cfg.Chart.ChartOptions(), th, export.DefaultOptions())
	if err != nil {
		return err
	}
	defer ex.Close()
	img, err := ex.Draw(chartPanels(cfg, feed))
	if err != nil {
		return err
	}

	out, err := image.NewRenderer(proto, logger).Render(img, size.Cols, max(size.Rows-1, 1))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
