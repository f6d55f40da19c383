package image

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/blacktop/go-termimg"
)

// Protocol is a terminal graphics protocol.
type Protocol int

const (
	Halfblocks Protocol = iota
	Kitty
	ITerm2
	Sixel
)

var protocolNames = map[Protocol]string{
	Halfblocks: "halfblocks",
	Kitty:      "kitty",
	ITerm2:     "iterm2",
	Sixel:      "sixel",
}

// String returns the protocol name.
func (p Protocol) String() string {
	if n, ok := protocolNames[p]; ok {
		return n
	}
	return fmt.Sprintf("Protocol(%d)", int(p))
}

// ErrUnknownProtocol is returned by ParseProtocol.
var ErrUnknownProtocol = errors.New("unknown graphics protocol")

// ParseProtocol resolves a protocol name, case-insensitively.
func ParseProtocol(name string) (Protocol, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for p, pn := range protocolNames {
		if pn == n {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProtocol, name)
}

// Renderer converts images into terminal strings for one protocol.
type Renderer struct {
	protocol     Protocol
	cellW, cellH int
	cache        *Cache
	logger       *slog.Logger
}

// NewRenderer returns a renderer with a 4 MB cache and default cell size.
func NewRenderer(p Protocol, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{
		protocol: p,
		cellW:    DefaultCellW,
		cellH:    DefaultCellH,
		cache:    NewCache(0),
		logger:   logger,
	}
}

// SetCellSize overrides the pixel size of one terminal cell.
func (r *Renderer) SetCellSize(w, h int) {
	if w > 0 && h > 0 {
		r.cellW, r.cellH = w, h
	}
}

// Protocol returns the active protocol.
func (r *Renderer) Protocol() Protocol { return r.protocol }

// Cache exposes the render cache.
func (r *Renderer) Cache() *Cache { return r.cache }

// Render draws img into at most cols x rows cells.
func (r *Renderer) Render(img image.Image, cols, rows int) (string, error) {
	if img == nil {
		return "", errors.New("image: render: nil image")
	}
	if cols <= 0 || rows <= 0 {
		return "", nil
	}

	key := CacheKey{Protocol: r.protocol, Cols: cols, Rows: rows, ImageHash: hashImage(img)}
	if s, ok := r.cache.Get(key); ok {
		return s, nil
	}

	var (
		out string
		err error
	)
	switch r.protocol {
	case Kitty:
		out, err = r.renderTermimg(img, termimg.Kitty, cols, rows)
	case ITerm2:
		out, err = r.renderTermimg(img, termimg.ITerm2, cols, rows)
	case Sixel:
		out, err = r.renderTermimg(img, termimg.Sixel, cols, rows)
	default:
		// Halfblocks pack two pixel rows per cell at one pixel per column.
		out = Halfblock(ResizeToFit(img, cols, rows, 1, 2))
	}
	if err != nil {
		return "", fmt.Errorf("image: render %s: %w", r.protocol, err)
	}

	r.logger.Debug("image rendered", "key", key.String(), "bytes", len(out))
	r.cache.Put(key, out)
	return out, nil
}

func (r *Renderer) renderTermimg(img image.Image, p termimg.Protocol, cols, rows int) (string, error) {
	fitted := ResizeToFit(img, cols, rows, r.cellW, r.cellH)
	ti := termimg.New(fitted)
	if ti == nil {
		return "", errors.New("go-termimg: failed to wrap image")
	}
	ti.Protocol(p).Size(cols, rows).Scale(termimg.ScaleFit)
	return ti.Render()
}

// Halfblock renders img with one cell per pixel column and two pixel rows
// per cell: the upper half block takes the top pixel as foreground and the
// bottom pixel as background. Fully transparent pixels show the terminal
// default.
func Halfblock(img image.Image) string {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return ""
	}
	px := ToNRGBA(img)

	var sb strings.Builder
	sb.Grow(w * ((h + 1) / 2) * 40)
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteString("\x1b[0m\n")
		}
		for x := range w {
			top := px.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			hasBot := y+1 < h
			bot := px.NRGBAAt(b.Min.X+x, b.Min.Y+y+1)
			if !hasBot {
				bot.A = 0
			}
			switch {
			case top.A == 0 && bot.A == 0:
				sb.WriteString("\x1b[0m ")
			case top.A == 0:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▄", bot.R, bot.G, bot.B)
			case bot.A == 0:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}
