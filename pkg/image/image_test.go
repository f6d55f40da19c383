package image

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
)

func makeImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func TestParseProtocol(t *testing.T) {
	tests := []struct {
		in   string
		want Protocol
	}{
		{"halfblocks", Halfblocks},
		{"KITTY", Kitty},
		{" iterm2 ", ITerm2},
		{"sixel", Sixel},
	}
	for _, tt := range tests {
		got, err := ParseProtocol(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseProtocol(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseProtocol("ascii-art"); !errors.Is(err, ErrUnknownProtocol) {
		t.Errorf("ParseProtocol(bad) error = %v, want ErrUnknownProtocol", err)
	}
}

func TestHalfblockSolidColor(t *testing.T) {
	out := Halfblock(makeImage(3, 2, color.NRGBA{255, 0, 0, 255}))
	if n := strings.Count(out, "▀"); n != 3 {
		t.Errorf("got %d upper half blocks, want 3", n)
	}
	if !strings.Contains(out, "\x1b[38;2;255;0;0m\x1b[48;2;255;0;0m") {
		t.Error("missing red fg/bg sequence")
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Error("output not reset at end")
	}
}

func TestHalfblockOddHeight(t *testing.T) {
	out := Halfblock(makeImage(2, 3, color.NRGBA{0, 0, 255, 255}))
	if lines := strings.Count(out, "\n") + 1; lines != 2 {
		t.Errorf("got %d rows, want 2", lines)
	}
	if !strings.Contains(out, "\x1b[49m▀") {
		t.Error("last odd row should use default background")
	}
}

func TestHalfblockTransparent(t *testing.T) {
	out := Halfblock(image.NewNRGBA(image.Rect(0, 0, 2, 2)))
	if strings.ContainsAny(out, "▀▄") {
		t.Errorf("transparent image drew blocks: %q", out)
	}
}

func TestResizeToFit(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		cols, rows   int
		wantW, wantH int
	}{
		{"fits unchanged", 10, 10, 10, 10, 10, 10},
		{"landscape", 400, 100, 10, 10, 80, 20},
		{"portrait", 100, 400, 10, 10, 40, 160},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResizeToFit(makeImage(tt.w, tt.h, color.White), tt.cols, tt.rows, 8, 16)
			b := got.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("ResizeToFit = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
	if ResizeToFit(nil, 1, 1, 8, 16) != nil {
		t.Error("ResizeToFit(nil) should be nil")
	}
}

func TestRendererCachesHalfblocks(t *testing.T) {
	r := NewRenderer(Halfblocks, nil)
	img := NoSignal(70, 30)

	first, err := r.Render(img, 20, 5)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	second, _ := r.Render(img, 20, 5)
	if first != second {
		t.Error("cached render differs")
	}
	if hits, misses := r.Cache().Stats(); hits != 1 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses; want 1, 1", hits, misses)
	}
	if rows := strings.Count(first, "\n") + 1; rows > 5 {
		t.Errorf("render uses %d rows, budget 5", rows)
	}
}

func TestRendererRejectsNil(t *testing.T) {
	if _, err := NewRenderer(Halfblocks, nil).Render(nil, 1, 1); err == nil {
		t.Error("Render(nil) returned no error")
	}
}

func TestCacheEvictsLRU(t *testing.T) {
	c := NewCache(1) // 1 KB
	big := strings.Repeat("x", 400)
	k := func(n int) CacheKey { return CacheKey{Cols: n} }

	c.Put(k(1), big)
	c.Put(k(2), big)
	c.Get(k(1)) // promote 1
	c.Put(k(3), big)

	if _, ok := c.Get(k(2)); ok {
		t.Error("least recently used entry survived")
	}
	if _, ok := c.Get(k(1)); !ok {
		t.Error("promoted entry evicted")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheSkipsOversized(t *testing.T) {
	c := NewCache(1)
	c.Put(CacheKey{}, strings.Repeat("x", 2048))
	if c.Len() != 0 {
		t.Error("oversized entry cached")
	}
}

func TestNoSignalLayout(t *testing.T) {
	img := NoSignal(70, 30)
	if got := img.NRGBAAt(0, 0); got != barColors[0] {
		t.Errorf("top-left = %v, want %v", got, barColors[0])
	}
	if got := img.NRGBAAt(69, 0); got != barColors[6] {
		t.Errorf("top-right = %v, want %v", got, barColors[6])
	}
	if got := img.NRGBAAt(0, 29); got.R != 0 {
		t.Errorf("ramp start = %v, want black", got)
	}
	if got := img.NRGBAAt(69, 29); got.R != 255 {
		t.Errorf("ramp end = %v, want white", got)
	}
}

func TestHashImageDiffers(t *testing.T) {
	a := hashImage(makeImage(4, 4, color.White))
	b := hashImage(makeImage(4, 4, color.Black))
	c := hashImage(makeImage(4, 5, color.White))
	if a == b || a == c {
		t.Error("distinct images share a hash")
	}
	if a != hashImage(makeImage(4, 4, color.White)) {
		t.Error("hash not stable")
	}
}
