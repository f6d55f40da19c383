package components

import (
	"strings"

	"github.com/muesli/termenv"
)

// brailleBit returns the bitmask for a dot at offset (offX, offY) within a
// Braille cell. offX is 0 (left) or 1 (right). offY is 0..3 (top to bottom).
//
//	1 4      bit: 0x01  0x08
//	2 5           0x02  0x10
//	3 6           0x04  0x20
//	7 8           0x40  0x80
func brailleBit(offX, offY int) uint8 {
	leftBits := [4]uint8{0x01, 0x02, 0x04, 0x40}
	rightBits := [4]uint8{0x08, 0x10, 0x20, 0x80}

	if offY < 0 || offY > 3 {
		return 0
	}
	if offX == 0 {
		return leftBits[offY]
	}
	return rightBits[offY]
}

// Ink selects the color a dot is painted with. Later ink wins per cell.
type Ink uint8

const (
	InkNone Ink = iota
	InkAxis
	InkLine
)

// Canvas is a grid of braille cells addressed in dots, two per column and
// four per row, with the origin at the top-left.
type Canvas struct {
	cols, rows int
	dots       [][]uint8
	ink        [][]Ink
	text       [][]rune
}

// NewCanvas allocates a blank canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	c := &Canvas{cols: cols, rows: rows}
	c.dots = make([][]uint8, rows)
	c.ink = make([][]Ink, rows)
	c.text = make([][]rune, rows)
	for r := range rows {
		c.dots[r] = make([]uint8, cols)
		c.ink[r] = make([]Ink, cols)
		c.text[r] = make([]rune, cols)
	}
	return c
}

// DotsWide returns the horizontal resolution in dots.
func (c *Canvas) DotsWide() int { return c.cols * 2 }

// DotsHigh returns the vertical resolution in dots.
func (c *Canvas) DotsHigh() int { return c.rows * 4 }

// Set turns on the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int, ink Ink) {
	if x < 0 || y < 0 || x >= c.DotsWide() || y >= c.DotsHigh() {
		return
	}
	col, row := x/2, y/4
	c.dots[row][col] |= brailleBit(x%2, y%4)
	if ink >= c.ink[row][col] {
		c.ink[row][col] = ink
	}
}

// Line draws a straight segment between two dots (Bresenham).
func (c *Canvas) Line(x0, y0, x1, y1 int, ink Ink) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0, ink)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Text writes s into row starting at col, overriding any dots there. Runes
// past the right edge are dropped.
func (c *Canvas) Text(col, row int, s string) {
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range s {
		if col >= c.cols {
			return
		}
		if col >= 0 {
			c.text[row][col] = r
		}
		col++
	}
}

// Palette colors canvas inks. Empty colors leave cells unstyled.
type Palette struct {
	Profile termenv.Profile
	Line    string
	Axis    string
	Text    string
}

// Render returns the canvas as rows joined by newlines.
func (c *Canvas) Render(p Palette) string {
	lines := make([]string, c.rows)
	for r := range c.rows {
		var sb strings.Builder
		for col := range c.cols {
			if t := c.text[r][col]; t != 0 {
				sb.WriteString(p.paint(string(t), p.Text))
				continue
			}
			ch := string(rune(0x2800 + int(c.dots[r][col])))
			switch {
			case c.dots[r][col] == 0:
				sb.WriteString(" ")
			case c.ink[r][col] == InkLine:
				sb.WriteString(p.paint(ch, p.Line))
			default:
				sb.WriteString(p.paint(ch, p.Axis))
			}
		}
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (p Palette) paint(s, hex string) string {
	if hex == "" {
		return s
	}
	return p.Profile.String(s).Foreground(p.Profile.Color(hex)).String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
