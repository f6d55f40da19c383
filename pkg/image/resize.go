package image

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Default cell size in pixels, used when the terminal does not report one.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// ResizeToFit scales img to fit cols x rows terminal cells of cellW x cellH
// pixels, keeping the aspect ratio. Images that already fit are returned
// unchanged. Downscaled images get a light sharpen to recover edges.
func ResizeToFit(img image.Image, cols, rows, cellW, cellH int) image.Image {
	if img == nil {
		return nil
	}
	if cellW <= 0 {
		cellW = DefaultCellW
	}
	if cellH <= 0 {
		cellH = DefaultCellH
	}
	maxW, maxH := max(cols, 1)*cellW, max(rows, 1)*cellH

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || (b.Dx() <= maxW && b.Dy() <= maxH) {
		return img
	}
	return imaging.Sharpen(imaging.Fit(img, maxW, maxH, imaging.CatmullRom), 0.5)
}

// ToNRGBA converts src to *image.NRGBA for direct pixel access.
func ToNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
