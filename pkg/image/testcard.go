package image

import (
	"image"
	"image/color"
	"image/draw"
)

// barColors are the 75% SMPTE bars, left to right.
var barColors = []color.NRGBA{
	{191, 191, 191, 255}, // gray
	{191, 191, 0, 255},   // yellow
	{0, 191, 191, 255},   // cyan
	{0, 191, 0, 255},     // green
	{191, 0, 191, 255},   // magenta
	{191, 0, 0, 255},     // red
	{0, 0, 191, 255},     // blue
}

// NoSignal draws the camera placeholder: color bars over the top two
// thirds and a black-to-white ramp along the bottom.
func NoSignal(w, h int) *image.NRGBA {
	w, h = max(w, 1), max(h, 1)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	barsH := h * 2 / 3

	for i, c := range barColors {
		x0 := i * w / len(barColors)
		x1 := (i + 1) * w / len(barColors)
		draw.Draw(img, image.Rect(x0, 0, x1, barsH), &image.Uniform{c}, image.Point{}, draw.Src)
	}
	for x := range w {
		v := uint8(0)
		if w > 1 {
			v = uint8(x * 255 / (w - 1))
		}
		draw.Draw(img, image.Rect(x, barsH, x+1, h), &image.Uniform{color.NRGBA{v, v, v, 255}}, image.Point{}, draw.Src)
	}
	return img
}
