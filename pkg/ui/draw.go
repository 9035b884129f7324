package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	largeText = 3.0
	smallText = 1.5
)

var (
	pixel *ebiten.Image
	face  = text.NewGoXFace(bitmapfont.Face)
)

// fillRect draws a solid rectangle by stretching a single white pixel.
func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(pixel, op)
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

// drawCentered draws s horizontally centered on the screen.
func drawCentered(dst *ebiten.Image, s string, y, scale float64, c color.Color) {
	width := text.Advance(s, face) * scale
	x := float64(dst.Bounds().Dx())/2 - width/2
	drawText(dst, s, x, y, scale, c)
}
