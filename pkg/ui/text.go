package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var face = text.NewGoXFace(bitmapfont.Face)

// drawText draws s with its top-left corner at (x, y)
func drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawCentered draws s horizontally centred on cx
func drawCentered(screen *ebiten.Image, s string, cx, y, scale float64, c color.Color) {
	drawText(screen, s, cx-textWidth(s, scale)/2, y, scale, c)
}

func textWidth(s string, scale float64) float64 {
	return text.Advance(s, face) * scale
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}

// brighten blends c towards white by f in [0, 1]
func brighten(c color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f))
	return color.RGBA{
		c.R + uint8(float64(255-c.R)*f),
		c.G + uint8(float64(255-c.G)*f),
		c.B + uint8(float64(255-c.B)*f),
		c.A,
	}
}
