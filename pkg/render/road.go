package render

import (
	"image/color"
	"math"

	"github.com/golangdaddy/cyberdrift/pkg/road"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	asphaltColor = color.RGBA{25, 25, 35, 255}
	edgeColor    = color.RGBA{255, 0, 153, 255}
	stripeColor  = color.RGBA{200, 200, 255, 255}
)

func drawRoad(screen *ebiten.Image, v road.View) {
	left, width, height := float32(v.Left), float32(v.Width), float32(v.ScreenHeight)
	vector.DrawFilledRect(screen, left, 0, width, height, asphaltColor, false)

	// Glowing kerbs
	vector.StrokeLine(screen, left, 0, left, height, 3, edgeColor, true)
	vector.StrokeLine(screen, left+width, 0, left+width, height, 3, edgeColor, true)

	sw, sh := float32(v.StripeWidth), float32(v.StripeHeight)
	for _, x := range v.LaneDividers() {
		for _, y := range v.Stripes {
			vector.DrawFilledRect(screen, float32(x)-sw/2, float32(y), sw, sh, stripeColor, false)
		}
	}

	for _, d := range v.Decorations {
		glow := 0.6 + 0.4*math.Sin(d.Pulse)
		c := d.Color
		c.A = uint8(255 * glow)
		x := float32(v.DecorationX(d.Side))
		vector.DrawFilledCircle(screen, x, float32(d.Y), float32(d.Size)*0.5, premultiply(c), true)
		halo := c
		halo.A = uint8(80 * glow)
		vector.DrawFilledCircle(screen, x, float32(d.Y), float32(d.Size), premultiply(halo), true)
	}
}
