package render

import (
	"image/color"
	"math"

	"github.com/golangdaddy/cyberdrift/pkg/effects"
	"github.com/golangdaddy/cyberdrift/pkg/geom"
	"github.com/golangdaddy/cyberdrift/pkg/powerup"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func drawPowerUps(screen *ebiten.Image, powerUps []powerup.PowerUp) {
	for _, p := range powerUps {
		c := p.Color()
		x, y := float32(p.Position.X), float32(p.Position.Y)
		r := float32(p.Radius) * float32(1+0.1*math.Sin(p.Pulse))

		halo := c
		halo.A = 60
		vector.DrawFilledCircle(screen, x, y, r*1.4, premultiply(halo), true)
		vector.StrokeCircle(screen, x, y, r, 2, c, true)

		// Spinning cross marks the pickup's rotation
		arm := geom.Vec(0, -float64(r)*0.7).Rotate(p.Angle)
		ax, ay := float32(arm.X), float32(arm.Y)
		vector.StrokeLine(screen, x-ax, y-ay, x+ax, y+ay, 2, c, true)
		vector.StrokeLine(screen, x-ay, y+ax, x+ay, y-ax, 2, c, true)
	}
}

func drawParticles(screen *ebiten.Image, particles []effects.Particle) {
	for _, p := range particles {
		c := p.Color
		c.A = p.Alpha()
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(p.Size), premultiply(c), true)
	}
}

func drawRings(screen *ebiten.Image, rings []effects.Ring) {
	for _, r := range rings {
		c := r.Color
		c.A = r.Alpha()
		vector.StrokeCircle(screen, float32(r.Position.X), float32(r.Position.Y), float32(r.Radius), 3, premultiply(c), true)
	}
}

var (
	glowOuter = color.RGBA{255, 0, 100, 128}
	glowInner = color.RGBA{255, 100, 200, 128}
)

// drawEngineGlow lights up an enemy's exhaust
func drawEngineGlow(screen *ebiten.Image, at geom.Vector2) {
	x, y := float32(at.X), float32(at.Y)
	vector.DrawFilledCircle(screen, x, y, 8, premultiply(glowOuter), true)
	vector.DrawFilledCircle(screen, x, y, 4, premultiply(glowInner), true)
}

// drawShield draws a pulsing bubble whose opacity follows the shield level
func drawShield(screen *ebiten.Image, at geom.Vector2, size, level, pulse float64) {
	c := ShieldColor
	c.A = uint8(120 * level * (0.7 + 0.3*math.Sin(pulse*4)))
	vector.StrokeCircle(screen, float32(at.X), float32(at.Y), float32(size*0.65), 2, premultiply(c), true)
}

// premultiply converts a straight-alpha colour into the premultiplied form
// ebiten expects
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		uint8(uint16(c.R) * a / 255),
		uint8(uint16(c.G) * a / 255),
		uint8(uint16(c.B) * a / 255),
		c.A,
	}
}
