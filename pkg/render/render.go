// Package render draws the world from a session frame. It only reads the
// frame and never feeds anything back into the simulation.
package render

import (
	"image/color"

	"github.com/golangdaddy/cyberdrift/pkg/background"
	"github.com/golangdaddy/cyberdrift/pkg/session"
	"github.com/golangdaddy/cyberdrift/pkg/traffic"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// Colours for the cars
var (
	PlayerColor     = colornames.Deepskyblue
	EnemyColor      = colornames.Mediumorchid
	AggressiveColor = colornames.Orangered
	ShieldColor     = color.RGBA{0, 195, 255, 255}
)

// EngineGlowOffset is how far behind an enemy's centre its exhaust glows
const EngineGlowOffset = 35

// Renderer draws the road, cars, pickups and effects
type Renderer struct {
	backdrop *ebiten.Image
	cars     *carSprites
}

// NewRenderer builds the static backdrop for a screen of the given size
func NewRenderer(width, height int, seed int64) *Renderer {
	return &Renderer{
		backdrop: background.NewGenerator(width, height).GenerateCity(seed),
		cars:     newCarSprites(),
	}
}

// Draw renders one frame of the world
func (r *Renderer) Draw(screen *ebiten.Image, f session.Frame) {
	screen.DrawImage(r.backdrop, nil)

	drawRoad(screen, f.Road)
	drawPowerUps(screen, f.PowerUps)

	for _, e := range f.Enemies {
		drawEngineGlow(screen, e.Exhaust(EngineGlowOffset))
		r.cars.drawCar(screen, e.Position.X, e.Position.Y, e.Width, e.Height, e.Angle, enemyColor(e))
	}

	// The menu shows only the road and the wreck is left to the explosion
	if f.State == session.StatePlaying || f.State == session.StatePaused {
		p := f.Player
		r.cars.drawCar(screen, p.Position.X, p.Position.Y, p.Width, p.Height, p.Angle, PlayerColor)
		if p.Shield > 0 {
			drawShield(screen, p.Position, p.Height, p.Shield/p.Config().MaxShield, f.Feedback.Pulse)
		}
	}

	drawParticles(screen, f.Particles)
	drawRings(screen, f.Rings)
}

// enemyColor shades cars that are likely to chase the player
func enemyColor(e traffic.Enemy) color.RGBA {
	if e.Aggression > 0.5 {
		return AggressiveColor
	}
	return EnemyColor
}
