package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/cyberdrift/pkg/player"
	"github.com/golangdaddy/cyberdrift/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// SpeedFactor converts pixels per tick into the km/h readout
const SpeedFactor = 10

var (
	panelColor  = color.RGBA{20, 20, 30, 200}
	borderColor = color.RGBA{100, 100, 140, 255}
	healthColor = color.RGBA{57, 255, 20, 255}
	warnColor   = color.RGBA{255, 230, 0, 255}
	lowColor    = color.RGBA{255, 0, 153, 255}
	shieldColor = color.RGBA{0, 195, 255, 255}
	boostColor  = color.RGBA{255, 230, 0, 255}
)

// HUD draws the in-run readouts: speed, score and the resource bars
type HUD struct{}

// NewHUD creates a new HUD
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD
func (h *HUD) Draw(screen *ebiten.Image, f session.Frame) {
	width := float64(screen.Bounds().Dx())
	cfg := f.Player.Config()

	h.drawSpeedometer(screen, 20, 20, f.Speed)

	// Score flashes white on pickups
	scoreText := fmt.Sprintf("SCORE %d", f.Score)
	scale := 2.0 + 0.5*f.Feedback.ScoreFlash
	drawText(screen, scoreText, width-20-textWidth(scoreText, scale), 20, scale, brighten(colornames.Gold, f.Feedback.ScoreFlash))
	hiText := fmt.Sprintf("HI %d", max(f.HighScore, f.Score))
	drawText(screen, hiText, width-20-textWidth(hiText, 1.5), 60, 1.5, color.RGBA{180, 180, 200, 255})

	barX, barW := width-200, 180.0
	drawBar(screen, "HP", barX, 90, barW, fraction(f.Player.Health, cfg.MaxHealth), healthBarColor(f.Player.Condition(), f.Feedback.DamageFlash))
	drawBar(screen, "SH", barX, 115, barW, fraction(f.Player.Shield, cfg.MaxShield), shieldColor)
	drawBar(screen, "BO", barX, 140, barW, fraction(float64(f.Player.Boost), float64(cfg.BoostCharge)), boostColor)

	if f.Feedback.DamageFlash > 0 {
		drawDamageFlash(screen, f.Feedback.DamageFlash)
	}
}

// drawSpeedometer draws the km/h panel in the top-left corner
func (h *HUD) drawSpeedometer(screen *ebiten.Image, x, y, speed float64) {
	const width, height = 160.0, 70.0
	vector.DrawFilledRect(screen, float32(x), float32(y), width, height, panelColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), width, height, 2, borderColor, false)

	kmh := int(speed * SpeedFactor)
	speedText := fmt.Sprintf("%d", kmh)

	// Green for cruising, yellow when fast, red near the limit
	var speedColor color.RGBA
	switch {
	case kmh < 50:
		speedColor = color.RGBA{100, 255, 100, 255}
	case kmh < 90:
		speedColor = color.RGBA{255, 255, 100, 255}
	default:
		speedColor = color.RGBA{255, 100, 100, 255}
	}
	drawCentered(screen, speedText, x+width/2, y+8, 3, speedColor)
	drawCentered(screen, "KM/H", x+width/2, y+height-22, 1.5, color.RGBA{200, 200, 200, 255})
}

// drawBar draws a labelled meter filled to frac
func drawBar(screen *ebiten.Image, label string, x, y, width, frac float64, c color.RGBA) {
	const height = 16
	drawText(screen, label, x-30, y, 1, color.RGBA{200, 200, 200, 255})
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), height, color.RGBA{40, 40, 40, 255}, false)
	if fill := float32(width * frac); fill > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), fill, height, c, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), height, 1, borderColor, false)
}

// drawDamageFlash tints the screen edges red
func drawDamageFlash(screen *ebiten.Image, level float64) {
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	a := uint8(160 * level)
	c := color.RGBA{a, 0, 0, a}
	const edge = 24
	vector.DrawFilledRect(screen, 0, 0, w, edge, c, false)
	vector.DrawFilledRect(screen, 0, h-edge, w, edge, c, false)
	vector.DrawFilledRect(screen, 0, edge, edge, h-2*edge, c, false)
	vector.DrawFilledRect(screen, w-edge, edge, edge, h-2*edge, c, false)
}

// healthBarColor flashes white on a hit and otherwise follows the condition
func healthBarColor(c player.Condition, damageFlash float64) color.RGBA {
	switch {
	case damageFlash > 0:
		return color.RGBA{255, 255, 255, 255}
	case c == player.ConditionCritical:
		return lowColor
	case c == player.ConditionDamaged:
		return warnColor
	}
	return healthColor
}

func fraction(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return max(0, min(1, v/limit))
}
