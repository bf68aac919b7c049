package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/cyberdrift/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// PauseOverlay is drawn over the frozen run while paused
type PauseOverlay struct{}

// Draw renders the pause overlay
func (PauseOverlay) Draw(screen *ebiten.Image, f session.Frame) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 120}, false)

	cx, cy := float64(w)/2, float64(h)/2
	drawCentered(screen, "PAUSED", cx, cy-40, 4, colornames.Cyan)
	drawCentered(screen, "P to resume  ESC for menu  Q to quit", cx, cy+30, 1.5, color.RGBA{180, 180, 200, 255})
}

// GameOverOverlay shows the result of the finished run
type GameOverOverlay struct{}

// Draw renders the game over overlay
func (GameOverOverlay) Draw(screen *ebiten.Image, f session.Frame) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{20, 0, 10, 150}, false)

	cx, cy := float64(w)/2, float64(h)/3
	drawCentered(screen, "GAME OVER", cx, cy, 5, colornames.Red)
	drawCentered(screen, fmt.Sprintf("SCORE %d", f.Score), cx, cy+90, 2.5, colornames.White)

	if f.NewHighScore {
		// Pulse the new record
		c := brighten(colornames.Gold, 0.5+0.5*sinWave(f.Feedback.Pulse*4))
		drawCentered(screen, "NEW HIGH SCORE!", cx, cy+140, 2, c)
	} else {
		drawCentered(screen, fmt.Sprintf("HIGH SCORE %d", f.HighScore), cx, cy+140, 2, colornames.Gold)
	}

	drawCentered(screen, "Press ENTER or SPACE to continue", cx, float64(h)-100, 1.5, color.RGBA{150, 200, 255, 255})
}
