package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/cyberdrift/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// TitleScreen is drawn over the scrolling road while the game sits at the menu
type TitleScreen struct {
	Title    string
	Subtitle string
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(title string) *TitleScreen {
	return &TitleScreen{
		Title:    title,
		Subtitle: "Neon Chase",
	}
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image, f session.Frame) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Dim the road so the text reads
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), color.RGBA{0, 0, 0, 140}, false)

	// Title with pulsing scale (1.0 to 1.1)
	pulse := f.Feedback.Pulse
	titleScale := 5.0 * (1.0 + 0.1*sinWave(pulse*2))
	titleColor := brighten(colornames.Deeppink, 0.2+0.2*sinWave(pulse*3))
	drawCentered(screen, ts.Title, centerX, centerY-8*titleScale, titleScale, titleColor)

	drawCentered(screen, ts.Subtitle, centerX, centerY+60, 2, color.RGBA{180, 180, 220, 255})

	if f.HighScore > 0 {
		drawCentered(screen, fmt.Sprintf("HIGH SCORE %d", f.HighScore), centerX, centerY+110, 2, colornames.Gold)
	}
	if f.Runs > 0 {
		drawCentered(screen, fmt.Sprintf("LAST RUN %d   RUNS %d", f.LastScore, f.Runs), centerX, centerY+145, 1.5, color.RGBA{150, 150, 180, 255})
	}

	// Blink twice per pulse cycle
	if sinWave(pulse*4) > 0 {
		drawCentered(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-120, 1.5, color.RGBA{150, 200, 255, 255})
	}
	drawCentered(screen, "ARROWS/WASD drive  SPACE boost  P pause  Q quit", centerX, float64(height)-80, 1, color.RGBA{120, 120, 150, 255})

	drawDecorativeElements(screen, width, height)
}

// drawDecorativeElements frames the title with two neon rules
func drawDecorativeElements(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{0, 120, 160, 160}
	for _, y := range []float32{float32(height) / 6, float32(height) * 5 / 6} {
		vector.StrokeLine(screen, 0, y, float32(width), y, 2, lineColor, false)
	}
}
