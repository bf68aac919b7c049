package background

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Generator creates the static backdrop drawn behind the road
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

var windowColors = []color.RGBA{
	{0, 195, 255, 255},
	{255, 0, 153, 255},
	{255, 230, 0, 255},
}

// GenerateCity creates a night-time city block texture: a dark ground grid
// with lit tower rooftops scattered over it
func (g *Generator) GenerateCity(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	rng := rand.New(rand.NewSource(seed))

	img.Fill(colornames.Midnightblue)

	// Faint grid, brighter towards the bottom of the screen
	gridColor := color.RGBA{40, 20, 80, 255}
	for y := 0; y < g.Height; y += 40 {
		glow := 0.5 + 0.5*float64(y)/float64(g.Height)
		c := scale(gridColor, glow)
		vector.StrokeLine(img, 0, float32(y), float32(g.Width), float32(y), 1, c, false)
	}
	for x := 0; x < g.Width; x += 40 {
		vector.StrokeLine(img, float32(x), 0, float32(x), float32(g.Height), 1, gridColor, false)
	}

	// Towers, laid out top to bottom so lower ones overlap
	for y := 0; y < g.Height; y += 30 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)
		for x := 0; x < g.Width; x += 20 + rng.Intn(30) {
			if rng.Float64() > density {
				continue
			}
			g.drawTower(img, x+rng.Intn(10)-5, y+rng.Intn(10)-5, rng)
		}
	}

	return img
}

// drawTower draws a rooftop seen from above with a few lit windows
func (g *Generator) drawTower(img *ebiten.Image, x, y int, rng *rand.Rand) {
	w := 14 + rng.Intn(16)
	h := 14 + rng.Intn(16)
	shade := uint8(20 + rng.Intn(25))
	roof := color.RGBA{shade, shade, shade + 20, 255}
	vector.DrawFilledRect(img, float32(x), float32(y), float32(w), float32(h), roof, false)

	edge := windowColors[rng.Intn(len(windowColors))]
	vector.StrokeRect(img, float32(x), float32(y), float32(w), float32(h), 1, scale(edge, 0.4), false)

	lit := rng.Intn(4)
	for i := 0; i < lit; i++ {
		wx := x + 2 + rng.Intn(max(1, w-4))
		wy := y + 2 + rng.Intn(max(1, h-4))
		if wx >= 0 && wx < g.Width && wy >= 0 && wy < g.Height {
			img.Set(wx, wy, edge)
		}
	}
}

func scale(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		uint8(float64(c.R) * f),
		uint8(float64(c.G) * f),
		uint8(float64(c.B) * f),
		c.A,
	}
}
