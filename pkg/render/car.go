package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type spriteKey struct {
	w, h int
	c    color.RGBA
}

// carSprites caches one top-down car image per size and colour
type carSprites struct {
	cache map[spriteKey]*ebiten.Image
}

func newCarSprites() *carSprites {
	return &carSprites{cache: make(map[spriteKey]*ebiten.Image)}
}

// sprite returns the cached image for a car, building it on first use.
// The bonnet points up.
func (cs *carSprites) sprite(width, height float64, carColor color.RGBA) *ebiten.Image {
	key := spriteKey{int(width), int(height), carColor}
	if img, ok := cs.cache[key]; ok {
		return img
	}

	w, h := float32(width), float32(height)
	img := ebiten.NewImage(key.w, key.h)

	// Body
	vector.DrawFilledRect(img, 0, 0, w, h, carColor, false)

	// Outline
	outlineColor := color.RGBA{20, 20, 20, 255}
	vector.StrokeRect(img, 1, 1, w-2, h-2, 2, outlineColor, false)

	// Windshield across the front
	windshieldColor := color.RGBA{150, 200, 255, 200}
	windshieldWidth := w * 0.6
	windshieldHeight := h * 0.2
	vector.DrawFilledRect(img, (w-windshieldWidth)/2, h*0.15, windshieldWidth, windshieldHeight, windshieldColor, false)

	// Wheels
	wheelColor := color.RGBA{30, 30, 30, 255}
	const wheelWidth, wheelHeight = 6, 10
	for _, wy := range []float32{5, h - wheelHeight - 5} {
		vector.DrawFilledRect(img, 2, wy, wheelWidth, wheelHeight, wheelColor, false)
		vector.DrawFilledRect(img, w-wheelWidth-2, wy, wheelWidth, wheelHeight, wheelColor, false)
	}

	// Neon tail lights
	tailColor := color.RGBA{255, 40, 80, 255}
	vector.DrawFilledRect(img, 4, h-4, 8, 3, tailColor, false)
	vector.DrawFilledRect(img, w-12, h-4, 8, 3, tailColor, false)

	cs.cache[key] = img
	return img
}

// drawCar renders a car centred at (x, y). A positive angle turns the
// bonnet to the left.
func (cs *carSprites) drawCar(screen *ebiten.Image, x, y, width, height, angle float64, carColor color.RGBA) {
	img := cs.sprite(width, height, carColor)

	op := &ebiten.DrawImageOptions{}
	// Centre the car image for rotation
	op.GeoM.Translate(-width/2, -height/2)
	op.GeoM.Rotate(-angle * math.Pi / 180)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(img, op)
}
