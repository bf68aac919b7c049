package entity

import (
	"math"

	"github.com/golangdaddy/cyberdrift/pkg/geom"
	"github.com/google/uuid"
)

// Body carries the kinematic state shared by the player, enemies and power-ups
type Body struct {
	ID       uuid.UUID
	Position geom.Vector2
	Velocity geom.Vector2
	Angle    float64 // Sprite angle in degrees (0 = facing up, positive = counter-clockwise)
	Width    float64 // Unrotated sprite width in pixels
	Height   float64 // Unrotated sprite height in pixels
}

// NewBody creates a body with a fresh identity centred at (x, y)
func NewBody(x, y, width, height float64) Body {
	return Body{
		ID:       uuid.New(),
		Position: geom.Vec(x, y),
		Width:    width,
		Height:   height,
	}
}

// Step integrates one tick: position += velocity
func (b *Body) Step() {
	b.Position = b.Position.Add(b.Velocity)
}

// Speed returns the magnitude of the velocity in pixels per tick
func (b *Body) Speed() float64 {
	return b.Velocity.Length()
}

// Bounds returns the axis-aligned box enclosing the sprite rotated by Angle
func (b *Body) Bounds() geom.Rect {
	sin, cos := math.Sincos(b.Angle * math.Pi / 180)
	sin, cos = math.Abs(sin), math.Abs(cos)
	w := b.Width*cos + b.Height*sin
	h := b.Width*sin + b.Height*cos
	return geom.RectAround(b.Position, w, h)
}

// Overlaps reports whether the bounding boxes of b and o intersect
func (b *Body) Overlaps(o *Body) bool {
	return b.Bounds().Overlaps(o.Bounds())
}

// OverlapsCircle reports whether the circle at c intersects b's bounding box
func (b *Body) OverlapsCircle(c geom.Vector2, radius float64) bool {
	return b.Bounds().OverlapsCircle(c, radius)
}

// OutsideVertical reports whether the body's centre is above top or below bottom
func (b *Body) OutsideVertical(top, bottom float64) bool {
	return b.Position.Y < top || b.Position.Y > bottom
}

// Exhaust returns the point offset pixels behind the body along its heading
func (b *Body) Exhaust(offset float64) geom.Vector2 {
	sin, cos := math.Sincos(b.Angle * math.Pi / 180)
	return b.Position.Add(geom.Vec(sin, cos).Scale(offset))
}
