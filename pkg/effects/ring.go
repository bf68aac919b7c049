package effects

import (
	"image/color"

	"github.com/golangdaddy/cyberdrift/pkg/geom"
)

// Ring is an expanding circle shown when a pickup is collected
type Ring struct {
	Position    geom.Vector2
	Color       color.RGBA
	Radius      float64
	MaxRadius   float64
	Lifetime    int
	MaxLifetime int
}

func (r *Ring) update(growth float64) {
	r.Radius += (r.MaxRadius - r.Radius) * growth
	r.Lifetime--
}

// Finished reports whether the ring has faded out
func (r *Ring) Finished() bool {
	return r.Lifetime <= 0
}

// Alpha returns the ring opacity, peaking at 200
func (r *Ring) Alpha() uint8 {
	return fade(200, r.Lifetime, r.MaxLifetime)
}
