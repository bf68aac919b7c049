package effects

import (
	"image/color"

	"github.com/golangdaddy/cyberdrift/pkg/geom"
)

// Particle is a single glowing dot that drifts, shrinks and fades out
type Particle struct {
	Position    geom.Vector2
	Velocity    geom.Vector2
	Color       color.RGBA
	Size        float64
	Lifetime    int // Ticks left
	MaxLifetime int
}

func newParticle(pos, vel geom.Vector2, c color.RGBA, size float64, lifetime int) Particle {
	return Particle{
		Position:    pos,
		Velocity:    vel,
		Color:       c,
		Size:        size,
		Lifetime:    lifetime,
		MaxLifetime: lifetime,
	}
}

func (p *Particle) update(shrink float64) {
	p.Position = p.Position.Add(p.Velocity)
	p.Lifetime--
	p.Size = max(0, p.Size*shrink)
}

// Dead reports whether the particle has used up its lifetime
func (p *Particle) Dead() bool {
	return p.Lifetime <= 0
}

// Alpha returns the opacity from 0 to 255, proportional to the life left
func (p *Particle) Alpha() uint8 {
	return fade(255, p.Lifetime, p.MaxLifetime)
}

// updateParticles advances every particle and drops the dead ones in place
func updateParticles(ps []Particle, shrink float64) []Particle {
	for i := range ps {
		ps[i].update(shrink)
	}
	alive := ps[:0]
	for _, p := range ps {
		if !p.Dead() {
			alive = append(alive, p)
		}
	}
	return alive
}

func fade(peak float64, life, maxLife int) uint8 {
	if maxLife <= 0 || life <= 0 {
		return 0
	}
	if life > maxLife {
		life = maxLife
	}
	return uint8(peak * float64(life) / float64(maxLife))
}
