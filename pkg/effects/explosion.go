package effects

import (
	"image/color"

	"github.com/golangdaddy/cyberdrift/pkg/geom"
	"github.com/golangdaddy/cyberdrift/pkg/random"
)

// Explosion is a burst of particles flying out from one point
type Explosion struct {
	particles []Particle
}

func newExplosion(at geom.Vector2, c color.RGBA, count int, cfg Config, rng random.Source) *Explosion {
	e := &Explosion{particles: make([]Particle, 0, count)}
	for i := 0; i < count; i++ {
		vel := geom.Vec(
			random.Uniform(rng, -cfg.ExplosionSpeed, cfg.ExplosionSpeed),
			random.Uniform(rng, -cfg.ExplosionSpeed, cfg.ExplosionSpeed),
		)
		size := random.Uniform(rng, cfg.ExplosionSizeMin, cfg.ExplosionSizeMax)
		life := random.IntRange(rng, cfg.ExplosionLifeMin, cfg.ExplosionLifeMax)
		e.particles = append(e.particles, newParticle(at, vel, c, size, life))
	}
	return e
}

func (e *Explosion) update(shrink float64) {
	e.particles = updateParticles(e.particles, shrink)
}

// Finished reports whether every particle has burnt out
func (e *Explosion) Finished() bool {
	return len(e.particles) == 0
}
