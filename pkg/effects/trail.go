package effects

import (
	"math"

	"github.com/golangdaddy/cyberdrift/pkg/entity"
	"github.com/golangdaddy/cyberdrift/pkg/geom"
	"github.com/golangdaddy/cyberdrift/pkg/random"
)

// BoostTrail emits exhaust particles behind a car while it is moving fast.
// It reads the car's body but does not own it.
type BoostTrail struct {
	owner     *entity.Body
	particles []Particle
}

func (b *BoostTrail) update(cfg Config, rng random.Source) {
	if b.owner.Speed() > cfg.TrailThreshold {
		sin, cos := math.Sincos(b.owner.Angle * math.Pi / 180)
		exhaust := b.owner.Exhaust(cfg.TrailOffset)

		for i := 0; i < cfg.TrailParticles; i++ {
			vel := geom.Vec(
				random.Uniform(rng, -1, 1)+sin*cfg.TrailDrift,
				random.Uniform(rng, -1, 1)+cos*cfg.TrailDrift,
			)
			c := FireYellow
			if rng.Float64() > 0.5 {
				c = FireOrange
			}
			size := random.Uniform(rng, cfg.TrailSizeMin, cfg.TrailSizeMax)
			life := random.IntRange(rng, cfg.TrailLifeMin, cfg.TrailLifeMax)
			b.particles = append(b.particles, newParticle(exhaust, vel, c, size, life))
		}
	}

	b.particles = updateParticles(b.particles, cfg.Shrink)
}
