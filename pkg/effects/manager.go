// Package effects owns the purely cosmetic particle effects. Nothing here
// feeds back into gameplay.
package effects

import (
	"image/color"

	"github.com/golangdaddy/cyberdrift/pkg/entity"
	"github.com/golangdaddy/cyberdrift/pkg/geom"
	"github.com/golangdaddy/cyberdrift/pkg/random"
	"github.com/google/uuid"
)

// Manager owns every live effect instance
type Manager struct {
	cfg        Config
	rng        random.Source
	explosions []*Explosion
	rings      []Ring
	trails     map[uuid.UUID]*BoostTrail
	trailOrder []uuid.UUID
}

// NewManager creates an empty effect manager
func NewManager(cfg Config, rng random.Source) *Manager {
	return &Manager{
		cfg:    cfg,
		rng:    rng,
		trails: make(map[uuid.UUID]*BoostTrail),
	}
}

// AddExplosion spawns a burst of count particles at the given point
func (m *Manager) AddExplosion(at geom.Vector2, c color.RGBA, count int) {
	m.explosions = append(m.explosions, newExplosion(at, c, count, m.cfg, m.rng))
}

// AddCollectRing spawns an expanding ring at the given point
func (m *Manager) AddCollectRing(at geom.Vector2, c color.RGBA) {
	m.rings = append(m.rings, Ring{
		Position:    at,
		Color:       c,
		Radius:      m.cfg.RingStartRadius,
		MaxRadius:   m.cfg.RingMaxRadius,
		Lifetime:    m.cfg.RingLifetime,
		MaxLifetime: m.cfg.RingLifetime,
	})
}

// AddBoostTrail attaches an exhaust trail to owner. Each owner gets at most
// one trail. It reports whether a new trail was created.
func (m *Manager) AddBoostTrail(owner *entity.Body) bool {
	if _, ok := m.trails[owner.ID]; ok {
		return false
	}
	m.trails[owner.ID] = &BoostTrail{owner: owner}
	m.trailOrder = append(m.trailOrder, owner.ID)
	return true
}

// RemoveBoostTrail detaches the trail keyed by id, dropping its particles
func (m *Manager) RemoveBoostTrail(id uuid.UUID) {
	if _, ok := m.trails[id]; !ok {
		return
	}
	delete(m.trails, id)
	for i, tid := range m.trailOrder {
		if tid == id {
			m.trailOrder = append(m.trailOrder[:i], m.trailOrder[i+1:]...)
			break
		}
	}
}

// Update advances every effect one tick and discards the finished ones
func (m *Manager) Update() {
	liveExplosions := m.explosions[:0]
	for _, e := range m.explosions {
		e.update(m.cfg.Shrink)
		if !e.Finished() {
			liveExplosions = append(liveExplosions, e)
		}
	}
	m.explosions = liveExplosions

	liveRings := m.rings[:0]
	for _, r := range m.rings {
		r.update(m.cfg.RingGrowth)
		if !r.Finished() {
			liveRings = append(liveRings, r)
		}
	}
	m.rings = liveRings

	// Trails update in creation order so random draws stay reproducible
	for _, id := range m.trailOrder {
		m.trails[id].update(m.cfg, m.rng)
	}
}

// Clear drops every effect, trails included
func (m *Manager) Clear() {
	m.explosions = nil
	m.rings = nil
	m.trails = make(map[uuid.UUID]*BoostTrail)
	m.trailOrder = nil
}

// Particles returns a copy of every live particle from explosions and trails
func (m *Manager) Particles() []Particle {
	var out []Particle
	for _, e := range m.explosions {
		out = append(out, e.particles...)
	}
	for _, id := range m.trailOrder {
		out = append(out, m.trails[id].particles...)
	}
	return out
}

// Rings returns a copy of the live collect rings
func (m *Manager) Rings() []Ring {
	return append([]Ring(nil), m.rings...)
}

// ExplosionCount returns the number of unfinished explosions
func (m *Manager) ExplosionCount() int {
	return len(m.explosions)
}

// TrailCount returns the number of attached boost trails
func (m *Manager) TrailCount() int {
	return len(m.trails)
}

// TrailParticleCount returns how many particles the trail keyed by id holds
func (m *Manager) TrailParticleCount(id uuid.UUID) int {
	if t, ok := m.trails[id]; ok {
		return len(t.particles)
	}
	return 0
}
