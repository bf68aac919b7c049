package powerup

import (
	"github.com/golangdaddy/cyberdrift/pkg/geom"
	"github.com/golangdaddy/cyberdrift/pkg/player"
	"github.com/golangdaddy/cyberdrift/pkg/random"
)

// Lanes is the lane geometry pickups spawn into
type Lanes interface {
	Lanes() int
	LaneCenter(lane int) float64
}

// Collector is anything that can pick up a power-up, normally the player
type Collector interface {
	OverlapsCircle(c geom.Vector2, radius float64) bool
	CollectPowerUp(kind player.PowerUpKind)
}

// Manager spawns pickups, moves them and resolves their collection
type Manager struct {
	cfg        Config
	lanes      Lanes
	rng        random.Source
	powerUps   []PowerUp
	spawnTimer int
}

// NewManager creates an empty manager. The first pickup arrives after the
// configured initial delay.
func NewManager(cfg Config, lanes Lanes, rng random.Source) *Manager {
	return &Manager{
		cfg:        cfg,
		lanes:      lanes,
		rng:        rng,
		powerUps:   make([]PowerUp, 0),
		spawnTimer: cfg.InitialDelay,
	}
}

// Update runs one tick of spawning, movement and off-screen removal
func (m *Manager) Update() {
	m.spawnTimer--
	if m.spawnTimer <= 0 {
		m.spawn()
		m.spawnTimer = random.IntRange(m.rng, m.cfg.IntervalMin, m.cfg.IntervalMax)
	}

	for i := range m.powerUps {
		m.powerUps[i].update(m.cfg)
	}

	active := m.powerUps[:0]
	for _, p := range m.powerUps {
		if p.Position.Y <= m.cfg.DespawnBottom {
			active = append(active, p)
		}
	}
	m.powerUps = active
}

func (m *Manager) spawn() {
	lane := m.rng.Intn(m.lanes.Lanes())
	kind := Kinds[m.rng.Intn(len(Kinds))]
	m.powerUps = append(m.powerUps, newPowerUp(m.lanes.LaneCenter(lane), m.cfg.SpawnY, kind, m.cfg, m.rng))
}

// Collect removes every pickup overlapping c and applies each one to c
// exactly once. It returns the pickups collected this call.
func (m *Manager) Collect(c Collector) []PowerUp {
	var collected []PowerUp
	kept := m.powerUps[:0]
	for _, p := range m.powerUps {
		if c.OverlapsCircle(p.Position, p.Radius) {
			collected = append(collected, p)
			continue
		}
		kept = append(kept, p)
	}
	m.powerUps = kept

	for _, p := range collected {
		c.CollectPowerUp(p.Kind)
	}
	return collected
}

// PowerUps returns a copy of the active pickups
func (m *Manager) PowerUps() []PowerUp {
	return append([]PowerUp(nil), m.powerUps...)
}

// Count returns the number of active pickups
func (m *Manager) Count() int {
	return len(m.powerUps)
}

// SpawnTimer returns the ticks remaining until the next spawn
func (m *Manager) SpawnTimer() int {
	return m.spawnTimer
}
