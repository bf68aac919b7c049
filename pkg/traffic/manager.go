package traffic

import (
	"math"

	"github.com/golangdaddy/cyberdrift/pkg/entity"
	"github.com/golangdaddy/cyberdrift/pkg/geom"
	"github.com/golangdaddy/cyberdrift/pkg/random"
	"github.com/google/uuid"
)

// Manager spawns, drives and retires enemy cars and owns the difficulty curve
type Manager struct {
	cfg        Config
	lanes      Lanes
	rng        random.Source
	enemies    []Enemy
	spawnTimer int
	difficulty float64
}

// NewManager creates an empty manager. The first enemy spawns on the first tick.
func NewManager(cfg Config, lanes Lanes, rng random.Source) *Manager {
	return &Manager{
		cfg:        cfg,
		lanes:      lanes,
		rng:        rng,
		enemies:    make([]Enemy, 0),
		difficulty: cfg.StartDifficulty,
	}
}

// Update runs one tick: spawn timer, per-enemy AI, off-screen removal and
// the difficulty increment
func (m *Manager) Update(playerPos geom.Vector2) {
	m.spawnTimer--
	if m.spawnTimer <= 0 {
		m.spawn()
		m.spawnTimer = m.nextSpawnInterval()
	}

	for i := range m.enemies {
		m.enemies[i].update(m.cfg, m.lanes, m.rng, playerPos)
	}

	// Compact after the pass so indices stay stable during iteration
	active := m.enemies[:0]
	for _, e := range m.enemies {
		if !e.OutsideVertical(m.cfg.DespawnTop, m.cfg.DespawnBottom) {
			active = append(active, e)
		}
	}
	m.enemies = active

	m.difficulty += m.cfg.DifficultyStep
	if m.cfg.MaxDifficulty > 0 && m.difficulty > m.cfg.MaxDifficulty {
		m.difficulty = m.cfg.MaxDifficulty
	}
}

// spawn places a new enemy at the centre of a random lane just above the screen
func (m *Manager) spawn() {
	lane := m.rng.Intn(m.lanes.Lanes())
	e := Enemy{
		Body:       entity.NewBody(m.lanes.LaneCenter(lane), m.cfg.SpawnY, m.cfg.Width, m.cfg.Height),
		Difficulty: m.difficulty,
	}
	e.Velocity = geom.Vec(0, m.cfg.BaseSpeed+m.difficulty)
	e.TargetLane = m.rng.Intn(m.lanes.Lanes())
	e.LaneChangeTimer = random.IntRange(m.rng, m.cfg.LaneChangeMin, m.cfg.LaneChangeMax)
	e.Aggression = m.rng.Float64() * m.difficulty
	m.enemies = append(m.enemies, e)
}

// nextSpawnInterval draws a base interval and divides it by the difficulty.
// The result never drops below one tick.
func (m *Manager) nextSpawnInterval() int {
	base := random.IntRange(m.rng, m.cfg.SpawnIntervalMin, m.cfg.SpawnIntervalMax)
	return max(1, int(math.Floor(float64(base)/m.difficulty)))
}

// SpawnIntervalBounds returns the inclusive range a freshly reset spawn timer
// falls in at the current difficulty
func (m *Manager) SpawnIntervalBounds() (lo, hi int) {
	lo = max(1, int(math.Floor(float64(m.cfg.SpawnIntervalMin)/m.difficulty)))
	hi = max(1, int(math.Floor(float64(m.cfg.SpawnIntervalMax)/m.difficulty)))
	return lo, hi
}

// Collisions returns the IDs of enemies overlapping body. Nothing is removed.
func (m *Manager) Collisions(body *entity.Body) []uuid.UUID {
	var hits []uuid.UUID
	for i := range m.enemies {
		if m.enemies[i].Overlaps(body) {
			hits = append(hits, m.enemies[i].ID)
		}
	}
	return hits
}

// Remove retires the enemies with the given IDs and returns how many were found
func (m *Manager) Remove(ids ...uuid.UUID) int {
	if len(ids) == 0 {
		return 0
	}
	doomed := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}

	removed := 0
	kept := m.enemies[:0]
	for _, e := range m.enemies {
		if _, ok := doomed[e.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	m.enemies = kept
	return removed
}

// Enemies returns a copy of the active enemies
func (m *Manager) Enemies() []Enemy {
	return append([]Enemy(nil), m.enemies...)
}

// Count returns the number of active enemies
func (m *Manager) Count() int {
	return len(m.enemies)
}

// Difficulty returns the current difficulty scalar
func (m *Manager) Difficulty() float64 {
	return m.difficulty
}

// SpawnTimer returns the ticks remaining until the next spawn
func (m *Manager) SpawnTimer() int {
	return m.spawnTimer
}
