// Package session is the game loop state machine. It owns every piece of
// mutable gameplay state and advances it one tick at a time.
package session

import (
	"errors"
	"log"

	"github.com/golangdaddy/cyberdrift/pkg/config"
	"github.com/golangdaddy/cyberdrift/pkg/effects"
	"github.com/golangdaddy/cyberdrift/pkg/geom"
	"github.com/golangdaddy/cyberdrift/pkg/input"
	"github.com/golangdaddy/cyberdrift/pkg/models"
	"github.com/golangdaddy/cyberdrift/pkg/player"
	"github.com/golangdaddy/cyberdrift/pkg/powerup"
	"github.com/golangdaddy/cyberdrift/pkg/random"
	"github.com/golangdaddy/cyberdrift/pkg/road"
	"github.com/golangdaddy/cyberdrift/pkg/traffic"
)

// ErrQuit is returned by Update when the player asked to leave the game
var ErrQuit = errors.New("quit requested")

// Session holds one process worth of play: the road, the current run and
// the scoreboard that outlives runs
type Session struct {
	cfg   config.Config
	rng   random.Source
	state State

	road       *road.Road
	player     *player.Player
	traffic    *traffic.Manager
	powerups   *powerup.Manager
	effects    *effects.Manager
	scoreboard *models.Scoreboard

	roadSpeed    float64
	feedback     Feedback
	newHighScore bool
}

// New creates a session sitting at the menu
func New(cfg *config.Config, rng random.Source) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("session: nil config")
	}
	if rng == nil {
		return nil, errors.New("session: nil random source")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rd, err := road.New(cfg.Road, rng)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:        *cfg,
		rng:        rng,
		state:      StateMenu,
		road:       rd,
		effects:    effects.NewManager(cfg.Effects, rng),
		scoreboard: models.NewScoreboard(),
	}
	s.resetRun()
	return s, nil
}

// resetRun replaces the player and the traffic with a fresh set
func (s *Session) resetRun() {
	start := s.startPosition()
	s.player = player.New(start.X, start.Y, s.cfg.Player)
	s.traffic = traffic.NewManager(s.cfg.Enemy, s.road, s.rng)
	s.powerups = powerup.NewManager(s.cfg.PowerUp, s.road, s.rng)
	s.roadSpeed = 0
	s.newHighScore = false
}

func (s *Session) startPosition() geom.Vector2 {
	return geom.Vec(float64(s.cfg.Screen.Width)/2, float64(s.cfg.Screen.Height)-s.cfg.Scoring.PlayerOffsetY)
}

// State returns the current phase of the loop
func (s *Session) State() State {
	return s.state
}

// Update advances the session by one tick. It returns ErrQuit when the
// process should end.
func (s *Session) Update(in input.Snapshot) error {
	switch s.state {
	case StateMenu:
		return s.updateMenu(in)
	case StatePlaying:
		return s.updatePlaying(in)
	case StatePaused:
		return s.updatePaused(in)
	case StateGameOver:
		return s.updateGameOver(in)
	}
	return nil
}

func (s *Session) updateMenu(in input.Snapshot) error {
	if in.Quit || in.Cancel {
		return ErrQuit
	}
	if in.Confirm {
		s.startRun()
		return nil
	}

	// The road keeps rolling behind the title
	s.road.Update(s.cfg.Scoring.MenuRoadSpeed)
	s.effects.Update()
	s.feedback.update()
	return nil
}

func (s *Session) updatePlaying(in input.Snapshot) error {
	if in.Quit {
		return ErrQuit
	}
	if in.PauseToggle || in.Cancel {
		s.state = StatePaused
		log.Printf("paused at score %d", s.player.Score)
		return nil
	}
	if in.Boost {
		s.player.ApplyBoost()
	}
	s.tick(in)
	return nil
}

func (s *Session) updatePaused(in input.Snapshot) error {
	switch {
	case in.Quit:
		return ErrQuit
	case in.PauseToggle:
		s.state = StatePlaying
	case in.Cancel:
		s.toMenu()
	}
	return nil
}

func (s *Session) updateGameOver(in input.Snapshot) error {
	if in.Quit {
		return ErrQuit
	}
	if in.Confirm || in.Cancel {
		s.toMenu()
		return nil
	}

	// Gameplay is frozen but the wreck keeps burning
	s.effects.Update()
	s.feedback.update()
	return nil
}

// startRun begins a fresh run from the menu
func (s *Session) startRun() {
	s.resetRun()
	s.effects.Clear()
	s.effects.AddBoostTrail(&s.player.Body)
	s.feedback = Feedback{}
	s.scoreboard.StartRun()
	s.state = StatePlaying
	log.Printf("run %d started (high score %d)", s.scoreboard.Runs, s.scoreboard.HighScore)
}

// toMenu abandons the current run. The menu shows only the road.
func (s *Session) toMenu() {
	s.effects.Clear()
	s.resetRun()
	s.state = StateMenu
}

// tick is one simulation step while playing
func (s *Session) tick(in input.Snapshot) {
	s.roadSpeed = s.cfg.Scoring.BaseRoadSpeed + s.player.Speed()
	s.road.Update(s.roadSpeed)
	s.player.Update(in, s.road)
	s.traffic.Update(s.player.Position)
	s.powerups.Update()
	s.effects.Update()
	s.feedback.update()

	if s.resolveHits() {
		s.gameOver()
		return
	}
	s.resolvePickups()

	if distance := int(s.roadSpeed * s.cfg.Scoring.DistanceFactor); distance > 0 {
		s.player.AddScore(distance)
		s.feedback.ScoreFlash = 1
	}
}

// resolveHits rams every enemy touching the player. It reports whether the
// player died.
func (s *Session) resolveHits() bool {
	hits := s.traffic.Collisions(&s.player.Body)
	if len(hits) == 0 {
		return false
	}

	for range hits {
		if !s.player.Alive() {
			break
		}
		particles := s.cfg.Scoring.HitParticles
		if s.player.TakeDamage(s.cfg.Scoring.CollisionDamage) {
			particles = s.cfg.Scoring.DeathParticles
		}
		s.effects.AddExplosion(s.player.Position, effects.FireOrange, particles)
	}
	s.traffic.Remove(hits...)
	s.feedback.DamageFlash = 1
	return !s.player.Alive()
}

func (s *Session) resolvePickups() {
	collected := s.powerups.Collect(s.player)
	for range collected {
		s.effects.AddCollectRing(s.player.Position, effects.CollectCyan)
		s.player.AddScore(s.cfg.Scoring.PowerUpBonus)
	}
	if len(collected) > 0 {
		s.feedback.ScoreFlash = 1
	}
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	s.effects.RemoveBoostTrail(s.player.ID)
	s.newHighScore = s.scoreboard.Commit(s.player.Score)
	if s.newHighScore {
		log.Printf("game over: new high score %d", s.player.Score)
	} else {
		log.Printf("game over: score %d (high score %d)", s.player.Score, s.scoreboard.HighScore)
	}
}
