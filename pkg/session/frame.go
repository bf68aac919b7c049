package session

import (
	"github.com/golangdaddy/cyberdrift/pkg/effects"
	"github.com/golangdaddy/cyberdrift/pkg/player"
	"github.com/golangdaddy/cyberdrift/pkg/powerup"
	"github.com/golangdaddy/cyberdrift/pkg/road"
	"github.com/golangdaddy/cyberdrift/pkg/traffic"
)

// Frame is a read-only copy of everything the renderer and the HUD draw.
// Mutating it has no effect on the session.
type Frame struct {
	State        State
	Player       player.Player
	Enemies      []traffic.Enemy
	PowerUps     []powerup.PowerUp
	Particles    []effects.Particle
	Rings        []effects.Ring
	Road         road.View
	Score        int
	HighScore    int
	LastScore    int
	Runs         int
	NewHighScore bool
	Speed        float64
	Difficulty   float64
	Feedback     Feedback
}

// Frame snapshots the session for drawing
func (s *Session) Frame() Frame {
	return Frame{
		State:        s.state,
		Player:       *s.player,
		Enemies:      s.traffic.Enemies(),
		PowerUps:     s.powerups.PowerUps(),
		Particles:    s.effects.Particles(),
		Rings:        s.effects.Rings(),
		Road:         s.road.Snapshot(),
		Score:        s.player.Score,
		HighScore:    s.scoreboard.HighScore,
		LastScore:    s.scoreboard.LastScore,
		Runs:         s.scoreboard.Runs,
		NewHighScore: s.newHighScore,
		Speed:        s.player.Speed(),
		Difficulty:   s.traffic.Difficulty(),
		Feedback:     s.feedback,
	}
}
