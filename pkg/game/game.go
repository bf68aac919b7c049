package game

import (
	"errors"

	"github.com/golangdaddy/cyberdrift/pkg/config"
	"github.com/golangdaddy/cyberdrift/pkg/input"
	"github.com/golangdaddy/cyberdrift/pkg/input/keyboard"
	"github.com/golangdaddy/cyberdrift/pkg/render"
	"github.com/golangdaddy/cyberdrift/pkg/session"
	"github.com/golangdaddy/cyberdrift/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is one layer drawn from a frame
type Screen interface {
	Draw(screen *ebiten.Image, f session.Frame)
}

// Game implements the ebiten.Game interface on top of a session
type Game struct {
	session *session.Session
	poll    func() input.Snapshot
	layers  map[session.State][]Screen
	width   int
	height  int
}

// NewGame creates a game that drives s with keyboard input
func NewGame(cfg *config.Config, s *session.Session) *Game {
	world := render.NewRenderer(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.Seed)
	hud := ui.NewHUD()

	return &Game{
		session: s,
		poll:    keyboard.Poll,
		layers: map[session.State][]Screen{
			session.StateMenu:     {world, ui.NewTitleScreen(cfg.Screen.Title)},
			session.StatePlaying:  {world, hud},
			session.StatePaused:   {world, hud, ui.PauseOverlay{}},
			session.StateGameOver: {world, hud, ui.GameOverOverlay{}},
		},
		width:  cfg.Screen.Width,
		height: cfg.Screen.Height,
	}
}

// Update handles game logic updates
func (g *Game) Update() error {
	err := g.session.Update(g.poll())
	if errors.Is(err, session.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw renders the layers for the current state
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.session.Frame()
	for _, layer := range g.layers[f.State] {
		layer.Draw(screen, f)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}
