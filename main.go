package main

import (
	"errors"
	"log"

	"github.com/golangdaddy/cyberdrift/pkg/config"
	"github.com/golangdaddy/cyberdrift/pkg/game"
	"github.com/golangdaddy/cyberdrift/pkg/random"
	"github.com/golangdaddy/cyberdrift/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
)

var searchPaths = []string{".", "./configs"}

func main() {
	cfg, err := config.Load(searchPaths...)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.File != "" {
		log.Printf("Using config file %s", cfg.File)
	}

	rng := random.NewTimeSeeded()
	if cfg.Screen.Seed != 0 {
		rng = random.New(cfg.Screen.Seed)
	}

	s, err := session.New(cfg, rng)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetTPS(cfg.Screen.TPS)

	log.Printf("Starting %s at %dx%d, %d ticks/s", cfg.Screen.Title, cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.TPS)
	if err := ebiten.RunGame(game.NewGame(cfg, s)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("Bye")
}
