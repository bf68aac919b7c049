// Package keyboard reads an input.Snapshot from the ebiten keyboard state.
package keyboard

import (
	"github.com/golangdaddy/cyberdrift/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poll samples the keyboard. Arrows and WASD are held controls. Space fires
// both Boost and Confirm so the same key starts, boosts and restarts.
func Poll() input.Snapshot {
	return input.Snapshot{
		Accelerate: held(ebiten.KeyArrowUp, ebiten.KeyW),
		Brake:      held(ebiten.KeyArrowDown, ebiten.KeyS),
		SteerLeft:  held(ebiten.KeyArrowLeft, ebiten.KeyA),
		SteerRight: held(ebiten.KeyArrowRight, ebiten.KeyD),

		Boost:       pressed(ebiten.KeySpace),
		PauseToggle: pressed(ebiten.KeyP),
		Confirm:     pressed(ebiten.KeySpace, ebiten.KeyEnter),
		Cancel:      pressed(ebiten.KeyEscape),
		Quit:        pressed(ebiten.KeyQ),
	}
}

func held(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
