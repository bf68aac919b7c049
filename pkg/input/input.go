// Package input defines the device-independent controls the simulation reads
// once per tick.
package input

// Snapshot is the state of every control for a single tick. The first four
// fields are held controls. The rest are edge-triggered and are true only on
// the tick their key went down.
type Snapshot struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool

	Boost       bool
	PauseToggle bool
	Confirm     bool
	Cancel      bool
	Quit        bool
}
