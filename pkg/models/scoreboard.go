package models

// Scoreboard keeps the in-memory high score across runs within one process
type Scoreboard struct {
	HighScore int
	LastScore int // Final score of the most recent finished run
	Runs      int
}

// NewScoreboard creates an empty scoreboard
func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// StartRun records the beginning of a new run
func (sb *Scoreboard) StartRun() {
	sb.Runs++
}

// Commit records the final score of a run and reports whether it set a new
// high score
func (sb *Scoreboard) Commit(score int) bool {
	sb.LastScore = score
	if score > sb.HighScore {
		sb.HighScore = score
		return true
	}
	return false
}
