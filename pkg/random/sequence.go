package random

// Sequence is a deterministic Source that replays scripted values in order.
// Once a script is exhausted it keeps returning its fallback.
type Sequence struct {
	Ints   []int
	Floats []float64

	// IntFallback is returned by Intn once Ints runs out. It is reduced modulo n.
	IntFallback int
	// FloatFallback is returned by Float64 once Floats runs out
	FloatFallback float64

	intPos, floatPos int
}

// Intn returns the next scripted offset reduced into [0, n)
func (s *Sequence) Intn(n int) int {
	v := s.IntFallback
	if s.intPos < len(s.Ints) {
		v = s.Ints[s.intPos]
		s.intPos++
	}
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Float64 returns the next scripted float
func (s *Sequence) Float64() float64 {
	if s.floatPos < len(s.Floats) {
		v := s.Floats[s.floatPos]
		s.floatPos++
		return v
	}
	return s.FloatFallback
}
