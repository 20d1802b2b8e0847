package random

// Scripted replays fixed draws, cycling when exhausted. It is meant for
// deterministic tests.
type Scripted struct {
	Floats  []float64
	Indexes []int
	floatAt int
	indexAt int
}

// Float64 returns the next scripted float.
func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	ret := s.Floats[s.floatAt%len(s.Floats)]
	s.floatAt++
	return ret
}

// IntN returns the next scripted index modulo n.
func (s *Scripted) IntN(n int) int {
	if len(s.Indexes) == 0 {
		return 0
	}
	ret := s.Indexes[s.indexAt%len(s.Indexes)]
	s.indexAt++
	return ret % n
}
