package element_test

// seqSource replays vals in order for successive Intn calls, wrapping around.
// Values are returned as-is, so callers must keep them below n.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(_ int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}
