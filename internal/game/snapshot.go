package game

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Score       int
	FourWays    int
	StackLen    int
	Filled      int // Occupied cells on the board
	Next        Stone
	HasNext     bool
	HintVisible bool
	ValidCount  int
	State       SessionState
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	next, hasNext := s.board.Next()
	return Snapshot{
		Score:       s.score,
		FourWays:    s.fourWays,
		StackLen:    len(s.stack),
		Filled:      s.board.FilledCount(),
		Next:        next,
		HasNext:     hasNext,
		HintVisible: s.hintVisible,
		ValidCount:  len(s.valid),
		State:       s.state,
	}
}
