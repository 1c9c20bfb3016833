package game

import (
	"math/rand"
	"sort"

	"github.com/katmatt/ishido/internal/core"
)

// SessionState represents the session's position in the state machine.
type SessionState string

const (
	StatePlaying  SessionState = "playing"
	StateGameOver SessionState = "game_over"
)

// Session owns one game: the board, the remaining draw stack, the score and
// four-way counters, the hint-visibility flag, and the cached valid-move
// set. All mutations run to completion before the next one starts; there is
// exactly one logical actor driving a session.
type Session struct {
	rng *rand.Rand

	board    *Board
	stack    []Stone
	score    int
	fourWays int

	hintVisible bool
	valid       map[core.Coord]bool
	state       SessionState

	// Screen dimensions, used by Render and pointer conversion.
	screenW int
	screenH int
}

// New creates an uninitialized session. Reset must be called before play.
func New() *Session {
	return &Session{}
}

// ID returns the game identifier used for score storage.
func (s *Session) ID() string {
	return "ishido"
}

// Title returns the display name.
func (s *Session) Title() string {
	return "Ishido"
}

// Reset seeds the random source and starts a fresh game.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.NewGame()
}

// NewGame discards the current board, stack, score, four-way count, and
// hint flag, and regenerates everything from the session's random source.
func (s *Session) NewGame() {
	anchors := GenerateAnchors(s.rng)
	s.board = NewBoard(s.rng, anchors)
	s.stack = NewStack(s.rng, anchors)

	s.score = 0
	s.fourWays = 0
	s.hintVisible = false
	s.state = StatePlaying

	s.drawNext()
	s.valid = ValidMoves(s.board)
}

// drawNext pops the top of the stack into the board's next-stone slot,
// leaving it empty when the stack is exhausted.
func (s *Session) drawNext() {
	if len(s.stack) == 0 {
		s.board.next = Empty()
		return
	}
	s.board.next = OccupiedBy(s.stack[len(s.stack)-1])
	s.stack = s.stack[:len(s.stack)-1]
}

// PlaceStone attempts to place the next stone onto the given cell. Requests
// outside the cached valid-move set, or made after the deck is exhausted,
// are silently ignored and leave the session unchanged. On success the
// score delta is applied, the next stone is drawn, the hint flag clears,
// and the valid-move set is recomputed. Returns whether the placement was
// accepted.
func (s *Session) PlaceStone(pos core.Coord) bool {
	if s.state != StatePlaying {
		return false
	}
	stone, ok := s.board.Next()
	if !ok || !s.valid[pos] {
		return false
	}

	n, _, _, _ := PlacementMatches(s.board, pos, stone)
	delta := PlacementScore(pos, n)
	if n == 4 {
		// A four-way placement always sits on an interior cell, since only
		// interior cells have four neighbors.
		s.fourWays++
		delta += FourWayBonus(s.fourWays)
	}
	s.score += delta

	s.board.setTile(pos, OccupiedBy(stone))
	s.drawNext()
	s.hintVisible = false
	s.valid = ValidMoves(s.board)

	if _, hasNext := s.board.Next(); !hasNext {
		s.state = StateGameOver
		s.score += EndBonus(len(s.stack))
	}
	return true
}

// SetHint toggles hint visibility. It has no other side effects and does
// not touch the valid-move set.
func (s *Session) SetHint(visible bool) {
	s.hintVisible = visible
}

// Board returns the session's board for read access.
func (s *Session) Board() *Board {
	return s.board
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// FourWays returns the number of four-way placements this game.
func (s *Session) FourWays() int {
	return s.fourWays
}

// StackLen returns the number of undrawn stones.
func (s *Session) StackLen() int {
	return len(s.stack)
}

// NextStone returns the stone available to place, if any.
func (s *Session) NextStone() (Stone, bool) {
	return s.board.Next()
}

// HintVisible returns whether valid-move hints are shown.
func (s *Session) HintVisible() bool {
	return s.hintVisible
}

// IsValid reports whether the given cell is in the cached valid-move set.
func (s *Session) IsValid(pos core.Coord) bool {
	return s.valid[pos]
}

// ValidPositions returns the cached valid-move set as a sorted slice,
// row-major. The set is recomputed from scratch after every mutation, never
// patched incrementally.
func (s *Session) ValidPositions() []core.Coord {
	positions := make([]core.Coord, 0, len(s.valid))
	for pos := range s.valid {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
	return positions
}

// ValidCount returns the size of the cached valid-move set.
func (s *Session) ValidCount() int {
	return len(s.valid)
}

// State returns the session state.
func (s *Session) State() SessionState {
	return s.state
}

// GameOver reports whether the session reached its terminal state.
func (s *Session) GameOver() bool {
	return s.state == StateGameOver
}
