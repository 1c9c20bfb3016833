package game

import (
	"testing"

	"github.com/katmatt/ishido/internal/core"
)

// testBoard returns an empty board with zeroed backgrounds, bypassing
// generation so tests can arrange exact neighbor layouts.
func testBoard() *Board {
	return &Board{
		tiles:       make([]Tile, BoardWidth*BoardHeight),
		backgrounds: make([]int, BoardWidth*BoardHeight),
	}
}

// Stones relative to candidate {0,0}: each shares exactly the named
// attribute.
var (
	colorOnly1  = Stone{Color: 0, Symbol: 1}
	colorOnly2  = Stone{Color: 0, Symbol: 2}
	symbolOnly1 = Stone{Color: 1, Symbol: 0}
	symbolOnly2 = Stone{Color: 2, Symbol: 0}
	bothMatch   = Stone{Color: 0, Symbol: 0}
	noMatch     = Stone{Color: 1, Symbol: 1}
)

func TestCanPlaceBalanceTable(t *testing.T) {
	candidate := Stone{Color: 0, Symbol: 0}
	pos := core.C(5, 4)

	// Orthogonal neighbors of pos: up, down, left, right. A nil entry
	// leaves that neighbor empty.
	tests := []struct {
		name      string
		neighbors [4]*Stone
		want      bool
	}{
		{name: "n=0 never valid", neighbors: [4]*Stone{}, want: false},
		{name: "n=1 color only", neighbors: [4]*Stone{&colorOnly1}, want: true},
		{name: "n=1 symbol only", neighbors: [4]*Stone{nil, &symbolOnly1}, want: true},
		{name: "n=1 both attributes", neighbors: [4]*Stone{nil, nil, &bothMatch}, want: true},
		{name: "n=1 conflict", neighbors: [4]*Stone{nil, nil, nil, &noMatch}, want: false},
		{name: "n=2 one color one symbol", neighbors: [4]*Stone{&colorOnly1, &symbolOnly1}, want: true},
		{name: "n=2 two colors", neighbors: [4]*Stone{&colorOnly1, &colorOnly2}, want: false},
		{name: "n=2 two symbols", neighbors: [4]*Stone{&symbolOnly1, &symbolOnly2}, want: false},
		{name: "n=2 both plus color", neighbors: [4]*Stone{&bothMatch, &colorOnly1}, want: false},
		{name: "n=2 both plus symbol", neighbors: [4]*Stone{&bothMatch, &symbolOnly1}, want: false},
		{name: "n=3 two colors one symbol", neighbors: [4]*Stone{&colorOnly1, &colorOnly2, &symbolOnly1}, want: true},
		{name: "n=3 one color two symbols", neighbors: [4]*Stone{&colorOnly1, &symbolOnly1, &symbolOnly2}, want: true},
		{name: "n=3 three colors", neighbors: [4]*Stone{&colorOnly1, &colorOnly2, &colorOnly1}, want: false},
		{name: "n=3 both plus color plus symbol", neighbors: [4]*Stone{&bothMatch, &colorOnly1, &symbolOnly1}, want: false},
		{name: "n=4 two colors two symbols", neighbors: [4]*Stone{&colorOnly1, &colorOnly2, &symbolOnly1, &symbolOnly2}, want: true},
		{name: "n=4 three colors one symbol", neighbors: [4]*Stone{&colorOnly1, &colorOnly2, &colorOnly1, &symbolOnly1}, want: false},
		{name: "n=4 with conflict", neighbors: [4]*Stone{&colorOnly1, &colorOnly2, &symbolOnly1, &noMatch}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBoard()
			for i, st := range tt.neighbors {
				if st != nil {
					b.setTile(pos.AddCoord(neighborOffsets[i]), OccupiedBy(*st))
				}
			}
			if got := CanPlace(b, pos, candidate); got != tt.want {
				t.Errorf("CanPlace = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanPlaceOccupiedCell(t *testing.T) {
	b := testBoard()
	pos := core.C(5, 4)
	b.setTile(pos, OccupiedBy(bothMatch))
	b.setTile(core.C(5, 3), OccupiedBy(colorOnly1))

	if CanPlace(b, pos, Stone{Color: 0, Symbol: 0}) {
		t.Error("occupied cell must never accept a placement")
	}
}

func TestCanPlaceCornerOmitsOffBoardNeighbors(t *testing.T) {
	b := testBoard()
	// Only in-bounds neighbors of the corner count; one partial suffices.
	b.setTile(core.C(1, 0), OccupiedBy(colorOnly1))

	if !CanPlace(b, core.C(0, 0), Stone{Color: 0, Symbol: 0}) {
		t.Error("corner cell with one matching neighbor should be valid")
	}
}

func TestValidMovesMatchesCanPlace(t *testing.T) {
	b := testBoard()
	b.setTile(core.C(4, 4), OccupiedBy(Stone{Color: 3, Symbol: 2}))
	b.setTile(core.C(8, 2), OccupiedBy(Stone{Color: 3, Symbol: 5}))
	b.next = OccupiedBy(Stone{Color: 3, Symbol: 0})

	valid := ValidMoves(b)
	next, _ := b.Next()
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			pos := core.C(x, y)
			if valid[pos] != CanPlace(b, pos, next) {
				t.Errorf("valid set disagrees with CanPlace at %v", pos)
			}
		}
	}
	if len(valid) == 0 {
		t.Error("expected at least one valid move next to a matching stone")
	}
}

func TestValidMovesEmptyWithoutNextStone(t *testing.T) {
	b := testBoard()
	b.setTile(core.C(4, 4), OccupiedBy(Stone{Color: 3, Symbol: 2}))

	if got := ValidMoves(b); len(got) != 0 {
		t.Errorf("valid moves without a next stone = %d, want 0", len(got))
	}
}
