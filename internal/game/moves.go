package game

import "github.com/katmatt/ishido/internal/core"

// neighborOffsets are the four orthogonal directions. Offsets leading off
// the board are simply skipped, so corner cells have 2 neighbors and edge
// cells 3.
var neighborOffsets = [4]core.Coord{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// PlacementMatches aggregates the neighbor classification for placing the
// candidate stone at pos: the number of occupied (Partial) neighbors, the
// summed color and symbol match counts, and whether any neighbor conflicts.
func PlacementMatches(b *Board, pos core.Coord, candidate Stone) (n, colors, symbols int, conflict bool) {
	for _, off := range neighborOffsets {
		nc := pos.AddCoord(off)
		if !b.InBounds(nc) {
			continue
		}
		r := ClassifyMatch(candidate, b.Tile(nc))
		switch r.Kind {
		case MatchConflict:
			return 0, 0, 0, true
		case MatchPartial:
			n++
			colors += r.Colors
			symbols += r.Symbols
		}
	}
	return n, colors, symbols, false
}

// matchBalanceValid encodes the placement rule for n occupied neighbors
// with aggregate color matches c and symbol matches s: every neighbor must
// match the candidate by exactly one of its two attributes, and the mix of
// which-attribute-matched must balance out across neighbors.
func matchBalanceValid(n, c, s int) bool {
	switch n {
	case 1:
		return true
	case 2:
		return s == 1 && c == 1
	case 3:
		return (s == 1 && c == 2) || (s == 2 && c == 1)
	case 4:
		return s == 2 && c == 2
	default:
		// No occupied neighbor means no legal placement.
		return false
	}
}

// CanPlace reports whether the candidate stone may legally be placed on the
// given cell: the cell is empty, no neighbor conflicts, and the neighbor
// match counts satisfy the balance rule.
func CanPlace(b *Board, pos core.Coord, candidate Stone) bool {
	if !b.InBounds(pos) || b.Tile(pos).Occupied {
		return false
	}
	n, c, s, conflict := PlacementMatches(b, pos, candidate)
	if conflict {
		return false
	}
	return matchBalanceValid(n, c, s)
}

// ValidMoves scans the whole board and returns every empty cell onto which
// the board's next stone may legally be placed. Returns an empty set when
// the deck is exhausted. Callers must recompute this set from scratch after
// every board mutation; there is no incremental update.
func ValidMoves(b *Board) map[core.Coord]bool {
	valid := make(map[core.Coord]bool)
	next, ok := b.Next()
	if !ok {
		return valid
	}

	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			pos := core.C(x, y)
			if CanPlace(b, pos, next) {
				valid[pos] = true
			}
		}
	}
	return valid
}
