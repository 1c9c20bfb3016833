package game

import "github.com/katmatt/ishido/internal/core"

// placementScores maps the occupied-neighbor count of an accepted placement
// to its score delta. Index 0 is unused; a valid placement touches at least
// one stone.
var placementScores = [5]int{0, 1, 2, 4, 8}

// fourWayBonuses is the escalating bonus awarded for each successive
// four-way placement, looked up 1-indexed by the session's four-way count.
// Beyond the twelfth four-way only the flat placement score applies.
var fourWayBonuses = [12]int{25, 50, 100, 200, 400, 600, 800, 1000, 5000, 10000, 25000, 50000}

// endBonuses is the end-of-game bonus indexed by the remaining stack length
// at the moment of the final move.
var endBonuses = [3]int{1000, 500, 100}

// PlacementScore returns the score delta for an accepted placement with n
// occupied neighbors. Border cells never award per-move score; they may
// still legally be played.
func PlacementScore(pos core.Coord, n int) int {
	if !Interior(pos) {
		return 0
	}
	if n < 1 || n > 4 {
		return 0
	}
	return placementScores[n]
}

// FourWayBonus returns the bonus for reaching the given four-way count
// (1-indexed), or 0 once the table is exhausted.
func FourWayBonus(count int) int {
	if count < 1 || count > len(fourWayBonuses) {
		return 0
	}
	return fourWayBonuses[count-1]
}

// EndBonus returns the one-time end-of-game bonus for the given remaining
// stack length.
func EndBonus(stackLen int) int {
	if stackLen < 0 || stackLen >= len(endBonuses) {
		return 0
	}
	return endBonuses[stackLen]
}
