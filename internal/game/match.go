package game

// MatchKind classifies the relationship between a candidate stone and one
// neighboring tile.
type MatchKind int

const (
	// MatchNeutral means the neighbor is empty: no constraint, and the
	// neighbor does not count toward the placement's match total.
	MatchNeutral MatchKind = iota

	// MatchConflict means the neighbor's stone shares neither color nor
	// symbol with the candidate. A single conflict rejects the placement.
	MatchConflict

	// MatchPartial means the neighbor's stone shares the color and/or the
	// symbol with the candidate. At least one of the two counts is 1.
	MatchPartial
)

// MatchResult is the outcome of classifying one neighbor.
// Colors and Symbols are each 0 or 1.
type MatchResult struct {
	Kind    MatchKind
	Colors  int
	Symbols int
}

// ClassifyMatch compares a candidate stone against a neighboring tile.
// A neighbor matching neither attribute is a conflict, never a zero-valued
// partial.
func ClassifyMatch(candidate Stone, neighbor Tile) MatchResult {
	if !neighbor.Occupied {
		return MatchResult{Kind: MatchNeutral}
	}

	r := MatchResult{Kind: MatchPartial}
	if neighbor.Stone.Color == candidate.Color {
		r.Colors = 1
	}
	if neighbor.Stone.Symbol == candidate.Symbol {
		r.Symbols = 1
	}
	if r.Colors == 0 && r.Symbols == 0 {
		return MatchResult{Kind: MatchConflict}
	}
	return r
}
