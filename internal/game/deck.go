package game

import (
	"math/rand"

	"github.com/katmatt/ishido/internal/core"
)

// GenerateAnchors produces the six stones seeding the board. Each draw pairs
// a uniformly random remaining color with a uniformly random remaining
// symbol, removing both from their pools. The result is a random bijection
// between six colors and six symbols, which guarantees the anchors share no
// color and no symbol with each other.
func GenerateAnchors(rng *rand.Rand) []Stone {
	colors := make([]int, NumColors)
	symbols := make([]int, NumSymbols)
	for i := range colors {
		colors[i] = i
		symbols[i] = i
	}

	anchors := make([]Stone, 0, len(anchorCoords))
	for len(anchors) < cap(anchors) {
		ci := rng.Intn(len(colors))
		si := rng.Intn(len(symbols))
		anchors = append(anchors, Stone{Color: colors[ci], Symbol: symbols[si]})
		colors = append(colors[:ci], colors[ci+1:]...)
		symbols = append(symbols[:si], symbols[si+1:]...)
	}
	return anchors
}

// NewBoard builds a fresh board: every cell gets a random cosmetic
// background index, and the six anchor coordinates receive the anchor
// stones in order. All other cells start empty.
func NewBoard(rng *rand.Rand, anchors []Stone) *Board {
	b := &Board{
		tiles:       make([]Tile, BoardWidth*BoardHeight),
		backgrounds: make([]int, BoardWidth*BoardHeight),
	}

	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			b.backgrounds[y*BoardWidth+x] = rng.Intn(NumBackgrounds)
		}
	}

	for i, c := range anchorCoords {
		b.setTile(c, OccupiedBy(anchors[i]))
	}
	return b
}

// NewStack builds the draw stack: the full 72-stone deck (each of the 36
// color×symbol pairs twice) minus one copy of each anchor stone, shuffled.
// The returned slice holds 66 stones; the session pops from the end.
func NewStack(rng *rand.Rand, anchors []Stone) []Stone {
	deck := make([]Stone, 0, DeckSize)
	for copyN := 0; copyN < 2; copyN++ {
		for color := 0; color < NumColors; color++ {
			for symbol := 0; symbol < NumSymbols; symbol++ {
				deck = append(deck, Stone{Color: color, Symbol: symbol})
			}
		}
	}

	// Exact-value removal: each anchor removes exactly one matching entry.
	for _, a := range anchors {
		for i, s := range deck {
			if s == a {
				deck = append(deck[:i], deck[i+1:]...)
				break
			}
		}
	}

	shuffle(rng, deck)
	return deck
}

// shuffle performs an in-place unbiased Fisher–Yates shuffle.
func shuffle(rng *rand.Rand, stones []Stone) {
	for i := len(stones) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		stones[i], stones[j] = stones[j], stones[i]
	}
}

// AnchorCoords returns the six fixed anchor coordinates.
func AnchorCoords() []core.Coord {
	coords := make([]core.Coord, len(anchorCoords))
	copy(coords, anchorCoords[:])
	return coords
}
