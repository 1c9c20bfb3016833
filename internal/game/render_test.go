package game

import (
	"strings"
	"testing"

	"github.com/katmatt/ishido/internal/core"
)

func TestCellAtConversion(t *testing.T) {
	s := New()
	s.Reset(testConfig(5))

	tests := []struct {
		name   string
		px, py int
		want   core.Coord
		ok     bool
	}{
		{name: "board origin", px: boardOriginX, py: boardOriginY, want: core.C(0, 0), ok: true},
		{name: "inside first cell", px: boardOriginX + tileW - 1, py: boardOriginY + tileH - 1, want: core.C(0, 0), ok: true},
		{name: "second column", px: boardOriginX + tileW, py: boardOriginY, want: core.C(1, 0), ok: true},
		{name: "last cell", px: boardOriginX + (BoardWidth-1)*tileW, py: boardOriginY + (BoardHeight-1)*tileH, want: core.C(BoardWidth-1, BoardHeight-1), ok: true},
		{name: "left of board", px: boardOriginX - 1, py: boardOriginY, ok: false},
		{name: "above board", px: boardOriginX, py: boardOriginY - 1, ok: false},
		{name: "right of board", px: boardOriginX + BoardWidth*tileW, py: boardOriginY, ok: false},
		{name: "below board", px: boardOriginX, py: boardOriginY + BoardHeight*tileH, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.CellAt(tt.px, tt.py)
			if ok != tt.ok {
				t.Fatalf("CellAt(%d,%d) ok = %v, want %v", tt.px, tt.py, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("CellAt(%d,%d) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestRenderShowsScoreAndTally(t *testing.T) {
	s := New()
	s.Reset(testConfig(8))

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "Stones left: 65") {
		t.Error("HUD should show the remaining-stone tally")
	}
	if !strings.Contains(out, "[ New ]") {
		t.Error("panel should show the New button")
	}
}

func TestNewButtonRectMatchesRender(t *testing.T) {
	s := New()
	s.Reset(testConfig(8))

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	btn := s.NewButtonRect()
	if got := screen.GetCell(btn.X, btn.Y).Rune; got != '[' {
		t.Errorf("button rect origin renders %q, want '['", got)
	}
	if !btn.Contains(btn.X+3, btn.Y) {
		t.Error("button rect should contain its own label")
	}
}
