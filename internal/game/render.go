package game

import (
	"fmt"

	"github.com/katmatt/ishido/internal/core"
)

// Each board cell occupies a tileW×tileH block of screen characters.
// Pointer coordinates are converted to board coordinates by integer
// division against these sizes.
const (
	tileW = 4
	tileH = 2

	boardOriginX = 2
	boardOriginY = 3
)

// Theme controls how stones and cells are drawn.
type Theme struct {
	Symbols         [NumSymbols]rune
	Colors          [NumColors]core.Color
	Backgrounds     [NumBackgrounds]rune
	ShowBackgrounds bool
}

// DefaultTheme returns the classic glyph and color set.
func DefaultTheme() Theme {
	return Theme{
		Symbols:         [NumSymbols]rune{'●', '▲', '■', '◆', '★', '✚'},
		Colors:          [NumColors]core.Color{core.ColorRed, core.ColorGreen, core.ColorBrightYellow, core.ColorBrightBlue, core.ColorMagenta, core.ColorCyan},
		Backgrounds:     [NumBackgrounds]rune{'·', ':', '˙', '∙'},
		ShowBackgrounds: true,
	}
}

var theme = DefaultTheme()

// SetTheme replaces the rendering theme. Called by the platform layer
// before play starts; the theme never affects game rules.
func SetTheme(t Theme) {
	theme = t
}

// Render draws the whole game: HUD, board, hint markers, next-stone
// preview, remaining-stone tally, the "New" button, and the game-over
// overlay. The screen is cleared first.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	s.renderHUD(dst)
	s.renderBoard(dst)
	s.renderPanel(dst)

	if s.state == StateGameOver {
		s.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d (press n for a new game)", s.score))
	}
}

// renderHUD draws the top status bar.
func (s *Session) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Ishido | Score: %d  Four-ways: %d  Stones left: %d", s.score, s.fourWays, len(s.stack))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the 12×8 grid with its border.
func (s *Session) renderBoard(dst *core.Screen) {
	border := core.NewRect(boardOriginX-1, boardOriginY-1, BoardWidth*tileW+2, BoardHeight*tileH+2)
	dst.DrawBox(border)

	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			s.renderCell(dst, core.C(x, y))
		}
	}
}

// renderCell draws one cell's tileW×tileH block.
func (s *Session) renderCell(dst *core.Screen, pos core.Coord) {
	bx := boardOriginX + pos.X*tileW
	by := boardOriginY + pos.Y*tileH

	t := s.board.Tile(pos)
	if t.Occupied {
		glyph := theme.Symbols[t.Stone.Symbol]
		color := theme.Colors[t.Stone.Color]
		dst.SetColored(bx+1, by, glyph, color)
		dst.SetColored(bx+2, by, glyph, color)
		dst.SetColored(bx+1, by+1, '▔', color)
		dst.SetColored(bx+2, by+1, '▔', color)
		return
	}

	if theme.ShowBackgrounds {
		bg := theme.Backgrounds[s.board.Background(pos)]
		dst.SetColored(bx+1, by, bg, core.ColorGray)
		dst.SetColored(bx+2, by, bg, core.ColorGray)
	}

	if s.hintVisible && s.valid[pos] {
		dst.SetColored(bx+1, by, '+', core.ColorBrightGreen)
		dst.SetColored(bx+2, by, '+', core.ColorBrightGreen)
	}
}

// renderPanel draws the side panel: next-stone preview, tally, and the New
// button.
func (s *Session) renderPanel(dst *core.Screen) {
	px := boardOriginX + BoardWidth*tileW + 3
	py := boardOriginY

	dst.DrawText(px, py, "Next:")
	if next, ok := s.board.Next(); ok {
		glyph := theme.Symbols[next.Symbol]
		color := theme.Colors[next.Color]
		dst.SetColored(px+6, py, glyph, color)
		dst.SetColored(px+7, py, glyph, color)
	} else {
		dst.DrawTextColored(px+6, py, "--", core.ColorGray)
	}

	dst.DrawText(px, py+2, fmt.Sprintf("Left: %d", len(s.stack)))

	btn := s.NewButtonRect()
	dst.DrawTextColored(btn.X, btn.Y, "[ New ]", core.ColorBrightWhite)

	dst.DrawTextColored(px, py+6, "h: hint", core.ColorGray)
	dst.DrawTextColored(px, py+7, "q: quit", core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (s *Session) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// CellAt converts raw screen coordinates (as delivered by the pointer-event
// source) to a board coordinate. The second return value is false when the
// point lies outside the board.
func (s *Session) CellAt(px, py int) (core.Coord, bool) {
	if px < boardOriginX || py < boardOriginY {
		return core.Coord{}, false
	}
	c := core.C((px-boardOriginX)/tileW, (py-boardOriginY)/tileH)
	if !s.board.InBounds(c) {
		return core.Coord{}, false
	}
	return c, true
}

// NewButtonRect returns the hit-region of the "New" button.
func (s *Session) NewButtonRect() core.Rect {
	px := boardOriginX + BoardWidth*tileW + 3
	return core.NewRect(px, boardOriginY+4, 7, 1)
}
