package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/plastic-tetris/internal/config"
	"github.com/vovakirdan/plastic-tetris/internal/core"
)

const (
	hudHeight = 2  // Title line plus the water surface
	cellWidth = 2  // Each board column is two characters wide
	panelW    = 16 // Width of the hold and stats panels
	factWidth = 28 // Maximum width of the fact text
)

// layout holds screen positions derived from the board size and screen.
type layout struct {
	wellX, wellY int
	wellW, wellH int
	leftX        int
	rightX       int
	rightW       int
	minW, minH   int
}

func computeLayout(cfg config.TetrisConfig, w, h int) layout {
	var l layout
	l.wellW = cfg.Board.Width*cellWidth + 2
	l.wellH = cfg.Board.Height + 2
	l.minW = l.wellW + 2*(panelW+2)
	l.minH = hudHeight + l.wellH
	l.wellX = (w - l.wellW) / 2
	l.wellY = hudHeight
	l.leftX = l.wellX - panelW - 1
	l.rightX = l.wellX + l.wellW + 1
	l.rightW = min(max(w-l.rightX-1, panelW), factWidth)
	return l
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderOcean(dst)
	g.particles.Render(dst)
	g.renderHUD(dst)
	g.renderWell(dst)
	g.renderHold(dst)
	g.renderStats(dst)
	g.renderNext(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorBrightWhite)
	dst.DrawTextCentered(y, fmt.Sprintf("Need at least %dx%d", g.layout.minW, g.layout.minH), core.ColorGray)
	dst.DrawTextCentered(y+1, "Resize to continue", core.ColorGray)
}

// renderOcean fills the backdrop with slowly drifting waves that darken
// with depth, and a strip of sand at the bottom.
func (g *Game) renderOcean(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	depth := h - hudHeight
	shift := int(g.tick / 30)

	for y := hudHeight; y < h-1; y++ {
		c := core.ColorTeal
		switch d := y - hudHeight; {
		case d >= depth*2/3:
			c = core.ColorNavy
		case d >= depth/3:
			c = core.ColorDeepBlue
		}
		for x := range w {
			if ((x+shift+y)*7+y*13)%29 == 0 {
				dst.SetCell(x, y, '~', c)
			}
		}
	}
	dst.DrawHLine(0, h-1, w, '▁', core.ColorYellow)
}

func (g *Game) renderHUD(dst *core.Screen) {
	mode := "Marathon"
	if g.mode == ModeEndless {
		mode = "Endless"
	}
	dst.DrawTextColor(1, 0, "PLASTIC POLLUTION TETRIS", core.ColorBrightCyan)
	dst.DrawTextColor(26, 0, "· "+mode, core.ColorGray)

	right := fmt.Sprintf("Score %d  Best %d ", g.score, g.best())
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorBrightWhite)

	dst.DrawHLine(0, 1, dst.Width(), '≈', core.ColorCyan)
}

// renderWell draws the board frame, locked debris, the ghost and the active piece.
func (g *Game) renderWell(dst *core.Screen) {
	l := g.layout
	dst.DrawBox(core.NewRect(l.wellX, l.wellY, l.wellW, l.wellH), core.ColorWhite)

	hidden := g.board.Hidden()
	for v := range g.board.Visible() {
		for col := range g.board.Width() {
			x, y := g.cellPos(col, v+hidden)
			if k := g.board.At(col, v+hidden); k != KindNone {
				g.drawMino(dst, x, y, '█', k.Color())
				continue
			}
			dst.SetCell(x, y, ' ', core.ColorDefault)
			dst.SetCell(x+1, y, '·', core.ColorNavy)
		}
	}

	if g.phase != PhasePlaying && g.phase != PhasePaused {
		g.renderClearBanner(dst)
		return
	}

	if g.cfg.Preview.Ghost {
		for _, c := range g.ghost().Cells() {
			if c.Y >= hidden {
				x, y := g.cellPos(c.X, c.Y)
				g.drawMino(dst, x, y, '░', g.active.Kind.Color())
			}
		}
	}
	for _, c := range g.active.Cells() {
		if c.Y >= hidden {
			x, y := g.cellPos(c.X, c.Y)
			g.drawMino(dst, x, y, '█', g.active.Kind.Color())
		}
	}
	g.renderClearBanner(dst)
}

// cellPos maps a board cell to screen coordinates.
func (g *Game) cellPos(col, row int) (int, int) {
	return g.layout.wellX + 1 + col*cellWidth, g.layout.wellY + 1 + row - g.board.Hidden()
}

func (g *Game) drawMino(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetCell(x, y, r, c)
	dst.SetCell(x+1, y, r, c)
}

func (g *Game) renderClearBanner(dst *core.Screen) {
	if g.clearFlash == 0 || g.lastClear == 0 {
		return
	}
	label := " " + clearLabel(g.lastClear) + " "
	x := g.layout.wellX + (g.layout.wellW-len(label))/2
	dst.DrawTextColor(x, g.layout.wellY, label, core.ColorBrightYellow)
}

func clearLabel(n int) string {
	switch n {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	default:
		return "TETRIS!"
	}
}

// drawMini draws a piece in its spawn orientation with its top-left at (x, y).
func (g *Game) drawMini(dst *core.Screen, k Kind, x, y int) {
	cells := Piece{Kind: k}.Cells()
	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}
	for _, c := range cells {
		g.drawMino(dst, x+(c.X-minX)*cellWidth, y+c.Y-minY, '█', k.Color())
	}
}

// miniWidth returns how many columns a piece occupies in spawn orientation.
func miniWidth(k Kind) int {
	cells := Piece{Kind: k}.Cells()
	lo, hi := cells[0].X, cells[0].X
	for _, c := range cells[1:] {
		lo = min(lo, c.X)
		hi = max(hi, c.X)
	}
	return (hi - lo + 1) * cellWidth
}

func (g *Game) renderHold(dst *core.Screen) {
	if !g.cfg.Preview.Hold {
		return
	}
	l := g.layout
	dst.DrawBox(core.NewRect(l.leftX, l.wellY, panelW, 4), core.ColorGray)
	dst.DrawTextColor(l.leftX+2, l.wellY, " HOLD ", core.ColorBrightWhite)
	if g.hold == KindNone {
		return
	}
	x := l.leftX + (panelW-miniWidth(g.hold))/2
	g.drawMini(dst, g.hold, x, l.wellY+1)
	if g.holdUsed {
		dst.DrawTextColor(l.leftX+1, l.wellY+3, "used", core.ColorGray)
	}
}

func (g *Game) renderStats(dst *core.Screen) {
	x := g.layout.leftX
	y := g.layout.wellY + 5

	lines := fmt.Sprintf("%d", g.lines)
	if g.mode == ModeMarathon {
		lines = fmt.Sprintf("%d/%d", g.lines, g.cfg.Difficulty.MarathonGoal)
	}

	rows := []struct {
		label string
		value string
		color core.Color
	}{
		{"Score", fmt.Sprintf("%d", g.score), core.ColorBrightWhite},
		{"Best", fmt.Sprintf("%d", g.best()), core.ColorBrightYellow},
		{"Level", fmt.Sprintf("%d", g.level), core.ColorBrightCyan},
		{"Lines", lines, core.ColorBrightCyan},
	}
	for i, r := range rows {
		dst.DrawTextColor(x, y+i, r.label, core.ColorGray)
		dst.DrawTextColor(x+panelW-len(r.value), y+i, r.value, r.color)
	}

	y += len(rows) + 1
	dst.DrawTextColor(x, y, "PLASTIC REMOVED", core.ColorBrightGreen)
	pieces := fmt.Sprintf("%d", g.plasticItems)
	weight := formatWeight(g.plasticGrams)
	dst.DrawTextColor(x, y+1, "Pieces", core.ColorGray)
	dst.DrawTextColor(x+panelW-len(pieces), y+1, pieces, core.ColorGreen)
	dst.DrawTextColor(x, y+2, "Weight", core.ColorGray)
	dst.DrawTextColor(x+panelW-len(weight), y+2, weight, core.ColorGreen)
}

// formatWeight renders grams, switching to kilograms past a thousand.
func formatWeight(grams int) string {
	if grams < 1000 {
		return fmt.Sprintf("%d g", grams)
	}
	return fmt.Sprintf("%.1f kg", float64(grams)/1000)
}

func (g *Game) renderNext(dst *core.Screen) {
	l := g.layout
	y := l.wellY
	if n := g.cfg.Preview.NextCount; n > 0 {
		h := n*3 + 1
		dst.DrawBox(core.NewRect(l.rightX, y, panelW, h), core.ColorGray)
		dst.DrawTextColor(l.rightX+2, y, " NEXT ", core.ColorBrightWhite)
		for i, k := range g.queue[:min(n, len(g.queue))] {
			x := l.rightX + (panelW-miniWidth(k))/2
			g.drawMini(dst, k, x, y+1+i*3)
		}
		y += h + 1
	}

	dst.DrawTextColor(l.rightX, y, "OCEAN FACT", core.ColorTeal)
	for i, line := range wrapText(g.fact, l.rightW) {
		dst.DrawTextColor(l.rightX, y+1+i, line, core.ColorGray)
	}
	if g.active.Kind != KindNone && g.phase == PhasePlaying {
		dst.DrawTextColor(l.rightX, l.wellY+l.wellH-1, g.active.Kind.Debris(), g.active.Kind.Color())
	}
}

// wrapText splits s into lines no wider than width, breaking on spaces.
func wrapText(s string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func (g *Game) renderOverlays(dst *core.Screen) {
	switch g.phase {
	case PhaseTitle:
		g.renderOverlay(dst, core.ColorBrightCyan,
			"PLASTIC POLLUTION TETRIS",
			"",
			"Every piece is ocean debris.",
			"Clear lines to scoop it out.",
			"",
			"Enter      start",
			"←/→        move",
			"↑/x  z     rotate",
			"↓  space   soft / hard drop",
			"c          hold",
			"p  q       pause / quit",
		)
	case PhasePaused:
		g.renderOverlay(dst, core.ColorBrightWhite,
			"PAUSED",
			"",
			"p  resume",
			"b  back to title",
		)
	case PhaseGameOver:
		g.renderOverlay(dst, core.ColorBrightRed, g.endLines("GAME OVER")...)
	case PhaseWon:
		g.renderOverlay(dst, core.ColorBrightGreen, g.endLines("OCEAN CLEANED!")...)
	}
}

func (g *Game) endLines(title string) []string {
	lines := []string{
		title,
		"",
		fmt.Sprintf("Score  %d", g.score),
		fmt.Sprintf("Lines  %d   Level  %d", g.lines, g.level),
		fmt.Sprintf("Plastic removed  %d (%s)", g.plasticItems, formatWeight(g.plasticGrams)),
	}
	if g.score > 0 && g.score > g.highScore {
		lines = append(lines, "NEW BEST!")
	}
	return append(lines, "", "r  play again", "b  title")
}

// renderOverlay draws a bordered box in the middle of the screen. The first
// line is the heading.
func (g *Game) renderOverlay(dst *core.Screen, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
			line = strings.Repeat(" ", (maxLen-len([]rune(line)))/2) + line
		}
		dst.DrawTextColor(box.X+2, box.Y+1+i, line, color)
	}
}
