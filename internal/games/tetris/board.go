package tetris

import (
	"errors"
	"fmt"
	"hash/fnv"
)

// ErrCollision is returned when locking a piece that overlaps the stack or
// leaves the board. Callers are expected to check Fits first.
var ErrCollision = errors.New("piece does not fit")

// Board is the playfield. Row 0 is the top of the hidden spawn area; the
// visible field starts at row Hidden().
type Board struct {
	width  int
	hidden int
	cells  [][]Kind
}

// NewBoard creates an empty board with the given visible size plus hidden rows.
func NewBoard(width, visible, hidden int) *Board {
	b := &Board{
		width:  width,
		hidden: hidden,
		cells:  make([][]Kind, visible+hidden),
	}
	for y := range b.cells {
		b.cells[y] = make([]Kind, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the total number of rows including hidden rows.
func (b *Board) Height() int { return len(b.cells) }

// Hidden returns the number of spawn rows above the visible field.
func (b *Board) Hidden() int { return b.hidden }

// Visible returns the number of visible rows.
func (b *Board) Visible() int { return len(b.cells) - b.hidden }

// InBounds reports whether (x, y) is a board cell.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < len(b.cells)
}

// At returns the kind locked at (x, y), or KindNone for empty and
// out-of-bounds cells.
func (b *Board) At(x, y int) Kind {
	if !b.InBounds(x, y) {
		return KindNone
	}
	return b.cells[y][x]
}

// Set writes a cell directly. Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, k Kind) {
	if b.InBounds(x, y) {
		b.cells[y][x] = k
	}
}

// Fits reports whether every mino of p is on the board and on an empty cell.
func (b *Board) Fits(p Piece) bool {
	for _, c := range p.Cells() {
		if !b.InBounds(c.X, c.Y) || b.cells[c.Y][c.X] != KindNone {
			return false
		}
	}
	return true
}

// Lock writes the piece into the board.
func (b *Board) Lock(p Piece) error {
	if !b.Fits(p) {
		return fmt.Errorf("tetris: lock %s at (%d,%d) rot %d: %w", p.Kind, p.X, p.Y, p.Rot, ErrCollision)
	}
	for _, c := range p.Cells() {
		b.cells[c.Y][c.X] = p.Kind
	}
	return nil
}

// DropDistance returns how many rows p can fall before it would collide.
func (b *Board) DropDistance(p Piece) int {
	d := 0
	for b.Fits(p.Moved(0, d+1)) {
		d++
	}
	return d
}

// RowFull reports whether row y has no empty cells.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= len(b.cells) {
		return false
	}
	for _, k := range b.cells[y] {
		if k == KindNone {
			return false
		}
	}
	return true
}

// ClearResult describes what a line clear removed.
type ClearResult struct {
	Rows    []int  // Cleared row indices, top to bottom, before shifting
	Removed []Kind // Kinds of every removed cell
}

// Count returns the number of cleared rows.
func (r ClearResult) Count() int { return len(r.Rows) }

// ClearLines removes every full row and shifts the rows above down.
// The board keeps its height; new empty rows enter at the top.
func (b *Board) ClearLines() ClearResult {
	var res ClearResult
	kept := make([][]Kind, 0, len(b.cells))
	for y, row := range b.cells {
		if b.RowFull(y) {
			res.Rows = append(res.Rows, y)
			res.Removed = append(res.Removed, row...)
			continue
		}
		kept = append(kept, row)
	}
	if len(res.Rows) == 0 {
		return res
	}

	fresh := make([][]Kind, len(res.Rows), len(b.cells))
	for i := range fresh {
		fresh[i] = make([]Kind, b.width)
	}
	b.cells = append(fresh, kept...)
	return res
}

// Occupied returns the number of filled cells.
func (b *Board) Occupied() int {
	n := 0
	for _, row := range b.cells {
		for _, k := range row {
			if k != KindNone {
				n++
			}
		}
	}
	return n
}

// StackHeight returns the number of rows from the bottom up to and
// including the highest filled cell.
func (b *Board) StackHeight() int {
	for y, row := range b.cells {
		for _, k := range row {
			if k != KindNone {
				return len(b.cells) - y
			}
		}
	}
	return 0
}

// Hash fingerprints the board contents for determinism checks.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, b.width)
	for _, row := range b.cells {
		for x, k := range row {
			buf[x] = byte(k)
		}
		h.Write(buf)
	}
	return h.Sum64()
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{width: b.width, hidden: b.hidden, cells: make([][]Kind, len(b.cells))}
	for y, row := range b.cells {
		c.cells[y] = append([]Kind(nil), row...)
	}
	return c
}
