package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, k Kind, skip ...int) {
	for x := range b.Width() {
		b.Set(x, y, k)
	}
	for _, x := range skip {
		b.Set(x, y, KindNone)
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(10, 20, 2)
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 22, b.Height())
	assert.Equal(t, 2, b.Hidden())
	assert.Equal(t, 20, b.Visible())
	assert.Zero(t, b.Occupied())
	assert.Zero(t, b.StackHeight())
}

func TestBoardBounds(t *testing.T) {
	b := NewBoard(10, 20, 2)
	assert.True(t, b.InBounds(0, 0))
	assert.True(t, b.InBounds(9, 21))
	assert.False(t, b.InBounds(-1, 0))
	assert.False(t, b.InBounds(10, 0))
	assert.False(t, b.InBounds(0, 22))

	// Out of bounds writes are ignored
	b.Set(-1, 5, KindT)
	assert.Zero(t, b.Occupied())
}

func TestBoardFits(t *testing.T) {
	b := NewBoard(10, 20, 2)
	p := Piece{Kind: KindO, X: 4, Y: 0}
	assert.True(t, b.Fits(p))
	assert.False(t, b.Fits(p.Moved(-5, 0)), "left wall")
	assert.False(t, b.Fits(p.Moved(5, 0)), "right wall")
	assert.False(t, b.Fits(p.Moved(0, 21)), "floor")

	b.Set(5, 1, KindZ)
	assert.False(t, b.Fits(p), "overlaps a locked cell")
}

func TestBoardLock(t *testing.T) {
	b := NewBoard(10, 20, 2)
	p := Piece{Kind: KindT, X: 3, Y: 20}
	require.NoError(t, b.Lock(p))
	assert.Equal(t, 4, b.Occupied())
	assert.Equal(t, KindT, b.At(4, 20))
	assert.Equal(t, 2, b.StackHeight())

	err := b.Lock(p)
	require.ErrorIs(t, err, ErrCollision)
	assert.Equal(t, 4, b.Occupied(), "failed lock leaves the board untouched")
}

func TestDropDistance(t *testing.T) {
	b := NewBoard(10, 20, 2)
	p := Piece{Kind: KindO, X: 0, Y: 0}
	assert.Equal(t, 20, b.DropDistance(p))

	fillRow(b, 21, KindJ, 9)
	assert.Equal(t, 19, b.DropDistance(p))
}

func TestClearLines(t *testing.T) {
	b := NewBoard(10, 20, 2)
	fillRow(b, 21, KindS)
	fillRow(b, 20, KindZ)
	b.Set(3, 19, KindL)
	fillRow(b, 18, KindI, 0)

	res := b.ClearLines()
	assert.Equal(t, []int{20, 21}, res.Rows)
	assert.Equal(t, 2, res.Count())
	assert.Len(t, res.Removed, 20)

	assert.Equal(t, KindL, b.At(3, 21), "rows above shift down")
	assert.Equal(t, KindNone, b.At(0, 20))
	assert.Equal(t, KindI, b.At(1, 20))
	assert.Equal(t, 22, b.Height(), "height is preserved")
	assert.Equal(t, 10, b.Occupied())
}

func TestClearLinesSplit(t *testing.T) {
	b := NewBoard(10, 20, 2)
	fillRow(b, 21, KindS)
	fillRow(b, 20, KindT, 2, 7)
	fillRow(b, 19, KindZ)
	b.Set(5, 18, KindJ)
	b.Set(6, 17, KindO)
	before := b.Occupied()

	res := b.ClearLines()
	assert.Equal(t, []int{19, 21}, res.Rows)
	assert.Len(t, res.Removed, 20)
	assert.Equal(t, before-2*b.Width(), b.Occupied())

	// The partial row only had a cleared row below it
	for x := range b.Width() {
		want := KindT
		if x == 2 || x == 7 {
			want = KindNone
		}
		assert.Equal(t, want, b.At(x, 21), "column %d", x)
	}
	// Rows above both clears drop by two, keeping their order
	assert.Equal(t, KindJ, b.At(5, 20))
	assert.Equal(t, KindO, b.At(6, 19))
	assert.Equal(t, KindNone, b.At(5, 18))
	assert.False(t, b.RowFull(21))
}

func TestClearLinesNone(t *testing.T) {
	b := NewBoard(10, 20, 2)
	fillRow(b, 21, KindS, 4)
	res := b.ClearLines()
	assert.Zero(t, res.Count())
	assert.Empty(t, res.Removed)
	assert.Equal(t, 9, b.Occupied())
}

func TestBoardHashAndClone(t *testing.T) {
	b := NewBoard(10, 20, 2)
	empty := b.Hash()

	c := b.Clone()
	c.Set(0, 21, KindO)
	assert.Equal(t, empty, b.Hash(), "clone is independent")
	assert.NotEqual(t, empty, c.Hash())

	b.Set(0, 21, KindO)
	assert.Equal(t, c.Hash(), b.Hash())
}
