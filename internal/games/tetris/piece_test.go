package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/plastic-tetris/internal/core"
)

func TestKindInfo(t *testing.T) {
	for _, k := range AllKinds {
		assert.NotEmpty(t, k.Debris(), k.String())
		assert.NotEqual(t, core.ColorDefault, k.Color(), k.String())
		assert.Positive(t, k.Grams(), k.String())
	}
	assert.Equal(t, "Straw", KindI.Debris())
	assert.Equal(t, "Ghost net", KindZ.Debris())
	assert.Equal(t, ".", KindNone.String())
	assert.Equal(t, 4, KindI.Size())
	assert.Equal(t, 2, KindO.Size())
}

func TestRotationsStayInBox(t *testing.T) {
	for _, k := range AllKinds {
		for rot := range 4 {
			seen := make(map[core.Point]bool)
			for _, c := range (Piece{Kind: k, Rot: rot}).Cells() {
				assert.GreaterOrEqual(t, c.X, 0)
				assert.Less(t, c.X, k.Size())
				assert.GreaterOrEqual(t, c.Y, 0)
				assert.Less(t, c.Y, k.Size())
				seen[c] = true
			}
			assert.Len(t, seen, 4, "%s rot %d has four distinct minos", k, rot)
		}
	}
}

func TestFullTurnReturnsToSpawn(t *testing.T) {
	for _, k := range AllKinds {
		p := Piece{Kind: k, X: 3, Y: 4}
		q := p
		for range 4 {
			q = q.Rotated(1)
		}
		assert.Equal(t, p.Cells(), q.Cells(), k.String())
		assert.Equal(t, p.Cells(), p.Rotated(1).Rotated(-1).Cells(), k.String())
	}
}

func TestTRotationCW(t *testing.T) {
	p := Piece{Kind: KindT}.Rotated(1)
	want := [4]core.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}
	assert.ElementsMatch(t, want[:], p.Cells())
}

func TestORotationIsStable(t *testing.T) {
	p := Piece{Kind: KindO}
	assert.ElementsMatch(t, p.Cells(), p.Rotated(1).Cells())
	assert.Equal(t, []core.Point{{X: 0, Y: 0}}, kicks(KindO, 0, 1))
}

func TestKickTables(t *testing.T) {
	for _, k := range []Kind{KindT, KindI} {
		for from := range 4 {
			for _, dir := range []int{1, -1} {
				to := (from + dir + 4) & 3
				offsets := kicks(k, from, to)
				assert.Len(t, offsets, 5)
				assert.Equal(t, core.Point{}, offsets[0], "first test keeps the piece in place")
			}
		}
	}

	// Table y points up; board y points down
	assert.Equal(t, core.Point{X: -1, Y: -1}, kicks(KindT, 0, 1)[2])
	assert.Equal(t, core.Point{X: 1, Y: -2}, kicks(KindI, 0, 1)[4])
}
