package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagContainsEveryKind(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(7)))
	for bag := range 20 {
		seen := make(map[Kind]int)
		for range len(AllKinds) {
			seen[b.Next()]++
		}
		for _, k := range AllKinds {
			assert.Equal(t, 1, seen[k], "bag %d kind %s", bag, k)
		}
	}
}

func TestBagDeterministic(t *testing.T) {
	a := NewBag(rand.New(rand.NewSource(99)))
	b := NewBag(rand.New(rand.NewSource(99)))
	for i := range 50 {
		assert.Equal(t, a.Next(), b.Next(), "draw %d", i)
	}
}

func TestFactCycles(t *testing.T) {
	assert.Equal(t, Fact(1), Fact(0))
	assert.Equal(t, Fact(1), Fact(len(oceanFacts)+1))
	assert.NotEqual(t, Fact(1), Fact(2))
}
