package tetris

import "math/rand"

// Bag is the 7-bag randomizer: every run of seven pieces contains each
// kind exactly once, in shuffled order.
type Bag struct {
	rng     *rand.Rand
	pending []Kind
}

// NewBag creates a bag drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next returns the next kind, refilling with a fresh shuffled bag when empty.
func (b *Bag) Next() Kind {
	if len(b.pending) == 0 {
		b.refill()
	}
	k := b.pending[0]
	b.pending = b.pending[1:]
	return k
}

func (b *Bag) refill() {
	b.pending = append(b.pending[:0], AllKinds[:]...)
	b.rng.Shuffle(len(b.pending), func(i, j int) {
		b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
	})
}
