package tetris

// oceanFacts are shown on the title screen, on level ups and at game over.
var oceanFacts = []string{
	"Around 11 million tonnes of plastic enter the ocean every year.",
	"A plastic bottle can take 450 years to break down at sea.",
	"Lost fishing gear makes up a large share of floating ocean plastic.",
	"Sea turtles mistake carrier bags for jellyfish.",
	"Microplastics have been found in the deepest ocean trenches.",
	"Six-pack rings can trap seabirds, seals and fish.",
	"Most plastic ever made still exists in some form today.",
	"Straws and cup lids are among the most common beach litter.",
	"The Great Pacific Garbage Patch is about three times the size of France.",
	"Refill, reuse and recycle: every item kept out of the sea counts.",
}

// Fact returns the ocean fact for a level (1-based), cycling through the list.
func Fact(level int) string {
	if level < 1 {
		level = 1
	}
	return oceanFacts[(level-1)%len(oceanFacts)]
}
