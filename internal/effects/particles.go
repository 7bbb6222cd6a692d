// Package effects implements decorative particles: ambient bubbles rising
// through the ocean backdrop and spray bursts when lines are cleared.
// Particles never feed back into gameplay.
package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/plastic-tetris/internal/core"
)

// Kind distinguishes particle behaviours.
type Kind int

const (
	KindBubble Kind = iota // Rises slowly with sway
	KindSpray              // Thrown sideways, falls back under gravity
)

// sprayGravity is added to a spray particle's vertical speed every tick.
const sprayGravity = 0.02

// Particle is a single decorative element in screen coordinates.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int // Remaining ticks
	MaxLife int
	Kind    Kind
}

// Config tunes the particle system.
type Config struct {
	MaxParticles int
	BubbleEvery  int // Ticks between ambient bubbles, 0 disables them
	BurstSize    int // Particles per side per burst row
}

// System owns all live particles.
type System struct {
	cfg       Config
	rng       *rand.Rand
	area      core.Rect
	particles []Particle
	tick      int
}

// New creates a particle system with its own seeded RNG so that effects
// stay reproducible without consuming the game's random stream.
func New(seed int64, cfg Config) *System {
	return &System{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		particles: make([]Particle, 0, cfg.MaxParticles),
	}
}

// SetArea sets the screen region particles live in.
// Particles outside the new area are dropped on the next update.
func (s *System) SetArea(r core.Rect) {
	s.area = r
}

// Area returns the current particle region.
func (s *System) Area() core.Rect {
	return s.area
}

// Reset removes every particle.
func (s *System) Reset() {
	s.particles = s.particles[:0]
	s.tick = 0
}

// Count returns the number of live particles.
func (s *System) Count() int {
	return len(s.particles)
}

// Particles returns a copy of the live particles.
func (s *System) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Update advances every particle by one tick and spawns ambient bubbles.
func (s *System) Update() {
	s.tick++

	if s.cfg.BubbleEvery > 0 && s.tick%s.cfg.BubbleEvery == 0 {
		s.spawnBubble()
	}

	alive := s.particles[:0]
	for _, p := range s.particles {
		p.Life--
		p.X += p.VX
		p.Y += p.VY

		switch p.Kind {
		case KindBubble:
			// Gentle sway around the rising column
			p.VX = 0.08 * math.Sin(float64(p.MaxLife-p.Life)/6.0+p.Y)
		case KindSpray:
			p.VY += sprayGravity
		}

		if p.Life <= 0 || !s.inArea(p) {
			continue
		}
		alive = append(alive, p)
	}
	s.particles = alive
}

// Burst throws spray outward from both sides of a cleared row.
// left and right are the screen columns just outside the well.
func (s *System) Burst(y, left, right int) {
	for i := 0; i < s.cfg.BurstSize; i++ {
		s.add(Particle{
			X:    float64(left),
			Y:    float64(y),
			VX:   -(0.2 + s.rng.Float64()*0.4),
			VY:   -(0.1 + s.rng.Float64()*0.3),
			Life: 20 + s.rng.Intn(20),
			Kind: KindSpray,
		})
		s.add(Particle{
			X:    float64(right),
			Y:    float64(y),
			VX:   0.2 + s.rng.Float64()*0.4,
			VY:   -(0.1 + s.rng.Float64()*0.3),
			Life: 20 + s.rng.Intn(20),
			Kind: KindSpray,
		})
	}
}

func (s *System) spawnBubble() {
	if s.area.W <= 0 || s.area.H <= 0 {
		return
	}
	speed := 0.05 + s.rng.Float64()*0.1
	s.add(Particle{
		X:    float64(s.area.X + s.rng.Intn(s.area.W)),
		Y:    float64(s.area.Bottom() - 1),
		VY:   -speed,
		Life: int(float64(s.area.H)/speed) + 1,
		Kind: KindBubble,
	})
}

func (s *System) add(p Particle) {
	if len(s.particles) >= s.cfg.MaxParticles {
		return
	}
	p.MaxLife = p.Life
	s.particles = append(s.particles, p)
}

func (s *System) inArea(p Particle) bool {
	x, y := cellOf(p)
	return s.area.Contains(x, y)
}

func cellOf(p Particle) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Render draws particles onto the screen. Later drawing (the well, panels)
// overwrites them, so call this right after the backdrop.
func (s *System) Render(dst *core.Screen) {
	for _, p := range s.particles {
		x, y := cellOf(p)
		r, c := glyph(p, s.area)
		dst.SetCell(x, y, r, c)
	}
}

// glyph picks the rune and color for a particle based on its kind and age.
func glyph(p Particle, area core.Rect) (rune, core.Color) {
	switch p.Kind {
	case KindSpray:
		switch {
		case p.Life > p.MaxLife*2/3:
			return '*', core.ColorBrightWhite
		case p.Life > p.MaxLife/3:
			return '+', core.ColorBrightCyan
		default:
			return '·', core.ColorCyan
		}
	default:
		// Bubbles grow as they approach the surface
		depth := p.Y - float64(area.Y)
		switch {
		case depth < float64(area.H)/4:
			return 'O', core.ColorBrightCyan
		case depth < float64(area.H)/2:
			return 'o', core.ColorCyan
		default:
			return '°', core.ColorTeal
		}
	}
}
