package tetris

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Mode         string // "marathon" or "endless"
	Phase        Phase
	TooSmall     bool
	Score        int
	Level        int
	Lines        int
	Piece        Kind
	Rot          int
	X            int
	Y            int
	Hold         Kind
	Queue        []Kind
	BoardHash    uint64
	Occupied     int
	PlasticItems int
	PlasticGrams int
	GravityTicks int
	Particles    int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Phase:        g.phase,
		TooSmall:     g.tooSmall,
		Score:        g.score,
		Level:        g.level,
		Lines:        g.lines,
		Piece:        g.active.Kind,
		Rot:          g.active.Rot,
		X:            g.active.X,
		Y:            g.active.Y,
		Hold:         g.hold,
		Queue:        append([]Kind(nil), g.queue...),
		BoardHash:    g.board.Hash(),
		Occupied:     g.board.Occupied(),
		PlasticItems: g.plasticItems,
		PlasticGrams: g.plasticGrams,
		GravityTicks: g.gravityTicks,
		Particles:    g.particles.Count(),
	}
}
