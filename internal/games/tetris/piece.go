package tetris

import "github.com/vovakirdan/plastic-tetris/internal/core"

// Kind identifies a piece shape. KindNone marks an empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// AllKinds lists the seven playable kinds in bag order.
var AllKinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// kindInfo describes how each kind looks and what piece of debris it stands for.
type kindInfo struct {
	letter string
	debris string
	color  core.Color
	grams  int // Approximate weight of one mino worth of debris
	size   int // Bounding box edge
	spawn  [4]core.Point
}

var kinds = map[Kind]kindInfo{
	KindI: {"I", "Straw", core.ColorBrightCyan, 1, 4,
		[4]core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}},
	KindO: {"O", "Bottle cap", core.ColorBrightYellow, 2, 2,
		[4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}},
	KindT: {"T", "Six-pack ring", core.ColorMagenta, 3, 3,
		[4]core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
	KindS: {"S", "Carrier bag", core.ColorBrightGreen, 2, 3,
		[4]core.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}},
	KindZ: {"Z", "Ghost net", core.ColorBrightRed, 40, 3,
		[4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
	KindJ: {"J", "Water bottle", core.ColorBlue, 6, 3,
		[4]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
	KindL: {"L", "Coffee cup lid", core.ColorOrange, 4, 3,
		[4]core.Point{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
}

// rotations holds the four orientations of every kind, derived from the
// spawn orientation by clockwise rotation inside the bounding box.
var rotations = buildRotations()

func buildRotations() map[Kind][4][4]core.Point {
	out := make(map[Kind][4][4]core.Point, len(kinds))
	for k, info := range kinds {
		var states [4][4]core.Point
		states[0] = info.spawn
		for r := 1; r < 4; r++ {
			for i, p := range states[r-1] {
				states[r][i] = core.Point{X: info.size - 1 - p.Y, Y: p.X}
			}
		}
		out[k] = states
	}
	return out
}

// String returns the piece letter.
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.letter
	}
	return "."
}

// Debris returns the plastic item this kind represents.
func (k Kind) Debris() string {
	return kinds[k].debris
}

// Color returns the display color for the kind.
func (k Kind) Color() core.Color {
	if info, ok := kinds[k]; ok {
		return info.color
	}
	return core.ColorDefault
}

// Grams returns the debris weight of one mino of this kind.
func (k Kind) Grams() int {
	return kinds[k].grams
}

// Size returns the bounding box edge length.
func (k Kind) Size() int {
	return kinds[k].size
}

// Piece is a kind placed on the board: X, Y is the top-left of its
// bounding box in board coordinates (row 0 is the top hidden row).
type Piece struct {
	Kind Kind
	Rot  int // 0 = spawn, 1 = R, 2 = 2, 3 = L
	X, Y int
}

// Cells returns the board coordinates of the four minos.
func (p Piece) Cells() [4]core.Point {
	var out [4]core.Point
	for i, off := range rotations[p.Kind][p.Rot&3] {
		out[i] = core.Point{X: p.X + off.X, Y: p.Y + off.Y}
	}
	return out
}

// Moved returns the piece shifted by dx, dy.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns the piece turned by dir quarter turns (1 = CW, -1 = CCW)
// without any kick applied.
func (p Piece) Rotated(dir int) Piece {
	p.Rot = (p.Rot + dir + 4) & 3
	return p
}

// kickKey indexes the SRS kick tables by rotation transition.
type kickKey struct{ from, to int }

// Kick offsets from the SRS tables, written with y pointing up.
var (
	kicksJLSTZ = map[kickKey][5]core.Point{
		{0, 1}: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}},
		{1, 0}: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
		{1, 2}: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
		{2, 1}: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}},
		{2, 3}: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},
		{3, 2}: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}},
		{3, 0}: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}},
		{0, 3}: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},
	}
	kicksI = map[kickKey][5]core.Point{
		{0, 1}: {{X: 0, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: -1}, {X: 1, Y: 2}},
		{1, 0}: {{X: 0, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 1}, {X: -1, Y: -2}},
		{1, 2}: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 2}, {X: 2, Y: -1}},
		{2, 1}: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: -2}, {X: -2, Y: 1}},
		{2, 3}: {{X: 0, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 1}, {X: -1, Y: -2}},
		{3, 2}: {{X: 0, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: -1}, {X: 1, Y: 2}},
		{3, 0}: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: -2}, {X: -2, Y: 1}},
		{0, 3}: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 2}, {X: 2, Y: -1}},
	}
)

// kicks returns the board-space offsets to try when rotating from one
// state to another. O pieces only try staying in place.
func kicks(k Kind, from, to int) []core.Point {
	var table map[kickKey][5]core.Point
	switch k {
	case KindO:
		return []core.Point{{X: 0, Y: 0}}
	case KindI:
		table = kicksI
	default:
		table = kicksJLSTZ
	}
	offsets := table[kickKey{from, to}]
	out := make([]core.Point, len(offsets))
	for i, o := range offsets {
		out[i] = core.Point{X: o.X, Y: -o.Y} // board y grows downward
	}
	return out
}
