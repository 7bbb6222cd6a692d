package desktop

import (
	"image/color"

	"github.com/vovakirdan/plastic-tetris/internal/core"
)

// palette maps screen colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0xd8, G: 0xe6, B: 0xf0, A: 0xff},
	core.ColorRed:           {R: 0xc8, G: 0x32, B: 0x3c, A: 0xff},
	core.ColorGreen:         {R: 0x3c, G: 0xb4, B: 0x50, A: 0xff},
	core.ColorYellow:        {R: 0xe6, G: 0xc8, B: 0x46, A: 0xff},
	core.ColorBlue:          {R: 0x3c, G: 0x64, B: 0xd2, A: 0xff},
	core.ColorMagenta:       {R: 0xa0, G: 0x46, B: 0xc8, A: 0xff},
	core.ColorCyan:          {R: 0x32, G: 0xbe, B: 0xd2, A: 0xff},
	core.ColorWhite:         {R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, G: 0x5a, B: 0x5a, A: 0xff},
	core.ColorBrightGreen:   {R: 0x78, G: 0xf0, B: 0x78, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xf0, B: 0x6e, A: 0xff},
	core.ColorBrightBlue:    {R: 0x6e, G: 0x96, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xdc, G: 0x78, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {R: 0x78, G: 0xf0, B: 0xff, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xf0, G: 0x8c, B: 0x28, A: 0xff},
	core.ColorGray:          {R: 0x82, G: 0x8c, B: 0x96, A: 0xff},
	core.ColorNavy:          {R: 0x1e, G: 0x32, B: 0x64, A: 0xff},
	core.ColorDeepBlue:      {R: 0x28, G: 0x50, B: 0x8c, A: 0xff},
	core.ColorTeal:          {R: 0x28, G: 0x8c, B: 0x96, A: 0xff},
}

// Ocean backdrop, top to bottom.
var (
	surfaceColor = color.RGBA{R: 0x14, G: 0x5a, B: 0x82, A: 0xff}
	abyssColor   = color.RGBA{R: 0x03, G: 0x0a, B: 0x1e, A: 0xff}
)

// colorFor returns the window color for c, falling back to the default.
func colorFor(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// withAlpha scales c by a (0..1), producing a premultiplied color.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = core.ClampF(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

// lerp blends from a to b; t is clamped to [0,1].
func lerp(a, b color.RGBA, t float64) color.RGBA {
	t = core.ClampF(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}

// blockAlpha reports how much of a cell a shade rune fills.
// ok is false for runes drawn as text.
func blockAlpha(r rune) (alpha float64, ok bool) {
	switch r {
	case '█':
		return 1, true
	case '▓':
		return 0.8, true
	case '▒':
		return 0.55, true
	case '░':
		return 0.3, true
	}
	return 0, false
}

// glyphFallback replaces runes the bitmap face cannot draw.
func glyphFallback(r rune) rune {
	switch r {
	case '≈':
		return '~'
	case '←':
		return '<'
	case '→':
		return '>'
	case '↑':
		return '^'
	case '↓':
		return 'v'
	}
	return r
}
