package core

// Color represents a foreground color for a screen cell.
// Front ends map it to ANSI 256 codes (terminal) or RGBA (desktop).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorNavy     // deep water
	ColorDeepBlue // mid water
	ColorTeal     // shallow water
)

// Colors lists every palette entry in declaration order.
func Colors() []Color {
	out := make([]Color, 0, int(ColorTeal)+1)
	for c := ColorDefault; c <= ColorTeal; c++ {
		out = append(out, c)
	}
	return out
}
