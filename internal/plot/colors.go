package plot

import "github.com/wcharczuk/go-chart/v2/drawing"

// namedColors maps palette names to the shades matplotlib uses for them.
var namedColors = map[string]string{
	"red":    "ff0000",
	"blue":   "0000ff",
	"green":  "008000",
	"purple": "800080",
	"orange": "ffa500",
	"brown":  "a52a2a",
	"pink":   "ffc0cb",
	"cyan":   "00ffff",
}

// Color resolves a palette name, falling back to black.
func Color(name string) drawing.Color {
	if hex, ok := namedColors[name]; ok {
		return drawing.ColorFromHex(hex)
	}
	return drawing.ColorBlack
}
