package series

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// defaultPalette повторяет порядок цветов, привычный по go-chart.
var defaultPalette = []drawing.Color{
	drawing.ColorBlue,
	drawing.ColorRed,
	drawing.ColorGreen,
	drawing.ColorFromHex("ffa500"),
	drawing.ColorFromHex("800080"),
	drawing.ColorFromHex("008080"),
	drawing.ColorFromHex("a0522d"),
}

// PaletteColor returns the default color for a series or slice index,
// cycling when the palette runs out.
func PaletteColor(i int) drawing.Color {
	if i < 0 {
		i = -i
	}
	return defaultPalette[i%len(defaultPalette)]
}
