package ui

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// zonePalette maps zone letters 'A'..'Z' to evenly spaced hues so adjacent
// room labels stay visually distinct in the viewer.
var zonePalette = buildZonePalette()

func buildZonePalette() [26]tcell.Color {
	var palette [26]tcell.Color
	for i := range palette {
		hue := float64(i) * 360.0 / float64(len(palette))
		c := colorful.Hsv(hue, 0.65, 0.95)
		r, g, b := c.RGB255()
		palette[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return palette
}

// ZoneColor returns the display color for a variations-layer character.
// Non-zone characters get the default terminal color.
func ZoneColor(label rune) tcell.Color {
	if label < 'A' || label > 'Z' {
		return tcell.ColorDefault
	}
	return zonePalette[label-'A']
}
