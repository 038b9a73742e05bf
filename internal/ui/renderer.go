package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazeband/internal/maze"
)

// Renderer draws maze layers to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the maze. Floor cells are tinted with their zone color; with
// showVariations set, the zone letters themselves are drawn over the floors.
func (r *Renderer) Render(m *maze.Maze, showVariations bool) {
	r.screen.Clear()

	entity := m.EntityLayer()
	variations := m.VariationsLayer()

	for y := 0; y < entity.Height(); y++ {
		for x := 0; x < entity.Width(); x++ {
			ch := entity.At(y, x)
			label := variations.At(y, x)

			style := tcell.StyleDefault
			switch {
			case ch == rune(maze.TileWall):
				style = style.Foreground(tcell.ColorDarkGray)
			case label != maze.VariationBackground:
				style = style.Foreground(ZoneColor(label))
				if showVariations {
					ch = label
				}
			default:
				style = style.Foreground(tcell.ColorGray)
			}
			r.screen.SetContent(x, y, ch, style)
		}
	}

	status := fmt.Sprintf("%dx%d seed=%d pass=%d rooms=%d  [r]egenerate [v]ariations [q]uit",
		m.Height(), m.Width(), m.Seed(), m.Passes(), len(m.Rooms()))
	r.RenderMessage(status, entity.Height()+1)

	r.screen.Show()
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
