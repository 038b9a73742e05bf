package maze

import (
	"errors"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrRaggedGrid indicates a parsed grid whose rows differ in length.
var ErrRaggedGrid = errors.New("maze: all grid rows must have the same length")

// TextGrid is a rectangular character grid. The engine publishes one per
// layer (entity, variations) after each generation pass; both are plain
// values that callers may inspect, copy, and compare.
type TextGrid struct {
	cells [][]rune
}

// NewTextGrid returns a height x width grid with every cell set to fill.
func NewTextGrid(height, width int, fill rune) TextGrid {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = fill
		}
	}
	return TextGrid{cells: cells}
}

// ParseTextGrid builds a grid from newline-separated rows, the same format
// String produces. A trailing newline is optional; rows must be rectangular.
func ParseTextGrid(s string) (TextGrid, error) {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	cells := make([][]rune, len(lines))
	width := -1
	for y, line := range lines {
		row := []rune(line)
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return TextGrid{}, ErrRaggedGrid
		}
		cells[y] = row
	}
	return TextGrid{cells: cells}, nil
}

// Height returns the number of rows.
func (g TextGrid) Height() int {
	return len(g.cells)
}

// Width returns the number of columns.
func (g TextGrid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// At returns the character at row y, column x.
func (g TextGrid) At(y, x int) rune {
	return g.cells[y][x]
}

// Set writes the character at row y, column x.
func (g TextGrid) Set(y, x int, r rune) {
	g.cells[y][x] = r
}

// Clone returns a deep copy that shares no storage with the receiver.
func (g TextGrid) Clone() TextGrid {
	cells := make([][]rune, len(g.cells))
	for y := range g.cells {
		cells[y] = make([]rune, len(g.cells[y]))
		copy(cells[y], g.cells[y])
	}
	return TextGrid{cells: cells}
}

// Equal reports whether both grids hold identical characters.
func (g TextGrid) Equal(other TextGrid) bool {
	if g.Height() != other.Height() || g.Width() != other.Width() {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the grid as newline-terminated rows, one per line,
// including a newline after the last row.
func (g TextGrid) String() string {
	var b strings.Builder
	b.Grow(g.Height() * (g.Width() + 1))
	for _, row := range g.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Sum64 returns an xxhash fingerprint of the grid contents. Two grids are
// byte-identical iff their renderings match, so the fingerprint is a cheap
// change detector for regeneration telemetry and tests.
func (g TextGrid) Sum64() uint64 {
	h := xxhash.New()
	for _, row := range g.cells {
		_, _ = h.WriteString(string(row))
		_, _ = h.Write([]byte{'\n'})
	}
	return h.Sum64()
}
