package hourglass

import "fmt"

// =============================================================================
// Grid - Generic 2D Container
// =============================================================================

// Grid is a fixed-size 2D container backed by a flat slice in row-major
// order (index = y*width + x). Dimensions are set at construction and never
// change. All coordinate access is bounds-checked; out-of-range access is a
// programming error and panics rather than returning a recoverable error.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// NewGrid allocates a width×height grid. Each cell is produced by an
// independent call to fill, so per-cell state is never shared between
// positions. Panics if either dimension is not positive.
func NewGrid[T any](width, height int, fill func() T) *Grid[T] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("hourglass: invalid grid dimensions %dx%d", width, height))
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill()
	}
	return &Grid[T]{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the value at (x, y). Panics if the position is out of bounds.
func (g *Grid[T]) At(x, y int) T {
	g.check(x, y)
	return g.cells[y*g.width+x]
}

// Set stores v at (x, y). Panics if the position is out of bounds.
func (g *Grid[T]) Set(x, y int, v T) {
	g.check(x, y)
	g.cells[y*g.width+x] = v
}

// Flip reverses the backing slice end-to-end, mirroring the grid both
// left-right and top-bottom in one pass (a 180° rotation). Flipping twice
// restores the original arrangement.
func (g *Grid[T]) Flip() {
	for i, j := 0, len(g.cells)-1; i < j; i, j = i+1, j-1 {
		g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	}
}

// Clone returns a deep copy with independent backing storage.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

func (g *Grid[T]) check(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("hourglass: position (%d,%d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
}
