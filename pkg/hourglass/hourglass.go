package hourglass

import (
	"fmt"
	"strings"
)

// =============================================================================
// Constants
// =============================================================================

// MaxCellSand is the maximum number of grains a single cell can hold. A cell
// at capacity behaves as solid, which is what lets grains stack on top of
// each other.
const MaxCellSand = 2

// settleStreak is the number of consecutive zero-move ticks Settle requires
// before declaring the glass settled.
const settleStreak = 16

// =============================================================================
// Randomness
// =============================================================================

// Rand supplies the uniform draws that drive the flow rule. It is injected
// on every call that needs randomness so the simulation holds no hidden
// entropy state and tests can substitute a deterministic source.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// direction is a candidate move for a grain during one tick.
type direction int

const (
	moveDown direction = iota
	moveRight
	moveLeft
)

// =============================================================================
// Hourglass
// =============================================================================

// Hourglass is a simulated glass timer: an immutable wall layout, a mutable
// per-cell grain count in [0, MaxCellSand], and a pinch flag gating flow
// through the neck. Both grids share the same dimensions for the object's
// entire lifetime.
//
// All operations are synchronous and complete atomically from the caller's
// perspective; an Hourglass is not safe for concurrent use.
type Hourglass struct {
	layout  *Grid[LayoutCell]
	sand    *Grid[uint8]
	pinched bool
}

// New constructs an hourglass with the given outer dimensions. Width must be
// odd (so a single-column neck exists) and height must exceed width; New
// panics otherwise, refusing to produce an inconsistent instance. Callers
// taking user input should validate upstream.
func New(width, height int) *Hourglass {
	if width%2 != 1 {
		panic(fmt.Sprintf("hourglass: width must be odd, got %d", width))
	}
	if height <= width {
		panic(fmt.Sprintf("hourglass: height must exceed width, got %dx%d", width, height))
	}
	return &Hourglass{
		layout: generateLayout(width, height),
		sand:   NewGrid(width, height, func() uint8 { return 0 }),
	}
}

// Width returns the number of columns.
func (h *Hourglass) Width() int { return h.layout.Width() }

// Height returns the number of rows.
func (h *Hourglass) Height() int { return h.layout.Height() }

// Pinch blocks downward flow through the neck row, pausing the passage of
// simulated time. Pinching an already-pinched glass is a no-op.
func (h *Hourglass) Pinch() { h.pinched = true }

// Unpinch re-opens the neck.
func (h *Hourglass) Unpinch() { h.pinched = false }

// Pinched reports whether the neck is currently pinched.
func (h *Hourglass) Pinched() bool { return h.pinched }

// =============================================================================
// Solidity and Placement
// =============================================================================

// IsSolidAt reports whether (x, y) blocks sand. Positions outside the grid
// are solid (the exterior acts as a boundary), walls are solid, and a cell
// already holding MaxCellSand grains is solid, so grains stack.
func (h *Hourglass) IsSolidAt(x, y int) bool {
	if !h.layout.InBounds(x, y) {
		return true
	}
	if h.layout.At(x, y).IsWall() {
		return true
	}
	return h.sand.At(x, y) >= MaxCellSand
}

// TryPlaceSand adds one grain at (x, y) if the cell has capacity. It returns
// false, leaving all state unchanged, when the cell is already saturated.
// Panics if the position is out of bounds.
func (h *Hourglass) TryPlaceSand(x, y int) bool {
	if h.sand.At(x, y) >= MaxCellSand {
		return false
	}
	h.sand.Set(x, y, h.sand.At(x, y)+1)
	return true
}

// TryAddSand drops one grain just below the top border at the center column,
// as if poured in through the top of the glass.
func (h *Hourglass) TryAddSand() bool {
	return h.TryPlaceSand(h.Width()/2, 1)
}

// FillWithSandFromTop seeds the glass with grains. fullness in [0, 1] sets
// the grain budget as a fraction of total interior capacity; interior
// (non-wall) cells are filled to capacity in row-major order, top rows
// first, until the budget runs out. Fullness 0 leaves the glass empty,
// fullness 1 saturates every interior cell.
func (h *Hourglass) FillWithSandFromTop(fullness float64) {
	interior := 0
	for y := 0; y < h.Height(); y++ {
		for x := 0; x < h.Width(); x++ {
			if !h.layout.At(x, y).IsWall() {
				interior++
			}
		}
	}

	budget := int(float64(interior*MaxCellSand) * fullness)
	for y := 0; y < h.Height() && budget > 0; y++ {
		for x := 0; x < h.Width() && budget > 0; x++ {
			if h.layout.At(x, y).IsWall() {
				continue
			}
			for h.sand.At(x, y) < MaxCellSand && budget > 0 {
				h.sand.Set(x, y, h.sand.At(x, y)+1)
				budget--
			}
		}
	}
}

// =============================================================================
// Flow
// =============================================================================

// Advance runs one simulation tick and returns the number of grains that
// moved. Rows are processed bottom to top and columns left to right, so a
// grain never moves twice in one tick through a freshly vacated or freshly
// filled neighbor. Each occupied cell draws a single candidate direction
// uniformly from {down, right, left}; if that draw is illegal the cell
// simply stays put this tick.
func (h *Hourglass) Advance(rng Rand) int {
	moves := 0
	for y := h.Height() - 1; y >= 0; y-- {
		for x := 0; x < h.Width(); x++ {
			if h.sand.At(x, y) > MaxCellSand {
				panic(fmt.Sprintf("hourglass: cell (%d,%d) holds %d grains, max is %d", x, y, h.sand.At(x, y), MaxCellSand))
			}

			dir := direction(rng.IntN(3))
			if !h.canFlow(x, y, dir) {
				continue
			}

			h.sand.Set(x, y, h.sand.At(x, y)-1)
			switch dir {
			case moveDown:
				h.sand.Set(x, y+1, h.sand.At(x, y+1)+1)
			case moveRight:
				h.sand.Set(x+1, y, h.sand.At(x+1, y)+1)
			case moveLeft:
				h.sand.Set(x-1, y, h.sand.At(x-1, y)+1)
			}
			moves++
		}
	}
	return moves
}

// canFlow decides whether a grain at (x, y) may move in dir. Down needs a
// non-solid cell below (and is suppressed on the last row of the upper bulb
// while pinched). A lateral move needs the grain to be resting on something
// solid, a non-solid neighbor, and either an uneven stack to level or an
// open drop past the neighbor to spill over.
func (h *Hourglass) canFlow(x, y int, dir direction) bool {
	sand := h.sand.At(x, y)
	if sand < 1 {
		return false
	}

	solidBelow := h.IsSolidAt(x, y+1)

	switch dir {
	case moveDown:
		if h.pinched && y == h.Height()/2-1 {
			return false
		}
		return y < h.Height()-1 && !solidBelow
	case moveRight:
		return h.canSlide(x, y, 1, sand, solidBelow)
	case moveLeft:
		return h.canSlide(x, y, -1, sand, solidBelow)
	}
	return false
}

// canSlide is the shared lateral rule for dx = +1 (right) and dx = -1 (left).
func (h *Hourglass) canSlide(x, y, dx int, sand uint8, solidBelow bool) bool {
	if !solidBelow || h.IsSolidAt(x+dx, y) {
		return false
	}
	if sand > 1 && sand-1 > h.sand.At(x+dx, y) {
		return true // leveling: even out an uneven stack
	}
	return !h.IsSolidAt(x+dx, y+1) // spilling: open drop past the neighbor
}

// =============================================================================
// Settling
// =============================================================================

// Settle repeatedly advances the simulation until 16 consecutive ticks
// produce no movement, then returns the total tick count. There is no upper
// bound on ticks; see SettleBounded for a capped variant.
func (h *Hourglass) Settle(rng Rand) int {
	ticks, _ := h.SettleBounded(rng, 0)
	return ticks
}

// SettleBounded is Settle with a defensive tick ceiling. maxTicks <= 0 means
// unbounded. It returns the ticks executed and whether the glass actually
// settled before hitting the ceiling.
func (h *Hourglass) SettleBounded(rng Rand, maxTicks int) (int, bool) {
	ticks := 0
	quiet := 0
	for quiet < settleStreak {
		if maxTicks > 0 && ticks >= maxTicks {
			return ticks, false
		}
		if h.Advance(rng) == 0 {
			quiet++
		} else {
			quiet = 0
		}
		ticks++
	}
	return ticks, true
}

// =============================================================================
// Flipping and Counting
// =============================================================================

// Flip turns the glass upside down, applying the same 180° rotation to the
// walls and the sand so both stay aligned. The pinch state is unaffected.
func (h *Hourglass) Flip() {
	h.layout.Flip()
	h.sand.Flip()
}

// CountSand sums grain counts over the rectangle of columns [x0, x1) and
// rows [y0, y1). Bounds outside the grid panic.
func (h *Hourglass) CountSand(x0, x1, y0, y1 int) int {
	total := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			total += int(h.sand.At(x, y))
		}
	}
	return total
}

// CountTopSand returns the grains in the upper half of the glass.
func (h *Hourglass) CountTopSand() int {
	return h.CountSand(0, h.Width(), 0, h.Height()/2)
}

// CountBottomSand returns the grains in the lower half of the glass.
func (h *Hourglass) CountBottomSand() int {
	return h.CountSand(0, h.Width(), h.Height()/2, h.Height())
}

// =============================================================================
// Rendering
// =============================================================================

// sandGlyph maps a grain count to its display rune. Any count beyond
// MaxCellSand is unreachable through the public API and renders as '?' to
// make corruption visible rather than silent.
func sandGlyph(count uint8) rune {
	switch count {
	case 0:
		return ' '
	case 1:
		return '.'
	case 2:
		return ':'
	}
	return '?'
}

// String renders the glass as text: walls emit their glyph, interior cells
// emit a glyph keyed by grain count. Rows are separated by newlines with no
// trailing newline after the last row.
func (h *Hourglass) String() string {
	var b strings.Builder
	b.Grow((h.Width() + 1) * h.Height())
	for y := 0; y < h.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < h.Width(); x++ {
			if cell := h.layout.At(x, y); cell.IsWall() {
				b.WriteRune(cell.Glyph())
			} else {
				b.WriteRune(sandGlyph(h.sand.At(x, y)))
			}
		}
	}
	return b.String()
}
