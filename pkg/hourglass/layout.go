package hourglass

// =============================================================================
// LayoutCell - Wall/Empty Cell Values
// =============================================================================

// Glyphs used by the layout generator.
const (
	glyphBorder     = '='
	glyphSide       = '|'
	glyphTaperLeft  = '\\'
	glyphTaperRight = '/'
)

// LayoutCell is a closed two-variant value: either empty interior space or a
// wall carrying the glyph it renders as. The zero value is the empty variant.
type LayoutCell struct {
	wall  bool
	glyph rune
}

// EmptyCell returns the empty interior variant.
func EmptyCell() LayoutCell { return LayoutCell{} }

// WallCell returns a wall variant rendering as glyph.
func WallCell(glyph rune) LayoutCell { return LayoutCell{wall: true, glyph: glyph} }

// IsWall reports whether the cell is a wall.
func (c LayoutCell) IsWall() bool { return c.wall }

// Glyph returns the wall's display glyph, or 0 for the empty variant.
func (c LayoutCell) Glyph() rune {
	if !c.wall {
		return 0
	}
	return c.glyph
}

// =============================================================================
// Layout Generation
// =============================================================================

// generateLayout draws the hourglass outline into a fresh grid. It is a
// deterministic function of the dimensions: '=' border rows top and bottom,
// '|' side walls along the straight bulb sections, converging '\' and '/'
// tapers on both bulbs, and, when height is odd, a pair of '|' walls flanking
// the middle row so a single-column neck stays open at the midpoint. The
// result is mirror-symmetric left-right and point-symmetric top-bottom.
//
// Callers must ensure width is odd and height exceeds width; Hourglass
// construction enforces this.
func generateLayout(width, height int) *Grid[LayoutCell] {
	layout := NewGrid(width, height, EmptyCell)

	slopeLength := width / 2                 // diagonal rows per bulb side
	straightLength := height/2 - slopeLength // vertical rows per bulb

	// Border rows.
	for x := 0; x < width; x++ {
		layout.Set(x, 0, WallCell(glyphBorder))
		layout.Set(x, height-1, WallCell(glyphBorder))
	}

	// Straight side walls.
	for y := 1; y < straightLength; y++ {
		layout.Set(0, y, WallCell(glyphSide))
		layout.Set(width-1, y, WallCell(glyphSide))
		layout.Set(0, height-1-y, WallCell(glyphSide))
		layout.Set(width-1, height-1-y, WallCell(glyphSide))
	}

	// Tapers converging toward the neck, mirrored on the lower bulb.
	for i := 0; i < slopeLength; i++ {
		layout.Set(i, straightLength+i, WallCell(glyphTaperLeft))
		layout.Set(width-1-i, straightLength+i, WallCell(glyphTaperRight))
		layout.Set(slopeLength-1-i, height-straightLength-slopeLength+i, WallCell(glyphTaperRight))
		layout.Set(slopeLength+1+i, height-straightLength-slopeLength+i, WallCell(glyphTaperLeft))
	}

	// With an odd height the tapers leave the middle row fully open; flank it
	// so only the single-column neck remains passable.
	if height%2 == 1 {
		layout.Set(width/2-1, height/2, WallCell(glyphSide))
		layout.Set(width/2+1, height/2, WallCell(glyphSide))
	}

	return layout
}
