package hourglass

import (
	"strings"
	"testing"
)

// mirrorGlyph maps a wall glyph to its left-right mirror image.
func mirrorGlyph(g rune) rune {
	switch g {
	case glyphTaperLeft:
		return glyphTaperRight
	case glyphTaperRight:
		return glyphTaperLeft
	}
	return g
}

func TestLayoutSymmetry(t *testing.T) {
	dims := []struct{ w, h int }{
		{3, 4},
		{5, 8},
		{7, 12},
		{7, 13},
		{9, 15},
		{11, 30},
	}

	for _, d := range dims {
		layout := generateLayout(d.w, d.h)

		for y := 0; y < d.h; y++ {
			for x := 0; x < d.w; x++ {
				cell := layout.At(x, y)

				// Left-right mirror symmetry: same wall-ness, mirrored glyph.
				mirror := layout.At(d.w-1-x, y)
				if cell.IsWall() != mirror.IsWall() {
					t.Fatalf("%dx%d: (%d,%d) wall=%v but mirror (%d,%d) wall=%v",
						d.w, d.h, x, y, cell.IsWall(), d.w-1-x, y, mirror.IsWall())
				}
				if cell.IsWall() && mirror.Glyph() != mirrorGlyph(cell.Glyph()) {
					t.Fatalf("%dx%d: (%d,%d) glyph %q mirrors to %q, want %q",
						d.w, d.h, x, y, cell.Glyph(), mirror.Glyph(), mirrorGlyph(cell.Glyph()))
				}

				// Point symmetry: 180° rotation maps the layout onto itself.
				rotated := layout.At(d.w-1-x, d.h-1-y)
				if cell != rotated {
					t.Fatalf("%dx%d: (%d,%d) = %+v but rotated (%d,%d) = %+v",
						d.w, d.h, x, y, cell, d.w-1-x, d.h-1-y, rotated)
				}
			}
		}
	}
}

func TestLayoutRender7x12(t *testing.T) {
	want := strings.Join([]string{
		`=======`,
		`|     |`,
		`|     |`,
		`\     /`,
		` \   / `,
		`  \ /  `,
		`  / \  `,
		` /   \ `,
		`/     \`,
		`|     |`,
		`|     |`,
		`=======`,
	}, "\n")

	got := New(7, 12).String()
	if got != want {
		t.Errorf("7x12 render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestLayoutOddHeightNeck(t *testing.T) {
	// An odd height adds two '|' walls flanking the middle row, leaving a
	// single open column at the midpoint.
	layout := generateLayout(7, 13)
	mid := 13 / 2

	left := layout.At(7/2-1, mid)
	right := layout.At(7/2+1, mid)
	neck := layout.At(7/2, mid)

	if !left.IsWall() || left.Glyph() != glyphSide {
		t.Errorf("left neck flank = %+v, want '|' wall", left)
	}
	if !right.IsWall() || right.Glyph() != glyphSide {
		t.Errorf("right neck flank = %+v, want '|' wall", right)
	}
	if neck.IsWall() {
		t.Error("neck column is walled shut")
	}
}

func TestLayoutImmutableAfterConstruction(t *testing.T) {
	glass := New(7, 12)
	pristine := New(7, 12)

	rng := newTestRand(1)
	glass.FillWithSandFromTop(0.5)
	for i := 0; i < 50; i++ {
		glass.Advance(rng)
	}

	for y := 0; y < glass.Height(); y++ {
		for x := 0; x < glass.Width(); x++ {
			if glass.layout.At(x, y) != pristine.layout.At(x, y) {
				t.Fatalf("layout cell (%d,%d) changed after simulation", x, y)
			}
		}
	}
}
