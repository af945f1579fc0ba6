package mask

import "golang.org/x/image/math/fixed"

// A raster box: the integer pixel rectangle that a glyph occupies once
// rasterized at a specific size. (X, Y) is the bottom-left corner of the
// box relative to the glyph origin, with Y growing upwards.
//
// Boxes with zero width or height are common for spaces and other
// non-printing glyphs, and those never need to be rasterized.
type Box struct {
	X, Y int
	Width, Height int
}

// Returns whether the box has no area.
func (self Box) Empty() bool {
	return self.Width <= 0 || self.Height <= 0
}

// Returns the translation to be applied to the glyph outline (which uses
// y-down coordinates relative to the glyph origin) so the top-left corner
// of the box becomes (0, 0) on the mask.
func (self Box) Origin() fixed.Point26_6 {
	return fixed.P(-self.X, self.Height + self.Y)
}

// Returns the raster box for the given glyph bounds, as reported by
// [golang.org/x/image/font/sfnt] (y-down, relative to the glyph origin).
// The bounds are rounded outwards to whole pixels.
func BoxFromBounds(bounds fixed.Rectangle26_6) Box {
	if bounds.Min.X >= bounds.Max.X || bounds.Min.Y >= bounds.Max.Y {
		return Box{}
	}

	minX, maxX := bounds.Min.X.Floor(), bounds.Max.X.Ceil()
	minY, maxY := -bounds.Max.Y.Ceil(), -bounds.Min.Y.Floor() // flip to y-up
	return Box{ X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY }
}
