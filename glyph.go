package fontchain

import "image"

import "github.com/tinne26/fontchain/font"
import "github.com/tinne26/fontchain/mask"

// Coverage values at or below this are considered transparent.
const alphaEpsilon = 0x1p-23

// A glyph resolved and placed by [Chain.Layout]().
type PositionedGlyph struct {
	Index font.GlyphIndex
	Program font.Program
	Size float64

	// Top-left corner of the glyph's raster box in output coordinates
	// (y-down), relative to the start of the text line.
	Position image.Point

	// Raster box in the program's bottom-up space.
	Box mask.Box
}

// Rasterizes the glyph into a coverage mask with the size of its box.
// Returns nil without rasterizing anything if the box is empty, as it
// happens with whitespace.
func (self *PositionedGlyph) Rasterize() *image.Alpha {
	if self.Box.Empty() { return nil }
	return self.Program.Rasterize(self.Index, self.Size, self.Box)
}

// Calls the plot function for each pixel of the coverage mask with a
// non-negligible coverage, passing the output coordinates of the pixel
// and its coverage as an alpha value in [0, 1]. The baseline offset is
// added to all vertical coordinates.
//
// Rows are visited from bottom to top.
func (self *PositionedGlyph) Draw(coverage *image.Alpha, baselineOffset int, plot func(x, y int, alpha float64)) {
	if coverage == nil { return }

	bounds := coverage.Bounds()
	width, height := min(bounds.Dx(), self.Box.Width), min(bounds.Dy(), self.Box.Height)
	for y := height - 1; y >= 0; y-- {
		rowStart := coverage.PixOffset(bounds.Min.X, bounds.Min.Y + y)
		row := coverage.Pix[rowStart : rowStart + width]
		for x, value := range row {
			alpha := float64(value)/255.0
			if alpha <= alphaEpsilon { continue }
			plot(self.Position.X + x, self.Position.Y + y + baselineOffset, alpha)
		}
	}
}
