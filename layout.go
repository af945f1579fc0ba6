package fontchain

import "image"

// Converts the given text into a sequence of positioned glyphs and returns
// them along the total advance width of the text.
//
// Text is processed character by character, without any shaping or
// kerning. Characters without a glyph in any font of the chain are
// dropped and don't advance the cursor. All glyphs are vertically placed
// relative to the line height of the whole chain, so glyphs from shorter
// fonts are aligned with the tallest one.
func (self *Chain) Layout(text string, style Style) ([]PositionedGlyph, int) {
	var glyphs []PositionedGlyph
	var deltaX int

	for _, codePoint := range text {
		index, fontSet, program, found := self.ResolveGlyph(codePoint, style)
		if !found { continue }

		// raster boxes are bottom-up, while output coordinates are top-down
		box := program.RasterBounds(index, fontSet.size)
		glyphs = append(glyphs, PositionedGlyph{
			Index: index,
			Program: program,
			Size: fontSet.size,
			Position: image.Pt(deltaX + box.X, self.lineHeight - box.Height - box.Y),
			Box: box,
		})

		advance := program.Advance(index)
		deltaX += self.sizer.GlyphAdvance(program.Metrics(), advance, fontSet.size)
	}
	return glyphs, deltaX
}

// Returns the width of the given text laid out with the [Regular]
// style. Equivalent to the width returned by [Chain.Layout]().
func (self *Chain) TextLength(text string) int {
	_, width := self.Layout(text, Regular)
	return width
}
