package fontchain

import "math"
import "image/draw"
import "image/color"

// Draws the given text into the target image and returns its total
// advance width. The x and y coordinates indicate the top-left corner
// of the line of text, which is [Chain.LineHeight]() pixels tall.
//
// The baseline offset is computed from the regular program and size of
// the first font set in the chain, and applied to all glyphs, no matter
// which font set they come from. This works well as long as all the font
// sets in the chain share the same size and have similar metrics.
//
// Each covered pixel is blended with the text color using the glyph
// coverage as weight. Drawing out of the target bounds is a caller error.
// Panics if the chain is empty.
func (self *Chain) DrawText(target draw.Image, textColor color.Color, x, y int, style Style, text string) int {
	if target == nil { panic("can't draw on nil target image") }
	if len(self.sets) == 0 { panic("can't draw text with an empty font chain") }

	first := self.sets[0]
	baselineOffset := self.sizer.BaselineOffset(first.Regular().Metrics(), first.size)

	glyphs, width := self.Layout(text, style)
	for i := range glyphs {
		coverage := glyphs[i].Rasterize()
		if coverage == nil { continue } // whitespace
		glyphs[i].Draw(coverage, baselineOffset, func(px, py int, alpha float64) {
			tx, ty := px + x, py + y
			target.Set(tx, ty, WeightedSum(target.At(tx, ty), textColor, 1 - alpha, alpha))
		})
	}
	return width
}

// Returns the per-channel weighted sum of the two colors, clamped to
// the valid range. Channels are mixed in premultiplied alpha space.
func WeightedSum(a, b color.Color, weightA, weightB float64) color.RGBA64 {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return color.RGBA64{
		R: mixChannel(ar, br, weightA, weightB),
		G: mixChannel(ag, bg, weightA, weightB),
		B: mixChannel(ab, bb, weightA, weightB),
		A: mixChannel(aa, ba, weightA, weightB),
	}
}

func mixChannel(a, b uint32, weightA, weightB float64) uint16 {
	value := math.Round(float64(a)*weightA + float64(b)*weightB)
	if value <= 0 { return 0 }
	if value >= 0xFFFF { return 0xFFFF }
	return uint16(value)
}
