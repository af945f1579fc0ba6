package sizer

import "github.com/tinne26/fontchain/font"

// When laying out or drawing text, we need some information related
// to the "font metrics": how much we need to advance after drawing a
// glyph, how tall a line is and where the baseline falls.
//
// Sizers are the interface that font chains use to obtain that
// information. All the methods take the metrics of the relevant font
// program (in font design units) and the size of the font set in pixels.
//
// You rarely need to care about sizers, but they can be useful
// to add some extra horizontal spacing between glyphs or to
// customize rounding.
type Sizer interface {
	// Returns the height of a line for the given metrics and size,
	// in whole pixels.
	LineHeight(metrics font.Metrics, size float64) int

	// Returns the vertical offset to be applied to glyphs so they
	// rest on the baseline. Given that descents are negative, the
	// result will typically be negative too.
	BaselineOffset(metrics font.Metrics, size float64) int

	// Returns the horizontal advance in whole pixels for a glyph
	// with the given advance in font design units.
	GlyphAdvance(metrics font.Metrics, advance float64, size float64) int
}
