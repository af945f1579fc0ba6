package sizer

import "github.com/tinne26/fontchain/font"

var _ Sizer = (*PaddedAdvanceSizer)(nil)

// Like [DefaultSizer], but adds an extra padding to each glyph advance.
//
// This sizer is mostly intended to space out glyphs for readability or
// to deal with custom rasterizers that make glyphs wider than what their
// advances say.
type PaddedAdvanceSizer struct {
	DefaultSizer
	padding int
}

// Sets the configurable horizontal padding value, in pixels.
func (self *PaddedAdvanceSizer) SetPadding(value int) {
	self.padding = value
}

// Returns the configurable horizontal padding value.
func (self *PaddedAdvanceSizer) GetPadding() int {
	return self.padding
}

// Satisfies the [Sizer] interface.
func (self *PaddedAdvanceSizer) GlyphAdvance(metrics font.Metrics, advance float64, size float64) int {
	return self.DefaultSizer.GlyphAdvance(metrics, advance, size) + self.padding
}
