package sizer

import "math"

import "github.com/tinne26/fontchain/font"

var _ Sizer = (*DefaultSizer)(nil)

// The default [Sizer] used by font chains. Line heights and advances
// are rounded up to the next whole pixel, while the baseline offset is
// rounded to the nearest pixel.
type DefaultSizer struct {}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) LineHeight(metrics font.Metrics, size float64) int {
	return int(math.Ceil(scale(metrics.Ascent - metrics.Descent, metrics, size)))
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) BaselineOffset(metrics font.Metrics, size float64) int {
	return int(math.Round(scale(metrics.Descent, metrics, size)))
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) GlyphAdvance(metrics font.Metrics, advance float64, size float64) int {
	return int(math.Ceil(scale(advance, metrics, size)))
}

// Converts font design units to pixels.
func scale(value float64, metrics font.Metrics, size float64) float64 {
	if metrics.UnitsPerEm <= 0 {
		panic("invalid font metrics: UnitsPerEm must be positive")
	}
	return value/float64(metrics.UnitsPerEm)*size
}
