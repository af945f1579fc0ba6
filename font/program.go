package font

import "image"
import "strconv"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/fontchain/mask"

// Glyph indices identify glyphs within a specific font. They are
// unrelated to unicode code points.
type GlyphIndex = sfnt.GlyphIndex

// Vertical metrics of a font, in font design units. Following the
// usual y-up typographic convention, Descent is negative.
type Metrics struct {
	Ascent float64
	Descent float64
	UnitsPerEm int
}

// A Program is a parsed font able to map runes to glyphs, report
// metrics and rasterize glyphs. Programs are the only thing that
// layout and compositing know about fonts, so the backend can be
// swapped without touching them.
//
// Programs are not safe for concurrent use.
type Program interface {
	// Returns the glyph index for the given rune, or false if the
	// font doesn't have a glyph for it.
	GlyphIndex(codePoint rune) (GlyphIndex, bool)

	// Returns the vertical metrics of the font.
	Metrics() Metrics

	// Returns the horizontal advance of the glyph in font units.
	Advance(index GlyphIndex) float64

	// Returns the integer raster box of the glyph at the given size
	// in pixels. No hinting is applied.
	RasterBounds(index GlyphIndex, size float64) mask.Box

	// Rasterizes the glyph into a coverage mask with the size of the
	// given box (which must come from RasterBounds). The mask uses
	// grayscale antialiasing without hinting. Empty boxes return nil.
	Rasterize(index GlyphIndex, size float64, box mask.Box) *image.Alpha
}

var _ Program = (*SfntProgram)(nil)

// The default [Program] implementation, backed by [sfnt.Font] and
// a [mask.Rasterizer].
//
// Multiple programs can share the same underlying [sfnt.Font], as
// each program keeps its own buffer.
type SfntProgram struct {
	font *sfnt.Font
	buffer sfnt.Buffer
	rasterizer mask.Rasterizer
	metrics Metrics
	unitsPpem fixed.Int26_6 // ppem that makes sfnt report values in font units
}

// Creates a new program for the given font using a [mask.DefaultRasterizer].
// Returns an error if the font metrics can't be read.
func NewProgram(font *sfnt.Font) (*SfntProgram, error) {
	return NewProgramWithRasterizer(font, &mask.DefaultRasterizer{})
}

// Like [NewProgram](), but with a custom rasterizer.
func NewProgramWithRasterizer(sfntFont *sfnt.Font, rasterizer mask.Rasterizer) (*SfntProgram, error) {
	if sfntFont == nil { panic("can't create program with nil font") }
	if rasterizer == nil { panic("can't create program with nil rasterizer") }

	program := &SfntProgram{ font: sfntFont, rasterizer: rasterizer }
	unitsPerEm := int(sfntFont.UnitsPerEm())
	program.unitsPpem = fixed.Int26_6(unitsPerEm << 6)
	fontMetrics, err := sfntFont.Metrics(&program.buffer, program.unitsPpem, font.HintingNone)
	if err != nil { return nil, err }
	program.metrics = Metrics{
		Ascent: fixedToFloat64(fontMetrics.Ascent),
		Descent: -fixedToFloat64(fontMetrics.Descent), // sfnt descents are positive
		UnitsPerEm: unitsPerEm,
	}
	return program, nil
}

// Returns the underlying font.
func (self *SfntProgram) Font() *sfnt.Font { return self.font }

// Satisfies the [Program] interface.
func (self *SfntProgram) GlyphIndex(codePoint rune) (GlyphIndex, bool) {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil || index == 0 { return 0, false }
	return index, true
}

// Satisfies the [Program] interface.
func (self *SfntProgram) Metrics() Metrics { return self.metrics }

// Satisfies the [Program] interface.
func (self *SfntProgram) Advance(index GlyphIndex) float64 {
	advance, err := self.font.GlyphAdvance(&self.buffer, index, self.unitsPpem, font.HintingNone)
	if err == nil { return fixedToFloat64(advance) }
	panic("font.GlyphAdvance(index = " + strconv.Itoa(int(index)) + ") error: " + err.Error())
}

// Satisfies the [Program] interface.
func (self *SfntProgram) RasterBounds(index GlyphIndex, size float64) mask.Box {
	bounds, _, err := self.font.GlyphBounds(&self.buffer, index, sizeToPpem(size), font.HintingNone)
	if err == nil { return mask.BoxFromBounds(bounds) }
	panic("font.GlyphBounds(index = " + strconv.Itoa(int(index)) + ") error: " + err.Error())
}

// Satisfies the [Program] interface.
func (self *SfntProgram) Rasterize(index GlyphIndex, size float64, box mask.Box) *image.Alpha {
	if box.Empty() { return nil }
	outline, err := self.font.LoadGlyph(&self.buffer, index, sizeToPpem(size), nil)
	if err != nil {
		panic("font.LoadGlyph(index = " + strconv.Itoa(int(index)) + ") error: " + err.Error())
	}
	return mask.Rasterize(outline, self.rasterizer, box)
}

func sizeToPpem(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size*64 + 0.5)
}

func fixedToFloat64(value fixed.Int26_6) float64 {
	return float64(value)/64.0
}
