package fontchain

// This file provides a fake font program and a few helpers shared
// by the package tests. Real fonts come from the gofont packages.

import "context"
import "image"
import "log/slog"
import "strings"
import "sync"

import "github.com/tinne26/fontchain/font"
import "github.com/tinne26/fontchain/mask"

// A monospaced fake font program. Glyph indices are the code points
// themselves. Spaces have an empty box and everything else a fully
// covered one.
type fakeProgram struct {
	runes string // supported runes, all if empty
	metrics font.Metrics
	advance float64
	box mask.Box
	rasterizeCalls int
}

func newFakeProgram(runes string) *fakeProgram {
	return &fakeProgram{
		runes: runes,
		metrics: font.Metrics{ Ascent: 800, Descent: -200, UnitsPerEm: 1000 },
		advance: 600,
		box: mask.Box{ X: 1, Y: -2, Width: 8, Height: 10 },
	}
}

func (self *fakeProgram) GlyphIndex(codePoint rune) (font.GlyphIndex, bool) {
	if self.runes != "" && !strings.ContainsRune(self.runes, codePoint) {
		return 0, false
	}
	return font.GlyphIndex(codePoint), true
}

func (self *fakeProgram) Metrics() font.Metrics { return self.metrics }
func (self *fakeProgram) Advance(font.GlyphIndex) float64 { return self.advance }

func (self *fakeProgram) RasterBounds(index font.GlyphIndex, size float64) mask.Box {
	if index == ' ' { return mask.Box{} }
	return self.box
}

func (self *fakeProgram) Rasterize(index font.GlyphIndex, size float64, box mask.Box) *image.Alpha {
	self.rasterizeCalls += 1
	coverage := image.NewAlpha(image.Rect(0, 0, box.Width, box.Height))
	for i := range coverage.Pix { coverage.Pix[i] = 255 }
	return coverage
}

// A slog handler that keeps all the records.
type captureHandler struct {
	mutex sync.Mutex
	records []slog.Record
}

func (self *captureHandler) Enabled(context.Context, slog.Level) bool { return true }
func (self *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return self }
func (self *captureHandler) WithGroup(string) slog.Handler { return self }
func (self *captureHandler) Handle(_ context.Context, record slog.Record) error {
	self.mutex.Lock()
	self.records = append(self.records, record)
	self.mutex.Unlock()
	return nil
}

// Returns the string value of the given attribute for all the records
// with the given message.
func (self *captureHandler) attrs(msg string, key string) []string {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	var values []string
	for _, record := range self.records {
		if record.Message != msg { continue }
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key == key { values = append(values, attr.Value.String()) }
			return true
		})
	}
	return values
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

func fillImage(img *image.RGBA, r, g, b, a uint8) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i + 0] = r
		img.Pix[i + 1] = g
		img.Pix[i + 2] = b
		img.Pix[i + 3] = a
	}
}
