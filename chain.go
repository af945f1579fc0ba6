package fontchain

import "fmt"
import "log/slog"

import "github.com/tinne26/fontchain/font"
import "github.com/tinne26/fontchain/sizer"

// A Chain is an ordered list of font sets used to lay out and draw text.
// Each character is drawn with the first font set that has a glyph for
// it in the requested style.
//
// Chains are immutable once created, but the font programs they hold
// can't be used concurrently, so a chain must not be used from multiple
// goroutines at the same time.
type Chain struct {
	sets []*FontSet
	sizer sizer.Sizer
	logger *slog.Logger
	lineHeight int
}

// Creates a chain from the given font specs, in priority order.
//
// Font families that fail to load are reported on the logger and skipped,
// so the resulting chain may contain fewer font sets than specs, or even
// none. See [Chain.Len]().
func NewChain(specs []FontSpec, opts ...Option) *Chain {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	chain := &Chain{
		sets: make([]*FontSet, 0, len(specs)),
		sizer: options.sizer,
		logger: options.logger,
	}
	for _, spec := range specs {
		store := options.store
		if store == nil && spec.Name != font.BuiltinFamily {
			store = font.NewSystemStore(options.logger)
			options.store = store
		}

		fontSet, err := newFontSet(spec.Name, spec.Size, store, options.logger)
		if err != nil {
			chain.logger.Warn("error loading font", "family", spec.Name, "size", spec.Size, "err", err)
			continue
		}
		chain.sets = append(chain.sets, fontSet)
		chain.lineHeight = max(chain.lineHeight, fontSet.heightWith(chain.sizer))
	}
	return chain
}

// Creates a chain with only the built-in font family at [DefaultSize].
func NewDefaultChain(opts ...Option) *Chain {
	return NewChain([]FontSpec{{ Name: font.BuiltinFamily, Size: DefaultSize }}, opts...)
}

// Creates a chain directly from already built font sets. Nil font
// sets will cause a panic.
func NewChainFromSets(sets []*FontSet, opts ...Option) *Chain {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	chain := &Chain{
		sets: make([]*FontSet, 0, len(sets)),
		sizer: options.sizer,
		logger: options.logger,
	}
	for _, fontSet := range sets {
		if fontSet == nil { panic("nil font set") }
		chain.sets = append(chain.sets, fontSet)
		chain.lineHeight = max(chain.lineHeight, fontSet.heightWith(chain.sizer))
	}
	return chain
}

// Returns the number of font sets in the chain.
func (self *Chain) Len() int { return len(self.sets) }

// Returns the font sets of the chain, in priority order.
func (self *Chain) FontSets() []*FontSet {
	sets := make([]*FontSet, len(self.sets))
	copy(sets, self.sets)
	return sets
}

// Returns the glyph for the given rune and style, along with the font set
// and program it belongs to. The font sets are checked in order, and the
// first one whose program for the given style has the glyph wins. If no
// font set has it, a warning is logged and found is false.
func (self *Chain) ResolveGlyph(codePoint rune, style Style) (font.GlyphIndex, *FontSet, font.Program, bool) {
	for _, fontSet := range self.sets {
		program := fontSet.ByStyle(style)
		index, found := program.GlyphIndex(codePoint)
		if found { return index, fontSet, program, true }
	}

	self.logger.Warn("no font found for character",
		"rune", string(codePoint), "codepoint", fmt.Sprintf("U+%04X", codePoint))
	return 0, nil, nil, false
}

// Returns the maximum line height among all the font sets in the chain.
// Panics if the chain is empty.
func (self *Chain) LineHeight() int {
	if len(self.sets) == 0 {
		panic("can't get the line height of an empty font chain")
	}
	return self.lineHeight
}
