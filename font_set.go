package fontchain

import "log/slog"

import "github.com/tinne26/fontchain/font"
import "github.com/tinne26/fontchain/sizer"

// The default size for font specs without an explicit size.
const DefaultSize = 26.0

// A font family and size, as requested by the user.
type FontSpec struct {
	Name string
	Size float64
}

// A FontSet holds the font programs of a single family, one for each
// [Style], and the size at which they are used. Missing styles fall
// back to [Regular].
type FontSet struct {
	name string
	size float64

	regular font.Program
	italic font.Program
	bold font.Program
	boldItalic font.Program
}

// Creates a font set for the given family and size. If the name is
// [font.BuiltinFamily], the embedded fonts are used and the store is not
// consulted. Otherwise, the fonts of the family are requested to the store
// and classified by aspect: only faces with exactly normal (400) or bold
// (700) weights and normal or italic slants are kept, everything else is
// discarded.
//
// Errors are always of type *[FontError]. A family without any font that
// can be used as [Regular] results in [ErrNoRegular]. The size must be
// positive, or [ErrInvalidSize] is returned; this precondition applies to
// the built-in family too, which otherwise can't fail.
func NewFontSet(name string, size float64, store font.Store) (*FontSet, error) {
	return newFontSet(name, size, store, newNopLogger())
}

func newFontSet(name string, size float64, store font.Store, logger *slog.Logger) (*FontSet, error) {
	if !(size > 0) { return nil, &FontError{ Family: name, Err: ErrInvalidSize } }

	var faces []font.Face
	if name == font.BuiltinFamily {
		faces = font.BuiltinFaces()
	} else {
		if store == nil { return nil, &FontError{ Family: name, Err: font.ErrFamilyNotFound } }
		var err error
		faces, err = store.FindFamily(name)
		if err != nil { return nil, &FontError{ Family: name, Err: err } }
	}

	fontSet := &FontSet{ name: name, size: size }
	for _, face := range faces {
		if !fontSet.assign(face) {
			logger.Debug("discarding font variant", "family", name, "font", face.Name,
				"aspect", font.AspectString(face.Aspect))
		}
	}
	if fontSet.regular == nil { return nil, &FontError{ Family: name, Err: ErrNoRegular } }
	return fontSet, nil
}

// Creates a font set directly from font programs. Any of them can be nil,
// but using a font set without a regular program will panic.
func NewFontSetFromPrograms(name string, size float64, regular, italic, bold, boldItalic font.Program) *FontSet {
	return &FontSet{
		name: name,
		size: size,
		regular: regular,
		italic: italic,
		bold: bold,
		boldItalic: boldItalic,
	}
}

// Puts the face program in the slot matching its aspect. Returns false
// if the aspect doesn't match any style.
func (self *FontSet) assign(face font.Face) bool {
	if face.Aspect.Style == font.SlantNormal {
		switch face.Aspect.Weight {
		case font.WeightNormal: self.regular = face.Program
		case font.WeightBold  : self.bold = face.Program
		default:
			return false
		}
		return true
	}

	if face.Aspect.Style == font.SlantItalic {
		switch face.Aspect.Weight {
		case font.WeightNormal: self.italic = face.Program
		case font.WeightBold  : self.boldItalic = face.Program
		default:
			return false
		}
		return true
	}
	return false
}

// Returns the name of the font family.
func (self *FontSet) Name() string { return self.name }

// Returns the size of the font set, in pixels.
func (self *FontSet) Size() float64 { return self.size }

// Returns whether the font set has its own program for the given style,
// without falling back to [Regular].
func (self *FontSet) HasStyle(style Style) bool {
	return self.slot(style) != nil
}

// Returns the program for the given style, or the regular program if
// the style is missing. Panics if the regular program is missing too.
func (self *FontSet) ByStyle(style Style) font.Program {
	program := self.slot(style)
	if program != nil { return program }
	return self.Regular()
}

// Returns the regular program. Panics if missing.
func (self *FontSet) Regular() font.Program {
	if self.regular == nil {
		panic("font set '" + self.name + "' has no regular font program")
	}
	return self.regular
}

// Returns the line height of the font set in whole pixels, based on the
// metrics of the regular program.
func (self *FontSet) Height() int {
	return self.heightWith(&sizer.DefaultSizer{})
}

func (self *FontSet) heightWith(fontSizer sizer.Sizer) int {
	return fontSizer.LineHeight(self.Regular().Metrics(), self.size)
}

func (self *FontSet) slot(style Style) font.Program {
	switch style {
	case Regular: return self.regular
	case Italic: return self.italic
	case Bold: return self.bold
	case BoldItalic: return self.boldItalic
	default:
		panic(style)
	}
}
