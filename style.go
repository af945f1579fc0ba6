package fontchain

// The style of a text run. Each [FontSet] can have up to one font
// program for each style.
type Style uint8

const (
	Regular Style = iota
	Italic
	Bold
	BoldItalic
)

// Returns the style matching the given flags, as typically
// reported by syntax highlighters.
func StyleFrom(bold, italic bool) Style {
	switch {
	case bold && italic: return BoldItalic
	case bold: return Bold
	case italic: return Italic
	default:
		return Regular
	}
}

// Returns whether the style is [Bold] or [BoldItalic].
func (self Style) IsBold() bool { return self == Bold || self == BoldItalic }

// Returns whether the style is [Italic] or [BoldItalic].
func (self Style) IsItalic() bool { return self == Italic || self == BoldItalic }

func (self Style) String() string {
	switch self {
	case Regular: return "Regular"
	case Italic: return "Italic"
	case Bold: return "Bold"
	case BoldItalic: return "BoldItalic"
	default:
		return "UnknownStyle"
	}
}
