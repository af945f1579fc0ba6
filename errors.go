package fontchain

import "errors"

// Returned when a font family is found but none of its fonts
// can be used as the regular style.
var ErrNoRegular = errors.New("font family has no regular style")

// Returned when a font set is requested with a non-positive size.
var ErrInvalidSize = errors.New("font size must be positive")

// The error returned by [NewFontSet]() when a family can't be loaded.
// The underlying error can be checked with [errors.Is](), for example
// against [font.ErrFamilyNotFound].
type FontError struct {
	Family string
	Err error
}

func (self *FontError) Error() string {
	return "failed to load font family '" + self.Family + "': " + self.Err.Error()
}

func (self *FontError) Unwrap() error { return self.Err }
