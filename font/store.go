package font

import "errors"

import "golang.org/x/image/font/sfnt"

// Returned by [Store.FindFamily]() when no font of the requested
// family can be found.
var ErrFamilyNotFound = errors.New("font family not found")

// A font of a family, with its aspect already classified.
type Face struct {
	Name string
	Aspect Aspect
	Program Program
}

// A Store finds the fonts belonging to a family. Each call must return
// newly created programs, as programs can't be shared between font sets
// that may be used independently.
type Store interface {
	// Returns all the fonts of the given family, or [ErrFamilyNotFound]
	// if there are none. Other errors are possible if the fonts exist
	// but fail to load.
	FindFamily(family string) ([]Face, error)
}

// Creates a face for the font at the given index of the font bytes.
// The aspect is read from the font tables (see [ReadAspect]()), never
// guessed from the font name.
func NewFace(fontBytes []byte, index int) (Face, error) {
	sfntFont, err := ParseFromBytesAt(fontBytes, index)
	if err != nil { return Face{}, err }
	aspect, err := ReadAspect(fontBytes, index)
	if err != nil { return Face{}, err }
	return newFace(sfntFont, aspect)
}

func newFace(sfntFont *sfnt.Font, aspect Aspect) (Face, error) {
	name, err := GetName(sfntFont)
	if err != nil && err != ErrNotFound { return Face{}, err }
	program, err := NewProgram(sfntFont)
	if err != nil { return Face{}, err }
	return Face{ Name: name, Aspect: aspect, Program: program }, nil
}
