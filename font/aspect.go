package font

import "bytes"
import "errors"
import "strconv"

import gotext "github.com/go-text/typesetting/font"
import ot "github.com/go-text/typesetting/font/opentype"

// The style properties of a specific font within a family: slant,
// weight and stretch.
type Aspect = gotext.Aspect

// Font slant. Italic and oblique faces are both reported as [SlantItalic].
type Slant = gotext.Style

const (
	SlantNormal = gotext.StyleNormal
	SlantItalic = gotext.StyleItalic
)

// Font weight, using the usual CSS / OS/2 scale.
type Weight = gotext.Weight

const (
	WeightNormal = gotext.WeightNormal
	WeightBold   = gotext.WeightBold
)

var errIndexOutOfRange = errors.New("font index out of range")

// Reads the aspect of the font at the given index from its OS/2 table
// (or its head table for old fonts without one). The bytes can contain
// a single font, in which case the index must be zero, or a collection.
func ReadAspect(fontBytes []byte, index int) (Aspect, error) {
	loaders, err := ot.NewLoaders(bytes.NewReader(fontBytes))
	if err != nil { return Aspect{}, err }
	if index < 0 || index >= len(loaders) { return Aspect{}, errIndexOutOfRange }
	description, _ := gotext.Describe(loaders[index], nil)
	return description.Aspect, nil
}

// Returns a short description of the aspect, like "italic 700".
func AspectString(aspect Aspect) string {
	slant := "normal"
	if aspect.Style == SlantItalic { slant = "italic" }
	return slant + " " + strconv.Itoa(int(aspect.Weight))
}
