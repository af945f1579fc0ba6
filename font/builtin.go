package font

import "sync"

import gotext "github.com/go-text/typesetting/font"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/gomonobold"
import "golang.org/x/image/font/gofont/gomonoitalic"
import "golang.org/x/image/font/gofont/gomonobolditalic"

// The reserved family name for the embedded Go Mono fonts. Requesting
// this family never touches system fonts and can't fail.
const BuiltinFamily = "Go Mono"

var builtinOnce sync.Once
var builtinFonts [4]*sfnt.Font
var builtinSources = [4][]byte{ gomono.TTF, gomonoitalic.TTF, gomonobold.TTF, gomonobolditalic.TTF }
var builtinAspects = [4]Aspect{
	{ Style: SlantNormal, Weight: WeightNormal, Stretch: gotext.StretchNormal },
	{ Style: SlantItalic, Weight: WeightNormal, Stretch: gotext.StretchNormal },
	{ Style: SlantNormal, Weight: WeightBold  , Stretch: gotext.StretchNormal },
	{ Style: SlantItalic, Weight: WeightBold  , Stretch: gotext.StretchNormal },
}

// The embedded fonts are parsed only once, on first use, and then
// shared by all the programs created from them.
func loadBuiltinFonts() {
	builtinOnce.Do(func() {
		for i, source := range builtinSources {
			font, err := sfnt.Parse(source)
			if err != nil { panic("failed to parse embedded font: " + err.Error()) }
			builtinFonts[i] = font
		}
	})
}

// Returns the four faces of the built-in [BuiltinFamily] (regular,
// italic, bold and bold italic), each with a new [Program].
func BuiltinFaces() []Face {
	loadBuiltinFonts()
	faces := make([]Face, 0, len(builtinFonts))
	for i, font := range builtinFonts {
		program, err := NewProgram(font)
		if err != nil { panic("embedded font metrics error: " + err.Error()) }
		name, _ := GetName(font)
		faces = append(faces, Face{ Name: name, Aspect: builtinAspects[i], Program: program })
	}
	return faces
}
