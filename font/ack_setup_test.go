package font

// This file sets up a few important test variables and provides
// some helper methods. Test fonts come from the gofont packages,
// so no test assets are needed.

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/gomonobold"
import "golang.org/x/image/font/gofont/gomonoitalic"
import "golang.org/x/image/font/gofont/gomonobolditalic"

var testFontA *sfnt.Font // Go Regular
var testFontB *sfnt.Font // Go Mono

func init() {
	var err error
	testFontA, err = sfnt.Parse(goregular.TTF)
	if err != nil { panic(err) }
	testFontB, err = sfnt.Parse(gomono.TTF)
	if err != nil { panic(err) }
}

// All the Go Mono styles, in regular, italic, bold, bold italic order.
var testMonoSources = [][]byte{ gomono.TTF, gomonoitalic.TTF, gomonobold.TTF, gomonobolditalic.TTF }

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
