package font

import "os"
import "errors"

import "golang.org/x/image/font/sfnt"

// Similar to [sfnt.Parse](), but also including the font name
// in the returned values. The bytes must not be modified while
// the font is in use.
//
// This is a low level function; you may prefer to use a
// [Library] instead.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, "", err
	}
	fontName, err := GetName(newFont)
	return newFont, fontName, err
}

// Parses the font at the given index. The bytes can be either a single
// font, in which case the index must be zero, or a font collection
// (.ttc, .otc). System fonts are often distributed as collections.
func ParseFromBytesAt(fontBytes []byte, index int) (*sfnt.Font, error) {
	if !isCollection(fontBytes) {
		if index != 0 { return nil, errIndexOutOfRange }
		return sfnt.Parse(fontBytes)
	}

	collection, err := sfnt.ParseCollection(fontBytes)
	if err != nil { return nil, err }
	if index < 0 || index >= collection.NumFonts() {
		return nil, errIndexOutOfRange
	}
	return collection.Font(index)
}

// ---- helpers ----

// Reads the font file at the given path. Only .ttf and .otf
// paths are accepted.
func readFontFile(path string) ([]byte, error) {
	if !hasValidFontExtension(path) {
		return nil, errors.New("invalid font path '" + path + "'")
	}
	return os.ReadFile(path)
}

// Whether the font bytes start with the 'ttcf' collection tag.
func isCollection(fontBytes []byte) bool {
	return len(fontBytes) >= 4 && string(fontBytes[:4]) == "ttcf"
}

// Whether font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 {
		return false
	}
	if path[len(path)-1] != 'f' {
		return false
	}
	if path[len(path)-2] != 't' {
		return false
	}
	thrd := path[len(path)-3]
	if thrd != 't' && thrd != 'o' {
		return false
	}
	if path[len(path)-4] != '.' {
		return false
	}
	return true
}
