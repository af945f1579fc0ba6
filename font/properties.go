package font

import "golang.org/x/image/font/sfnt"
import "sync/atomic"
import "errors"

var ErrNotFound = errors.New("font property not found or empty")

// We allocate one sfnt.Buffer so it can be used in GetProperty() calls.
// These buffers can't be used concurrently though, so sfntBuffer will only
// be used if no one else is using it at the moment. Otherwise, nil is
// passed and sfnt allocates on its own.
var sfntBuffer *sfnt.Buffer
var usingSfntBuffer uint32 = 0
func getSfntBuffer() *sfnt.Buffer {
	if !atomic.CompareAndSwapUint32(&usingSfntBuffer, 0, 1) {
		return nil
	}
	if sfntBuffer == nil {
		sfntBuffer = &sfnt.Buffer{}
	}
	return sfntBuffer
}

func releaseSfntBuffer(buffer *sfnt.Buffer) {
	if buffer != nil {
		atomic.StoreUint32(&usingSfntBuffer, 0)
	}
}

// Returns the requested font property for the given font.
// The returned property string might be empty even when error is nil.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := getSfntBuffer()
	str, err := font.Name(buffer, property)
	releaseSfntBuffer(buffer)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font. If the information is
// missing, [ErrNotFound] will be returned. Other errors are also
// possible (e.g., if the font naming table is invalid).
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the typographic family name of the font when present, or the
// regular family name otherwise. Fonts with more than four styles often
// use names like "Source Code Pro Light" as their family and keep the
// shared "Source Code Pro" as the typographic family.
func GetTypographicFamily(font *sfnt.Font) (string, error) {
	family, err := GetProperty(font, sfnt.NameIDTypographicFamily)
	if err == nil && family != "" { return family, nil }
	return GetFamily(font)
}

// Returns the name of the given font. If the information is missing,
// [ErrNotFound] will be returned. Other errors are also possible (e.g.,
// if the font naming table is invalid).
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}
