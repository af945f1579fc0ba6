package font

import "io/fs"
import "sort"
import "errors"
import "path/filepath"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/text/cases"

var _ Store = (*Library)(nil)

// A collection of fonts accessible by name.
//
// Libraries make it easy to parse bundled font files in bulk and use
// them as the [Store] of a font chain instead of the system fonts.
// A library doesn't know about system fonts. See [SystemStore] for that.
type Library struct {
	fonts map[string]libraryFont
}

type libraryFont struct {
	font *sfnt.Font
	aspect Aspect
}

// An error returned by [Library.ParseFromBytes]() and [Library.ParseFromPath]()
// when a font is not added due to its name already being present in the
// [Library].
var ErrAlreadyPresent = errors.New("font already present in the library")

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library {
		fonts: make(map[string]libraryFont),
	}
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// Finds out whether a font with the given name exists in the library.
// Names are full font names ("Go Mono Bold"), not families.
func (self *Library) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Parses the font at the given path and adds it to the library.
// Returns the name of the added font and any possible error.
//
// If a font with the same name has already been added, [ErrAlreadyPresent]
// will be returned.
func (self *Library) ParseFromPath(path string) (string, error) {
	fontBytes, err := readFontFile(path)
	if err != nil { return "", err }
	return self.ParseFromBytes(fontBytes)
}

// The equivalent of [Library.ParseFromPath]() for raw font bytes.
// The bytes must not be modified while the font is in use. When in
// doubt, pass a copy (e.g. ParseFromBytes(append([]byte(nil), data))).
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	font, name, err := ParseFromBytes(fontBytes)
	if err != nil { return name, err }
	aspect, err := ReadAspect(fontBytes, 0)
	if err != nil { return name, err }
	if self.HasFont(name) { return name, ErrAlreadyPresent }
	self.fonts[name] = libraryFont{ font: font, aspect: aspect }
	return name, nil
}

// Walks the given directory non-recursively and adds all the .ttf and .otf
// fonts in it. Returns the number of fonts added, the number of fonts skipped
// (when a font with the same name already exists in the Library) and any error
// that might happen during the process.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }

	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}

			valid := hasValidFontExtension(path)
			if !valid { return nil }
			_, err = self.ParseFromPath(path)
			if err == ErrAlreadyPresent {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// Satisfies the [Store] interface. Returns all the fonts in the library
// whose family or typographic family matches the given one, ignoring
// case, sorted by font name. A new [Program] is created for each font
// on every call.
func (self *Library) FindFamily(family string) ([]Face, error) {
	folder := cases.Fold()
	target := folder.String(family)

	names := make([]string, 0, 4)
	for name, entry := range self.fonts {
		if self.familyMatches(entry.font, target, folder) {
			names = append(names, name)
		}
	}
	if len(names) == 0 { return nil, ErrFamilyNotFound }
	sort.Strings(names)

	faces := make([]Face, 0, len(names))
	for _, name := range names {
		entry := self.fonts[name]
		face, err := newFace(entry.font, entry.aspect)
		if err != nil { return nil, err }
		faces = append(faces, face)
	}
	return faces, nil
}

func (self *Library) familyMatches(font *sfnt.Font, target string, folder cases.Caser) bool {
	family, err := GetFamily(font)
	if err == nil && folder.String(family) == target { return true }
	family, err = GetTypographicFamily(font)
	return err == nil && folder.String(family) == target
}
