package fontchain

import "errors"
import "log/slog"
import "testing"

import "golang.org/x/image/font/gofont/gomonobold"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/gomonoitalic"

import "github.com/tinne26/fontchain/font"

func TestFontSetBuiltin(t *testing.T) {
	fontSet, err := NewFontSet(font.BuiltinFamily, 20, nil)
	if err != nil { t.Fatal(err) }
	if fontSet.Name() != font.BuiltinFamily || fontSet.Size() != 20 {
		t.Fatalf("unexpected font set '%s' at %f", fontSet.Name(), fontSet.Size())
	}

	for _, style := range []Style{ Regular, Italic, Bold, BoldItalic } {
		if !fontSet.HasStyle(style) {
			t.Fatalf("built-in font set missing %s", style)
		}
	}
	if fontSet.ByStyle(Bold) == fontSet.ByStyle(Regular) {
		t.Fatal("expected different programs for bold and regular")
	}
	if fontSet.Height() <= 0 {
		t.Fatalf("expected positive height, got %d", fontSet.Height())
	}
}

func TestFontSetStyleFallback(t *testing.T) {
	regular, italic := newFakeProgram(""), newFakeProgram("")
	fontSet := NewFontSetFromPrograms("fake", 20, regular, italic, nil, nil)
	if fontSet.ByStyle(Italic) != italic { t.Fatal("expected italic program") }
	if fontSet.ByStyle(Bold) != regular { t.Fatal("expected bold to fall back to regular") }
	if fontSet.ByStyle(BoldItalic) != regular {
		t.Fatal("expected bold italic to fall back to regular")
	}
	if fontSet.HasStyle(Bold) { t.Fatal("unexpected bold program") }
	if fontSet.Height() != 20 {
		t.Fatalf("expected height 20, got %d", fontSet.Height())
	}

	missing := NewFontSetFromPrograms("broken", 20, nil, italic, nil, nil)
	if doesNotPanic(func() { missing.ByStyle(Bold) }) {
		t.Fatal("expected panic with missing regular program")
	}
}

// A store returning fake faces with the given aspects.
type fakeStore map[string][]font.Aspect

func (self fakeStore) FindFamily(family string) ([]font.Face, error) {
	aspects, found := self[family]
	if !found { return nil, font.ErrFamilyNotFound }
	faces := make([]font.Face, 0, len(aspects))
	for _, aspect := range aspects {
		faces = append(faces, font.Face{
			Name: family + " " + font.AspectString(aspect),
			Aspect: aspect,
			Program: newFakeProgram(""),
		})
	}
	return faces, nil
}

func TestFontSetClassification(t *testing.T) {
	normal := func(weight font.Weight) font.Aspect { return font.Aspect{ Style: font.SlantNormal, Weight: weight } }
	italic := func(weight font.Weight) font.Aspect { return font.Aspect{ Style: font.SlantItalic, Weight: weight } }
	store := fakeStore{
		"Full": { normal(300), normal(400), normal(450), italic(350), italic(400), normal(600), normal(700), italic(700), italic(900) },
		"Light": { normal(300), normal(450), italic(400) },
	}

	handler := &captureHandler{}
	fontSet, err := newFontSet("Full", 16, store, slog.New(handler))
	if err != nil { t.Fatal(err) }
	for _, style := range []Style{ Regular, Italic, Bold, BoldItalic } {
		if !fontSet.HasStyle(style) { t.Fatalf("missing %s", style) }
	}
	discarded := handler.attrs("discarding font variant", "aspect")
	expected := []string{ "normal 300", "normal 450", "italic 350", "normal 600", "italic 900" }
	if len(discarded) != len(expected) {
		t.Fatalf("expected discarded %v, got %v", expected, discarded)
	}
	for i := range expected {
		if discarded[i] != expected[i] {
			t.Fatalf("expected discarded %v, got %v", expected, discarded)
		}
	}

	// a 450 face must never take the regular slot
	_, err = NewFontSet("Light", 16, store)
	if !errors.Is(err, ErrNoRegular) {
		t.Fatalf("expected ErrNoRegular, got %v", err)
	}
}

func TestFontSetFromStore(t *testing.T) {
	lib := font.NewLibrary()
	_, err := lib.ParseFromBytes(gomono.TTF)
	if err != nil { t.Fatal(err) }
	_, err = lib.ParseFromBytes(gomonoitalic.TTF)
	if err != nil { t.Fatal(err) }
	_, err = lib.ParseFromBytes(gomonobold.TTF)
	if err != nil { t.Fatal(err) }

	// Go Mono Bold declares a 600 weight in its OS/2 table, so it's discarded
	fontSet, err := NewFontSet("go mono", 16, lib)
	if err != nil { t.Fatal(err) }
	if !fontSet.HasStyle(Regular) || !fontSet.HasStyle(Italic) {
		t.Fatal("expected regular and italic styles")
	}
	if fontSet.HasStyle(Bold) || fontSet.HasStyle(BoldItalic) {
		t.Fatal("unexpected bold styles")
	}
}

func TestFontSetErrors(t *testing.T) {
	lib := font.NewLibrary()
	_, err := lib.ParseFromBytes(gomonobold.TTF)
	if err != nil { t.Fatal(err) }

	// only bold available, and "go mono" doesn't match the reserved built-in name
	_, err = NewFontSet("go mono", 16, lib)
	if !errors.Is(err, ErrNoRegular) {
		t.Fatalf("expected ErrNoRegular, got %v", err)
	}
	var fontErr *FontError
	if !errors.As(err, &fontErr) {
		t.Fatalf("expected *FontError, got %T", err)
	}
	if fontErr.Family != "go mono" {
		t.Fatalf("unexpected family '%s'", fontErr.Family)
	}

	_, err = NewFontSet("Missing Family", 16, lib)
	if !errors.Is(err, font.ErrFamilyNotFound) {
		t.Fatalf("expected ErrFamilyNotFound, got %v", err)
	}
	_, err = NewFontSet("Missing Family", 16, nil)
	if !errors.Is(err, font.ErrFamilyNotFound) {
		t.Fatalf("expected ErrFamilyNotFound with nil store, got %v", err)
	}
	_, err = NewFontSet(font.BuiltinFamily, 0, nil)
	if !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}
