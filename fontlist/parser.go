// Package fontlist parses font list configurations, like the ones
// given through command line flags or config files:
//
//	Hack = 26; "Noto Sans CJK SC" = 26; Noto Color Emoji
//
// Entries are separated by semicolons. Each entry has a family name,
// made of one or more words or a quoted string, and an optional size
// after an equals sign. Entries without size use [fontchain.DefaultSize].
package fontlist

import "errors"
import "fmt"
import "strconv"
import "strings"

import "github.com/alecthomas/participle/v2"
import "github.com/alecthomas/participle/v2/lexer"

import "github.com/tinne26/fontchain"

// Returned when an entry has an empty family name.
var ErrEmptyName = errors.New("empty font family name")

var (
	listLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Punct", Pattern: `[=;]`},
		{Name: "Word", Pattern: `[^\s=;"]+`},
	})

	listParser = participle.MustBuild[fontList](
		participle.Lexer(listLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
)

type fontList struct {
	Entries []*entry `parser:"@@? ( ';' @@? )*"`
}

type entry struct {
	Pos  lexer.Position `parser:""`
	Name []string       `parser:"( @String | @Word )+"`
	Size *string        `parser:"( '=' @Word )?"`
}

// Parses the given font list. Sizes must be positive numbers, and
// empty entries (like the one after a trailing semicolon) are ignored.
func Parse(src string) ([]fontchain.FontSpec, error) {
	list, err := listParser.ParseString("", src)
	if err != nil { return nil, fmt.Errorf("fontlist: %w", err) }

	specs := make([]fontchain.FontSpec, 0, len(list.Entries))
	for _, entry := range list.Entries {
		spec, err := entry.spec()
		if err != nil { return nil, fmt.Errorf("fontlist: %s: %w", entry.Pos, err) }
		specs = append(specs, spec)
	}
	return specs, nil
}

func (self *entry) spec() (fontchain.FontSpec, error) {
	name := strings.TrimSpace(strings.Join(self.Name, " "))
	if name == "" { return fontchain.FontSpec{}, ErrEmptyName }

	size := fontchain.DefaultSize
	if self.Size != nil {
		var err error
		size, err = strconv.ParseFloat(*self.Size, 64)
		if err != nil || !(size > 0) || size > maxSize {
			return fontchain.FontSpec{}, fmt.Errorf("size %q for '%s': %w", *self.Size, name, fontchain.ErrInvalidSize)
		}
	}
	return fontchain.FontSpec{ Name: name, Size: size }, nil
}

// Sizes above this are considered typos. It also keeps out infinities.
const maxSize = 8192.0

// Formats the given specs as a font list that [Parse]() can read back.
// Names that can't be written as plain words are quoted.
func Format(specs []fontchain.FontSpec) string {
	var builder strings.Builder
	for i, spec := range specs {
		if i > 0 { builder.WriteString("; ") }
		if needsQuoting(spec.Name) {
			builder.WriteString(strconv.Quote(spec.Name))
		} else {
			builder.WriteString(spec.Name)
		}
		builder.WriteString("=")
		builder.WriteString(strconv.FormatFloat(spec.Size, 'f', -1, 64))
	}
	return builder.String()
}

func needsQuoting(name string) bool {
	if name == "" || strings.TrimSpace(name) != name { return true }
	if strings.Contains(name, "  ") { return true }
	return strings.ContainsAny(name, "=;\"\t\r\n")
}
