// fontchain is a package to draw text into images using an ordered list
// of fallback fonts, designed to be used by tools that render highlighted
// source code into images.
//
// Usage revolves around the [Chain] type. First, you create a chain with
// the font families you want to use, in priority order:
//   chain := fontchain.NewChain([]fontchain.FontSpec{
//       {Name: "Fira Code", Size: 26},
//       {Name: "Noto Sans CJK SC", Size: 26},
//       {Name: font.BuiltinFamily, Size: 26},
//   })
//
// Families that can't be loaded are skipped (with a warning on the
// configured logger, see [SetLogger]() and [WithLogger]()). Then, you draw:
//   width := chain.DrawText(img, color.White, x, y, fontchain.Bold, "func main() {")
//
// For each character, the first font set in the chain that has a glyph for
// it is used. Characters that no font can represent are skipped, and no
// placeholder glyph is drawn for them.
//
// The reserved [font.BuiltinFamily] name selects the embedded Go Mono fonts,
// which are always available.
package fontchain
