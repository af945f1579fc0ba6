// The font subpackage contains the pieces that turn font files into
// something the fallback chains can work with:
//  - Helper methods to parse fonts and obtain information from them
//    (name, family, subfamily, aspect).
//  - The [Program] interface, which abstracts glyph lookup, metrics and
//    rasterization, and its [golang.org/x/image/font/sfnt] implementation.
//  - The [Store] interface, used to find all the fonts of a family, with
//    an in-memory [Library] and a [SystemStore] that looks for installed
//    system fonts.
//  - The built-in Go Mono family, see [BuiltinFamily].
package font
