// The mask subpackage defines the [Rasterizer] interface used within
// fontchain to turn glyph outlines into coverage masks, alongside the
// [Box] type that describes the integer pixel area a glyph occupies.
//
// In this context, "[Rasterizer]" refers to a "glyph mask rasterizer":
// font glyphs are extracted from font files as outlines (sets of lines
// and curves), and before they can be blended into an image they have
// to be rasterized into a grid of alpha values, one byte per pixel.
//
// Boxes use the rasterizer's bottom-up convention: the (X, Y) corner is
// the bottom-left corner of the glyph relative to its origin on the
// baseline, and Y grows upwards. Masks, on the other hand, are regular
// [image.Alpha] values with their rows stored top-down.
package mask
