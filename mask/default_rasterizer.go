package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer is a wrapper to make [golang.org/x/image/vector.Rasterizer]
// conform to the [Rasterizer] interface. The zero value is ready to use.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
	offset fixed.Point26_6 // moves the outline into the positive quadrant

	// Notice that the x/image/vector rasterizer expects coords in the
	// positive quadrant, which is why the offset is applied to each point.
}

// Moves the current position to the given point.
func (self *DefaultRasterizer) MoveTo(point fixed.Point26_6) {
	x, y := self.toFloat32s(point)
	self.rasterizer.MoveTo(x, y)
}

// Creates a straight boundary from the current position to the given point.
func (self *DefaultRasterizer) LineTo(point fixed.Point26_6) {
	x, y := self.toFloat32s(point)
	self.rasterizer.LineTo(x, y)
}

// Creates a quadratic Bézier curve (also known as a conic Bézier curve)
// to the given target passing through the given control point.
func (self *DefaultRasterizer) QuadTo(control, target fixed.Point26_6) {
	cx, cy := self.toFloat32s(control)
	tx, ty := self.toFloat32s(target)
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

// Creates a cubic Bézier curve to the given target passing through
// the given control points.
func (self *DefaultRasterizer) CubeTo(controlA, controlB, target fixed.Point26_6) {
	cax, cay := self.toFloat32s(controlA)
	cbx, cby := self.toFloat32s(controlB)
	tx , ty  := self.toFloat32s(target)
	self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, offset fixed.Point26_6, width, height int) *image.Alpha {
	// prepare rasterizer
	self.offset = offset
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	// allocate glyph mask
	mask := image.NewAlpha(image.Rect(0, 0, width, height))

	// process outline
	processOutline(self, outline)

	// since the source texture is a uniform (an image that returns the same
	// color for any coordinate), the value of the point at which we want to
	// start sampling the texture (the fourth parameter) is unimportant.
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func (self *DefaultRasterizer) toFloat32s(point fixed.Point26_6) (float32, float32) {
	point = point.Add(self.offset)
	return float32(point.X)/64.0, float32(point.Y)/64.0
}
