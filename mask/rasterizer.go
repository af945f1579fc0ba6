package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Rasterizer is an interface for 2D vector graphics rasterization to an
// alpha mask. This interface is offered as an open alternative to the
// concrete [golang.org/x/image/vector.Rasterizer] type, allowing anyone
// to target it and use its own rasterizer for text rendering.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask of the given size.
	// The outline coordinates are y-down and must be translated by
	// the given offset before being rasterized. Masks always start at
	// (0, 0), with their rows stored top-down.
	//
	// Only grayscale antialiasing is expected. Hinting is not applied.
	Rasterize(outline sfnt.Segments, offset fixed.Point26_6, width, height int) *image.Alpha
}

type vectorTracer interface {
	// Move to the given coordinate.
	MoveTo(fixed.Point26_6)

	// Create a segment to the given coordinate.
	LineTo(fixed.Point26_6)

	// Conic Bézier curve (also called quadratic). The first parameter
	// is the control coordinate, and the second one the final target.
	QuadTo(fixed.Point26_6, fixed.Point26_6)

	// Cubic Bézier curve. The first two parameters are the control
	// coordinates, and the third one is the final target.
	CubeTo(fixed.Point26_6, fixed.Point26_6, fixed.Point26_6)
}

// A low level method to rasterize glyph masks.
//
// The outline is placed so the top-left corner of the given box lands
// on the mask's (0, 0), and the returned mask has the box's size.
//
// The image returned will be nil if the box is empty or if the segments
// do not include any active lines or curves (e.g.: space glyphs). In that
// case the rasterizer is not invoked at all.
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, box Box) *image.Alpha {
	if box.Empty() { return nil }

	// return nil if the outline doesn't include lines or curves
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, box.Origin(), box.Width, box.Height)
	}
	return nil // nothing to draw
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segment.Args[0])
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segment.Args[0])
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segment.Args[0], segment.Args[1])
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segment.Args[0], segment.Args[1], segment.Args[2])
		default:
			panic("unexpected segment.Op case")
		}
	}
}
