package mask

// Helper functions for testing.

import "image"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

// Creates a closed polygon from the given (x, y) pixel coordinates,
// which are interpreted as y-down.
func polySegments(coords []float64) sfnt.Segments {
	if len(coords) % 2 != 0 {
		panic("number of coordinates must be even")
	}
	if len(coords) < 6 {
		panic("number of coordinates must be at least 6 (three points)")
	}

	var tofx = func(x float64) fixed.Int26_6 { return fixed.Int26_6(x*64) }
	segments := make([]sfnt.Segment, 0, len(coords)/2 + 1)
	segments = moveTo(segments, tofx(coords[0]), tofx(coords[1]))
	for i := 2; i < len(coords); i += 2 {
		x := coords[i + 0]
		y := coords[i + 1]
		segments = lineTo(segments, tofx(x), tofx(y))
	}
	segments = lineTo(segments, tofx(coords[0]), tofx(coords[1]))
	return sfnt.Segments(segments)
}

func newSegment(op sfnt.SegmentOp, x1, y1, x2, y2, x3, y3 fixed.Int26_6) sfnt.Segment {
	return sfnt.Segment { Op: op, Args: [3]fixed.Point26_6 {
			fixed.Point26_6{X: x1, Y: y1}, fixed.Point26_6{X: x2, Y: y2}, fixed.Point26_6{X: x3, Y: y3},
		},
	}
}

func moveTo(segs []sfnt.Segment, x, y fixed.Int26_6) []sfnt.Segment {
	return append(segs, newSegment(sfnt.SegmentOpMoveTo, x, y, 0, 0, 0, 0))
}

func lineTo(segs []sfnt.Segment, x, y fixed.Int26_6) []sfnt.Segment {
	return append(segs, newSegment(sfnt.SegmentOpLineTo, x, y, 0, 0, 0, 0))
}

func quadTo(segs []sfnt.Segment, cx, cy, x, y fixed.Int26_6) []sfnt.Segment {
	return append(segs, newSegment(sfnt.SegmentOpQuadTo, cx, cy, x, y, 0, 0))
}

// Rasterizer that only counts invocations.
type countingRasterizer struct {
	calls int
}

func (self *countingRasterizer) Rasterize(_ sfnt.Segments, _ fixed.Point26_6, _, _ int) *image.Alpha {
	self.calls += 1
	return nil
}
