// Package geometry provides the immutable primitives the analyzer operates
// on: points, axis-aligned line segments, and axis-aligned rectangles.
//
// All types are plain comparable value types. Two values are equal exactly
// when their coordinates are equal, which is what the analyzer's symmetry
// guarantees are stated in terms of.
package geometry

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/rectangles/pkg/errors"
)

// =============================================================================
// Point
// =============================================================================

// Point is a location on the 2-D plane.
type Point struct {
	X float64
	Y float64
}

// String returns the point in "(x, y)" form.
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", FormatCoord(p.X), FormatCoord(p.Y))
}

// =============================================================================
// Segment
// =============================================================================

// Segment is a straight line segment between two points. Segments produced
// by this library are always axis-aligned (constant x or constant y) with
// strictly positive length, and run from the low coordinate to the high
// coordinate along the varying axis.
type Segment struct {
	Start Point
	End   Point
}

// Vertical reports whether the segment has constant x.
func (s Segment) Vertical() bool {
	return s.Start.X == s.End.X
}

// Length returns the segment's length along its varying axis.
func (s Segment) Length() float64 {
	if s.Vertical() {
		return s.End.Y - s.Start.Y
	}
	return s.End.X - s.Start.X
}

// String returns the segment in "(x1, y1) → (x2, y2)" form.
func (s Segment) String() string {
	return fmt.Sprintf("%s → %s", s.Start, s.End)
}

// =============================================================================
// Rect
// =============================================================================

// Rect is an axis-aligned rectangle defined by its bottom-left corner
// (X1, Y1) and top-right corner (X2, Y2).
//
// A Rect obtained from NewRect always satisfies X1 < X2 and Y1 < Y2.
// Zero-width and zero-height rectangles are invalid, not degenerate.
type Rect struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// NewRect constructs a validated rectangle from its corner coordinates.
// It fails with an ErrCodeInvalidRect error naming the violating axis when
// x1 >= x2 or y1 >= y2.
func NewRect(x1, y1, x2, y2 float64) (Rect, error) {
	if x1 >= x2 {
		return Rect{}, errors.New(errors.ErrCodeInvalidRect,
			"x1 (%s) must be less than x2 (%s)", FormatCoord(x1), FormatCoord(x2))
	}
	if y1 >= y2 {
		return Rect{}, errors.New(errors.ErrCodeInvalidRect,
			"y1 (%s) must be less than y2 (%s)", FormatCoord(y1), FormatCoord(y2))
	}
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// Width returns the rectangle's horizontal extent. Always positive for a
// validated Rect.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns the rectangle's vertical extent. Always positive for a
// validated Rect.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// BottomLeft returns the (X1, Y1) corner.
func (r Rect) BottomLeft() Point {
	return Point{X: r.X1, Y: r.Y1}
}

// TopRight returns the (X2, Y2) corner.
func (r Rect) TopRight() Point {
	return Point{X: r.X2, Y: r.Y2}
}

// String returns the rectangle in "(x1, y1) → (x2, y2)" form.
func (r Rect) String() string {
	return fmt.Sprintf("%s → %s", r.BottomLeft(), r.TopRight())
}

// =============================================================================
// Formatting
// =============================================================================

// FormatCoord renders a coordinate in its shortest exact decimal form,
// so "4" stays "4" and "2.5" stays "2.5".
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
