// Package relate classifies the geometric relationship between two
// axis-aligned rectangles: how they intersect, whether one strictly
// contains the other, and whether they share a side.
//
// All functions are pure and total over validated rectangles: they never
// fail, never allocate shared state, and are safe to call concurrently.
// Every call costs a fixed number of float comparisons regardless of
// coordinate magnitude.
//
// # Result Conventions
//
// Each result is a comparable value carrying a kind plus the witness
// geometry justifying it. Witness fields are set exactly when the kind
// calls for them and remain zero otherwise, so results from symmetric
// calls compare equal with ==:
//
//	relate.Intersect(a, b) == relate.Intersect(b, a)
package relate

import (
	"github.com/matzehuels/rectangles/pkg/geometry"
)

// =============================================================================
// Kinds
// =============================================================================

// IntersectionKind classifies how two rectangles intersect.
type IntersectionKind string

const (
	IntersectionNone  IntersectionKind = "none"  // No shared points at all
	IntersectionPoint IntersectionKind = "point" // Single shared corner point
	IntersectionLine  IntersectionKind = "line"  // Shared edge segment, zero area
	IntersectionArea  IntersectionKind = "area"  // Overlapping region with positive area
)

// ContainmentKind classifies strict containment between two rectangles.
type ContainmentKind string

const (
	ContainmentNone ContainmentKind = "none"   // Neither strictly contains the other
	ContainmentAInB ContainmentKind = "a_in_b" // A lies strictly inside B's interior
	ContainmentBInA ContainmentKind = "b_in_a" // B lies strictly inside A's interior
)

// AdjacencyKind classifies how two rectangles share a side.
type AdjacencyKind string

const (
	AdjacencyNone    AdjacencyKind = "none"     // No positive-length shared side
	AdjacencyProper  AdjacencyKind = "proper"   // The two sides coincide exactly
	AdjacencySubLine AdjacencyKind = "sub_line" // One side lies entirely within the other
	AdjacencyPartial AdjacencyKind = "partial"  // Only a strict sub-segment of each side overlaps
)

// =============================================================================
// Results
// =============================================================================

// Intersection is the result of an intersection check. Witness fields are
// populated according to Kind: Point for IntersectionPoint, Segment for
// IntersectionLine, Area for IntersectionArea. For IntersectionNone all
// witness fields are zero.
type Intersection struct {
	Kind    IntersectionKind
	Point   geometry.Point
	Segment geometry.Segment
	Area    geometry.Rect
}

// Adjacency is the result of an adjacency check. Segment is the shared
// boundary segment and is zero exactly when Kind is AdjacencyNone.
type Adjacency struct {
	Kind    AdjacencyKind
	Segment geometry.Segment
}

// =============================================================================
// Intersection
// =============================================================================

// Intersect determines if and how two rectangles intersect.
//
// The overlap interval is computed per axis with closed-interval semantics,
// so touching boundaries count: a shared corner classifies as
// IntersectionPoint and a shared edge as IntersectionLine rather than
// IntersectionNone. Symmetric in its arguments.
func Intersect(a, b geometry.Rect) Intersection {
	ox1 := max(a.X1, b.X1)
	ox2 := min(a.X2, b.X2)
	oy1 := max(a.Y1, b.Y1)
	oy2 := min(a.Y2, b.Y2)

	switch {
	case ox1 > ox2 || oy1 > oy2:
		return Intersection{Kind: IntersectionNone}

	case ox1 == ox2 && oy1 == oy2:
		return Intersection{
			Kind:  IntersectionPoint,
			Point: geometry.Point{X: ox1, Y: oy1},
		}

	case ox1 == ox2:
		// Zero-width overlap, vertical shared edge.
		return Intersection{
			Kind: IntersectionLine,
			Segment: geometry.Segment{
				Start: geometry.Point{X: ox1, Y: oy1},
				End:   geometry.Point{X: ox1, Y: oy2},
			},
		}

	case oy1 == oy2:
		// Zero-height overlap, horizontal shared edge.
		return Intersection{
			Kind: IntersectionLine,
			Segment: geometry.Segment{
				Start: geometry.Point{X: ox1, Y: oy1},
				End:   geometry.Point{X: ox2, Y: oy1},
			},
		}

	default:
		return Intersection{
			Kind: IntersectionArea,
			Area: geometry.Rect{X1: ox1, Y1: oy1, X2: ox2, Y2: oy2},
		}
	}
}

// =============================================================================
// Containment
// =============================================================================

// Containment determines strict containment between two rectangles.
//
// A rectangle is contained only when all four of its edges lie strictly
// inside the other's interior. Any shared edge or corner disqualifies
// containment, including identical rectangles. The two conditions are
// mutually exclusive by construction, so swapping the arguments maps
// ContainmentAInB to ContainmentBInA and vice versa.
func Containment(a, b geometry.Rect) ContainmentKind {
	if b.X1 < a.X1 && a.X2 < b.X2 && b.Y1 < a.Y1 && a.Y2 < b.Y2 {
		return ContainmentAInB
	}
	if a.X1 < b.X1 && b.X2 < a.X2 && a.Y1 < b.Y1 && b.Y2 < a.Y2 {
		return ContainmentBInA
	}
	return ContainmentNone
}

// =============================================================================
// Adjacency
// =============================================================================

// Adjacent determines if and how two rectangles share a side.
//
// Two rectangles are adjacent when a pair of opposite boundary lines
// coincide exactly and the perpendicular spans overlap with positive
// length along that line. A pure corner touch degenerates to a point and
// is not adjacency. Symmetric in its arguments: the triggering boundary
// coordinate is shared by both rectangles, so the witness segment is
// identical either way.
//
// The four boundary pairs are checked in a fixed order (a's right against
// b's left, a's left against b's right, a's top against b's bottom, a's
// bottom against b's top) and the first classified result wins. At most
// one pair can classify for well-formed inputs.
func Adjacent(a, b geometry.Rect) Adjacency {
	if a.X2 == b.X1 {
		if adj, ok := classifySpan(a.X2, true, span{a.Y1, a.Y2}, span{b.Y1, b.Y2}); ok {
			return adj
		}
	}
	if a.X1 == b.X2 {
		if adj, ok := classifySpan(a.X1, true, span{a.Y1, a.Y2}, span{b.Y1, b.Y2}); ok {
			return adj
		}
	}
	if a.Y2 == b.Y1 {
		if adj, ok := classifySpan(a.Y2, false, span{a.X1, a.X2}, span{b.X1, b.X2}); ok {
			return adj
		}
	}
	if a.Y1 == b.Y2 {
		if adj, ok := classifySpan(a.Y1, false, span{a.X1, a.X2}, span{b.X1, b.X2}); ok {
			return adj
		}
	}
	return Adjacency{Kind: AdjacencyNone}
}

// span is a 1-D closed interval along one axis.
type span struct {
	lo, hi float64
}

// classifySpan classifies the 1-D overlap of two perpendicular spans along
// a shared boundary line and builds the witness segment. The same routine
// serves vertical (constant x) and horizontal (constant y) shared edges so
// the proper/sub-line/partial thresholds cannot drift between orientations.
// Returns ok=false when the overlap has no positive length, which covers
// both disjoint spans and single-point corner touches.
func classifySpan(shared float64, vertical bool, a, b span) (Adjacency, bool) {
	lo := max(a.lo, b.lo)
	hi := min(a.hi, b.hi)
	if hi <= lo {
		return Adjacency{}, false
	}

	aFull := lo == a.lo && hi == a.hi
	bFull := lo == b.lo && hi == b.hi

	var kind AdjacencyKind
	switch {
	case aFull && bFull:
		kind = AdjacencyProper
	case aFull || bFull:
		kind = AdjacencySubLine
	default:
		kind = AdjacencyPartial
	}

	seg := geometry.Segment{
		Start: geometry.Point{X: lo, Y: shared},
		End:   geometry.Point{X: hi, Y: shared},
	}
	if vertical {
		seg = geometry.Segment{
			Start: geometry.Point{X: shared, Y: lo},
			End:   geometry.Point{X: shared, Y: hi},
		}
	}
	return Adjacency{Kind: kind, Segment: seg}, true
}
