package render

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/matzehuels/rectangles/pkg/geometry"
	"github.com/matzehuels/rectangles/pkg/relate"
)

// JSONOption configures JSON report rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	id           string
	intersection *relate.Intersection
	containment  relate.ContainmentKind
	adjacency    *relate.Adjacency
}

// WithJSONID pins the report ID instead of generating a fresh UUID.
// Useful for reproducible output and tests.
func WithJSONID(id string) JSONOption { return func(r *jsonRenderer) { r.id = id } }

// WithJSONIntersection includes an intersection result in the report.
func WithJSONIntersection(i relate.Intersection) JSONOption {
	return func(r *jsonRenderer) { r.intersection = &i }
}

// WithJSONContainment includes a containment result in the report.
func WithJSONContainment(c relate.ContainmentKind) JSONOption {
	return func(r *jsonRenderer) { r.containment = c }
}

// WithJSONAdjacency includes an adjacency result in the report.
func WithJSONAdjacency(a relate.Adjacency) JSONOption {
	return func(r *jsonRenderer) { r.adjacency = &a }
}

type jsonOutput struct {
	ID           string            `json:"id"`
	A            jsonRect          `json:"a"`
	B            jsonRect          `json:"b"`
	Intersection *jsonIntersection `json:"intersection,omitempty"`
	Containment  string            `json:"containment,omitempty"`
	Adjacency    *jsonAdjacency    `json:"adjacency,omitempty"`
}

type jsonRect struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonSegment struct {
	Start jsonPoint `json:"start"`
	End   jsonPoint `json:"end"`
}

type jsonIntersection struct {
	Kind    string       `json:"kind"`
	Point   *jsonPoint   `json:"point,omitempty"`
	Segment *jsonSegment `json:"segment,omitempty"`
	Area    *jsonRect    `json:"area,omitempty"`
}

type jsonAdjacency struct {
	Kind    string       `json:"kind"`
	Segment *jsonSegment `json:"segment,omitempty"`
}

// RenderJSON produces the machine-readable analysis report for a rectangle
// pair. Only the analyses attached via options appear in the output. Each
// report carries an ID (a fresh UUID unless pinned with [WithJSONID]) so
// downstream consumers can correlate reports.
func RenderJSON(a, b geometry.Rect, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.id == "" {
		r.id = uuid.NewString()
	}

	out := jsonOutput{
		ID:          r.id,
		A:           rectJSON(a),
		B:           rectJSON(b),
		Containment: string(r.containment),
	}

	if r.intersection != nil {
		out.Intersection = intersectionJSON(*r.intersection)
	}
	if r.adjacency != nil {
		out.Adjacency = adjacencyJSON(*r.adjacency)
	}

	return json.MarshalIndent(out, "", "  ")
}

func rectJSON(r geometry.Rect) jsonRect {
	return jsonRect{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}
}

func pointJSON(p geometry.Point) jsonPoint {
	return jsonPoint{X: p.X, Y: p.Y}
}

func segmentJSON(s geometry.Segment) jsonSegment {
	return jsonSegment{Start: pointJSON(s.Start), End: pointJSON(s.End)}
}

func intersectionJSON(i relate.Intersection) *jsonIntersection {
	out := &jsonIntersection{Kind: string(i.Kind)}
	switch i.Kind {
	case relate.IntersectionPoint:
		p := pointJSON(i.Point)
		out.Point = &p
	case relate.IntersectionLine:
		s := segmentJSON(i.Segment)
		out.Segment = &s
	case relate.IntersectionArea:
		a := rectJSON(i.Area)
		out.Area = &a
	}
	return out
}

func adjacencyJSON(a relate.Adjacency) *jsonAdjacency {
	out := &jsonAdjacency{Kind: string(a.Kind)}
	if a.Kind != relate.AdjacencyNone {
		s := segmentJSON(a.Segment)
		out.Segment = &s
	}
	return out
}
