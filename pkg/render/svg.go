// Package render turns analysis results into output artifacts: an SVG
// scene of the rectangle pair with witness geometry overlaid, and a JSON
// report for machine consumption.
package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/rectangles/pkg/geometry"
	"github.com/matzehuels/rectangles/pkg/relate"
)

// Scene colors. Rectangle A is drawn first so overlap shading composes.
const (
	colorRectA   = "#4f9cc9"
	colorRectB   = "#5cb870"
	colorWitness = "#d9534f"
	colorGrid    = "#e0e0e0"
	colorAxis    = "#b0b0b0"
	colorLabel   = "#333333"
)

// SVGOption configures scene rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale        float64
	margin       float64
	grid         bool
	labels       bool
	intersection *relate.Intersection
	adjacency    *relate.Adjacency
}

// WithSVGScale sets how many SVG units one coordinate unit occupies.
// The default is 40.
func WithSVGScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithSVGGrid draws unit grid lines behind the scene.
func WithSVGGrid() SVGOption { return func(r *svgRenderer) { r.grid = true } }

// WithSVGLabels draws "A" and "B" labels at the rectangle centers.
func WithSVGLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithSVGIntersection overlays the intersection witness geometry.
func WithSVGIntersection(i relate.Intersection) SVGOption {
	return func(r *svgRenderer) { r.intersection = &i }
}

// WithSVGAdjacency overlays the adjacency witness segment.
func WithSVGAdjacency(a relate.Adjacency) SVGOption {
	return func(r *svgRenderer) { r.adjacency = &a }
}

// RenderSVG draws both rectangles, and any witness geometry attached via
// options, into a standalone SVG document. The viewport is fitted to the
// bounding box of the pair plus a one-unit margin, and the y axis is
// flipped so the scene reads in mathematical orientation (y grows upward).
func RenderSVG(a, b geometry.Rect, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 40, margin: 1}
	for _, opt := range opts {
		opt(&r)
	}

	v := newViewport(a, b, r.scale, r.margin)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		v.width, v.height, v.width, v.height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="white"/>`+"\n", v.width, v.height)

	if r.grid {
		renderGrid(&buf, v)
	}

	renderRect(&buf, v, a, colorRectA)
	renderRect(&buf, v, b, colorRectB)

	if r.labels {
		renderLabel(&buf, v, a, "A")
		renderLabel(&buf, v, b, "B")
	}

	if r.intersection != nil {
		renderIntersection(&buf, v, *r.intersection)
	}
	if r.adjacency != nil && r.adjacency.Kind != relate.AdjacencyNone {
		renderSegment(&buf, v, r.adjacency.Segment)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// viewport maps plane coordinates onto the SVG pixel grid.
type viewport struct {
	minX, minY    float64 // plane coordinates of the viewport origin
	maxX, maxY    float64
	scale         float64
	width, height float64
}

func newViewport(a, b geometry.Rect, scale, margin float64) viewport {
	v := viewport{
		minX:  min(a.X1, b.X1) - margin,
		minY:  min(a.Y1, b.Y1) - margin,
		maxX:  max(a.X2, b.X2) + margin,
		maxY:  max(a.Y2, b.Y2) + margin,
		scale: scale,
	}
	v.width = (v.maxX - v.minX) * scale
	v.height = (v.maxY - v.minY) * scale
	return v
}

// x maps a plane x coordinate to SVG pixels.
func (v viewport) x(px float64) float64 {
	return (px - v.minX) * v.scale
}

// y maps a plane y coordinate to SVG pixels, flipping the axis.
func (v viewport) y(py float64) float64 {
	return (v.maxY - py) * v.scale
}

func renderGrid(buf *bytes.Buffer, v viewport) {
	for gx := math.Ceil(v.minX); gx <= v.maxX; gx++ {
		color := colorGrid
		if gx == 0 {
			color = colorAxis
		}
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="0" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			v.x(gx), v.x(gx), v.height, color)
	}
	for gy := math.Ceil(v.minY); gy <= v.maxY; gy++ {
		color := colorGrid
		if gy == 0 {
			color = colorAxis
		}
		fmt.Fprintf(buf, `  <line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			v.y(gy), v.width, v.y(gy), color)
	}
}

func renderRect(buf *bytes.Buffer, v viewport, r geometry.Rect, color string) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.35" stroke="%s" stroke-width="2"/>`+"\n",
		v.x(r.X1), v.y(r.Y2), r.Width()*v.scale, r.Height()*v.scale, color, color)
}

func renderLabel(buf *bytes.Buffer, v viewport, r geometry.Rect, label string) {
	cx := v.x((r.X1 + r.X2) / 2)
	cy := v.y((r.Y1 + r.Y2) / 2)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="%.0f" fill="%s">%s</text>`+"\n",
		cx, cy, v.scale*0.6, colorLabel, label)
}

func renderIntersection(buf *bytes.Buffer, v viewport, i relate.Intersection) {
	switch i.Kind {
	case relate.IntersectionPoint:
		renderPoint(buf, v, i.Point)
	case relate.IntersectionLine:
		renderSegment(buf, v, i.Segment)
	case relate.IntersectionArea:
		r := i.Area
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.45" stroke="%s" stroke-width="2" stroke-dasharray="6,3"/>`+"\n",
			v.x(r.X1), v.y(r.Y2), r.Width()*v.scale, r.Height()*v.scale, colorWitness, colorWitness)
	}
}

func renderPoint(buf *bytes.Buffer, v viewport, p geometry.Point) {
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="5" fill="%s"/>`+"\n",
		v.x(p.X), v.y(p.Y), colorWitness)
}

func renderSegment(buf *bytes.Buffer, v viewport, s geometry.Segment) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="4" stroke-linecap="round"/>`+"\n",
		v.x(s.Start.X), v.y(s.Start.Y), v.x(s.End.X), v.y(s.End.Y), colorWitness)
}
