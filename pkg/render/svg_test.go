package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/rectangles/pkg/relate"
)

func TestRenderSVG(t *testing.T) {
	a := mustRect(t, 0, 0, 4, 4)
	b := mustRect(t, 2, 2, 6, 6)

	svg := string(RenderSVG(a, b))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Fatalf("missing svg header: %s", svg[:60])
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("missing closing tag")
	}

	// Both rectangles plus the white background.
	if got := strings.Count(svg, "<rect"); got != 3 {
		t.Errorf("rect count = %d, want 3", got)
	}

	// Bounding box is (0,0)→(6,6) plus one unit margin each side, at the
	// default scale of 40: an 8x8 unit viewport of 320x320 pixels.
	if !strings.Contains(svg, `viewBox="0 0 320.0 320.0"`) {
		t.Errorf("unexpected viewport: %s", svg[:120])
	}
}

func TestRenderSVGWitness(t *testing.T) {
	tests := []struct {
		name       string
		a, b       [4]float64
		wantMarker string
	}{
		{
			name:       "area witness is dashed overlay",
			a:          [4]float64{0, 0, 4, 4},
			b:          [4]float64{2, 2, 6, 6},
			wantMarker: `stroke-dasharray`,
		},
		{
			name:       "point witness is a circle",
			a:          [4]float64{0, 0, 4, 4},
			b:          [4]float64{4, 4, 8, 8},
			wantMarker: `<circle`,
		},
		{
			name:       "edge witness is a line",
			a:          [4]float64{0, 0, 4, 4},
			b:          [4]float64{4, 0, 8, 4},
			wantMarker: `<line`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustRect(t, tt.a[0], tt.a[1], tt.a[2], tt.a[3])
			b := mustRect(t, tt.b[0], tt.b[1], tt.b[2], tt.b[3])

			svg := string(RenderSVG(a, b,
				WithSVGIntersection(relate.Intersect(a, b)),
				WithSVGAdjacency(relate.Adjacent(a, b))))

			if !strings.Contains(svg, tt.wantMarker) {
				t.Errorf("scene does not contain %q:\n%s", tt.wantMarker, svg)
			}
		})
	}
}

func TestRenderSVGOptions(t *testing.T) {
	a := mustRect(t, 0, 0, 4, 4)
	b := mustRect(t, 6, 0, 10, 4)

	plain := string(RenderSVG(a, b))
	if strings.Contains(plain, "<text") {
		t.Error("labels rendered without WithSVGLabels")
	}

	decorated := string(RenderSVG(a, b, WithSVGGrid(), WithSVGLabels(), WithSVGScale(10)))
	if !strings.Contains(decorated, ">A</text>") || !strings.Contains(decorated, ">B</text>") {
		t.Error("labels missing with WithSVGLabels")
	}
	if !strings.Contains(decorated, colorGrid) {
		t.Error("grid lines missing with WithSVGGrid")
	}
	// 12x6 unit viewport at scale 10.
	if !strings.Contains(decorated, `viewBox="0 0 120.0 60.0"`) {
		t.Errorf("scale not applied: %s", decorated[:120])
	}
}
