package cli

import (
	"fmt"

	"github.com/matzehuels/rectangles/pkg/errors"
	"github.com/matzehuels/rectangles/pkg/geometry"
)

// coordNames are the positional argument names, in the order every
// analysis command expects them.
var coordNames = [8]string{"Ax1", "Ay1", "Ax2", "Ay2", "Bx1", "By1", "Bx2", "By2"}

// coordUsage is the shared positional-argument suffix for command Use lines.
const coordUsage = "Ax1 Ay1 Ax2 Ay2 Bx1 By1 Bx2 By2"

// parseRectPair parses eight coordinate arguments into two validated
// rectangles. Parse failures name the offending argument; validation
// failures name the rectangle and the violating axis.
func parseRectPair(args []string) (a, b geometry.Rect, err error) {
	if len(args) != len(coordNames) {
		return a, b, errors.New(errors.ErrCodeInvalidInput,
			"expected %d coordinates, got %d", len(coordNames), len(args))
	}

	var coords [8]float64
	for i, arg := range args {
		coords[i], err = errors.ParseCoord(coordNames[i], arg)
		if err != nil {
			return a, b, err
		}
	}

	a, err = geometry.NewRect(coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		return a, b, fmt.Errorf("rectangle A: %w", err)
	}
	b, err = geometry.NewRect(coords[4], coords[5], coords[6], coords[7])
	if err != nil {
		return a, b, fmt.Errorf("rectangle B: %w", err)
	}
	return a, b, nil
}
