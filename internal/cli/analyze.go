package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rectangles/pkg/errors"
	"github.com/matzehuels/rectangles/pkg/geometry"
	"github.com/matzehuels/rectangles/pkg/relate"
	"github.com/matzehuels/rectangles/pkg/render"
)

// =============================================================================
// Analysis Commands
// =============================================================================

// intersectCommand creates the intersect command.
func (c *CLI) intersectCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "intersect " + coordUsage,
		Short: "Determine if and how two rectangles intersect",
		Long: `Determine if and how two rectangles intersect.

Boundary touches count as intersection: a shared corner classifies as
"point" and a shared edge as "line" rather than "none".`,
		Example: `  # Overlapping rectangles (area intersection)
  rectangles intersect 0 0 4 4  2 2 6 6

  # Touching corners (point intersection)
  rectangles intersect 0 0 4 4  4 4 8 8

  # Negative coordinates need a -- separator so they are not read as flags
  rectangles intersect -- -2 -2 2 2  0 0 4 4`,
		Args: cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseRectPair(args)
			if err != nil {
				return err
			}
			if err := errors.ValidateFormat(format, FormatText, FormatJSON); err != nil {
				return err
			}

			res := relate.Intersect(a, b)
			c.Logger.Debug("intersection computed", "kind", res.Kind)

			if format == FormatJSON {
				return emitJSON(render.RenderJSON(a, b, render.WithJSONIntersection(res)))
			}
			printPair(a, b)
			printIntersection(res)
			printNewline()
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", c.Config.Format, `output format ("text" or "json")`)
	return cmd
}

// containmentCommand creates the containment command.
func (c *CLI) containmentCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "containment " + coordUsage,
		Short: "Determine if one rectangle is strictly contained within the other",
		Long: `Determine if one rectangle is strictly contained within the other.

Containment is strict: every edge of the inner rectangle must lie inside
the outer rectangle's interior. Any shared edge or corner disqualifies
containment, including identical rectangles.`,
		Example: `  # A strictly inside B
  rectangles containment 2 2 8 8  0 0 10 10`,
		Args: cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseRectPair(args)
			if err != nil {
				return err
			}
			if err := errors.ValidateFormat(format, FormatText, FormatJSON); err != nil {
				return err
			}

			kind := relate.Containment(a, b)
			c.Logger.Debug("containment computed", "kind", kind)

			if format == FormatJSON {
				return emitJSON(render.RenderJSON(a, b, render.WithJSONContainment(kind)))
			}
			printPair(a, b)
			printContainment(kind)
			printNewline()
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", c.Config.Format, `output format ("text" or "json")`)
	return cmd
}

// adjacencyCommand creates the adjacency command.
func (c *CLI) adjacencyCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "adjacency " + coordUsage,
		Short: "Determine if and how two rectangles are adjacent",
		Long: `Determine if and how two rectangles are adjacent.

Two rectangles are adjacent when they share a side segment of positive
length: "proper" when both sides coincide exactly, "sub-line" when one
side lies entirely within the other, "partial" when only a strict
sub-segment of each side overlaps. Corner touches are not adjacency.`,
		Example: `  # Full shared edge (proper adjacency)
  rectangles adjacency 0 0 4 4  4 0 8 4

  # Offset shared edge (partial adjacency)
  rectangles adjacency 0 0 4 4  4 2 8 6`,
		Args: cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseRectPair(args)
			if err != nil {
				return err
			}
			if err := errors.ValidateFormat(format, FormatText, FormatJSON); err != nil {
				return err
			}

			adj := relate.Adjacent(a, b)
			c.Logger.Debug("adjacency computed", "kind", adj.Kind)

			if format == FormatJSON {
				return emitJSON(render.RenderJSON(a, b, render.WithJSONAdjacency(adj)))
			}
			printPair(a, b)
			printAdjacency(adj)
			printNewline()
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", c.Config.Format, `output format ("text" or "json")`)
	return cmd
}

// allCommand creates the all command, running the three analyses together.
func (c *CLI) allCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "all " + coordUsage,
		Short: "Run all three analyses",
		Example: `  rectangles all 0 0 4 4  4 2 8 6
  rectangles all --format json 0 0 4 4  2 2 6 6`,
		Args: cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseRectPair(args)
			if err != nil {
				return err
			}
			if err := errors.ValidateFormat(format, FormatText, FormatJSON); err != nil {
				return err
			}

			inter := relate.Intersect(a, b)
			cont := relate.Containment(a, b)
			adj := relate.Adjacent(a, b)
			c.Logger.Debug("analyses computed",
				"intersection", inter.Kind, "containment", cont, "adjacency", adj.Kind)

			if format == FormatJSON {
				return emitJSON(render.RenderJSON(a, b,
					render.WithJSONIntersection(inter),
					render.WithJSONContainment(cont),
					render.WithJSONAdjacency(adj)))
			}
			printPair(a, b)
			printIntersection(inter)
			printContainment(cont)
			printAdjacency(adj)
			printNewline()
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", c.Config.Format, `output format ("text" or "json")`)
	return cmd
}

// =============================================================================
// Output Helpers
// =============================================================================

// emitJSON prints a rendered JSON report to stdout.
func emitJSON(data []byte, err error) error {
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode report")
	}
	fmt.Println(string(data))
	return nil
}

// printPair echoes the two input rectangles.
func printPair(a, b geometry.Rect) {
	printNewline()
	printKeyValue("A", a.String())
	printKeyValue("B", b.String())
	printNewline()
}

// printIntersection prints an intersection result.
func printIntersection(res relate.Intersection) {
	printKeyValue("Intersection", string(res.Kind))
	switch res.Kind {
	case relate.IntersectionPoint:
		printKeyValue("Geometry", "Point "+res.Point.String())
	case relate.IntersectionLine:
		printKeyValue("Geometry", "Segment "+res.Segment.String())
	case relate.IntersectionArea:
		printKeyValue("Geometry", "Rect "+res.Area.String())
	}
}

// containmentLabels are the human-readable containment descriptions.
var containmentLabels = map[relate.ContainmentKind]string{
	relate.ContainmentAInB: "A is strictly inside B",
	relate.ContainmentBInA: "B is strictly inside A",
	relate.ContainmentNone: "neither contains the other",
}

// printContainment prints a containment result.
func printContainment(kind relate.ContainmentKind) {
	printKeyValue("Containment", containmentLabels[kind])
}

// adjacencyLabels are the human-readable adjacency kind names.
var adjacencyLabels = map[relate.AdjacencyKind]string{
	relate.AdjacencyProper:  "proper",
	relate.AdjacencySubLine: "sub-line",
	relate.AdjacencyPartial: "partial",
	relate.AdjacencyNone:    "none",
}

// printAdjacency prints an adjacency result.
func printAdjacency(adj relate.Adjacency) {
	printKeyValue("Adjacency", adjacencyLabels[adj.Kind])
	if adj.Kind != relate.AdjacencyNone {
		printKeyValue("Shared edge", adj.Segment.String())
	}
}
