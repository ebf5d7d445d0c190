package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rectangles/pkg/relate"
	"github.com/matzehuels/rectangles/pkg/render"
)

// renderCommand creates the render command for SVG scene output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		scale  float64
		grid   bool
		labels bool
	)

	cmd := &cobra.Command{
		Use:   "render " + coordUsage,
		Short: "Render the rectangle pair and its witness geometry as SVG",
		Long: `Render both rectangles into an SVG scene with the intersection and
adjacency witness geometry overlaid.

The viewport is fitted to the pair's bounding box plus a one-unit margin,
drawn in mathematical orientation (y grows upward).`,
		Example: `  # Overlapping pair to a file, with grid lines
  rectangles render --grid -o scene.svg 0 0 4 4  2 2 6 6

  # Adjacent pair to stdout
  rectangles render 0 0 4 4  4 0 8 4`,
		Args: cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseRectPair(args)
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)

			inter := relate.Intersect(a, b)
			adj := relate.Adjacent(a, b)

			opts := []render.SVGOption{
				render.WithSVGScale(scale),
				render.WithSVGIntersection(inter),
				render.WithSVGAdjacency(adj),
			}
			if grid {
				opts = append(opts, render.WithSVGGrid())
			}
			if labels {
				opts = append(opts, render.WithSVGLabels())
			}

			svg := render.RenderSVG(a, b, opts...)

			if err := writeOutput(svg, output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			if output != "" {
				p.done("Scene rendered")
				printSuccess("SVG scene generated")
				printKeyValue("Intersection", string(inter.Kind))
				printKeyValue("Adjacency", adjacencyLabels[adj.Kind])
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().Float64Var(&scale, "scale", c.Config.Scale, "SVG units per coordinate unit")
	cmd.Flags().BoolVar(&grid, "grid", c.Config.Grid, "draw unit grid lines")
	cmd.Flags().BoolVar(&labels, "labels", c.Config.Labels, "label the rectangles A and B")

	return cmd
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(data []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
