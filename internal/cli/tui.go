package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rectangles/pkg/geometry"
	"github.com/matzehuels/rectangles/pkg/relate"
)

// Canvas styles
var (
	canvasAStyle    = lipgloss.NewStyle().Foreground(colorCyan)
	canvasBStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	canvasBothStyle = lipgloss.NewStyle().Foreground(colorYellow)
	canvasHelpStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// moveStep is how far one keypress moves or resizes the active rectangle.
const moveStep = 1.0

// =============================================================================
// ExplorerModel - Interactive relationship exploration
// =============================================================================

// ExplorerModel is the bubbletea model for the interactive explorer. One of
// the two rectangles is active and can be moved and resized; every change
// re-runs the three analyses and refreshes the readout.
type ExplorerModel struct {
	A       geometry.Rect
	B       geometry.Rect
	ActiveB bool // which rectangle the keys control
}

// NewExplorerModel creates an explorer for the given rectangle pair.
func NewExplorerModel(a, b geometry.Rect) ExplorerModel {
	return ExplorerModel{A: a, B: b, ActiveB: true}
}

func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.ActiveB = !m.ActiveB
		case "left", "h":
			m.moveActive(-moveStep, 0)
		case "right", "l":
			m.moveActive(moveStep, 0)
		case "up", "k":
			m.moveActive(0, moveStep)
		case "down", "j":
			m.moveActive(0, -moveStep)
		case "D":
			m.resizeActive(moveStep, 0)
		case "A":
			m.resizeActive(-moveStep, 0)
		case "W":
			m.resizeActive(0, moveStep)
		case "S":
			m.resizeActive(0, -moveStep)
		}
	}
	return m, nil
}

// active returns a pointer to the rectangle the keys control.
func (m *ExplorerModel) active() *geometry.Rect {
	if m.ActiveB {
		return &m.B
	}
	return &m.A
}

// moveActive translates the active rectangle. Translation preserves the
// coordinate ordering invariant.
func (m *ExplorerModel) moveActive(dx, dy float64) {
	r := m.active()
	r.X1 += dx
	r.X2 += dx
	r.Y1 += dy
	r.Y2 += dy
}

// resizeActive grows or shrinks the active rectangle by moving its top-right
// corner, refusing any change that would drop a side below one unit.
func (m *ExplorerModel) resizeActive(dw, dh float64) {
	r := m.active()
	if r.Width()+dw >= 1 {
		r.X2 += dw
	}
	if r.Height()+dh >= 1 {
		r.Y2 += dh
	}
}

func (m ExplorerModel) View() string {
	var sb strings.Builder

	sb.WriteString(StyleTitle.Render("rectangles explorer"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderCanvas())
	sb.WriteString("\n")
	sb.WriteString(m.renderReadout())
	sb.WriteString("\n")
	sb.WriteString(canvasHelpStyle.Render("arrows/hjkl move · W/A/S/D resize · tab switch rectangle · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// renderCanvas draws both rectangles on a unit-cell grid. Each cell is
// classified by its center, so boundary-only contact does not light a cell;
// the readout below carries the exact boundary classification.
func (m ExplorerModel) renderCanvas() string {
	minX := int(math.Floor(min(m.A.X1, m.B.X1))) - 1
	maxX := int(math.Ceil(max(m.A.X2, m.B.X2))) + 1
	minY := int(math.Floor(min(m.A.Y1, m.B.Y1))) - 1
	maxY := int(math.Ceil(max(m.A.Y2, m.B.Y2))) + 1

	var sb strings.Builder
	for y := maxY - 1; y >= minY; y-- {
		for x := minX; x < maxX; x++ {
			cx, cy := float64(x)+0.5, float64(y)+0.5
			inA := containsPoint(m.A, cx, cy)
			inB := containsPoint(m.B, cx, cy)
			switch {
			case inA && inB:
				sb.WriteString(canvasBothStyle.Render("▓▓"))
			case inA:
				sb.WriteString(canvasAStyle.Render("░░"))
			case inB:
				sb.WriteString(canvasBStyle.Render("▒▒"))
			default:
				sb.WriteString("··")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderReadout shows the live classification of the current pair.
func (m ExplorerModel) renderReadout() string {
	inter := relate.Intersect(m.A, m.B)
	cont := relate.Containment(m.A, m.B)
	adj := relate.Adjacent(m.A, m.B)

	aMark, bMark := " ", "*"
	if !m.ActiveB {
		aMark, bMark = "*", " "
	}

	lines := []string{
		fmt.Sprintf("%s A %s", aMark, canvasAStyle.Render(m.A.String())),
		fmt.Sprintf("%s B %s", bMark, canvasBStyle.Render(m.B.String())),
		"",
		"Intersection  " + StyleValue.Render(string(inter.Kind)),
		"Containment   " + StyleValue.Render(containmentLabels[cont]),
		"Adjacency     " + StyleValue.Render(adjacencyLabels[adj.Kind]),
	}
	return strings.Join(lines, "\n") + "\n"
}

// containsPoint reports whether (x, y) lies inside r's closed bounds.
func containsPoint(r geometry.Rect, x, y float64) bool {
	return r.X1 <= x && x <= r.X2 && r.Y1 <= y && y <= r.Y2
}

// =============================================================================
// Command
// =============================================================================

// tuiCommand creates the tui command for interactive exploration.
func (c *CLI) tuiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [" + coordUsage + "]",
		Short: "Explore rectangle relationships interactively",
		Long: `Open an interactive explorer. Move and resize one of the rectangles with
the keyboard and watch the intersection, containment, and adjacency
classifications update live.

Takes an optional rectangle pair as eight coordinates; starts from a
default pair otherwise.`,
		Example: `  rectangles tui
  rectangles tui 0 0 4 4  4 2 8 6`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 8 {
				return fmt.Errorf("accepts 0 or 8 coordinates, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _ := geometry.NewRect(0, 0, 6, 4)
			b, _ := geometry.NewRect(4, 2, 9, 6)
			if len(args) == 8 {
				var err error
				a, b, err = parseRectPair(args)
				if err != nil {
					return err
				}
			}

			c.Logger.Debug("starting explorer", "a", a, "b", b)
			_, err := tea.NewProgram(NewExplorerModel(a, b), tea.WithAltScreen()).Run()
			return err
		},
	}

	return cmd
}
