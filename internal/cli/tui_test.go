package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/rectangles/pkg/geometry"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testModel(t *testing.T) ExplorerModel {
	t.Helper()
	a, err := geometry.NewRect(0, 0, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := geometry.NewRect(4, 2, 8, 6)
	if err != nil {
		t.Fatal(err)
	}
	return NewExplorerModel(a, b)
}

func TestExplorerMove(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		wantB geometry.Rect
	}{
		{"left", []string{"left"}, geometry.Rect{X1: 3, Y1: 2, X2: 7, Y2: 6}},
		{"right vim key", []string{"l"}, geometry.Rect{X1: 5, Y1: 2, X2: 9, Y2: 6}},
		{"up", []string{"up"}, geometry.Rect{X1: 4, Y1: 3, X2: 8, Y2: 7}},
		{"down twice", []string{"down", "j"}, geometry.Rect{X1: 4, Y1: 0, X2: 8, Y2: 4}},
		{"grow width", []string{"D"}, geometry.Rect{X1: 4, Y1: 2, X2: 9, Y2: 6}},
		{"shrink height", []string{"S"}, geometry.Rect{X1: 4, Y1: 2, X2: 8, Y2: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = testModel(t)
			for _, k := range tt.keys {
				m, _ = m.Update(keyMsg(k))
			}
			em := m.(ExplorerModel)
			if em.B != tt.wantB {
				t.Errorf("B = %v, want %v", em.B, tt.wantB)
			}
			if em.A != (geometry.Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}) {
				t.Errorf("A moved unexpectedly: %v", em.A)
			}
		})
	}
}

func TestExplorerTabSwitchesTarget(t *testing.T) {
	var m tea.Model = testModel(t)
	m, _ = m.Update(keyMsg("tab"))
	m, _ = m.Update(keyMsg("right"))

	em := m.(ExplorerModel)
	if em.A != (geometry.Rect{X1: 1, Y1: 0, X2: 5, Y2: 4}) {
		t.Errorf("A = %v, want moved right", em.A)
	}
	if em.B != (geometry.Rect{X1: 4, Y1: 2, X2: 8, Y2: 6}) {
		t.Errorf("B = %v, want unchanged", em.B)
	}
}

func TestExplorerResizeFloor(t *testing.T) {
	var m tea.Model = testModel(t)

	// B starts 4 wide; three shrinks reach the one-unit floor, further
	// shrinks are refused.
	for i := 0; i < 5; i++ {
		m, _ = m.Update(keyMsg("A"))
	}

	em := m.(ExplorerModel)
	if got := em.B.Width(); got != 1 {
		t.Errorf("B width = %v, want 1", got)
	}
}

func TestExplorerQuit(t *testing.T) {
	m := testModel(t)
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		msg := keyMsg(k)
		if k == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		}
		if k == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("key %q did not quit", k)
		}
	}
}

func TestExplorerView(t *testing.T) {
	m := testModel(t)
	view := m.View()

	for _, want := range []string{
		"Intersection",
		"Containment",
		"Adjacency",
		"(0, 0) → (4, 4)",
		"(4, 2) → (8, 6)",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}
