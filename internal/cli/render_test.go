package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderCommandWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "scene.svg")

	root := newTestCLI(t).RootCommand()
	root.SetArgs([]string{"render", "-o", out, "--grid", "0", "0", "4", "4", "2", "2", "6", "6"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		t.Errorf("output is not SVG: %.60s", data)
	}
}

func TestRenderCommandRejectsInvalidRect(t *testing.T) {
	root := newTestCLI(t).RootCommand()
	root.SetArgs([]string{"render", "0", "4", "4", "2", "0", "0", "1", "1"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for inverted rectangle")
	}
}
