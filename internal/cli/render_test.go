package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Pools",
		Headers: []string{"ID", "Title", "Raised"},
		Rows: [][]string{
			{"1", "Clean Water Initiative", "$12,500"},
			{"3", "Ocean Cleanup", "$85,000"},
			{"---"},
			{"", "Total", "$97,500"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if strings.TrimSpace(lines[0]) != "Pools" {
		t.Fatalf("title line = %q", lines[0])
	}
	width := lipgloss.Width(lines[1])
	for i, l := range lines[1:] {
		if w := lipgloss.Width(l); w != width {
			t.Fatalf("line %d width = %d, want %d: %q", i+1, w, width, l)
		}
	}
	if !strings.Contains(out, "│ $85,000 │") {
		t.Fatalf("numeric column not right-aligned:\n%s", out)
	}
	if !strings.Contains(out, "│ Ocean Cleanup          │") {
		t.Fatalf("text column not left-aligned:\n%s", out)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Fatalf("RenderTable(empty) = %q, want empty", got)
	}
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		pct    float64
		filled int
		label  string
	}{
		{0, 0, "0%"},
		{0.5, 5, "50%"},
		{1.7, 10, "100%"},
		{-1, 0, "0%"},
	}
	for _, tt := range tests {
		got := RenderProgressBar(tt.pct, 10)
		if n := strings.Count(got, "█"); n != tt.filled {
			t.Errorf("RenderProgressBar(%v) filled = %d, want %d", tt.pct, n, tt.filled)
		}
		if !strings.HasSuffix(got, tt.label) {
			t.Errorf("RenderProgressBar(%v) = %q, want suffix %q", tt.pct, got, tt.label)
		}
	}
	if RenderProgressBar(0.5, 0) != "" {
		t.Fatal("zero width should render nothing")
	}
}
