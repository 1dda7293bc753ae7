package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/givepool/givepool/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Home", Key: 'h', KeyPos: 0},
	{Name: "Explore", Key: 'e', KeyPos: 0},
	{Name: "Impact", Key: 'i', KeyPos: 0},
	{Name: "Settings", Key: 'x', KeyPos: -1}, // x is not in "Settings"
}

// tabGap is the width of the separator rendered between tabs.
const tabGap = 1

func renderTab(tab Tab, active bool) string {
	t := theme.Active
	pad := lipgloss.NewStyle().Padding(0, 1).Background(t.Surface)

	if active {
		return pad.Foreground(t.Accent).Bold(true).Render(tab.Name)
	}

	inactive := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var label string
	if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
		label = inactive.Render(tab.Name[:tab.KeyPos]) +
			dim.Render("[") + key.Render(string(tab.Name[tab.KeyPos])) + dim.Render("]") +
			inactive.Render(tab.Name[tab.KeyPos+1:])
	} else {
		label = inactive.Render(tab.Name) +
			dim.Render("[") + key.Render(string(tab.Key)) + dim.Render("]")
	}
	return pad.Render(label)
}

// TabVisualWidth returns the rendered width of tab idx given the active tab.
func TabVisualWidth(idx, activeIdx int) int {
	if idx < 0 || idx >= len(Tabs) {
		return 0
	}
	return lipgloss.Width(renderTab(Tabs[idx], idx == activeIdx))
}

// TabAtX returns the tab index under column x, or -1.
func TabAtX(x, activeIdx int) int {
	pos := 0
	for i := range Tabs {
		w := TabVisualWidth(i, activeIdx)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + tabGap
	}
	return -1
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}
	sep := lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", tabGap))
	row := strings.Join(parts, sep)

	return lipgloss.NewStyle().Width(width).Background(t.Surface).Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
