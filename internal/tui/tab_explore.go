package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/givepool/givepool/internal/cli"
	"github.com/givepool/givepool/internal/filter"
	"github.com/givepool/givepool/internal/model"
	"github.com/givepool/givepool/internal/tui/components"
	"github.com/givepool/givepool/internal/tui/theme"
)

type explorePane int

const (
	paneResults explorePane = iota
	paneFilters
)

const (
	sidebarWidth        = 30
	compactSidebarWidth = 26
	poolEntryHeight     = 4
)

// exploreState tracks the Explore tab. The filter state itself lives in the
// App's Browser.
type exploreState struct {
	pane         explorePane
	filterCursor int
	cursor       int
	searching    bool
	searchInput  textinput.Model
	flash        string
	flashErr     bool
}

func newExploreState() exploreState {
	return exploreState{searchInput: newSearchInput()}
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search pools..."
	ti.CharLimit = 100
	ti.Width = 40
	return ti
}

// clamp keeps the result cursor inside a list of n pools.
func (e *exploreState) clamp(n int) {
	if e.cursor >= n {
		e.cursor = n - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

func (e *exploreState) setFlash(msg string, isErr bool) {
	e.flash = msg
	e.flashErr = isErr
}

// filterRow is one sidebar checkbox: either a status or a category.
type filterRow struct {
	status   model.Status
	category model.Category
}

// filterRows lists the sidebar checkboxes, statuses first.
func filterRows() []filterRow {
	rows := make([]filterRow, 0, len(model.Statuses())+len(model.Categories()))
	for _, s := range model.Statuses() {
		rows = append(rows, filterRow{status: s})
	}
	for _, c := range model.Categories() {
		rows = append(rows, filterRow{category: c})
	}
	return rows
}

func (a *App) toggleFilterRow(idx int) {
	rows := filterRows()
	if idx < 0 || idx >= len(rows) {
		return
	}
	row := rows[idx]
	if row.status != "" {
		a.browser.ToggleStatus(row.status)
	} else {
		a.browser.ToggleCategory(row.category)
	}
	a.explore.cursor = 0
	a.explore.flash = ""
}

// updateExploreKeys handles Explore keys outside search mode. handled is
// false for keys that should fall through to global bindings.
func (a App) updateExploreKeys(key string) (m tea.Model, cmd tea.Cmd, handled bool) {
	results := a.browser.Results()
	e := &a.explore

	switch key {
	case "/":
		e.searching = true
		e.searchInput.SetValue(a.browser.State().Query())
		e.searchInput.CursorEnd()
		return a, e.searchInput.Focus(), true

	case "tab":
		if e.pane == paneResults {
			e.pane = paneFilters
		} else {
			e.pane = paneResults
		}
		return a, nil, true

	case "j", "down":
		if e.pane == paneFilters {
			if e.filterCursor < len(filterRows())-1 {
				e.filterCursor++
			}
		} else if e.cursor < len(results)-1 {
			e.cursor++
		}
		return a, nil, true

	case "k", "up":
		if e.pane == paneFilters {
			if e.filterCursor > 0 {
				e.filterCursor--
			}
		} else if e.cursor > 0 {
			e.cursor--
		}
		return a, nil, true

	case "g":
		e.cursor = 0
		return a, nil, true

	case "G":
		e.cursor = len(results) - 1
		e.clamp(len(results))
		return a, nil, true

	case " ":
		if e.pane == paneFilters {
			a.toggleFilterRow(e.filterCursor)
		}
		return a, nil, true

	case "enter":
		if e.pane == paneFilters {
			a.toggleFilterRow(e.filterCursor)
			return a, nil, true
		}
		return a.openDonate(results)

	case "d":
		return a.openDonate(results)

	case "c":
		if a.browser.State().IsEmpty() {
			return a, nil, true
		}
		a.browser.Clear()
		e.cursor = 0
		e.searchInput.SetValue("")
		e.setFlash("Filters cleared", false)
		return a, nil, true
	}

	return a, nil, false
}

func (a App) openDonate(results []model.Pool) (tea.Model, tea.Cmd, bool) {
	if len(results) == 0 || a.explore.cursor >= len(results) {
		return a, nil, true
	}
	a.donate = newDonateDialog(results[a.explore.cursor], a.opts)
	if a.width > 0 {
		a.donate.form = a.donate.form.WithWidth(donateFormWidth(a.width))
	}
	a.explore.flash = ""
	return a, a.donate.form.Init(), true
}

// updateExploreSearch handles keys while the search box has focus. The
// query is applied on every keystroke.
func (a App) updateExploreSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := &a.explore

	switch msg.String() {
	case "enter":
		e.searching = false
		e.searchInput.Blur()
		return a, nil
	case "esc":
		e.searching = false
		e.searchInput.Blur()
		e.searchInput.SetValue("")
		a.browser.SetQuery("")
		e.clamp(len(a.browser.Results()))
		return a, nil
	}

	var cmd tea.Cmd
	e.searchInput, cmd = e.searchInput.Update(msg)
	if q := e.searchInput.Value(); q != a.browser.State().Query() {
		a.browser.SetQuery(q)
		e.cursor = 0
	}
	return a, cmd
}

// ─── Rendering ──────────────────────────────────────────────────

func (a App) renderExploreTab(cw, h int) string {
	sw := sidebarWidth
	if a.isCompactLayout() {
		sw = compactSidebarWidth
	}

	sidebar := a.renderFilterSidebar(sw)
	results := a.renderResults(cw-sw, h)

	return components.CardRow([]string{sidebar, results})
}

func (a App) renderFilterSidebar(outerW int) string {
	t := theme.Active
	state := a.browser.State()
	facets := filter.FacetsFor(a.browser.Pools(), state)
	innerW := components.CardInnerWidth(outerW)
	focused := a.explore.pane == paneFilters

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	linkStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	var b strings.Builder
	idx := 0

	b.WriteString(headStyle.Render("Status"))
	b.WriteString("\n")
	for _, s := range model.Statuses() {
		b.WriteString(components.Checkbox(s.String(), state.StatusSelected(s),
			focused && a.explore.filterCursor == idx, facets.Statuses[s], innerW))
		b.WriteString("\n")
		idx++
	}

	b.WriteString("\n")
	b.WriteString(headStyle.Render("Category"))
	b.WriteString("\n")
	for _, c := range model.Categories() {
		b.WriteString(components.Checkbox(c.String(), state.CategorySelected(c),
			focused && a.explore.filterCursor == idx, facets.Categories[c], innerW))
		b.WriteString("\n")
		idx++
	}

	if state.HasSelections() {
		b.WriteString("\n")
		b.WriteString(linkStyle.Render("[c] Clear all"))
	}

	return components.ContentCard("Filters", b.String(), outerW)
}

func (a App) renderResults(outerW, h int) string {
	t := theme.Active
	results := a.browser.Results()
	innerW := components.CardInnerWidth(outerW)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var b strings.Builder

	// Search line
	if a.explore.searching {
		b.WriteString(a.explore.searchInput.View())
	} else if q := a.browser.State().Query(); q != "" {
		b.WriteString(mutedStyle.Render("/ ") + valueStyle.Render(q))
	} else {
		b.WriteString(dimStyle.Render("/ Search pools..."))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d pools", len(results), len(a.browser.Pools()))))
	b.WriteString("\n\n")

	if len(results) == 0 {
		b.WriteString(a.renderEmptyState(innerW))
	} else {
		// card border + title + search + count + spacer + flash
		visible := (h - 8) / poolEntryHeight
		if visible < 1 {
			visible = 1
		}
		start := 0
		if a.explore.cursor >= visible {
			start = a.explore.cursor - visible + 1
		}
		end := start + visible
		if end > len(results) {
			end = len(results)
		}
		for i := start; i < end; i++ {
			selected := i == a.explore.cursor && a.explore.pane == paneResults
			b.WriteString(renderPoolEntry(results[i], selected, innerW))
			if i < end-1 {
				b.WriteString("\n\n")
			}
		}
	}

	if a.explore.flash != "" {
		color := t.GreenBright
		if a.explore.flashErr {
			color = t.Orange
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(color).Background(t.Surface).
			Render(truncStr(a.explore.flash, innerW)))
	}

	return components.ContentCard("Explore Donation Pools", b.String(), outerW)
}

func renderPoolEntry(p model.Pool, selected bool, w int) string {
	t := theme.Active
	color := t.PoolColor(p.Color)

	marker := lipgloss.NewStyle().Background(t.Surface).Render("  ")
	if selected {
		marker = lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Render("▸ ")
	}
	titleStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	indent := lipgloss.NewStyle().Background(t.Surface).Render("  ")

	badge := components.Badge(p.Status.String(), t.StatusColor(p.Status))
	title := titleStyle.Render(truncStr(p.Title, w-lipgloss.Width(badge)-4))
	gap := w - lipgloss.Width(marker) - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	line1 := marker + title + lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", gap)) + badge

	line2 := indent + mutedStyle.Render(truncStr(p.Category.String()+" · "+p.Description, w-2))

	money := valueStyle.Render(cli.FormatAmount(p.Raised)) + mutedStyle.Render(" of "+cli.FormatAmount(p.Target))
	barW := w - lipgloss.Width(money) - 10
	if barW < 10 {
		barW = 10
	}
	line3 := indent + components.ProgressBar(p.Progress(), barW) + mutedStyle.Render("  ") + money

	return line1 + "\n" + line2 + "\n" + line3
}

func (a App) renderEmptyState(w int) string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	linkStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	body := titleStyle.Render("No pools found") + "\n" +
		mutedStyle.Render("Try adjusting your search or filters to find what you're looking for.") + "\n\n" +
		linkStyle.Render("[c] Clear all filters")

	return lipgloss.PlaceHorizontal(w, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(t.Surface))
}
