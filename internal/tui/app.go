// Package tui provides the interactive Bubble Tea pool browser for givepool.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/givepool/givepool/internal/config"
	"github.com/givepool/givepool/internal/donation"
	"github.com/givepool/givepool/internal/filter"
	"github.com/givepool/givepool/internal/model"
	"github.com/givepool/givepool/internal/pipeline"
	"github.com/givepool/givepool/internal/source"
	"github.com/givepool/givepool/internal/store"
	"github.com/givepool/givepool/internal/tui/components"
	"github.com/givepool/givepool/internal/tui/theme"
)

// DataLoadedMsg is sent when the pool catalog finishes loading.
type DataLoadedMsg struct {
	Pools    []model.Pool
	Source   string
	LoadTime time.Duration
	Err      error
}

// DonationSubmittedMsg is sent when the submitter has handled an intent.
type DonationSubmittedMsg struct {
	Intent donation.Intent
	Err    error
}

// Options configures a new App.
type Options struct {
	PoolsFile    string
	NoCache      bool
	Initial      filter.State
	Fees         donation.FeeSchedule
	QuickAmounts []string
	DefaultAsset model.Asset
	Submitter    donation.Submitter
}

const (
	tabHome = iota
	tabExplore
	tabImpact
	tabSettings
)

// App is the root Bubble Tea model.
type App struct {
	// Data
	browser    *filter.Browser
	sourceName string
	loaded     bool
	loadErr    error
	loadTime   time.Duration
	reloading  bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	explore  exploreState
	donate   *donateDialog
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool

	spinner spinner.Model
	opts    Options
}

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5
	loadTimeout      = 30 * time.Second
	submitTimeout    = 10 * time.Second
)

// loadConfigOrDefault loads config, returning defaults on error.
// The TUI must start even if the config file is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	if opts.Fees == nil {
		opts.Fees = donation.DefaultFees()
	}
	if len(opts.QuickAmounts) == 0 {
		opts.QuickAmounts = donation.QuickAmounts
	}
	if !opts.DefaultAsset.Valid() {
		opts.DefaultAsset = model.AssetXLM
	}
	if opts.Submitter == nil {
		opts.Submitter = donation.LogSubmitter{}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	browser := filter.NewBrowser(nil)
	browser.SetState(opts.Initial)

	return App{
		browser:   browser,
		activeTab: tabHome,
		needSetup: !config.Exists(),
		explore:   newExploreState(),
		spinner:   sp,
		opts:      opts,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.opts.PoolsFile, a.opts.NoCache),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.donate != nil {
			a.donate.form = a.donate.form.WithWidth(donateFormWidth(msg.Width))
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.setupForm != nil || a.donate != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// Modal forms intercept all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.donate != nil {
			return a.updateDonate(msg)
		}

		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}
		if a.activeTab == tabExplore && a.explore.searching {
			return a.updateExploreSearch(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.activeTab == tabExplore {
			if m, cmd, handled := a.updateExploreKeys(key); handled {
				return m, cmd
			}
		}

		if a.activeTab == tabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		if key == "r" && !a.reloading {
			a.reloading = true
			return a, loadDataCmd(a.opts.PoolsFile, a.opts.NoCache)
		}

		if key == "enter" && a.activeTab == tabHome {
			a.activeTab = tabExplore
			return a, nil
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(msg.Runes) == 1 {
				if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.reloading = false
		a.loadTime = msg.LoadTime
		if msg.Err != nil {
			a.loadErr = msg.Err
			a.loaded = true
			return a, nil
		}
		a.loadErr = nil
		a.sourceName = msg.Source
		a.browser.SetPools(msg.Pools)
		a.explore.clamp(len(a.browser.Results()))

		if !a.loaded {
			a.loaded = true
			if a.needSetup {
				a.setupVals = newSetupValues(loadConfigOrDefault())
				a.setupForm = newSetupForm(len(msg.Pools), a.setupVals)
				if a.width > 0 {
					a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
				}
				return a, a.setupForm.Init()
			}
		}
		return a, nil

	case DonationSubmittedMsg:
		if msg.Err != nil {
			a.explore.setFlash(fmt.Sprintf("Donation failed: %s", msg.Err), true)
			return a, nil
		}
		a.explore.setFlash(fmt.Sprintf("Donation of %s %s to %s submitted (ref %s)",
			formatAmountInput(msg.Intent.Amount), msg.Intent.Asset, msg.Intent.PoolTitle,
			shortRef(msg.Intent.Reference)), false)
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks, etc.) to active forms
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.donate != nil {
		return a.updateDonate(msg)
	}
	if a.explore.searching {
		var cmd tea.Cmd
		a.explore.searchInput, cmd = a.explore.searchInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabExplore && a.explore.cursor > 0 {
			a.explore.cursor--
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabExplore && a.explore.cursor < len(a.browser.Results())-1 {
			a.explore.cursor++
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		// Tab bar is the first line
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	return components.TabAtX(x, a.activeTab)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	if a.donate != nil {
		return a.viewDonate()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  givepool needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ givepool"))
	b.WriteString(subtitleStyle.Render(" · Donation Pools"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading pools..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	type binding struct{ key, desc string }
	sections := []struct {
		title    string
		bindings []binding
	}{
		{"Navigation", []binding{
			{"h e i x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move cursor"},
			{"Tab", "Switch filters / results"},
		}},
		{"Explore", []binding{
			{"/", "Search pools"},
			{"Space", "Toggle filter"},
			{"c", "Clear all filters"},
			{"Enter d", "Donate to pool"},
		}},
		{"General", []binding{
			{"r", "Reload pools"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	filterRow := pillStyle.Render(" filter: ") + accentStyle.Render(a.browser.State().String())

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(filterRow)

	statusBar := components.RenderStatusBar(w, a.statusHints(), a.statusInfo())

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabHome:
		content = a.renderHomeTab(cw)
	case tabExplore:
		content = a.renderExploreTab(cw, contentH)
	case tabImpact:
		content = a.renderImpactTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHints() string {
	switch a.activeTab {
	case tabExplore:
		if a.explore.searching {
			return "[enter]apply  [esc]clear"
		}
		return "[/]search  [tab]pane  [space]toggle  [c]lear  [d]onate  [?]help  [q]uit"
	case tabSettings:
		return "[j/k]navigate  [enter]edit  [?]help  [q]uit"
	}
	return "[?]help  [q]uit"
}

func (a App) statusInfo() string {
	if a.loadErr != nil {
		return "load failed: " + a.loadErr.Error()
	}
	if a.reloading {
		return "reloading..."
	}
	src := a.sourceName
	if src == "" {
		src = "built-in"
	}
	return fmt.Sprintf("%d pools · %s · %.0fms", len(a.browser.Pools()), src,
		float64(a.loadTime.Microseconds())/1000)
}

// ─── Loading ────────────────────────────────────────────────────

// loadDataCmd loads the catalog in the background. File catalogs go through
// the sqlite snapshot cache unless noCache is set; any cache failure falls
// back to a direct load.
func loadDataCmd(poolsFile string, noCache bool) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		if poolsFile != "" && !noCache {
			cache, err := store.Open(pipeline.CachePath())
			if err == nil {
				cr, loadErr := pipeline.LoadWithCache(ctx, poolsFile, cache, nil)
				_ = cache.Close()
				if loadErr == nil {
					return DataLoadedMsg{Pools: cr.Pools, Source: cr.SourceName, LoadTime: time.Since(start)}
				}
			}
		}

		result, err := pipeline.Load(ctx, source.Resolve(poolsFile))
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		return DataLoadedMsg{Pools: result.Pools, Source: result.SourceName, LoadTime: time.Since(start)}
	}
}

// submitCmd hands an intent to the submitter off the Update goroutine.
func submitCmd(sub donation.Submitter, in donation.Intent) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		return DonationSubmittedMsg{Intent: in, Err: sub.Submit(ctx, in)}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func shortRef(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
