package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/givepool/givepool/internal/cli"
	"github.com/givepool/givepool/internal/config"
	"github.com/givepool/givepool/internal/model"
	"github.com/givepool/givepool/internal/tui/components"
	"github.com/givepool/givepool/internal/tui/theme"
)

const (
	settingsFieldTheme = iota
	settingsFieldAsset
	settingsFieldPoolsFile
	settingsFieldQuickAmounts
	settingsFieldServerAddr
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false
	a.settings.saveErr = nil

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldAsset:
		ti.Placeholder = "XLM or USDC"
		ti.SetValue(a.opts.DefaultAsset.String())
	case settingsFieldPoolsFile:
		ti.Placeholder = "path to a TOML catalog (empty for built-in pools)"
		ti.SetValue(cfg.General.PoolsFile)
	case settingsFieldQuickAmounts:
		ti.Placeholder = "10, 50, 100"
		ti.SetValue(strings.Join(a.opts.QuickAmounts, ", "))
	case settingsFieldServerAddr:
		ti.Placeholder = "127.0.0.1:8788"
		ti.SetValue(cfg.Server.Addr)
	}

	cmd := ti.Focus()
	a.settings.input = ti
	return a, cmd
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		reload := a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		if reload {
			a.reloading = true
			return a, loadDataCmd(a.opts.PoolsFile, a.opts.NoCache)
		}
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave validates and persists the edited field. It reports whether
// the pool catalog must be reloaded.
func (a *App) settingsSave() bool {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())
	reload := false

	switch a.settings.cursor {
	case settingsFieldTheme:
		if !theme.Valid(val) {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return false
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldAsset:
		asset, err := model.ParseAsset(val)
		if err != nil {
			a.settings.saveErr = err
			return false
		}
		cfg.General.DefaultAsset = asset.String()
		a.opts.DefaultAsset = asset
	case settingsFieldPoolsFile:
		if val != "" {
			if _, err := os.Stat(val); err != nil {
				a.settings.saveErr = fmt.Errorf("pools file: %w", err)
				return false
			}
		}
		cfg.General.PoolsFile = val
		if os.Getenv(config.PoolsFileEnv) == "" && a.opts.PoolsFile != val {
			a.opts.PoolsFile = val
			reload = true
		}
	case settingsFieldQuickAmounts:
		var amounts []string
		for _, part := range strings.Split(val, ",") {
			if part = strings.TrimSpace(part); part != "" {
				amounts = append(amounts, part)
			}
		}
		cfg.Donation.QuickAmounts = amounts
		a.opts.QuickAmounts = config.QuickAmounts(cfg)
	case settingsFieldServerAddr:
		if val == "" {
			val = config.DefaultConfig().Server.Addr
		}
		cfg.Server.Addr = val
	}

	a.settings.saveErr = config.Save(cfg)
	return reload && a.settings.saveErr == nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	poolsFile := cfg.General.PoolsFile
	if poolsFile == "" {
		poolsFile = "(built-in pools)"
	}

	fields := []struct{ label, value string }{
		{"Theme", cfg.Appearance.Theme},
		{"Default Asset", a.opts.DefaultAsset.String()},
		{"Pools File", poolsFile},
		{"Quick Amounts", strings.Join(a.opts.QuickAmounts, ", ")},
		{"Server Address", cfg.Server.Addr},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			padLen := components.CardInnerWidth(cw) - lipgloss.Width(marker) - lipgloss.Width(label) - lipgloss.Width(value)
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	source := a.sourceName
	if source == "" {
		source = "built-in"
	}
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Pool source:   ") + valueStyle.Render(source) + "\n")
	infoBody.WriteString(labelStyle.Render("Pools loaded:  ") + valueStyle.Render(cli.FormatNumber(int64(len(a.browser.Pools())))) + "\n")
	infoBody.WriteString(labelStyle.Render("Load time:     ") + valueStyle.Render(fmt.Sprintf("%.1fms", float64(a.loadTime.Microseconds())/1000)) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:   ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
