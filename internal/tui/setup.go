package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/givepool/givepool/internal/config"
	"github.com/givepool/givepool/internal/model"
	"github.com/givepool/givepool/internal/tui/theme"
)

// setupValues is bound to the first-run form fields.
type setupValues struct {
	theme     string
	asset     model.Asset
	poolsFile string
	saveErr   error
}

func newSetupValues(cfg config.Config) *setupValues {
	asset, err := model.ParseAsset(cfg.General.DefaultAsset)
	if err != nil {
		asset = model.AssetXLM
	}
	name := cfg.Appearance.Theme
	if !theme.Valid(name) {
		name = theme.All[0].Name
	}
	return &setupValues{theme: name, asset: asset, poolsFile: cfg.General.PoolsFile}
}

// newSetupForm builds the first-run wizard.
func newSetupForm(numPools int, vals *setupValues) *huh.Form {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themes = append(themes, huh.NewOption(t.Name, t.Name))
	}
	assets := make([]huh.Option[model.Asset], 0, len(model.Assets()))
	for _, as := range model.Assets() {
		assets = append(assets, huh.NewOption(as.String(), as))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to givepool").
				Description(fmt.Sprintf("Browsing %d donation pools.\nA few choices and you're set.", numPools)),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&vals.theme),
			huh.NewSelect[model.Asset]().
				Title("Default donation asset").
				Options(assets...).
				Value(&vals.asset),
			huh.NewInput().
				Title("Pools file").
				Description("TOML catalog or directory of catalogs. Leave empty for the built-in pools.").
				Value(&vals.poolsFile).
				Validate(validatePoolsFile),
		),
	).WithShowHelp(true).WithTheme(huh.ThemeCharm())
}

func validatePoolsFile(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := os.Stat(s); err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	return nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		reload := a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		if err := a.setupVals.saveErr; err != nil {
			a.explore.setFlash(fmt.Sprintf("Could not save config: %s", err), true)
		}
		if reload {
			a.reloading = true
			return a, loadDataCmd(a.opts.PoolsFile, a.opts.NoCache)
		}
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// saveSetupConfig persists the wizard answers and applies them to the
// running app. It reports whether the catalog must be reloaded.
func (a *App) saveSetupConfig() bool {
	cfg := loadConfigOrDefault()
	v := a.setupVals

	cfg.Appearance.Theme = v.theme
	theme.SetActive(v.theme)

	cfg.General.DefaultAsset = v.asset.String()
	a.opts.DefaultAsset = v.asset

	poolsFile := strings.TrimSpace(v.poolsFile)
	cfg.General.PoolsFile = poolsFile

	v.saveErr = config.Save(cfg)

	if os.Getenv(config.PoolsFileEnv) == "" && poolsFile != a.opts.PoolsFile {
		a.opts.PoolsFile = poolsFile
		return true
	}
	return false
}
