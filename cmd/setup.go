package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/givepool/givepool/internal/config"
	"github.com/givepool/givepool/internal/donation"
	"github.com/givepool/givepool/internal/model"
	"github.com/givepool/givepool/internal/source"
	"github.com/givepool/givepool/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	themeName := cfg.Appearance.Theme
	asset := config.DefaultAsset(cfg)
	poolsFile := cfg.General.PoolsFile
	quick := strings.Join(config.QuickAmounts(cfg), ",")

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}
	assetOpts := make([]huh.Option[model.Asset], 0, len(model.Assets()))
	for _, a := range model.Assets() {
		assetOpts = append(assetOpts, huh.NewOption(string(a), a))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to givepool").
				Description(fmt.Sprintf("Browse %d built-in pools, or point givepool at your own catalog.", len(source.Seed()))),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),
			huh.NewSelect[model.Asset]().
				Title("Default donation asset").
				Options(assetOpts...).
				Value(&asset),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Pools file").
				Description("TOML catalog file or directory. Leave empty for the built-in pools.").
				Value(&poolsFile).
				Validate(validateCatalogPath),
			huh.NewInput().
				Title("Quick amounts").
				Description("Comma-separated one-tap amounts for the donation dialog.").
				Value(&quick).
				Validate(validateQuickAmounts),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	cfg.Appearance.Theme = themeName
	cfg.General.DefaultAsset = string(asset)
	cfg.General.PoolsFile = strings.TrimSpace(poolsFile)
	cfg.Donation.QuickAmounts = splitAmounts(quick)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `givepool setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func validateCatalogPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := os.Stat(s); err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	return nil
}

func validateQuickAmounts(s string) error {
	for _, a := range splitAmounts(s) {
		if _, err := donation.ParseAmount(a); err != nil {
			return fmt.Errorf("%q is not a positive amount", a)
		}
	}
	return nil
}

func splitAmounts(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
