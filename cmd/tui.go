package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/givepool/givepool/internal/config"
	"github.com/givepool/givepool/internal/donation"
	"github.com/givepool/givepool/internal/pipeline"
	"github.com/givepool/givepool/internal/tui"
	"github.com/givepool/givepool/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive pool browser",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Load config for theme
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	state, err := buildState()
	if err != nil {
		return err
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Anything written to stderr would corrupt the alt screen.
	_ = os.MkdirAll(pipeline.CacheDir(), 0o750)
	logger, err := newLogger(filepath.Join(pipeline.CacheDir(), "givepool-tui.log"))
	if err != nil {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	app := tui.NewApp(tui.Options{
		PoolsFile:    poolsFile(),
		NoCache:      flagNoCache,
		Initial:      state,
		Fees:         config.Fees(cfg),
		QuickAmounts: config.QuickAmounts(cfg),
		DefaultAsset: config.DefaultAsset(cfg),
		Submitter:    donation.LogSubmitter{Logger: logger},
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
