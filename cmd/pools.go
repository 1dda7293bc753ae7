package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/givepool/givepool/internal/cli"
	"github.com/givepool/givepool/internal/filter"
	"github.com/givepool/givepool/internal/model"
	"github.com/givepool/givepool/internal/pipeline"
	"github.com/givepool/givepool/internal/store"
)

var (
	flagSavePreset   string
	flagPreset       string
	flagListPresets  bool
	flagDeletePreset string
)

var poolsCmd = &cobra.Command{
	Use:   "pools",
	Short: "List pools matching the current filters",
	RunE:  runPools,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, poolsCmd} {
		c.Flags().StringVar(&flagSavePreset, "save", "", "Save the current filters as a named preset")
		c.Flags().StringVar(&flagPreset, "preset", "", "Start from a saved filter preset")
		c.Flags().BoolVar(&flagListPresets, "presets", false, "List saved filter presets")
		c.Flags().StringVar(&flagDeletePreset, "delete-preset", "", "Delete a saved filter preset")
	}
	rootCmd.AddCommand(poolsCmd)
}

func runPools(cmd *cobra.Command, _ []string) error {
	if flagListPresets || flagDeletePreset != "" {
		return runPresets()
	}

	state, err := buildState()
	if err != nil {
		return err
	}

	if flagPreset != "" || flagSavePreset != "" {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			return fmt.Errorf("opening preset store: %w", err)
		}
		defer func() { _ = cache.Close() }()

		if flagPreset != "" {
			p, ok, err := cache.LoadPreset(flagPreset)
			if err != nil {
				return fmt.Errorf("loading preset: %w", err)
			}
			if !ok {
				return fmt.Errorf("no preset named %q (see `givepool pools --presets`)", flagPreset)
			}
			// Explicit flags override the preset.
			if !filterFlagsSet(cmd) {
				state = p.State
			}
		}
		if flagSavePreset != "" {
			if err := cache.SavePreset(flagSavePreset, state); err != nil {
				return fmt.Errorf("saving preset: %w", err)
			}
			fmt.Printf("  Saved preset %q: %s\n", flagSavePreset, state)
		}
	}

	result, err := loadData()
	if err != nil {
		return err
	}

	pools := filter.Apply(result.Pools, state)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("POOLS  %s", state)))
	fmt.Println()

	if len(pools) == 0 {
		fmt.Println("  No pools found")
		fmt.Println(cli.RenderMuted("  Try adjusting your search or filters to find what you're looking for."))
		if !state.IsEmpty() {
			fmt.Println(cli.RenderMuted("  Run without --query/--category/--status to clear all filters."))
		}
		return nil
	}

	rows := make([][]string, 0, len(pools)+2)
	for _, p := range pools {
		rows = append(rows, []string{
			p.ID,
			cli.Truncate(p.Title, 28),
			string(p.Category),
			string(p.Status),
			cli.FormatAmount(p.Raised),
			cli.FormatAmount(p.Target),
			cli.FormatPercent(p.Progress()),
		})
	}
	sum := pipeline.Summarize(pools)
	rows = append(rows,
		[]string{"---"},
		[]string{"", "Total", "", "", cli.FormatAmount(sum.Raised), cli.FormatAmount(sum.Target), cli.FormatPercent(sum.Progress())},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Title", "Category", "Status", "Raised", "Target", "Funded"},
		Rows:    rows,
	}))

	fmt.Printf("\n  %d of %d pools", len(pools), len(result.Pools))
	if facets := formatFacets(filter.CountFacets(pools)); facets != "" {
		fmt.Printf("  %s", cli.RenderMuted(facets))
	}
	fmt.Println()
	return nil
}

func runPresets() error {
	cache, err := store.Open(pipeline.CachePath())
	if err != nil {
		return fmt.Errorf("opening preset store: %w", err)
	}
	defer func() { _ = cache.Close() }()

	if flagDeletePreset != "" {
		if err := cache.DeletePreset(flagDeletePreset); err != nil {
			return fmt.Errorf("deleting preset: %w", err)
		}
		fmt.Printf("  Deleted preset %q\n", flagDeletePreset)
		if !flagListPresets {
			return nil
		}
	}

	presets, err := cache.ListPresets()
	if err != nil {
		return fmt.Errorf("listing presets: %w", err)
	}
	if len(presets) == 0 {
		fmt.Println("\n  No saved presets. Save one with `givepool pools --save NAME`.")
		return nil
	}

	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{p.Name, p.State.String(), p.SavedAt.Local().Format("2006-01-02 15:04")})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Filter presets",
		Headers: []string{"Name", "Filters", "Saved"},
		Rows:    rows,
	}))
	return nil
}

func formatFacets(f filter.Facets) string {
	var parts []string
	for _, c := range model.Categories() {
		if n := f.Categories[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", c, n))
		}
	}
	return strings.Join(parts, " · ")
}
