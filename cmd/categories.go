package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/givepool/givepool/internal/cli"
	"github.com/givepool/givepool/internal/filter"
	"github.com/givepool/givepool/internal/pipeline"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Funding totals by category",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}
	state, err := buildState()
	if err != nil {
		return err
	}

	pools := filter.Apply(result.Pools, state)
	cats := pipeline.AggregateCategories(pools)
	if len(cats) == 0 {
		fmt.Println("\n  No pools found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CATEGORIES  %s", state)))
	fmt.Println()

	rows := make([][]string, 0, len(cats))
	for _, cs := range cats {
		rows = append(rows, []string{
			string(cs.Category),
			cli.FormatNumber(int64(cs.Pools)),
			cli.FormatNumber(int64(cs.Active)),
			cli.FormatNumber(int64(cs.Completed)),
			cli.FormatAmount(cs.Raised),
			cli.FormatAmount(cs.Target),
			cli.FormatPercent(cs.Progress()),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Pools", "Active", "Completed", "Raised", "Target", "Funded"},
		Rows:    rows,
	}))
	return nil
}
