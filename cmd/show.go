package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/givepool/givepool/internal/cli"
	"github.com/givepool/givepool/internal/model"
)

var showCmd = &cobra.Command{
	Use:   "show <pool-id>",
	Short: "Show one pool in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	p, ok := model.FindPool(result.Pools, args[0])
	if !ok {
		return fmt.Errorf("pool %q not found", args[0])
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(p.Title))
	fmt.Println()
	if p.Description != "" {
		fmt.Printf("  %s\n\n", p.Description)
	}
	fmt.Printf("  ID:         %s\n", p.ID)
	fmt.Printf("  Category:   %s\n", p.Category)
	fmt.Printf("  Status:     %s\n", p.Status)
	fmt.Printf("  Raised:     %s of %s\n", cli.FormatAmount(p.Raised), cli.FormatAmount(p.Target))
	fmt.Printf("  Remaining:  %s\n", cli.FormatAmount(p.Remaining()))
	fmt.Printf("  Progress:   %s\n", cli.RenderProgressBar(p.Progress(), 30))
	fmt.Println()
	fmt.Printf("  Donate with: givepool donate --pool %s --amount 50\n", p.ID)
	return nil
}
