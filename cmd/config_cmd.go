// Package cmd implements the givepool CLI commands.
package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/givepool/givepool/internal/config"
	"github.com/givepool/givepool/internal/model"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	poolsFile := config.GetPoolsFile(cfg)
	switch {
	case poolsFile == "":
		fmt.Println("    Pools file:     built-in pools")
	case os.Getenv(config.PoolsFileEnv) != "":
		fmt.Printf("    Pools file:     %s (from %s)\n", poolsFile, config.PoolsFileEnv)
	default:
		fmt.Printf("    Pools file:     %s\n", poolsFile)
	}
	fmt.Printf("    Default asset:  %s\n", config.DefaultAsset(cfg))
	fmt.Println()

	fmt.Println("  [Donation]")
	fmt.Printf("    Quick amounts:  %s\n", strings.Join(config.QuickAmounts(cfg), ", "))
	fees := config.Fees(cfg)
	assets := model.Assets()
	sort.Slice(assets, func(i, j int) bool { return assets[i] < assets[j] })
	for _, a := range assets {
		f := fees.For(a)
		if f.Covered {
			fmt.Printf("    %-5s fee:      covered (%d decimals)\n", a, f.Decimals)
		} else {
			fmt.Printf("    %-5s fee:      %g %s (%d decimals)\n", a, f.Amount, a, f.Decimals)
		}
	}
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address: %s\n", cfg.Server.Addr)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `givepool setup` to reconfigure.")
	return nil
}
