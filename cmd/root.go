package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/givepool/givepool/internal/cli"
	"github.com/givepool/givepool/internal/config"
	"github.com/givepool/givepool/internal/filter"
	"github.com/givepool/givepool/internal/model"
	"github.com/givepool/givepool/internal/pipeline"
	"github.com/givepool/givepool/internal/source"
	"github.com/givepool/givepool/internal/store"
)

var (
	flagQuery      string
	flagCategories []string
	flagStatuses   []string
	flagPoolsFile  string
	flagNoCache    bool
	flagQuiet      bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "givepool",
	Short: "Browse and donate to funding pools",
	Long:  "Browse donation pools from the terminal: search, filter by category and status, and prepare donations.",
	RunE:  runPools,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagQuery, "query", "q", "", "Search pool titles and descriptions")
	rootCmd.PersistentFlags().StringSliceVarP(&flagCategories, "category", "c", nil, "Only show these categories (repeatable)")
	rootCmd.PersistentFlags().StringSliceVarP(&flagStatuses, "status", "s", nil, "Only show these statuses (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagPoolsFile, "pools-file", "", "TOML pool catalog file or directory (default: built-in pools)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse catalogs")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

// poolsFile resolves the catalog path: flag, then env, then config.
func poolsFile() string {
	if flagPoolsFile != "" {
		return flagPoolsFile
	}
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return config.GetPoolsFile(cfg)
}

// loadData is the shared data loading path used by all commands.
// Catalog files go through the SQLite cache unless --no-cache is set.
func loadData() (*pipeline.LoadResult, error) {
	ctx := context.Background()
	path := poolsFile()

	if path == "" {
		return pipeline.Load(ctx, source.SeedSource{})
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Scanning %s...\n", path)
	}

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		if current%10 == 0 || current == total {
			fmt.Fprintf(os.Stderr, "\r  Parsing [%d/%d]", current, total)
		}
	}

	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			defer func() { _ = cache.Close() }()

			cr, err := pipeline.LoadWithCache(ctx, path, cache, progressFn)
			if err != nil {
				if !flagQuiet {
					fmt.Fprintf(os.Stderr, "\n  Cache load failed (%v), falling back to full parse\n", err)
				}
			} else {
				if !flagQuiet {
					if cr.Reparsed == 0 {
						fmt.Fprintf(os.Stderr, "\r  Loaded %s pools from cache (%d files)    \n",
							cli.FormatNumber(int64(len(cr.Pools))), cr.TotalFiles)
					} else {
						fmt.Fprintf(os.Stderr, "\r  %d cached + %d reparsed (%s pools)    \n",
							cr.CacheHits, cr.Reparsed, cli.FormatNumber(int64(len(cr.Pools))))
					}
				}
				return &cr.LoadResult, nil
			}
		}
	}

	result, err := pipeline.Load(ctx, source.FileSource{Path: path})
	if err != nil {
		return nil, err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "\r  Parsed %s pools from %s    \n",
			cli.FormatNumber(int64(len(result.Pools))), result.SourceName)
	}
	return result, nil
}

// buildState turns the filter flags into a filter state. Values may be
// repeated or comma-separated and match case-insensitively.
func buildState() (filter.State, error) {
	var cats []model.Category
	for _, name := range flagCategories {
		c, err := model.ParseCategory(strings.TrimSpace(name))
		if err != nil {
			return filter.State{}, fmt.Errorf("--category: %w", err)
		}
		cats = append(cats, c)
	}

	var stats []model.Status
	for _, name := range flagStatuses {
		s, err := model.ParseStatus(strings.TrimSpace(name))
		if err != nil {
			return filter.State{}, fmt.Errorf("--status: %w", err)
		}
		stats = append(stats, s)
	}

	return filter.NewState(flagQuery, cats, stats), nil
}

// filterFlagsSet reports whether any filter flag was given explicitly.
func filterFlagsSet(cmd *cobra.Command) bool {
	for _, name := range []string{"query", "category", "status"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// newLogger builds the structured logger used by long-running commands
// and the donation submitter. Output goes to path, or stderr when empty.
func newLogger(path string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableStacktrace = true
	if flagVerbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	out := "stderr"
	if path != "" {
		out = path
	}
	zcfg.OutputPaths = []string{out}
	zcfg.ErrorOutputPaths = []string{out}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
