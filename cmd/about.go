package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/givepool/givepool/internal/cli"
	"github.com/givepool/givepool/internal/landing"
)

var aboutCmd = &cobra.Command{
	Use:   "about [section]",
	Short: "What givepool is and how it works",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, args []string) error {
	sections := landing.Sections()
	if len(args) == 1 {
		s, ok := landing.ByID(args[0])
		if !ok {
			ids := make([]string, 0, len(sections))
			for _, s := range sections {
				ids = append(ids, s.ID)
			}
			return fmt.Errorf("unknown section %q (one of: %s)", args[0], strings.Join(ids, ", "))
		}
		sections = []landing.Section{s}
	}

	for _, s := range sections {
		fmt.Println()
		fmt.Println(cli.RenderTitle(s.Heading))
		if s.Subtitle != "" {
			fmt.Printf("  %s\n", cli.RenderMuted(s.Subtitle))
		}
		if len(s.Items) > 0 {
			fmt.Println()
		}
		for i, it := range s.Items {
			label := "•"
			if s.Numbered {
				label = fmt.Sprintf("%d.", i+1)
			}
			fmt.Printf("  %s %s\n", label, it.Title)
			if it.Description != "" {
				fmt.Printf("     %s\n", cli.RenderMuted(it.Description))
			}
		}
		if len(s.Stats) > 0 {
			fmt.Println()
			parts := make([]string, 0, len(s.Stats))
			for _, st := range s.Stats {
				parts = append(parts, st.Value+" "+cli.RenderMuted(st.Label))
			}
			fmt.Printf("  %s\n", strings.Join(parts, "   "))
		}
	}
	fmt.Println()
	return nil
}
