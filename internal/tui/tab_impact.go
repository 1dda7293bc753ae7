package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/givepool/givepool/internal/cli"
	"github.com/givepool/givepool/internal/pipeline"
	"github.com/givepool/givepool/internal/tui/components"
	"github.com/givepool/givepool/internal/tui/theme"
)

const topPoolsShown = 5

func (a App) renderImpactTab(cw int) string {
	t := theme.Active
	pools := a.browser.Pools()
	sum := pipeline.Summarize(pools)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Pools", Value: cli.FormatNumber(int64(sum.Pools)),
			Delta: fmt.Sprintf("%d active · %d completed", sum.Active, sum.Completed)},
		{Label: "Raised", Value: cli.FormatAmount(sum.Raised),
			Delta: "of " + cli.FormatAmount(sum.Target)},
		{Label: "Funded", Value: cli.FormatPercent(sum.Progress()),
			Delta: fmt.Sprintf("%d pools at goal", sum.Funded)},
	}, cw))
	b.WriteString("\n")

	half := components.LayoutRow(cw, 2)

	// Category bars
	cats := pipeline.AggregateCategories(pools)
	labelW := 0
	for _, c := range cats {
		if n := len(c.Category.String()); n > labelW {
			labelW = n
		}
	}
	barW := components.CardInnerWidth(half[0]) - labelW - 6
	if barW < 8 {
		barW = 8
	}
	var catBody strings.Builder
	for i, c := range cats {
		catBody.WriteString(components.FundingBar(c.Category.String(), c.Progress(), t.Accent, labelW, barW))
		catBody.WriteString("\n")
		catBody.WriteString(mutedStyle.Render(strings.Repeat(" ", labelW+1)))
		catBody.WriteString(mutedStyle.Render(fmt.Sprintf("%s of %s · %d pools",
			cli.FormatCompact(c.Raised), cli.FormatCompact(c.Target), c.Pools)))
		if i < len(cats)-1 {
			catBody.WriteString("\n")
		}
	}

	// Closest to goal
	top := pipeline.TopByProgress(pools, topPoolsShown)
	titleW := 0
	for _, p := range top {
		if n := len([]rune(p.Title)); n > titleW {
			titleW = n
		}
	}
	maxTitle := components.CardInnerWidth(half[1]) / 2
	if titleW > maxTitle {
		titleW = maxTitle
	}
	topBarW := components.CardInnerWidth(half[1]) - titleW - 6
	if topBarW < 8 {
		topBarW = 8
	}
	var topBody strings.Builder
	for i, p := range top {
		topBody.WriteString(components.FundingBar(truncStr(p.Title, titleW), p.Progress(), t.PoolColor(p.Color), titleW, topBarW))
		if i < len(top)-1 {
			topBody.WriteString("\n")
		}
	}
	if len(top) == 0 {
		topBody.WriteString(valueStyle.Render("No pools loaded"))
	}

	b.WriteString(components.CardRow([]string{
		components.ContentCard("Funding by Category", catBody.String(), half[0]),
		components.ContentCard("Closest to Goal", topBody.String(), half[1]),
	}))

	return b.String()
}
