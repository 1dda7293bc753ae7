package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/givepool/givepool/internal/landing"
	"github.com/givepool/givepool/internal/tui/components"
	"github.com/givepool/givepool/internal/tui/theme"
)

func (a App) renderHomeTab(cw int) string {
	t := theme.Active

	headStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	ctaStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	var b strings.Builder

	// Hero
	hero := landing.Hero
	innerW := components.CardInnerWidth(cw)
	heroBody := headStyle.Render(hero.Heading) + "\n" +
		subStyle.Width(innerW).Render(hero.Subtitle) + "\n\n" +
		ctaStyle.Render("[e] Explore pools") + subStyle.Render("   ") + ctaStyle.Render("[i] See impact")
	b.WriteString(components.ContentCard("", heroBody, cw))
	b.WriteString("\n")

	stats := make([]components.Metric, len(hero.Stats))
	for i, s := range hero.Stats {
		stats[i] = components.Metric{Label: s.Label, Value: s.Value}
	}
	b.WriteString(components.MetricCardRow(stats, cw))
	b.WriteString("\n")

	// Features in two columns
	half := components.LayoutRow(cw, 2)
	features := landing.Features.Items
	mid := (len(features) + 1) / 2
	b.WriteString(components.CardRow([]string{
		components.ContentCard(landing.Features.Heading, renderItems(features[:mid], false, half[0]), half[0]),
		components.ContentCard(landing.Features.Subtitle, renderItems(features[mid:], false, half[1]), half[1]),
	}))
	b.WriteString("\n")

	b.WriteString(components.CardRow([]string{
		components.ContentCard(landing.HowItWorks.Heading, renderItems(landing.HowItWorks.Items, true, half[0]), half[0]),
		components.ContentCard(landing.Security.Heading, renderItems(landing.Security.Items, false, half[1]), half[1]),
	}))
	b.WriteString("\n")

	trust := make([]components.Metric, len(landing.Security.Stats))
	for i, s := range landing.Security.Stats {
		trust[i] = components.Metric{Label: s.Label, Value: s.Value}
	}
	b.WriteString(components.MetricCardRow(trust, cw))
	b.WriteString("\n")

	cta := landing.CTA
	b.WriteString(components.ContentCard("", headStyle.Render(cta.Heading)+"\n"+
		subStyle.Render(cta.Subtitle)+"\n"+ctaStyle.Render("Press Enter to launch the explorer"), cw))

	return b.String()
}

func renderItems(items []landing.Item, numbered bool, outerW int) string {
	t := theme.Active
	w := components.CardInnerWidth(outerW)

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Width(w)
	markStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	var b strings.Builder
	for i, it := range items {
		mark := "✓ "
		if numbered {
			mark = fmt.Sprintf("%d. ", i+1)
		}
		b.WriteString(markStyle.Render(mark) + titleStyle.Render(it.Title))
		b.WriteString("\n")
		b.WriteString(descStyle.Render(it.Description))
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
