package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/givepool/givepool/internal/cli"
	"github.com/givepool/givepool/internal/donation"
	"github.com/givepool/givepool/internal/model"
	"github.com/givepool/givepool/internal/tui/components"
	"github.com/givepool/givepool/internal/tui/theme"
)

// donateValues is bound to the donation form fields.
type donateValues struct {
	asset   model.Asset
	amount  string
	confirm bool
}

// donateDialog is the modal donation entry for one pool.
type donateDialog struct {
	pool model.Pool
	vals *donateValues
	form *huh.Form
	fees donation.FeeSchedule
}

func newDonateDialog(pool model.Pool, opts Options) *donateDialog {
	vals := &donateValues{asset: opts.DefaultAsset, confirm: true}

	assets := make([]huh.Option[model.Asset], 0, len(model.Assets()))
	for _, as := range model.Assets() {
		assets = append(assets, huh.NewOption(as.String(), as))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.Asset]().
				Title("Select Asset").
				Options(assets...).
				Value(&vals.asset),
			huh.NewInput().
				Title("Amount").
				Description("Quick amounts: "+strings.Join(opts.QuickAmounts, " · ")+" (tab completes)").
				Placeholder("0.00").
				Suggestions(opts.QuickAmounts).
				Value(&vals.amount).
				Validate(validateAmount),
			huh.NewConfirm().
				Title("Confirm Donation").
				Affirmative("Confirm").
				Negative("Cancel").
				Value(&vals.confirm),
		),
	).WithShowHelp(true).WithTheme(huh.ThemeCharm())

	return &donateDialog{pool: pool, vals: vals, form: form, fees: opts.Fees}
}

func validateAmount(s string) error {
	_, err := donation.ParseAmount(s)
	return err
}

func donateFormWidth(termW int) int {
	w := termW - 16
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	return w
}

func formatAmountInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (a App) updateDonate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		a.donate = nil
		a.explore.setFlash("Donation cancelled", false)
		return a, nil
	}

	form, cmd := a.donate.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.donate.form = f
	}

	switch a.donate.form.State {
	case huh.StateCompleted:
		d := a.donate
		a.donate = nil
		if !d.vals.confirm {
			a.explore.setFlash("Donation cancelled", false)
			return a, nil
		}
		intent, err := donation.NewIntent(a.browser.Pools(), d.pool.ID, d.vals.amount, d.vals.asset)
		if err != nil {
			a.explore.setFlash(fmt.Sprintf("Donation not sent: %s", err), true)
			return a, nil
		}
		a.explore.setFlash("Submitting donation...", false)
		return a, submitCmd(a.opts.Submitter, intent)

	case huh.StateAborted:
		a.donate = nil
		a.explore.setFlash("Donation cancelled", false)
		return a, nil
	}

	return a, cmd
}

func (a App) viewDonate() string {
	t := theme.Active
	d := a.donate
	w := donateFormWidth(a.width) + 4

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	q := donation.NewQuote(d.vals.amount, d.vals.asset, d.fees)

	row := func(label, value string) string {
		gap := w - 6 - lipgloss.Width(label) - lipgloss.Width(value)
		if gap < 1 {
			gap = 1
		}
		return mutedStyle.Render(label) + mutedStyle.Render(strings.Repeat(" ", gap)) + valueStyle.Render(value)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Donate to " + d.pool.Title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s raised of %s goal",
		cli.FormatAmount(d.pool.Raised), cli.FormatAmount(d.pool.Target))))
	b.WriteString("\n")
	b.WriteString(components.ProgressBar(d.pool.Progress(), w-12))
	b.WriteString("\n\n")
	b.WriteString(d.form.View())
	b.WriteString("\n")
	b.WriteString(row("Amount", q.AmountDisplay))
	b.WriteString("\n")
	b.WriteString(row("Estimated Network Fee", q.FeeDisplay))
	b.WriteString("\n")
	b.WriteString(row("Total Deduction", q.TotalDisplay))
	if !q.CanConfirm && q.ValidationHint != "" {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(q.ValidationHint))
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("[esc] cancel"))

	card := components.ContentCard("", b.String(), w)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}
