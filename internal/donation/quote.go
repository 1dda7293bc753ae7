// Package donation turns donation-dialog input into a validated intent and
// hands it to a Submitter. Transaction construction lives elsewhere.
package donation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/givepool/givepool/internal/model"
)

var (
	// ErrInvalidAmount means the amount is empty, not a number, or not positive.
	ErrInvalidAmount = errors.New("donation: amount must be a positive number")
	// ErrUnknownAsset means the asset is not one of model.Assets.
	ErrUnknownAsset = errors.New("donation: unknown asset")
	// ErrPoolNotFound means the target pool does not exist.
	ErrPoolNotFound = errors.New("donation: pool not found")
)

// QuickAmounts are the one-tap presets offered by the dialog.
var QuickAmounts = []string{"10", "50", "100"}

// Fee describes the network fee charged for one asset.
type Fee struct {
	Amount   float64 // flat fee in units of the asset
	Decimals int     // precision used when formatting totals
	Covered  bool    // fee is paid by the platform
}

// FeeSchedule maps each asset to its fee.
type FeeSchedule map[model.Asset]Fee

// DefaultFees returns the built-in fee schedule.
func DefaultFees() FeeSchedule {
	return FeeSchedule{
		model.AssetXLM:  {Amount: 0.00001, Decimals: 5},
		model.AssetUSDC: {Amount: 0, Decimals: 2, Covered: true},
	}
}

// For returns the fee for asset, falling back to the defaults.
func (fs FeeSchedule) For(asset model.Asset) Fee {
	if f, ok := fs[asset]; ok {
		return f
	}
	return DefaultFees()[asset]
}

// ParseAmount parses dialog input. Anything that is not a finite number
// greater than zero yields ErrInvalidAmount.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// Quote is the fee breakdown shown under the amount field.
type Quote struct {
	Asset          model.Asset `json:"asset"`
	Amount         float64     `json:"amount"`
	Fee            float64     `json:"fee"`
	Total          float64     `json:"total"`
	AmountDisplay  string      `json:"amount_display"`
	FeeDisplay     string      `json:"fee_display"`
	TotalDisplay   string      `json:"total_display"`
	CanConfirm     bool        `json:"can_confirm"`
	ValidationHint string      `json:"validation_hint,omitempty"`
}

// NewQuote computes the breakdown for raw dialog input. It never fails:
// invalid input produces a zero total and CanConfirm=false.
func NewQuote(amountText string, asset model.Asset, fees FeeSchedule) Quote {
	fee := fees.For(asset)
	q := Quote{
		Asset:      asset,
		Fee:        fee.Amount,
		FeeDisplay: formatFee(fee, asset),
	}

	trimmed := strings.TrimSpace(amountText)
	if trimmed == "" {
		q.AmountDisplay = "0 " + string(asset)
		q.TotalDisplay = "0.00 " + string(asset)
		q.ValidationHint = "enter an amount"
		return q
	}
	q.AmountDisplay = trimmed + " " + string(asset)

	amount, err := ParseAmount(trimmed)
	if err != nil {
		q.TotalDisplay = "0.00 " + string(asset)
		q.ValidationHint = err.Error()
		return q
	}

	q.Amount = amount
	q.Total = amount
	if !fee.Covered {
		q.Total += fee.Amount
	}
	q.TotalDisplay = strconv.FormatFloat(q.Total, 'f', fee.Decimals, 64) + " " + string(asset)
	q.CanConfirm = true
	return q
}

func formatFee(fee Fee, asset model.Asset) string {
	if fee.Covered {
		return fmt.Sprintf("%.2f %s (Covered)", fee.Amount, asset)
	}
	return strconv.FormatFloat(fee.Amount, 'f', -1, 64) + " " + string(asset)
}
