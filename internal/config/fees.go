package config

import (
	"github.com/givepool/givepool/internal/donation"
	"github.com/givepool/givepool/internal/model"
)

// Fees merges user fee overrides onto the built-in schedule.
// Overrides for unknown assets are ignored.
func Fees(cfg Config) donation.FeeSchedule {
	fees := donation.DefaultFees()
	for name, o := range cfg.Donation.Fees {
		asset, err := model.ParseAsset(name)
		if err != nil {
			continue
		}
		f := fees[asset]
		if o.Amount != nil && *o.Amount >= 0 {
			f.Amount = *o.Amount
		}
		if o.Decimals != nil && *o.Decimals >= 0 && *o.Decimals <= 18 {
			f.Decimals = *o.Decimals
		}
		if o.Covered != nil {
			f.Covered = *o.Covered
		}
		fees[asset] = f
	}
	return fees
}

// QuickAmounts returns the configured presets, or the built-in ones.
// Presets that are not valid amounts are dropped.
func QuickAmounts(cfg Config) []string {
	var out []string
	for _, q := range cfg.Donation.QuickAmounts {
		if _, err := donation.ParseAmount(q); err == nil {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), donation.QuickAmounts...)
	}
	return out
}

// DefaultAsset returns the configured default asset, falling back to XLM.
func DefaultAsset(cfg Config) model.Asset {
	a, err := model.ParseAsset(cfg.General.DefaultAsset)
	if err != nil {
		return model.AssetXLM
	}
	return a
}
