package filter

import "github.com/givepool/givepool/internal/model"

// Browser holds one filter state over a fixed pool collection and caches
// the filtered result for the current state.
//
// A Browser is owned by a single view and is not safe for concurrent use.
type Browser struct {
	pools []model.Pool
	state State

	cached   []model.Pool
	cachedOn State
	valid    bool
}

// NewBrowser returns a browser over pools with an empty filter.
func NewBrowser(pools []model.Pool) *Browser {
	return &Browser{pools: pools}
}

// Pools returns the unfiltered collection.
func (b *Browser) Pools() []model.Pool { return b.pools }

// State returns the current filter snapshot.
func (b *Browser) State() State { return b.state }

// Results returns the pools matching the current state.
func (b *Browser) Results() []model.Pool {
	if !b.valid || b.cachedOn != b.state {
		b.cached = Apply(b.pools, b.state)
		b.cachedOn = b.state
		b.valid = true
	}
	return b.cached
}

// SetPools replaces the collection, keeping the current filter.
func (b *Browser) SetPools(pools []model.Pool) {
	b.pools = pools
	b.valid = false
}

// SetState replaces the whole filter, e.g. when restoring a preset.
func (b *Browser) SetState(s State) { b.state = s }

// SetQuery updates the search text.
func (b *Browser) SetQuery(q string) { b.state = b.state.SetQuery(q) }

// ToggleCategory flips c in the category selection.
func (b *Browser) ToggleCategory(c model.Category) { b.state = b.state.ToggleCategory(c) }

// ToggleStatus flips st in the status selection.
func (b *Browser) ToggleStatus(st model.Status) { b.state = b.state.ToggleStatus(st) }

// Clear resets every filter dimension.
func (b *Browser) Clear() { b.state = b.state.Clear() }
