// Package source supplies the ordered pool collection the browser filters.
package source

import (
	"context"

	"github.com/givepool/givepool/internal/model"
)

// Source yields the full, ordered pool collection.
type Source interface {
	// Name describes the source for status output.
	Name() string
	// Pools returns every pool in display order.
	Pools(ctx context.Context) ([]model.Pool, error)
}

// DiscoveredFile is a TOML pool catalog found on disk.
type DiscoveredFile struct {
	Path    string
	MtimeNs int64
	Size    int64
}

// ParseResult is the outcome of reading one catalog file.
type ParseResult struct {
	File  DiscoveredFile
	Pools []model.Pool
	Err   error
}

// rawCatalog is the on-disk layout of a catalog file:
//
//	[[pool]]
//	id = "1"
//	title = "Clean Water Initiative"
//	...
type rawCatalog struct {
	Pools []model.Pool `toml:"pool"`
}
