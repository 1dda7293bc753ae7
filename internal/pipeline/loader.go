// Package pipeline loads the pool catalog and aggregates it for display.
package pipeline

import (
	"context"
	"fmt"

	"github.com/givepool/givepool/internal/model"
	"github.com/givepool/givepool/internal/source"
)

// LoadResult holds the output of the catalog loading pipeline.
type LoadResult struct {
	Pools      []model.Pool
	SourceName string
	TotalFiles int
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load reads every pool from src without touching the cache.
func Load(ctx context.Context, src source.Source) (*LoadResult, error) {
	pools, err := src.Pools(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading pools from %s: %w", src.Name(), err)
	}
	return &LoadResult{
		Pools:      pools,
		SourceName: src.Name(),
	}, nil
}
