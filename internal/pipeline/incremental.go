package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/givepool/givepool/internal/source"
	"github.com/givepool/givepool/internal/store"
)

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	CacheHits int
	Reparsed  int
}

// LoadWithCache discovers catalog files under path, reuses cached snapshots
// of files whose mtime and size are unchanged, parses the rest, and returns
// the pools in file order. Snapshots of files that disappeared from path
// are dropped. Snapshots are keyed by absolute path.
func LoadWithCache(ctx context.Context, path string, cache *store.Cache, progressFn ProgressFunc) (*CachedLoadResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	path = abs

	files, err := source.ScanPath(path)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no pool catalogs found at %s", path)
	}

	result := &CachedLoadResult{
		LoadResult: LoadResult{
			SourceName: path,
			TotalFiles: len(files),
		},
	}

	tracked, err := cache.GetTrackedFiles()
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	present := make(map[string]struct{}, len(files))
	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		present[f.Path] = struct{}{}

		cached, ok := tracked[f.Path]
		if ok && cached.MtimeNs == f.MtimeNs && cached.SizeBytes == f.Size {
			pools, err := cache.LoadCatalog(f.Path)
			if err != nil {
				return nil, fmt.Errorf("loading cached catalog %s: %w", f.Path, err)
			}
			result.Pools = append(result.Pools, pools...)
			result.CacheHits++
		} else {
			pr := source.ParseFile(f)
			if pr.Err != nil {
				return nil, pr.Err
			}
			result.Pools = append(result.Pools, pr.Pools...)
			result.Reparsed++
			// A failed write only costs a reparse next time
			_ = cache.SaveCatalog(f.Path, pr.Pools, f.MtimeNs, f.Size)
		}

		if progressFn != nil {
			progressFn(i+1, len(files))
		}
	}

	// Forget files under path that no longer exist
	for tp := range tracked {
		if _, ok := present[tp]; ok {
			continue
		}
		if tp == path || strings.HasPrefix(tp, strings.TrimSuffix(path, string(filepath.Separator))+string(filepath.Separator)) {
			_ = cache.DeleteCatalog(tp)
		}
	}

	if err := source.CheckUnique(result.Pools); err != nil {
		return nil, err
	}
	return result, nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "givepool")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "givepool")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "pools.db")
}
