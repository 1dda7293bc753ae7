package source

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/givepool/givepool/internal/model"
)

// ParseFile decodes and validates one catalog file.
func ParseFile(df DiscoveredFile) ParseResult {
	result := ParseResult{File: df}

	data, err := os.ReadFile(df.Path) //nolint:gosec // path is configured by the local user
	if err != nil {
		result.Err = fmt.Errorf("reading %s: %w", df.Path, err)
		return result
	}

	var raw rawCatalog
	if err := toml.Unmarshal(data, &raw); err != nil {
		result.Err = fmt.Errorf("parsing %s: %w", df.Path, err)
		return result
	}

	var errs []error
	for _, p := range raw.Pools {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		result.Err = fmt.Errorf("%s: %w", df.Path, errors.Join(errs...))
		return result
	}

	result.Pools = raw.Pools
	return result
}

// FileSource reads pools from a catalog file or directory.
type FileSource struct {
	Path string
}

// Name implements Source.
func (f FileSource) Name() string { return f.Path }

// Pools implements Source. Pool IDs must be unique across all files.
func (f FileSource) Pools(ctx context.Context) ([]model.Pool, error) {
	files, err := ScanPath(f.Path)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", f.Path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no pool catalogs found at %s", f.Path)
	}

	var pools []model.Pool
	for _, df := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pr := ParseFile(df)
		if pr.Err != nil {
			return nil, pr.Err
		}
		pools = append(pools, pr.Pools...)
	}

	if err := CheckUnique(pools); err != nil {
		return nil, err
	}
	return pools, nil
}

// CheckUnique reports the first duplicated pool ID.
func CheckUnique(pools []model.Pool) error {
	seen := make(map[string]struct{}, len(pools))
	for _, p := range pools {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate pool id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// Resolve picks the file source when path is set, otherwise the seed.
func Resolve(path string) Source {
	if path == "" {
		return SeedSource{}
	}
	return FileSource{Path: path}
}
