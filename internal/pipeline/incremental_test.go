package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/givepool/givepool/internal/source"
	"github.com/givepool/givepool/internal/store"
)

const catalogA = `
[[pool]]
id = "a1"
title = "Library"
category = "Education"
status = "Active"
target = 100
raised = 10
`

const catalogB = `
[[pool]]
id = "b1"
title = "Clinic"
category = "Health"
status = "Completed"
target = 500
raised = 500
`

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func openCache(t *testing.T) *store.Cache {
	t.Helper()
	c, err := store.Open(filepath.Join(t.TempDir(), "pools.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func poolIDs(r *CachedLoadResult) []string {
	ids := make([]string, 0, len(r.Pools))
	for _, p := range r.Pools {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestLoadWithCacheHitsAndReparses(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, filepath.Join(dir, "a.toml"), catalogA)
	writeCatalog(t, filepath.Join(dir, "b.toml"), catalogB)
	cache := openCache(t)
	ctx := context.Background()

	var calls int
	first, err := LoadWithCache(ctx, dir, cache, func(current, total int) {
		calls++
		if total != 2 || current != calls {
			t.Errorf("progress(%d, %d) on call %d", current, total, calls)
		}
	})
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if first.Reparsed != 2 || first.CacheHits != 0 {
		t.Fatalf("first load reparsed=%d hits=%d, want 2/0", first.Reparsed, first.CacheHits)
	}
	if got := poolIDs(first); len(got) != 2 || got[0] != "a1" || got[1] != "b1" {
		t.Fatalf("pools = %v, want [a1 b1]", got)
	}

	second, err := LoadWithCache(ctx, dir, cache, nil)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if second.Reparsed != 0 || second.CacheHits != 2 {
		t.Fatalf("second load reparsed=%d hits=%d, want 0/2", second.Reparsed, second.CacheHits)
	}
	if second.Pools[1].Raised != 500 || second.Pools[1].Title != "Clinic" {
		t.Fatalf("cached pool = %+v", second.Pools[1])
	}

	// A size change forces a reparse of that file only.
	writeCatalog(t, filepath.Join(dir, "a.toml"), catalogA+"color = \"blue\"\n")
	third, err := LoadWithCache(ctx, dir, cache, nil)
	if err != nil {
		t.Fatalf("third load: %v", err)
	}
	if third.Reparsed != 1 || third.CacheHits != 1 {
		t.Fatalf("third load reparsed=%d hits=%d, want 1/1", third.Reparsed, third.CacheHits)
	}
	if third.Pools[0].Color != "blue" {
		t.Fatalf("Color = %q, want blue", third.Pools[0].Color)
	}
}

func TestLoadWithCacheForgetsRemovedFiles(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, filepath.Join(dir, "a.toml"), catalogA)
	writeCatalog(t, filepath.Join(dir, "b.toml"), catalogB)
	cache := openCache(t)
	ctx := context.Background()

	if _, err := LoadWithCache(ctx, dir, cache, nil); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(dir, "b.toml")); err != nil {
		t.Fatal(err)
	}

	r, err := LoadWithCache(ctx, dir, cache, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := poolIDs(r); len(got) != 1 || got[0] != "a1" {
		t.Fatalf("pools = %v, want [a1]", got)
	}
	tracked, err := cache.GetTrackedFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(tracked) != 1 {
		t.Fatalf("tracked = %v, want only a.toml", tracked)
	}
}

func TestLoadWithCacheKeysRelativePathsByDirectory(t *testing.T) {
	root := t.TempDir()
	cache := openCache(t)
	ctx := context.Background()
	mtime := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	// Same file name, size and mtime in both directories.
	for dir, title := range map[string]string{"a": "AAAA pool", "b": "BBBB pool"} {
		d := filepath.Join(root, dir)
		if err := os.Mkdir(d, 0o750); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(d, "pools.toml")
		writeCatalog(t, path, strings.Replace(catalogA, "Library", title, 1))
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatal(err)
		}
	}

	t.Chdir(filepath.Join(root, "a"))
	first, err := LoadWithCache(ctx, "pools.toml", cache, nil)
	if err != nil {
		t.Fatalf("load in a: %v", err)
	}
	if got := first.Pools[0].Title; got != "AAAA pool" {
		t.Fatalf("dir a title = %q, want AAAA pool", got)
	}

	t.Chdir(filepath.Join(root, "b"))
	second, err := LoadWithCache(ctx, "pools.toml", cache, nil)
	if err != nil {
		t.Fatalf("load in b: %v", err)
	}
	if got := second.Pools[0].Title; got != "BBBB pool" {
		t.Fatalf("dir b title = %q, want BBBB pool (hits=%d)", got, second.CacheHits)
	}
	if second.CacheHits != 0 || second.Reparsed != 1 {
		t.Fatalf("dir b hits=%d reparsed=%d, want 0/1", second.CacheHits, second.Reparsed)
	}

	// The snapshot for a survives the load in b.
	t.Chdir(filepath.Join(root, "a"))
	again, err := LoadWithCache(ctx, "pools.toml", cache, nil)
	if err != nil {
		t.Fatal(err)
	}
	if again.CacheHits != 1 || again.Pools[0].Title != "AAAA pool" {
		t.Fatalf("reload in a = %q (hits=%d), want cached AAAA pool", again.Pools[0].Title, again.CacheHits)
	}
}

func TestLoadWithCacheErrors(t *testing.T) {
	cache := openCache(t)
	ctx := context.Background()

	if _, err := LoadWithCache(ctx, filepath.Join(t.TempDir(), "missing"), cache, nil); err == nil {
		t.Fatal("expected error for missing path")
	}

	dir := t.TempDir()
	writeCatalog(t, filepath.Join(dir, "a.toml"), catalogA)
	writeCatalog(t, filepath.Join(dir, "b.toml"), catalogA)
	if _, err := LoadWithCache(ctx, dir, cache, nil); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestLoadSeed(t *testing.T) {
	r, err := Load(context.Background(), source.SeedSource{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.SourceName != "built-in" || len(r.Pools) != 6 {
		t.Fatalf("Load = %s with %d pools", r.SourceName, len(r.Pools))
	}
}

func TestCachePathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	if got, want := CachePath(), filepath.Join(dir, "givepool", "pools.db"); got != want {
		t.Fatalf("CachePath() = %q, want %q", got, want)
	}
}
