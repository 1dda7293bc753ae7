package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/givepool/givepool/internal/model"
)

const sampleCatalog = `
[[pool]]
id = "a1"
title = "School Library"
description = "Books for a rural school."
category = "Education"
status = "Active"
target = 1000
raised = 250
color = "purple"

[[pool]]
id = "a2"
title = "River Restoration"
description = "Replanting river banks."
category = "Environment"
status = "Completed"
target = 5000
raised = 5000
color = "teal"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func scanOne(t *testing.T, path string) DiscoveredFile {
	t.Helper()
	files, err := ScanPath(path)
	if err != nil || len(files) != 1 {
		t.Fatalf("ScanPath(%s) = %v, %v", path, files, err)
	}
	return files[0]
}

func TestParseFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pools.toml", sampleCatalog)

	pr := ParseFile(scanOne(t, path))
	if pr.Err != nil {
		t.Fatalf("ParseFile: %v", pr.Err)
	}

	want := []model.Pool{
		{ID: "a1", Title: "School Library", Description: "Books for a rural school.",
			Category: model.CategoryEducation, Status: model.StatusActive, Target: 1000, Raised: 250, Color: "purple"},
		{ID: "a2", Title: "River Restoration", Description: "Replanting river banks.",
			Category: model.CategoryEnvironment, Status: model.StatusCompleted, Target: 5000, Raised: 5000, Color: "teal"},
	}
	if diff := cmp.Diff(want, pr.Pools); diff != "" {
		t.Fatalf("pools mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFileRejectsInvalidPools(t *testing.T) {
	bad := strings.Replace(sampleCatalog, `category = "Education"`, `category = "Sports"`, 1)
	path := writeFile(t, t.TempDir(), "bad.toml", bad)

	pr := ParseFile(scanOne(t, path))
	if pr.Err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(pr.Err.Error(), `pool "a1"`) || !strings.Contains(pr.Err.Error(), "Sports") {
		t.Fatalf("error %q should name the pool and the bad category", pr.Err)
	}
	if pr.Pools != nil {
		t.Fatal("invalid file should yield no pools")
	}
}

func TestParseFileRejectsNonFiniteAmounts(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		message string
	}{
		{"raised nan", "raised = 250", "raised = nan", "raised must be"},
		{"raised inf", "raised = 250", "raised = inf", "raised must be"},
		{"target nan", "target = 1000", "target = nan", "target must be"},
		{"target inf", "target = 1000", "target = +inf", "target must be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := strings.Replace(sampleCatalog, tt.from, tt.to, 1)
			path := writeFile(t, t.TempDir(), "bad.toml", bad)

			pr := ParseFile(scanOne(t, path))
			if pr.Err == nil {
				t.Fatalf("ParseFile accepted %q", tt.to)
			}
			if !strings.Contains(pr.Err.Error(), tt.message) || !strings.Contains(pr.Err.Error(), `pool "a1"`) {
				t.Fatalf("error %q should name pool a1 and contain %q", pr.Err, tt.message)
			}
			if pr.Pools != nil {
				t.Fatal("invalid file should yield no pools")
			}
		})
	}
}

func TestParseFileSyntaxError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.toml", "[[pool]\nid = ")
	if pr := ParseFile(scanOne(t, path)); pr.Err == nil {
		t.Fatal("expected parse error")
	}
}

func TestScanPathDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.toml", "")
	writeFile(t, dir, "a.toml", "")
	writeFile(t, dir, "notes.txt", "")
	if err := os.Mkdir(filepath.Join(dir, "sub.toml"), 0o750); err != nil {
		t.Fatal(err)
	}

	files, err := ScanPath(dir)
	if err != nil {
		t.Fatalf("ScanPath: %v", err)
	}
	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f.Path))
	}
	if diff := cmp.Diff([]string{"a.toml", "b.toml"}, names); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestScanPathMissing(t *testing.T) {
	files, err := ScanPath(filepath.Join(t.TempDir(), "nope"))
	if err != nil || files != nil {
		t.Fatalf("ScanPath(missing) = %v, %v, want nil, nil", files, err)
	}
}

func TestFileSourceAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.toml", sampleCatalog)
	writeFile(t, dir, "2.toml", `
[[pool]]
id = "b1"
title = "Night Shelter"
category = "Community"
status = "Active"
target = 800
raised = 0
`)

	pools, err := FileSource{Path: dir}.Pools(context.Background())
	if err != nil {
		t.Fatalf("Pools: %v", err)
	}
	var got []string
	for _, p := range pools {
		got = append(got, p.ID)
	}
	if diff := cmp.Diff([]string{"a1", "a2", "b1"}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestFileSourceDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.toml", sampleCatalog)
	writeFile(t, dir, "2.toml", sampleCatalog)

	_, err := FileSource{Path: dir}.Pools(context.Background())
	if err == nil || !strings.Contains(err.Error(), `duplicate pool id "a1"`) {
		t.Fatalf("Pools() = %v, want duplicate id error", err)
	}
}

func TestFileSourceEmpty(t *testing.T) {
	_, err := FileSource{Path: t.TempDir()}.Pools(context.Background())
	if err == nil || !strings.Contains(err.Error(), "no pool catalogs found") {
		t.Fatalf("Pools() = %v, want not-found error", err)
	}
}

func TestFileSourceCanceled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pools.toml", sampleCatalog)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (FileSource{Path: path}).Pools(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestResolve(t *testing.T) {
	if _, ok := Resolve("").(SeedSource); !ok {
		t.Fatal("Resolve(\"\") should return the seed")
	}
	if fs, ok := Resolve("/tmp/x.toml").(FileSource); !ok || fs.Path != "/tmp/x.toml" {
		t.Fatalf("Resolve(path) = %#v", Resolve("/tmp/x.toml"))
	}
}

func TestSeedIsValidAndIsolated(t *testing.T) {
	pools := Seed()
	if len(pools) != 6 {
		t.Fatalf("len(Seed()) = %d, want 6", len(pools))
	}
	for _, p := range pools {
		if err := p.Validate(); err != nil {
			t.Errorf("seed pool invalid: %v", err)
		}
	}
	if err := CheckUnique(pools); err != nil {
		t.Fatal(err)
	}

	pools[0].Title = "mutated"
	if Seed()[0].Title == "mutated" {
		t.Fatal("Seed() returned shared backing storage")
	}
}
