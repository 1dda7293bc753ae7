package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/givepool/givepool/internal/donation"
	"github.com/givepool/givepool/internal/model"
)

func TestLoadFromMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	amount := 0.0002
	decimals := 7

	cfg := DefaultConfig()
	cfg.General.PoolsFile = "/srv/pools.toml"
	cfg.General.DefaultAsset = "USDC"
	cfg.Donation.QuickAmounts = []string{"5", "25"}
	cfg.Donation.Fees = map[string]FeeOverride{"XLM": {Amount: &amount, Decimals: &decimals}}
	cfg.Server.Addr = ":9000"
	cfg.Appearance.Theme = "tokyo-night"

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[appearance]\ntheme = \"catppuccin-mocha\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Appearance.Theme != "catppuccin-mocha" {
		t.Fatalf("Theme = %q, want catppuccin-mocha", cfg.Appearance.Theme)
	}
	if cfg.Server.Addr != DefaultConfig().Server.Addr || cfg.General.DefaultAsset != "XLM" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := Path(), filepath.Join(dir, "givepool", "config.toml"); got != want {
		t.Fatalf("Path() = %q, want %q", got, want)
	}
	if Exists() {
		t.Fatal("Exists() = true before Save")
	}
	if err := Save(DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}
}

func TestGetPoolsFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.PoolsFile = "/from/config.toml"

	t.Setenv(PoolsFileEnv, "")
	if got := GetPoolsFile(cfg); got != "/from/config.toml" {
		t.Fatalf("GetPoolsFile = %q, want config value", got)
	}
	t.Setenv(PoolsFileEnv, "/from/env.toml")
	if got := GetPoolsFile(cfg); got != "/from/env.toml" {
		t.Fatalf("GetPoolsFile = %q, want env value", got)
	}
}

func TestFees(t *testing.T) {
	amount := 0.5
	negative := -1.0
	decimals := 3
	tooMany := 40
	covered := true

	cfg := DefaultConfig()
	cfg.Donation.Fees = map[string]FeeOverride{
		"xlm":  {Amount: &amount, Decimals: &decimals, Covered: &covered},
		"USDC": {Amount: &negative, Decimals: &tooMany},
		"BTC":  {Amount: &amount},
	}
	fees := Fees(cfg)

	want := donation.FeeSchedule{
		model.AssetXLM:  {Amount: 0.5, Decimals: 3, Covered: true},
		model.AssetUSDC: donation.DefaultFees()[model.AssetUSDC],
	}
	if diff := cmp.Diff(want, fees); diff != "" {
		t.Fatalf("fees mismatch (-want +got):\n%s", diff)
	}
}

func TestQuickAmounts(t *testing.T) {
	cfg := DefaultConfig()
	if diff := cmp.Diff(donation.QuickAmounts, QuickAmounts(cfg)); diff != "" {
		t.Fatalf("default presets mismatch (-want +got):\n%s", diff)
	}

	cfg.Donation.QuickAmounts = []string{"5", "x", "-1", "20"}
	if diff := cmp.Diff([]string{"5", "20"}, QuickAmounts(cfg)); diff != "" {
		t.Fatalf("filtered presets mismatch (-want +got):\n%s", diff)
	}

	cfg.Donation.QuickAmounts = []string{"0"}
	if diff := cmp.Diff(donation.QuickAmounts, QuickAmounts(cfg)); diff != "" {
		t.Fatalf("fallback presets mismatch (-want +got):\n%s", diff)
	}
}

func TestQuickAmountsFallbackIsACopy(t *testing.T) {
	want := append([]string(nil), donation.QuickAmounts...)

	got := QuickAmounts(Config{})
	got[0] = "999"
	_ = append(got[:1], "1")

	if diff := cmp.Diff(want, donation.QuickAmounts); diff != "" {
		t.Fatalf("built-in presets changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, QuickAmounts(Config{})); diff != "" {
		t.Fatalf("second call presets mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultAsset(t *testing.T) {
	tests := []struct {
		in   string
		want model.Asset
	}{
		{"USDC", model.AssetUSDC},
		{"XLM", model.AssetXLM},
		{"", model.AssetXLM},
		{"DOGE", model.AssetXLM},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.General.DefaultAsset = tt.in
		if got := DefaultAsset(cfg); got != tt.want {
			t.Errorf("DefaultAsset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
