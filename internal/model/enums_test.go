package model

import "testing"

func TestCategoryIndexMatchesOrder(t *testing.T) {
	for i, c := range Categories() {
		if c.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", c, c.Index(), i)
		}
		if !c.Valid() {
			t.Errorf("%s.Valid() = false", c)
		}
	}
	if Category("Sports").Valid() {
		t.Error("Sports should not be valid")
	}
}

func TestStatusIndexMatchesOrder(t *testing.T) {
	for i, s := range Statuses() {
		if s.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", s, s.Index(), i)
		}
	}
	if Status("Paused").Index() != -1 {
		t.Error("Paused should have index -1")
	}
}

func TestParseEnums(t *testing.T) {
	if c, err := ParseCategory(" environment "); err != nil || c != CategoryEnvironment {
		t.Fatalf("ParseCategory = %q, %v", c, err)
	}
	if _, err := ParseCategory("Sports"); err == nil {
		t.Fatal("ParseCategory(Sports) = nil error")
	}
	if s, err := ParseStatus("COMPLETED"); err != nil || s != StatusCompleted {
		t.Fatalf("ParseStatus = %q, %v", s, err)
	}
	if a, err := ParseAsset("usdc"); err != nil || a != AssetUSDC {
		t.Fatalf("ParseAsset = %q, %v", a, err)
	}
	if _, err := ParseAsset("BTC"); err == nil {
		t.Fatal("ParseAsset(BTC) = nil error")
	}
}
