package seed

import "testing"

func TestLoadDefaultFixture(t *testing.T) {
	f, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := len(f.Products); got != 3 {
		t.Fatalf("products = %d, want 3", got)
	}
	if got := len(f.Warehouses); got != 2 {
		t.Fatalf("warehouses = %d, want 2", got)
	}
	if got := len(f.Policies); got != 6 {
		t.Fatalf("policies = %d, want 6", got)
	}
	if got := len(f.Inventory); got != 6 {
		t.Fatalf("inventory rows = %d, want 6", got)
	}
	if f.DemandHistory.Weeks != 8 {
		t.Fatalf("demand history weeks = %d, want 8", f.DemandHistory.Weeks)
	}
	if got := len(f.DemandHistory.Pairs); got != 6 {
		t.Fatalf("demand history pairs = %d, want 6", got)
	}
	if f.Receipts[0].SourceType != "PO" {
		t.Fatalf("receipt source_type = %q, want PO", f.Receipts[0].SourceType)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/fixture.yaml"); err == nil {
		t.Fatal("expected error for missing fixture file")
	}
}
