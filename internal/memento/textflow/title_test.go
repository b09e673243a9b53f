package textflow

import (
	"strings"
	"testing"
)

func TestFitTitleSizeShrinks(t *testing.T) {
	m := Default()
	long := strings.Repeat("Warehouse ", 8)
	size := FitTitleSize(m, FamilySans, long, 400, 64, 28)
	if size >= 64 {
		t.Fatalf("expected shrink below base, got %v", size)
	}
	if size < 28 {
		t.Fatalf("size fell below floor: %v", size)
	}
}

func TestFitTitleSizeNeverBelowFloor(t *testing.T) {
	m := Default()
	long := strings.Repeat("An Extremely Long Party Name ", 20)
	size := FitTitleSize(m, FamilySans, long, 100, 64, 28)
	if size != 28 {
		t.Fatalf("expected floor size even on overflow, got %v", size)
	}
}

func TestFitTitleSizeKeepsBaseWhenFitting(t *testing.T) {
	m := Default()
	size := FitTitleSize(m, FamilySans, "Hi", 2000, 64, 28)
	if size != 64 {
		t.Fatalf("short text should keep base size, got %v", size)
	}
}
