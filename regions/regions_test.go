package regions

import (
	"errors"
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		region   string
		timezone string
	}{
		{"Oslo", "Europe/Oslo"},
		{"NO3", "Europe/Oslo"},
		{"SE3", "Europe/Stockholm"},
		{"FI", "Europe/Helsinki"},
		{"DE-LU", "Europe/Luxembourg"},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			loc, err := Resolve(tt.region)
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.region, err)
			}
			if loc.String() != tt.timezone {
				t.Errorf("Resolve(%q) expected %s, got %s", tt.region, tt.timezone, loc)
			}
		})
	}
}

func TestResolveSystemRegion(t *testing.T) {
	// SYS has no geography of its own and must not fail.
	loc, err := Resolve(System)
	if err != nil {
		t.Fatalf("Resolve(SYS) unexpected error: %v", err)
	}
	if loc.String() != "Europe/Oslo" {
		t.Errorf("Resolve(SYS) expected the default market timezone, got %s", loc)
	}
}

func TestResolveUnsupported(t *testing.T) {
	_, err := Resolve("XX")
	if !errors.Is(err, ErrUnsupportedRegion) {
		t.Errorf("Resolve(XX) expected ErrUnsupportedRegion, got %v", err)
	}
}

func TestSupported(t *testing.T) {
	codes := Supported()
	if len(codes) == 0 {
		t.Fatal("Supported() returned no regions")
	}
	for _, code := range codes {
		if !IsSupported(code) {
			t.Errorf("IsSupported(%q) expected true", code)
		}
		if _, err := Resolve(code); err != nil {
			t.Errorf("Resolve(%q) unexpected error: %v", code, err)
		}
	}
	if IsSupported("XX") {
		t.Error("IsSupported(XX) expected false")
	}
}

func TestResolvedZonesObserveDst(t *testing.T) {
	loc, err := Resolve("SE3")
	if err != nil {
		t.Fatal(err)
	}

	winter := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC).In(loc)
	if _, offset := winter.Zone(); offset != 3600 {
		t.Errorf("winter offset expected 3600 seconds, got %d", offset)
	}

	summer := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC).In(loc)
	if _, offset := summer.Zone(); offset != 7200 {
		t.Errorf("summer offset expected 7200 seconds, got %d", offset)
	}
}
