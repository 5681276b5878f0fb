package decimal

import (
	"errors"
	"testing"
)

func TestShiftRight(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		places   int
		expected string
	}{
		{
			name:     "leading and trailing zeros",
			value:    "0167.680",
			places:   2,
			expected: "16768",
		},
		{
			name:     "no decimal point",
			value:    "30",
			places:   3,
			expected: "30000",
		},
		{
			name:     "negative fraction",
			value:    "-0.6",
			places:   2,
			expected: "-60",
		},
		{
			name:     "point stays inside the digits",
			value:    "1.2345",
			places:   2,
			expected: "123.45",
		},
		{
			name:     "fraction is exactly zero",
			value:    "42.0",
			places:   2,
			expected: "4200",
		},
		{
			name:     "point lands exactly at the end",
			value:    "1.25",
			places:   2,
			expected: "125",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShiftRight(tt.value, tt.places)
			if err != nil {
				t.Fatalf("ShiftRight(%q, %d) unexpected error: %v", tt.value, tt.places, err)
			}
			if got != tt.expected {
				t.Errorf("ShiftRight(%q, %d) expected %q, got %q", tt.value, tt.places, tt.expected, got)
			}
		})
	}
}

func TestShiftLeft(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		places   int
		expected string
	}{
		{
			name:     "whole number",
			value:    "16768",
			places:   3,
			expected: "16.768",
		},
		{
			name:     "negative whole number",
			value:    "-30",
			places:   3,
			expected: "-0.03",
		},
		{
			name:     "becomes purely fractional",
			value:    "5",
			places:   3,
			expected: "0.005",
		},
		{
			name:     "point moves within existing digits",
			value:    "16.768",
			places:   2,
			expected: "0.16768",
		},
		{
			name:     "trailing zeros disappear",
			value:    "1200",
			places:   2,
			expected: "12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShiftLeft(tt.value, tt.places)
			if err != nil {
				t.Fatalf("ShiftLeft(%q, %d) unexpected error: %v", tt.value, tt.places, err)
			}
			if got != tt.expected {
				t.Errorf("ShiftLeft(%q, %d) expected %q, got %q", tt.value, tt.places, tt.expected, got)
			}
		})
	}
}

func TestShiftRoundTrip(t *testing.T) {
	values := []string{"167.68", "0.16768", "5", "-30", "-0.6", "10.505", "0.005"}
	for _, v := range values {
		for _, places := range []int{2, 3} {
			shifted, err := ShiftRight(v, places)
			if err != nil {
				t.Fatalf("ShiftRight(%q, %d) unexpected error: %v", v, places, err)
			}
			back, err := ShiftLeft(shifted, places)
			if err != nil {
				t.Fatalf("ShiftLeft(%q, %d) unexpected error: %v", shifted, places, err)
			}
			normalized, err := Normalize(v)
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", v, err)
			}
			if back != normalized {
				t.Errorf("round trip of %q with %d places expected %q, got %q", v, places, normalized, back)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"0167.680", "167.68"},
		{"000", "0"},
		{"-0.500", "-0.5"},
		{"+7", "7"},
		{"42.", "42"},
		{".5", "0.5"},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.value)
		if err != nil {
			t.Fatalf("Normalize(%q) unexpected error: %v", tt.value, err)
		}
		if got != tt.expected {
			t.Errorf("Normalize(%q) expected %q, got %q", tt.value, tt.expected, got)
		}
	}
}

func TestInvalidValues(t *testing.T) {
	invalid := []string{"", "-", ".", "1.2.3", "1,5", "abc", "1e3", " 5"}
	for _, v := range invalid {
		if Valid(v) {
			t.Errorf("Valid(%q) expected false", v)
		}
		if _, err := ShiftRight(v, 2); !errors.Is(err, ErrInvalidDecimal) {
			t.Errorf("ShiftRight(%q) expected ErrInvalidDecimal, got %v", v, err)
		}
	}

	valid := []string{"5", "-5", "+5", "0.5", "167.68"}
	for _, v := range valid {
		if !Valid(v) {
			t.Errorf("Valid(%q) expected true", v)
		}
	}
}
