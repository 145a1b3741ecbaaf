package esformat

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestFormatDateLong(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{"single digit day", date(2024, 1, 2), "2 de enero de 2024"},
		{"double digit day", date(2025, 9, 15), "15 de septiembre de 2025"},
		{"december", date(2026, 12, 31), "31 de diciembre de 2026"},
		{"zero date", time.Time{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDateLong(tt.t)
			if got != tt.expected {
				t.Errorf("FormatDateLong(%v) = %q, want %q", tt.t, got, tt.expected)
			}
		})
	}
}

func TestFormatDateShort(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{"january", date(2024, 1, 2), "2 ene 2024"},
		{"august", date(2026, 8, 28), "28 ago 2026"},
		{"zero date", time.Time{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDateShort(tt.t)
			if got != tt.expected {
				t.Errorf("FormatDateShort(%v) = %q, want %q", tt.t, got, tt.expected)
			}
		})
	}
}

func TestFormatDateNumeric(t *testing.T) {
	got := FormatDateNumeric(date(2024, 3, 5))
	if got != "05/03/2024" {
		t.Errorf("FormatDateNumeric = %q, want %q", got, "05/03/2024")
	}
	if got := FormatDateNumeric(time.Time{}); got != "" {
		t.Errorf("FormatDateNumeric(zero) = %q, want empty", got)
	}
}

func TestFormatEuros(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"whole amount", 550, "550,00€"},
		{"decimal amount", 30.60, "30,60€"},
		{"thousands separator", 1234.56, "1.234,56€"},
		{"zero", 0, "0,00€"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatEuros(tt.amount)
			if got != tt.expected {
				t.Errorf("FormatEuros(%v) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestWholeEuros(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"whole", 550, "550€"},
		{"truncates decimals", 550.90, "550€"},
		{"zero", 0, "0€"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WholeEuros(tt.amount)
			if got != tt.expected {
				t.Errorf("WholeEuros(%v) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}
