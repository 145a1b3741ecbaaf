package esformat

import "testing"

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{"zero", 0, "cero"},
		{"single digit", 7, "siete"},
		{"ten", 10, "diez"},
		{"teen", 15, "quince"},
		{"teen with accent", 16, "dieciséis"},
		{"round ten", 20, "veinte"},
		{"twenty one keeps joined form", 21, "veinte y uno"},
		{"twenty five keeps joined form", 25, "veinte y cinco"},
		{"thirty five", 35, "treinta y cinco"},
		{"round hundred", 100, "ciento"},
		{"hundred and rest", 101, "ciento uno"},
		{"typical rent", 550, "quinientos cincuenta"},
		{"rent with units", 675, "seiscientos setenta y cinco"},
		{"max supported", 999, "novecientos noventa y nueve"},
		{"thousand falls back to numeral", 1000, "1000"},
		{"large falls back to numeral", 1250, "1250"},
		{"negative falls back to numeral", -5, "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NumberToWords(tt.n)
			if got != tt.expected {
				t.Errorf("NumberToWords(%d) = %q, want %q", tt.n, got, tt.expected)
			}
		})
	}
}
