// Package esformat renders numbers, dates and currency amounts the way
// Spanish rental paperwork writes them.
package esformat

import "strconv"

// ---------------------------------------------------------------------------
// Number words
// ---------------------------------------------------------------------------

var (
	ones = [...]string{"", "uno", "dos", "tres", "cuatro", "cinco",
		"seis", "siete", "ocho", "nueve"}
	teens = [...]string{"diez", "once", "doce", "trece", "catorce", "quince",
		"dieciséis", "diecisiete", "dieciocho", "diecinueve"}
	tens = [...]string{"", "", "veinte", "treinta", "cuarenta", "cincuenta",
		"sesenta", "setenta", "ochenta", "noventa"}
	hundreds = [...]string{"", "ciento", "doscientos", "trescientos",
		"cuatrocientos", "quinientos", "seiscientos", "setecientos",
		"ochocientos", "novecientos"}
)

// NumberToWords spells out n in Spanish for 0-999. Larger (or negative)
// values fall back to the plain numeral: contract amounts are truncated to
// whole euros and stay below four digits in practice.
//
// 21-29 are deliberately produced as "veinte y uno" etc. rather than the
// contracted "veintiuno": issued contracts carry the joined form and newly
// generated documents must compare equal to them.
func NumberToWords(n int) string {
	switch {
	case n < 0 || n >= 1000:
		return strconv.Itoa(n)
	case n == 0:
		return "cero"
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		ten, one := n/10, n%10
		if one == 0 {
			return tens[ten]
		}
		return tens[ten] + " y " + ones[one]
	default:
		hundred, rest := n/100, n%100
		if rest == 0 {
			return hundreds[hundred]
		}
		return hundreds[hundred] + " " + NumberToWords(rest)
	}
}
