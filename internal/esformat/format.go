package esformat

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ---------------------------------------------------------------------------
// Dates
// ---------------------------------------------------------------------------

var monthsLong = [...]string{"enero", "febrero", "marzo", "abril", "mayo",
	"junio", "julio", "agosto", "septiembre", "octubre", "noviembre",
	"diciembre"}

var monthsShort = [...]string{"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic"}

// FormatDateLong writes a date the way es-ES long form does, e.g.
// "2 de enero de 2024". Zero dates format as the empty string.
func FormatDateLong(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthsLong[t.Month()-1], t.Year())
}

// FormatDateShort writes a date in es-ES short form, e.g. "2 ene 2024".
func FormatDateShort(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), monthsShort[t.Month()-1], t.Year())
}

// FormatDateNumeric writes DD/MM/YYYY, the form used inside clause text.
func FormatDateNumeric(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), t.Year())
}

// ---------------------------------------------------------------------------
// Currency
// ---------------------------------------------------------------------------

var esPrinter = message.NewPrinter(language.Spanish)

// FormatEuros writes an amount with two decimals and Spanish separators,
// e.g. "1.234,56€".
func FormatEuros(v float64) string {
	return esPrinter.Sprintf("%.2f", v) + "€"
}

// WholeEuros writes an amount truncated to whole euros, e.g. "550€". This
// is the form used in info boxes and price badges.
func WholeEuros(v float64) string {
	return fmt.Sprintf("%d€", int(v))
}
