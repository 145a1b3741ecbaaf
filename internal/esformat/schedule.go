package esformat

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
)

// ---------------------------------------------------------------------------
// Payment schedule
// ---------------------------------------------------------------------------

// Rent is payable within the first days of each month; the window closes on
// this calendar day, extended past weekends and holidays.
const rentDueDay = 5

// spainHolidays are the national holidays observed everywhere in Spain.
// Regional holidays are not modelled; a due date landing on one merely
// shifts a day late, which is acceptable for an informational field.
var spainHolidays = []*cal.Holiday{
	aa.NewYear.Clone(&cal.Holiday{Name: "Año Nuevo", Type: cal.ObservancePublic}),
	aa.Epiphany.Clone(&cal.Holiday{Name: "Día de Reyes", Type: cal.ObservancePublic}),
	aa.GoodFriday.Clone(&cal.Holiday{Name: "Viernes Santo", Type: cal.ObservancePublic}),
	aa.WorkersDay.Clone(&cal.Holiday{Name: "Fiesta del Trabajo", Type: cal.ObservancePublic}),
	aa.AssumptionOfMary.Clone(&cal.Holiday{Name: "Asunción de la Virgen", Type: cal.ObservancePublic}),
	{Name: "Fiesta Nacional de España", Type: cal.ObservancePublic,
		Month: time.October, Day: 12, Func: cal.CalcDayOfMonth},
	aa.AllSaintsDay.Clone(&cal.Holiday{Name: "Todos los Santos", Type: cal.ObservancePublic}),
	{Name: "Día de la Constitución", Type: cal.ObservancePublic,
		Month: time.December, Day: 6, Func: cal.CalcDayOfMonth},
	aa.ImmaculateConception.Clone(&cal.Holiday{Name: "Inmaculada Concepción", Type: cal.ObservancePublic}),
	aa.ChristmasDay.Clone(&cal.Holiday{Name: "Navidad", Type: cal.ObservancePublic}),
}

// BusinessCalendar returns a calendar with Spain's national holidays.
func BusinessCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.Name = "España"
	c.Description = "Días laborables con festivos nacionales"
	c.AddHoliday(spainHolidays...)
	return c
}

// PaymentDue returns the date the rent for the given month must be paid
// by: the 5th, moved forward to the next workday when it falls on a
// weekend or holiday.
func PaymentDue(year int, month time.Month) time.Time {
	c := BusinessCalendar()
	due := time.Date(year, month, rentDueDay, 0, 0, 0, 0, time.UTC)
	for !c.IsWorkday(due) {
		due = due.AddDate(0, 0, 1)
	}
	return due
}
