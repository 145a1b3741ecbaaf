// Package docx generates rental contracts by substituting named
// placeholders into a pre-existing DOCX template. A DOCX file is a zip
// archive of XML parts; placeholders look like {tenantName} and live in
// the document body, headers and footers.
package docx

import (
	"fmt"
	"time"

	"alquilerdocs/internal/docmodel"
	"alquilerdocs/internal/esformat"
)

// ---------------------------------------------------------------------------
// Template values
// ---------------------------------------------------------------------------

// Values builds the placeholder map for a contract template. Every key
// must match a {placeholder} in the DOCX; missing optional fields become
// empty strings or documented defaults so the template always renders
// complete. The clock is injected so renders are reproducible.
func Values(c *docmodel.ContractData, now time.Time) map[string]string {
	rent := float64(int(c.MonthlyRent))
	deposit := float64(int(c.DepositAmount))
	due := esformat.PaymentDue(now.Year(), now.Month())

	return map[string]string{
		"tenantName":           c.TenantName,
		"tenantDni":            c.TenantDNI,
		"tenantEmail":          c.TenantEmail,
		"tenantPhone":          c.TenantPhone,
		"tenantCurrentAddress": c.TenantAddress(),
		"tenantFullInfo":       c.TenantFullInfo(),

		"propertyName":    c.PropertyName,
		"propertyAddress": c.PropertyAddress,
		"roomName":        c.RoomName,

		"monthlyRent":        fmt.Sprintf("%.2f", c.MonthlyRent),
		"monthlyRentWords":   esformat.NumberToWords(int(rent)),
		"depositAmount":      fmt.Sprintf("%.2f", c.DepositAmount),
		"depositAmountWords": esformat.NumberToWords(int(deposit)),

		"startDate":      esformat.FormatDateLong(c.StartDate.Time),
		"startDateShort": esformat.FormatDateShort(c.StartDate.Time),
		"endDate":        esformat.FormatDateLong(c.EndDate.Time),
		"endDateShort":   esformat.FormatDateShort(c.EndDate.Time),
		"contractMonths": fmt.Sprintf("%d", c.Months()),
		"contractNotes":  c.ContractNotes,

		"ownerName": c.Owner(),
		"ownerDni":  c.OwnerDNI,

		"contractDate":      esformat.FormatDateLong(now),
		"contractDateShort": esformat.FormatDateShort(now),
		"firstPaymentDue":   esformat.FormatDateLong(due),
	}
}
