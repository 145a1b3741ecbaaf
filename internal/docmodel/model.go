// Package docmodel holds the plain data records consumed by the document
// composers. Records arrive as JSON assembled by the surrounding
// application; loading normalizes duck-typed photo references and applies
// the documented defaults so downstream code never branches on shape.
package docmodel

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Defaults
// ---------------------------------------------------------------------------

const (
	// DefaultOwnerName is used when a contract names no landlord.
	DefaultOwnerName = "Propietario"

	// DefaultOwnerContact is shown in listing footers without a contact.
	DefaultOwnerContact = "WhatsApp preferiblemente"

	// DefaultExpensesNote is shown under the rent amount when the listing
	// carries no expenses note.
	DefaultExpensesNote = "+ gastos"

	// DefaultContractMonths applies when neither a duration nor a usable
	// date range is given.
	DefaultContractMonths = 12
)

// ---------------------------------------------------------------------------
// Shared value types
// ---------------------------------------------------------------------------

// Date accepts bare ISO dates ("2024-01-01") as well as full RFC 3339
// timestamps when unmarshalled from JSON.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// PhotoRef is a normalized photo reference. The upstream application emits
// either a bare URL string or an object with a "url" field; both decode to
// the same value here.
type PhotoRef struct {
	URL string `json:"url"`
}

func (p *PhotoRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		p.URL = s
		return nil
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("invalid photo reference: %w", err)
	}
	p.URL = obj.URL
	return nil
}

// CommonRoom is a shared-use space advertised alongside the private room.
type CommonRoom struct {
	Name   string     `json:"name"`
	Photos []PhotoRef `json:"photos"`
}

// ---------------------------------------------------------------------------
// Contract
// ---------------------------------------------------------------------------

// ContractData carries everything a rental contract render needs. It is
// constructed immediately before rendering and discarded afterwards.
type ContractData struct {
	TenantName           string `json:"tenantName"`
	TenantDNI            string `json:"tenantDni"`
	TenantEmail          string `json:"tenantEmail"`
	TenantPhone          string `json:"tenantPhone"`
	TenantCurrentAddress string `json:"tenantCurrentAddress"`

	PropertyName    string `json:"propertyName"`
	PropertyAddress string `json:"propertyAddress"`
	RoomName        string `json:"roomName"`

	MonthlyRent   float64 `json:"monthlyRent"`
	DepositAmount float64 `json:"depositAmount"`

	StartDate      Date   `json:"startDate"`
	EndDate        Date   `json:"endDate"`
	ContractMonths int    `json:"contractMonths"`
	ContractNotes  string `json:"contractNotes"`

	OwnerName string `json:"ownerName"`
	OwnerDNI  string `json:"ownerDni"`
}

// Validate rejects data that would produce an incorrect legal document.
// Missing optional text fields are not errors; they degrade to defaults.
func (c *ContractData) Validate() error {
	if c.MonthlyRent < 0 {
		return fmt.Errorf("monthly rent must not be negative, got %.2f", c.MonthlyRent)
	}
	if c.DepositAmount < 0 {
		return fmt.Errorf("deposit must not be negative, got %.2f", c.DepositAmount)
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && !c.StartDate.Before(c.EndDate.Time) {
		return fmt.Errorf("start date %s is not before end date %s",
			c.StartDate.Format("2006-01-02"), c.EndDate.Format("2006-01-02"))
	}
	return nil
}

// Owner returns the landlord name, defaulted.
func (c *ContractData) Owner() string {
	if c.OwnerName == "" {
		return DefaultOwnerName
	}
	return c.OwnerName
}

// TenantAddress returns the tenant's current address, falling back to the
// property address when the form left it blank.
func (c *ContractData) TenantAddress() string {
	if c.TenantCurrentAddress != "" {
		return c.TenantCurrentAddress
	}
	return c.PropertyAddress
}

// Months returns the contract duration, deriving it from the date range
// when not given explicitly.
func (c *ContractData) Months() int {
	if c.ContractMonths > 0 {
		return c.ContractMonths
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() {
		months := 0
		for t := c.StartDate.AddDate(0, 1, 0); !t.After(c.EndDate.Time); t = t.AddDate(0, 1, 0) {
			months++
		}
		if months > 0 {
			return months
		}
	}
	return DefaultContractMonths
}

// TenantFullInfo joins the tenant identity fields that are present into a
// single display string ("Nombre, DNI: …, Email: …, Teléfono: …").
func (c *ContractData) TenantFullInfo() string {
	parts := make([]string, 0, 4)
	if c.TenantName != "" {
		parts = append(parts, c.TenantName)
	}
	if c.TenantDNI != "" {
		parts = append(parts, "DNI: "+c.TenantDNI)
	}
	if c.TenantEmail != "" {
		parts = append(parts, "Email: "+c.TenantEmail)
	}
	if c.TenantPhone != "" {
		parts = append(parts, "Teléfono: "+c.TenantPhone)
	}
	return strings.Join(parts, ", ")
}

// ---------------------------------------------------------------------------
// Listing
// ---------------------------------------------------------------------------

// RoomListingData carries everything a listing flyer render needs.
// Photos[0], when present, is the hero image; the slice order is the
// display order.
type RoomListingData struct {
	RoomName        string `json:"roomName"`
	PropertyName    string `json:"propertyName"`
	PropertyAddress string `json:"propertyAddress"`

	MonthlyRent float64 `json:"monthlyRent"`
	SizeSqm     float64 `json:"sizeSqm"`
	Description string  `json:"description"`

	Photos      []PhotoRef   `json:"photos"`
	CommonRooms []CommonRoom `json:"commonRooms"`

	DepositAmount *float64 `json:"depositAmount"`
	Expenses      string   `json:"expenses"`
	OwnerContact  string   `json:"ownerContact"`
}

// Validate rejects data that would produce a misleading flyer.
func (l *RoomListingData) Validate() error {
	if l.MonthlyRent < 0 {
		return fmt.Errorf("monthly rent must not be negative, got %.2f", l.MonthlyRent)
	}
	if l.DepositAmount != nil && *l.DepositAmount < 0 {
		return fmt.Errorf("deposit must not be negative, got %.2f", *l.DepositAmount)
	}
	return nil
}

// Contact returns the owner contact line, defaulted.
func (l *RoomListingData) Contact() string {
	if l.OwnerContact == "" {
		return DefaultOwnerContact
	}
	return l.OwnerContact
}

// ExpensesNote returns the expenses note, defaulted.
func (l *RoomListingData) ExpensesNote() string {
	if l.Expenses == "" {
		return DefaultExpensesNote
	}
	return l.Expenses
}

// LocationShort returns the leading segment of the property address, used
// for the flyer subtitle and the generated filename.
func (l *RoomListingData) LocationShort() string {
	if l.PropertyAddress == "" {
		return ""
	}
	return strings.TrimSpace(strings.SplitN(l.PropertyAddress, ",", 2)[0])
}
