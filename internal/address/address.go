// Package address models address records loaded from a JSON document and
// exposes per-record validation and display formatting.
package address

import (
	"fmt"
	"regexp"
)

// NotAvailable is the placeholder rendered for empty display fields.
const NotAvailable = "Not available"

// ValidationError is a human-readable description of one failed field check.
type ValidationError string

var postalCodeRe = regexp.MustCompile(`^\d+$`)

// CodeAndName is a code/name classification pair, used for the address type,
// the province or state, and the country. Both fields default to empty
// strings when absent from input.
type CodeAndName struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// HasName reports whether the classification carries a non-empty name.
func (c CodeAndName) HasName() bool {
	return c.Name != ""
}

// LineDetail holds the two free-text street lines of an address.
type LineDetail struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

// IsValid reports whether at least one street line is filled in.
func (d LineDetail) IsValid() bool {
	return d.Line1 != "" || d.Line2 != ""
}

// String renders the street lines, or "Not available" when both are empty.
func (d LineDetail) String() string {
	switch {
	case d.Line1 == "" && d.Line2 == "":
		return NotAvailable
	case d.Line1 == "":
		return d.Line2
	case d.Line2 == "":
		return d.Line1
	default:
		return d.Line1 + ", " + d.Line2
	}
}

// Address is one address record. Field constraints are checked by Validate,
// not at construction: a loaded Address may be invalid.
type Address struct {
	ID               string
	Type             CodeAndName
	LineDetail       LineDetail
	ProvinceOrState  CodeAndName
	Country          CodeAndName
	CityOrTown       string
	PostalCode       string
	SuburbOrDistrict string
	LastUpdated      string
}

// Validate runs the field checks in fixed order and collects one message per
// failed check. An empty result means the address is valid.
func (a Address) Validate() []ValidationError {
	var errs []ValidationError

	if !a.HasValidProvince() {
		errs = append(errs, "You must include a province if your country is ZA")
	}
	if !a.Country.HasName() {
		errs = append(errs, "You must include a country")
	}
	if !a.LineDetail.IsValid() {
		errs = append(errs, "You must include valid address details (line 1 and/or 2 must be filled in)")
	}
	if !ValidPostalCode(a.PostalCode) {
		errs = append(errs, "You must include a valid postal code")
	}

	return errs
}

// IsValid reports whether every field check passes. Agrees with Validate
// returning no errors.
func (a Address) IsValid() bool {
	return a.HasValidProvince() &&
		a.Country.HasName() &&
		a.LineDetail.IsValid() &&
		ValidPostalCode(a.PostalCode)
}

// HasValidProvince reports whether the province requirement is met. Only
// South African addresses (country code "ZA") require a province name.
func (a Address) HasValidProvince() bool {
	if a.Country.Code != "ZA" {
		return true
	}
	return a.ProvinceOrState.HasName()
}

// String renders the address on one line, substituting "Not available" for
// empty fields.
func (a Address) String() string {
	return fmt.Sprintf("%s: %s - %s - %s - %s - %s",
		a.Type.Name,
		a.LineDetail,
		orDefault(a.CityOrTown, NotAvailable),
		orDefault(a.ProvinceOrState.Name, NotAvailable),
		orDefault(a.PostalCode, NotAvailable),
		orDefault(a.Country.Name, NotAvailable),
	)
}

// ValidPostalCode reports whether s is a non-empty all-digit string.
func ValidPostalCode(s string) bool {
	return postalCodeRe.MatchString(s)
}

// orDefault returns s, or def when s is empty.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
