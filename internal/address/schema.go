package address

import "github.com/go-playground/validator/v10"

// addressRecord is the wire shape of one record in the input document. It is
// the schema for load-time presence rules: required keys are pointer fields
// tagged "required" so a missing key is distinguishable from an empty value,
// and optional fields get their defaults applied in toAddress. Field validity
// (postal code format, ZA province, ...) is not checked here; see
// Address.Validate.
type addressRecord struct {
	ID               *string      `json:"id" validate:"required"`
	Type             *CodeAndName `json:"type" validate:"required"`
	LineDetail       *LineDetail  `json:"addressLineDetail"`
	ProvinceOrState  *CodeAndName `json:"provinceOrState"`
	Country          *CodeAndName `json:"country"`
	CityOrTown       *string      `json:"cityOrTown" validate:"required"`
	PostalCode       *string      `json:"postalCode" validate:"required"`
	SuburbOrDistrict *string      `json:"suburbOrDistrict"`
	LastUpdated      *string      `json:"lastUpdated" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// toAddress builds the domain record, substituting the empty default for each
// absent optional field. Must only be called after the record passed the
// required-field check.
func (r addressRecord) toAddress() Address {
	addr := Address{
		ID:          *r.ID,
		Type:        *r.Type,
		CityOrTown:  *r.CityOrTown,
		PostalCode:  *r.PostalCode,
		LastUpdated: *r.LastUpdated,
	}

	if r.LineDetail != nil {
		addr.LineDetail = *r.LineDetail
	}
	if r.ProvinceOrState != nil {
		addr.ProvinceOrState = *r.ProvinceOrState
	}
	if r.Country != nil {
		addr.Country = *r.Country
	}
	if r.SuburbOrDistrict != nil {
		addr.SuburbOrDistrict = *r.SuburbOrDistrict
	}

	return addr
}
