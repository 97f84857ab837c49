package address_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dukerupert/addrcheck/internal/address"
	"github.com/dukerupert/addrcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTemp writes content to a file under t.TempDir and returns its path.
func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "addresses.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_MissingFile(t *testing.T) {
	book, err := address.Load(filepath.Join(t.TempDir(), "no-such-file.json"))

	assert.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, domain.IsCode(err, domain.EREAD), "missing file should report a read failure")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTemp(t, `{"not": "an array"`)

	book, err := address.Load(path)

	assert.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, domain.IsCode(err, domain.EDECODE), "malformed JSON should report a decode failure")
}

func TestLoad_MissingRequiredField(t *testing.T) {
	// Second record has no postalCode key.
	path := writeTemp(t, `[
		{"id": "1", "type": {"code": "1", "name": "Physical Address"}, "cityOrTown": "City 1", "postalCode": "1234", "lastUpdated": "2017-06-21T00:00:00.000Z"},
		{"id": "2", "type": {"code": "2", "name": "Postal Address"}, "cityOrTown": "City 2", "lastUpdated": "2017-06-21T00:00:00.000Z"}
	]`)

	book, err := address.Load(path)

	assert.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, domain.IsCode(err, domain.EDECODE), "missing required key should report a decode failure")
}

func TestLoad_EmptyRequiredFieldIsNotALoadError(t *testing.T) {
	// An empty value under a required key loads fine; validity is checked on
	// demand, not at load time.
	path := writeTemp(t, `[
		{"id": "1", "type": {"code": "1", "name": "Physical Address"}, "cityOrTown": "City 1", "postalCode": "", "lastUpdated": "2017-06-21T00:00:00.000Z"}
	]`)

	book, err := address.Load(path)

	require.NoError(t, err)
	require.Len(t, book.Addresses, 1)
	assert.False(t, book.Addresses[0].IsValid())
}

func TestLoad_DefaultsOptionalFields(t *testing.T) {
	book := loadFixture(t)

	// Record 2 has no addressLineDetail, provinceOrState, or suburbOrDistrict
	// keys; all default to empty-string sub-fields.
	addr := book.Addresses[1]
	assert.Equal(t, address.LineDetail{}, addr.LineDetail)
	assert.Equal(t, address.CodeAndName{}, addr.ProvinceOrState)
	assert.Equal(t, "", addr.SuburbOrDistrict)

	assert.Equal(t, "Suburb 1", book.Addresses[0].SuburbOrDistrict)
}

func TestBook_ValidateAll(t *testing.T) {
	book := loadFixture(t)

	assert.Equal(t, []string{
		`Address for ID: 2 is invalid. Validation errors: ["You must include valid address details (line 1 and/or 2 must be filled in)"]`,
		`Address for ID: 3 is invalid. Validation errors: ["You must include a province if your country is ZA"]`,
	}, book.ValidateAll())
}

func TestBook_ValidateAll_AllValid(t *testing.T) {
	book := loadFixture(t)
	book = &address.Book{Addresses: book.Addresses[:1]}

	assert.Empty(t, book.ValidateAll())
}

func TestBook_ValidateAll_MultipleErrorsOneLine(t *testing.T) {
	book := &address.Book{Addresses: []address.Address{
		{ID: "9", Country: address.CodeAndName{Code: "ZA"}, PostalCode: "12a4"},
	}}

	assert.Equal(t, []string{
		`Address for ID: 9 is invalid. Validation errors: ` +
			`["You must include a province if your country is ZA", ` +
			`"You must include a country", ` +
			`"You must include valid address details (line 1 and/or 2 must be filled in)", ` +
			`"You must include a valid postal code"]`,
	}, book.ValidateAll())
}

func TestBook_Print(t *testing.T) {
	book := loadFixture(t)

	var buf bytes.Buffer
	book.Print(&buf)

	assert.Equal(t,
		"Physical Address: Address 1, Line 2 - City 1 - Eastern Cape - 1234 - South Africa\n"+
			"Postal Address: Not available - City 2 - Not available - 2345 - Lebanon\n"+
			"Business Address: Address 3 - City 3 - Not available - 3456 - South Africa\n",
		buf.String())
}
