package address

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/dukerupert/addrcheck/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Book is an ordered collection of addresses loaded wholesale from one JSON
// document. It is read-only after Load.
type Book struct {
	Addresses []Address
}

// Load reads the JSON array of address records at path. Read failures carry
// code EREAD, malformed JSON and missing required keys EDECODE. Addresses
// that merely fail field validation still load; see ValidateAll.
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.WrapError(err, domain.EREAD, "address.load",
			fmt.Sprintf("reading address file %s", path))
	}

	var records []addressRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, domain.WrapError(err, domain.EDECODE, "address.load",
			"decoding address file")
	}

	book := &Book{Addresses: make([]Address, 0, len(records))}
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, domain.WrapError(err, domain.EDECODE, "address.load",
				fmt.Sprintf("address record %d is missing required fields", i))
		}
		book.Addresses = append(book.Addresses, rec.toAddress())
	}

	return book, nil
}

// ValidateAll validates every address in input order and reports one line per
// invalid address. Valid addresses contribute nothing.
func (b *Book) ValidateAll() []string {
	var out []string
	for _, addr := range b.Addresses {
		errs := addr.Validate()
		if len(errs) == 0 {
			continue
		}

		quoted := make([]string, len(errs))
		for i, e := range errs {
			quoted[i] = strconv.Quote(string(e))
		}
		out = append(out, fmt.Sprintf("Address for ID: %s is invalid. Validation errors: [%s]",
			addr.ID, strings.Join(quoted, ", ")))
	}
	return out
}

// Print writes the display line for every address to w, one per line, in
// input order.
func (b *Book) Print(w io.Writer) {
	for _, addr := range b.Addresses {
		fmt.Fprintln(w, addr)
	}
}
