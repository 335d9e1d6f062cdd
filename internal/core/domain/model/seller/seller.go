// Package seller provides the Seller row of the e-commerce data set.
package seller

import (
	"strings"

	"orderfeatures/internal/core/domain/model/kernel"
	"orderfeatures/internal/pkg/errs"
)

// Column names of the sellers table.
const (
	ColumnID            = "seller_id"
	ColumnZipCodePrefix = "seller_zip_code_prefix"
	ColumnCity          = "seller_city"
	ColumnState         = "seller_state"
)

// Seller is a marketplace merchant located by its zip code prefix.
type Seller struct {
	ID            string
	ZipCodePrefix kernel.ZipCodePrefix
	City          string
	State         string
}

// NewSeller creates a seller row; the identifier and zip code prefix are required.
func NewSeller(id, zip, city, state string) (Seller, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Seller{}, errs.NewValueIsRequiredError(ColumnID)
	}

	prefix, err := kernel.NewZipCodePrefix(zip)
	if err != nil {
		return Seller{}, errs.NewValueIsRequiredErrorWithCause(ColumnZipCodePrefix, err)
	}

	return Seller{
		ID:            id,
		ZipCodePrefix: prefix,
		City:          strings.TrimSpace(city),
		State:         strings.TrimSpace(state),
	}, nil
}
