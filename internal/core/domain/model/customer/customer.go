// Package customer provides the Customer row of the e-commerce data set.
//
// A customer_id is issued per order, while customer_unique_id identifies the
// person across orders. The feature pipeline joins on customer_id only.
package customer

import (
	"strings"

	"orderfeatures/internal/core/domain/model/kernel"
	"orderfeatures/internal/pkg/errs"
)

// Column names of the customers table.
const (
	ColumnID            = "customer_id"
	ColumnUniqueID      = "customer_unique_id"
	ColumnZipCodePrefix = "customer_zip_code_prefix"
	ColumnCity          = "customer_city"
	ColumnState         = "customer_state"
)

type Customer struct {
	ID            string
	UniqueID      string
	ZipCodePrefix kernel.ZipCodePrefix
	City          string
	State         string
}

// NewCustomer creates a customer row; the identifier and zip code prefix are required.
func NewCustomer(id, uniqueID, zip, city, state string) (Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Customer{}, errs.NewValueIsRequiredError(ColumnID)
	}

	prefix, err := kernel.NewZipCodePrefix(zip)
	if err != nil {
		return Customer{}, errs.NewValueIsRequiredErrorWithCause(ColumnZipCodePrefix, err)
	}

	return Customer{
		ID:            id,
		UniqueID:      strings.TrimSpace(uniqueID),
		ZipCodePrefix: prefix,
		City:          strings.TrimSpace(city),
		State:         strings.TrimSpace(state),
	}, nil
}
