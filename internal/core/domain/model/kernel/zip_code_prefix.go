package kernel

import (
	"strings"

	"orderfeatures/internal/pkg/errs"
)

// ZipCodePrefix is the leading part of a postal code as it appears in the seller,
// customer and geolocation tables. Values are compared verbatim after trimming.
type ZipCodePrefix string

// NewZipCodePrefix trims the raw value and rejects empty prefixes.
func NewZipCodePrefix(raw string) (ZipCodePrefix, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", errs.NewValueIsRequiredError("zip code prefix")
	}
	return ZipCodePrefix(v), nil
}

func (z ZipCodePrefix) String() string {
	return string(z)
}
