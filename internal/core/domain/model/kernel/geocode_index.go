package kernel

import "orderfeatures/internal/pkg/errs"

// Geolocation is one raw sample of the geolocation table. A zip code prefix
// usually has many samples with slightly different coordinates.
type Geolocation struct {
	ZipCodePrefix ZipCodePrefix
	Point         GeoPoint
}

// GeocodeIndex resolves a zip code prefix to exactly one GeoPoint.
//
// When several samples share a prefix the first one in input order is kept.
// Samples are never averaged.
type GeocodeIndex struct {
	points map[ZipCodePrefix]GeoPoint
}

// NewGeocodeIndex deduplicates samples by zip code prefix, keeping the first one.
func NewGeocodeIndex(samples []Geolocation) GeocodeIndex {
	points := make(map[ZipCodePrefix]GeoPoint, len(samples))
	for _, s := range samples {
		if _, seen := points[s.ZipCodePrefix]; seen {
			continue
		}
		points[s.ZipCodePrefix] = s.Point
	}
	return GeocodeIndex{points: points}
}

// Resolve returns the representative point of a zip code prefix or an
// IncompleteGeocodeError when the prefix has no sample.
func (i GeocodeIndex) Resolve(zip ZipCodePrefix) (GeoPoint, error) {
	p, ok := i.points[zip]
	if !ok {
		return GeoPoint{}, errs.NewIncompleteGeocodeError(zip.String())
	}
	return p, nil
}

// Len returns the number of distinct zip code prefixes.
func (i GeocodeIndex) Len() int {
	return len(i.points)
}
