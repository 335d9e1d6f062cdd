// Package kernel provides core domain primitives shared by the order feature model.
//
// The package includes:
//   - ZipCodePrefix: the join key between sellers, customers and geolocation samples
//   - GeoPoint: a validated latitude/longitude value object with great-circle distance
//   - Geolocation: one raw (zip code prefix, point) sample of the geolocation table
//   - GeocodeIndex: the deduplicated zip-prefix-to-point lookup used by the distance metric
//
// All primitives are immutable once constructed and safe for concurrent use.
package kernel
