// Package errs provides standardized error types for the order feature pipeline.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two groups of error types:
//   - generic validation errors: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError and ObjectNotFoundError
//   - data-shape errors raised while reading the raw tables: MissingTableError,
//     MissingColumnError, InvalidTimestampError and IncompleteGeocodeError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrMissingTable)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so that errors.Is matches the sentinel
//
// MissingTable and MissingColumn are fatal: the training table cannot be built.
// InvalidTimestamp excludes the affected row, IncompleteGeocode excludes the affected
// seller-customer pair from the distance metric.
package errs
