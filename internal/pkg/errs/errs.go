package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")

	ErrMissingTable      = errors.New("missing table")
	ErrMissingColumn     = errors.New("missing column")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrIncompleteGeocode = errors.New("incomplete geocode")
)

// sanitize keeps user supplied values on a single line.
func sanitize(v any) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(fmt.Sprintf("%v", v))
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ValueIsRequiredError is returned when a mandatory value is empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a value cannot be interpreted.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value falls outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max)), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError is returned when a lookup by identifier yields nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return withCause(fmt.Sprintf("%s: param is: %s, ID is: %s",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// MissingTableError is returned when the raw table provider did not supply a table.
type MissingTableError struct {
	Table string
	Cause error
}

func NewMissingTableError(table string) *MissingTableError {
	return &MissingTableError{Table: table}
}

func NewMissingTableErrorWithCause(table string, cause error) *MissingTableError {
	return &MissingTableError{Table: table, Cause: cause}
}

func (e *MissingTableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrMissingTable, e.Table), e.Cause)
}

func (e *MissingTableError) Unwrap() error {
	return ErrMissingTable
}

// MissingColumnError is returned when a table lacks a column the pipeline reads.
type MissingColumnError struct {
	Table  string
	Column string
}

func NewMissingColumnError(table, column string) *MissingColumnError {
	return &MissingColumnError{Table: table, Column: column}
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: %s.%s", ErrMissingColumn, e.Table, e.Column)
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// InvalidTimestampError is returned when a timestamp column does not parse as a date.
type InvalidTimestampError struct {
	Column string
	Value  string
	Cause  error
}

func NewInvalidTimestampError(column, value string) *InvalidTimestampError {
	return &InvalidTimestampError{Column: column, Value: value}
}

func NewInvalidTimestampErrorWithCause(column, value string, cause error) *InvalidTimestampError {
	return &InvalidTimestampError{Column: column, Value: value, Cause: cause}
}

func (e *InvalidTimestampError) Error() string {
	return withCause(fmt.Sprintf("%s: %s=%q", ErrInvalidTimestamp, e.Column, sanitize(e.Value)), e.Cause)
}

func (e *InvalidTimestampError) Unwrap() error {
	return ErrInvalidTimestamp
}

// IncompleteGeocodeError is returned when a zip code prefix has no geolocation sample.
type IncompleteGeocodeError struct {
	ZipCodePrefix string
}

func NewIncompleteGeocodeError(zipCodePrefix string) *IncompleteGeocodeError {
	return &IncompleteGeocodeError{ZipCodePrefix: zipCodePrefix}
}

func (e *IncompleteGeocodeError) Error() string {
	return fmt.Sprintf("%s: zip code prefix %q", ErrIncompleteGeocode, e.ZipCodePrefix)
}

func (e *IncompleteGeocodeError) Unwrap() error {
	return ErrIncompleteGeocode
}
