package order

import (
	"strings"
	"time"

	"orderfeatures/internal/pkg/errs"
)

// Timestamp layouts accepted for the order date columns, tried in order.
// The data set itself uses the first one.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a raw timestamp column value in UTC.
//
// An empty value is a missing timestamp: ok is false and err is nil.
// A non-empty value that matches none of the accepted layouts yields an
// InvalidTimestampError naming the column; no default time is ever substituted.
func ParseTimestamp(column, raw string) (t time.Time, ok bool, err error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, false, nil
	}

	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, parseErr := time.ParseInLocation(layout, v, time.UTC)
		if parseErr == nil {
			return parsed, true, nil
		}
		lastErr = parseErr
	}

	return time.Time{}, false, errs.NewInvalidTimestampErrorWithCause(column, raw, lastErr)
}

// Days converts a duration to fractional 24-hour days.
func Days(d time.Duration) float64 {
	return d.Hours() / 24
}
