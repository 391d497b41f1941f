package dto

import (
	"strings"
	"time"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
)

// ParseDateField parses an optional ISO-8601 value. The returned 400 names the offending field.
func ParseDateField(field, value string) (*time.Time, error) {
	parsed, err := timezone.ParseOptionalDate(value)
	if err != nil {
		return nil, failure.BadRequestFromString(field + " must be an ISO-8601 date") //nolint:wrapcheck
	}

	return parsed, nil
}

// ParseRangeEndField parses an optional range end where a bare date means the end of that day.
func ParseRangeEndField(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil //nolint:nilnil
	}

	parsed, err := timezone.ParseRangeEnd(value)
	if err != nil {
		return nil, failure.BadRequestFromString(field + " must be an ISO-8601 date") //nolint:wrapcheck
	}

	return &parsed, nil
}

// FormatDate renders an optional date as RFC 3339 with fractional seconds, or nil when unset.
func FormatDate(value *time.Time) *string {
	if value == nil || value.IsZero() {
		return nil
	}

	text := timezone.Format(*value, constant.DateFormat)

	return &text
}
