package timezone

import (
	"errors"
	"strings"
	"time"

	"hotel/config"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location

	ErrInvalidDate = errors.New("date must be ISO-8601 (YYYY-MM-DD or RFC 3339)")
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Ho_Chi_Minh', 'UTC'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Debug().
		Str("timezone", cfg.App.Timezone).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		return time.Now().UTC()
	}

	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		return t.UTC()
	}

	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// ParseDate accepts the ISO-8601 shapes the console sends: a full RFC 3339 timestamp or a bare date.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ToAppTime(t), nil
	}

	if t, err := Parse(constant.DateOnlyFormat, value); err == nil {
		return t, nil
	}

	if t, err := Parse("2006-01-02T15:04:05", value); err == nil {
		return t, nil
	}

	return time.Time{}, ErrInvalidDate
}

// ParseRangeEnd parses the closing bound of a date range. A bare date covers that whole day.
func ParseRangeEnd(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := Parse(constant.DateOnlyFormat, value); err == nil {
		return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}

	return ParseDate(value)
}

// ParseOptionalDate returns nil for an empty value.
func ParseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil //nolint:nilnil
	}

	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// FormatOptional renders nil or zero times as an empty string.
func FormatOptional(t *time.Time, layout string) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return Format(*t, layout)
}
