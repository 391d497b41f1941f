// Package timezone keeps every timestamp the API produces in the configured application zone.
//
//	now := timezone.Now()
//	checkIn, err := timezone.ParseDate("2025-03-01")
//	text := timezone.FormatOptional(booking.CheckOutDate, constant.DateFormat)
//
// The zone comes from APP_TIMEZONE and is loaded when the package is imported.
package timezone
