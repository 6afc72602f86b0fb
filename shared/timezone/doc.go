// Package timezone keeps every wall-clock value in the hotel's own timezone.
//
// The location comes from APP_TIMEZONE (an IANA name such as "Asia/Jakarta") and is
// loaded once when the package is imported, falling back to UTC.
//
// Stay dates travel as dd/mm/yyyy strings:
//
//	checkIn, err := timezone.ParseDayMonthYear("01/06/2024") // midnight UTC, a calendar day
//	label := timezone.FormatDayMonthYear(checkIn)            // "01/06/2024"
//
// Booking timestamps and cleaning updates use Now, so they match the desk's clock.
package timezone
