package timezone

import (
	"errors"
	"fmt"
	"frontdesk/config"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	dayMonthYearSeparator  = "/"
	dayMonthYearComponents = 3
)

var (
	appLocation *time.Location

	ErrInvalidDate = errors.New("date must be a calendar date in dd/mm/yyyy form")
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
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Bangkok', 'UTC', 'Europe/London'")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return t.UTC()
	}
	return t.In(appLocation)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDayMonthYear reads a front-desk date such as "1/6/2024" or "01/06/2024".
// It needs exactly three numeric components naming a real calendar day.
func ParseDayMonthYear(value string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(value), dayMonthYearSeparator)
	if len(parts) != dayMonthYearComponents {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	numbers := make([]int, dayMonthYearComponents)

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
		}

		numbers[i] = n
	}

	day, month, year := numbers[0], numbers[1], numbers[2]

	// time.Date normalises overflow, so 31/02 would silently become early March.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return date, nil
}

// FormatDayMonthYear renders a calendar date as dd/mm/yyyy without shifting its day.
func FormatDayMonthYear(date time.Time) string {
	return date.Format("02/01/2006")
}
