package timezone_test

import (
	"errors"
	"frontdesk/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() != timezone.Now().Location() {
		t.Errorf("expected converted time in %s, got %s", timezone.Now().Location(), appTime.Location())
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}
}

func TestParseDayMonthYear(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "padded",
			input:    "01/06/2024",
			expected: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "unpadded",
			input:    "3/6/2024",
			expected: time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "leap day",
			input:    "29/02/2024",
			expected: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{name: "not a leap year", input: "29/02/2023", wantErr: true},
		{name: "day overflow", input: "31/04/2024", wantErr: true},
		{name: "month overflow", input: "01/13/2024", wantErr: true},
		{name: "two components", input: "01/06", wantErr: true},
		{name: "four components", input: "01/06/2024/1", wantErr: true},
		{name: "iso format", input: "2024-06-01", wantErr: true},
		{name: "non numeric", input: "aa/06/2024", wantErr: true},
		{name: "zero day", input: "00/06/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := timezone.ParseDayMonthYear(tt.input)

			if tt.wantErr {
				if !errors.Is(err, timezone.ErrInvalidDate) {
					t.Errorf("expected ErrInvalidDate, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.Equal(tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestFormatDayMonthYear(t *testing.T) {
	date := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

	if got := timezone.FormatDayMonthYear(date); got != "03/06/2024" {
		t.Errorf("expected 03/06/2024, got %s", got)
	}
}

func TestDayMonthYearRoundTrip(t *testing.T) {
	for _, input := range []string{"01/06/2024", "29/02/2024", "31/12/1999"} {
		date, err := timezone.ParseDayMonthYear(input)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", input, err)
		}

		if got := timezone.FormatDayMonthYear(date); got != input {
			t.Errorf("expected %s to survive a round trip, got %s", input, got)
		}
	}

	if got := timezone.FormatDayMonthYear(mustParse(t, "1/6/2024")); got != "01/06/2024" {
		t.Errorf("expected unpadded input to come back padded, got %s", got)
	}
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := timezone.ParseDayMonthYear(value)
	if err != nil {
		t.Fatalf("unexpected error for %s: %v", value, err)
	}

	return date
}
