package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
)

// StartOfDay truncates t to 00:00:00 in loc. A nil loc means time.Local.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// DayRange returns [startOfDay(t), startOfDay(t)+1 day) in loc.
// AddDate keeps DST days correct where adding 24h would not.
func DayRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := StartOfDay(t, loc)
	return start, start.AddDate(0, 0, 1)
}

// ValidateRange rejects an end date that falls on an earlier day than start.
func ValidateRange(start, end time.Time, loc *time.Location) error {
	if StartOfDay(end, loc).Before(StartOfDay(start, loc)) {
		return fmt.Errorf("%w: end %s is before start %s", apperrors.ErrInvalidRange,
			end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return nil
}

// ParseDay parses a YYYY-MM-DD calendar day in loc. RFC 3339 timestamps are also
// accepted and truncated to their day in loc. Failures wrap apperrors.ErrValidation.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return StartOfDay(t, loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", apperrors.ErrValidation, s)
}
