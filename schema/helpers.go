package schema

import (
	"fmt"
	"strings"
	"time"
)

// DayFormat is the calendar-day layout used across the raw log and the
// processed output.
const DayFormat = "2006-01-02"

const noonSecs = 12 * 60 * 60

// RepoFileName derives the processed-output filename for a repository by
// replacing the owner/name separator, e.g. "acme/widget" -> "acme.widget.json".
func RepoFileName(repo string) string {
	return strings.ReplaceAll(repo, "/", ".") + ".json"
}

// ParseDay parses a YYYY-MM-DD string into local midnight of that day.
func ParseDay(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", date, err)
	}
	return t, nil
}

// NoonTime returns the Unix timestamp for the middle of the given day,
// computed as local midnight plus twelve hours of seconds.
func NoonTime(date string) (float64, error) {
	midnight, err := ParseDay(date)
	if err != nil {
		return 0, err
	}
	return float64(midnight.Unix() + noonSecs), nil
}
