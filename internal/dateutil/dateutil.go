// Package dateutil holds the calendar helpers used across the order
// surfaces: date normalization for the loosely formatted date strings the
// order backend has accumulated, and the two week-number calculations.
package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CanonicalLayout is the storage and display form for order dates.
const CanonicalLayout = "2006-01-02"

var (
	canonicalRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	slashRe     = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	dotRe       = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4}$`)
)

// monthNames are the Lithuanian month names, indexed 0-11.
var monthNames = [12]string{
	"Sausis", "Vasaris", "Kovas", "Balandis", "Gegužė", "Birželis",
	"Liepa", "Rugpjūtis", "Rugsėjis", "Spalis", "Lapkritis", "Gruodis",
}

// MonthName returns the Lithuanian name for a 1-based month, or an empty
// string for an out-of-range value.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// Normalize converts a date string of unknown shape to YYYY-MM-DD.
// Recognized inputs, checked in order: already-canonical (returned
// unchanged), D/M/YYYY and D.M.YYYY (both read as day/month/year), and
// finally anything time.Parse can make sense of. Unparseable input is
// returned unchanged: stored orders carry dates in whatever shape they were
// entered, and the display must stay resilient to that.
func Normalize(s string) string {
	if canonicalRe.MatchString(s) {
		return s
	}
	if slashRe.MatchString(s) {
		return rebuildDMY(s, "/")
	}
	if dotRe.MatchString(s) {
		return rebuildDMY(s, ".")
	}
	t, err := parseLoose(s)
	if err != nil {
		return s
	}
	return t.Format(CanonicalLayout)
}

func rebuildDMY(s, sep string) string {
	parts := strings.Split(s, sep)
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	return fmt.Sprintf("%s-%02d-%02d", parts[2], month, day)
}

// parseLoose tries the handful of layouts the order backend is known to
// emit besides the canonical one.
func parseLoose(s string) (time.Time, error) {
	layouts := []string{
		CanonicalLayout,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.999Z",
		time.RFC3339,
		"2006-01-02T15:04:05",
		"January 2, 2006",
		"Jan 2, 2006",
		"2006/01/02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", s)
}

// ParseCanonical parses a YYYY-MM-DD string after stripping any trailing
// time-of-day component separated by a space.
func ParseCanonical(s string) (time.Time, error) {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	return time.Parse(CanonicalLayout, s)
}

// WeekLabel computes the legacy "W<NN>" week label shown next to order
// dates. The formula anchors on January 1st of the date's year:
// ceil((dayOfYearOffset + weekdayOfJan1) / 7), with Sunday counted as
// weekday 0. This intentionally diverges from ISO-8601 near year
// boundaries; the edit surface has always shown these values and they must
// not change. Use ISOWeek for the standards-based calendar view.
// Returns an empty string for input Normalize cannot resolve.
func WeekLabel(dateStr string) string {
	norm := Normalize(dateStr)
	t, err := time.Parse(CanonicalLayout, norm)
	if err != nil {
		return ""
	}
	startOfYear := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := t.YearDay() - 1
	week := (days + int(startOfYear.Weekday()) + 6) / 7 // ceil((days+weekday)/7)
	return fmt.Sprintf("W%02d", week)
}

// ISOWeek returns the standard ISO-8601 week number (Monday-anchored,
// week 1 contains January 4th) for the given date.
func ISOWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// MondayOf returns the Monday of the ISO week containing t.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -offset)
}

// SundayOf returns the Sunday closing the ISO week containing t.
func SundayOf(t time.Time) time.Time {
	return MondayOf(t).AddDate(0, 0, 6)
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the first and last day of the given month in
// canonical form. The last day is the real month end, not a fixed -31.
func MonthBounds(year, month int) (string, string) {
	first := fmt.Sprintf("%04d-%02d-01", year, month)
	last := fmt.Sprintf("%04d-%02d-%02d", year, month, DaysInMonth(year, month))
	return first, last
}
