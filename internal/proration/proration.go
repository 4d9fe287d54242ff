// Package proration splits an order's total price across the calendar
// months its broadcast period touches, weighted by the number of days
// spent in each month.
package proration

import (
	"strconv"
	"strings"
	"time"

	"github.com/piksel-lt/orderdesk/internal/dateutil"
)

// MonthShare is one month's slice of a prorated total.
type MonthShare struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	MonthName string  `json:"month_name"`
	DayCount  int     `json:"day_count"`
	Amount    float64 `json:"amount"`
}

// Calculate distributes total over the inclusive date range [from, to].
// The inputs are the raw from/to strings stored on an order; a trailing
// time-of-day component separated by a space is stripped before parsing.
// Shares come back in chronological order and sum to total up to
// floating-point rounding.
//
// Malformed dates and a zero total both yield an empty result rather than
// an error: the breakdown is a display aid and must degrade silently on
// the malformed data the order backend is known to contain.
func Calculate(from, to string, total float64) []MonthShare {
	if total == 0 {
		return nil
	}
	start, ok := parseDay(from)
	if !ok {
		return nil
	}
	end, ok := parseDay(to)
	if !ok {
		return nil
	}
	if end.Before(start) {
		return nil
	}

	// Walk the range day by day instead of subtracting timestamps so DST
	// and timezone offsets can never skew the count.
	totalDays := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		totalDays++
	}

	var shares []MonthShare
	index := map[[2]int]int{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := [2]int{d.Year(), int(d.Month())}
		i, seen := index[key]
		if !seen {
			shares = append(shares, MonthShare{
				Year:      d.Year(),
				Month:     int(d.Month()),
				MonthName: dateutil.MonthName(int(d.Month())),
			})
			i = len(shares) - 1
			index[key] = i
		}
		shares[i].DayCount++
	}

	for i := range shares {
		shares[i].Amount = float64(shares[i].DayCount) / float64(totalDays) * total
	}
	return shares
}

// parseDay extracts year, month and day straight from the YYYY-MM-DD text.
// Deliberately no locale-aware parsing here: a date string must mean the
// same calendar day regardless of the server's timezone.
func parseDay(s string) (time.Time, bool) {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > dateutil.DaysInMonth(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
