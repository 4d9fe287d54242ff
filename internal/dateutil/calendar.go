package dateutil

import "time"

// CalendarWeek is one row of the year calendar: an ISO week with its
// Monday/Sunday bounds and the days of it that fall inside the month.
type CalendarWeek struct {
	Week   int         `json:"week"`
	Monday time.Time   `json:"monday"`
	Sunday time.Time   `json:"sunday"`
	Days   []time.Time `json:"days"`
}

// CalendarMonth groups the ISO weeks touching a single month.
type CalendarMonth struct {
	Month     int            `json:"month"`
	MonthName string         `json:"month_name"`
	Weeks     []CalendarWeek `json:"weeks"`
}

// YearCalendar builds the full-year week-number view: for each month, the
// ISO weeks it spans, in order. A week straddling a month boundary appears
// in both months, each time carrying only the days inside that month.
func YearCalendar(year int) []CalendarMonth {
	months := make([]CalendarMonth, 0, 12)
	for m := 1; m <= 12; m++ {
		cm := CalendarMonth{Month: m, MonthName: MonthName(m)}

		var current *CalendarWeek
		for d := 1; d <= DaysInMonth(year, m); d++ {
			day := time.Date(year, time.Month(m), d, 0, 0, 0, 0, time.UTC)
			week := ISOWeek(day)
			if current == nil || current.Week != week {
				cm.Weeks = append(cm.Weeks, CalendarWeek{
					Week:   week,
					Monday: MondayOf(day),
					Sunday: SundayOf(day),
				})
				current = &cm.Weeks[len(cm.Weeks)-1]
			}
			current.Days = append(current.Days, day)
		}
		months = append(months, cm)
	}
	return months
}
