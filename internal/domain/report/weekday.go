package report

import "time"

// Weekday indexes the five working days of a report, Monday first. All
// day-keyed report data lives in [5]-arrays indexed by it.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// NumWeekdays is the number of working days in a report.
const NumWeekdays = 5

var displayNames = [NumWeekdays]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}

// DisplayName returns the Spanish day name used in exported documents.
func (d Weekday) DisplayName() string {
	if d < Monday || d > Friday {
		return ""
	}
	return displayNames[d]
}

// WeekdayOf maps a calendar date to its report weekday. Saturdays and
// Sundays have no slot and return ok=false.
func WeekdayOf(t time.Time) (Weekday, bool) {
	switch t.Weekday() {
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	case time.Friday:
		return Friday, true
	default:
		return 0, false
	}
}
