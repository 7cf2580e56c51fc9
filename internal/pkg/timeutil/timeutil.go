// Package timeutil holds the clock-string math shared by the report editor,
// the hours rollup and the document exporters. Times travel through the
// system as "HH:MM" strings; an empty string means "not recorded".
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// To12Hour converts a 24-hour "HH:MM" string to a 12-hour display string
// with an AM/PM suffix ("13:30" -> "01:30 PM"). The minute part is passed
// through untouched. An empty input returns an empty string.
func To12Hour(t string) string {
	if t == "" {
		return ""
	}
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return t
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return t
	}
	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%02d:%s %s", hours, parts[1], suffix)
}

// HoursDelta returns exit minus entry as decimal hours. Either side missing,
// or a negative span, yields 0: there is no overnight-shift support, days
// that go backwards floor to zero instead of wrapping.
func HoursDelta(entry, exit string) float64 {
	entryMin, ok := MinutesOfDay(entry)
	if !ok {
		return 0
	}
	exitMin, ok := MinutesOfDay(exit)
	if !ok {
		return 0
	}
	diff := float64(exitMin-entryMin) / 60
	if diff <= 0 {
		return 0
	}
	return diff
}

// MinutesOfDay parses "HH:MM" into minutes since midnight.
func MinutesOfDay(t string) (int, bool) {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// WeekDates describes the Monday-to-Friday span a report covers.
type WeekDates struct {
	Days        [5]string // dd/mm/yyyy, Monday first
	Start       string
	End         string
	PeriodLabel string
}

const dateLayout = "02/01/2006"

// WeekDatesFor returns the working week containing now. Monday is found by
// walking back (weekday-1) days, with Sunday treated as day 7 so the span
// always starts on a Monday on or before now: a Sunday resolves to the
// Monday of the week that just ended, not the upcoming one.
func WeekDatesFor(now time.Time) WeekDates {
	offset := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		offset = 6
	}
	monday := now.AddDate(0, 0, -offset)

	var w WeekDates
	for i := 0; i < 5; i++ {
		w.Days[i] = monday.AddDate(0, 0, i).Format(dateLayout)
	}
	w.Start = w.Days[0]
	w.End = w.Days[4]
	w.PeriodLabel = fmt.Sprintf("Del %s al %s", w.Start, w.End)
	return w
}

// CurrentWeekDates returns the working week containing today.
func CurrentWeekDates() WeekDates {
	return WeekDatesFor(time.Now())
}

// DatesOfPeriod reverses a period label back into its five day dates, for
// documents rendered from an already-finalized report. Unparseable labels
// return ok=false.
func DatesOfPeriod(label string) ([5]string, bool) {
	var days [5]string
	var start, end string
	if _, err := fmt.Sscanf(label, "Del %s al %s", &start, &end); err != nil {
		return days, false
	}
	monday, err := time.Parse(dateLayout, start)
	if err != nil {
		return days, false
	}
	for i := 0; i < 5; i++ {
		days[i] = monday.AddDate(0, 0, i).Format(dateLayout)
	}
	return days, true
}
