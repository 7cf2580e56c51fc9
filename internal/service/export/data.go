// Package export renders a finalized weekly report as a Word or PDF
// document and the hours rollup as an XLSX workbook. Renderers are pure
// consumers: they receive already-resolved document data and never touch
// the repositories.
package export

import (
	"fmt"

	"github.com/alamex/bitacora-backend-go/internal/domain/report"
	"github.com/alamex/bitacora-backend-go/internal/pkg/timeutil"
)

// Default values printed when the profile left a field empty.
const (
	defaultStudentName = "Becario"
	defaultDepartment  = "TI"
	defaultSupervisor  = "Supervisor"
)

// placeholder key suffixes, accent-free to match the template
var daySuffixes = [report.NumWeekdays]string{"lunes", "martes", "miercoles", "jueves", "viernes"}

// DocumentData is everything a rendered report document needs.
type DocumentData struct {
	StudentName  string
	Department   string
	Supervisor   string
	Version      int
	PeriodLabel  string
	Dates        [report.NumWeekdays]string
	Entries      [report.NumWeekdays]string
	Exits        [report.NumWeekdays]string
	Activities   [report.NumWeekdays]string
	Learnings    string
	Difficulties string
	NextPlan     string
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// PlaceholderMap flattens the document data into the template's placeholder
// keys. Empty profile fields fall back to generic labels so the document
// never renders blank header lines.
func (d *DocumentData) PlaceholderMap() map[string]string {
	m := map[string]string{
		"nombre_aprendiz": orDefault(d.StudentName, defaultStudentName),
		"area":            orDefault(d.Department, defaultDepartment),
		"supervisor":      orDefault(d.Supervisor, defaultSupervisor),
		"periodo":         d.PeriodLabel,
		"version":         fmt.Sprintf("%02d", d.Version),
		"aprendizajes":    d.Learnings,
		"dificultades":    d.Difficulties,
		"plan_siguiente":  d.NextPlan,
	}
	for day := 0; day < report.NumWeekdays; day++ {
		m["fecha_"+daySuffixes[day]] = d.Dates[day]
		m["act_"+daySuffixes[day]] = d.Activities[day]
	}
	return m
}

// entryDisplay and exitDisplay are the 12-hour strings printed in documents.
func (d *DocumentData) entryDisplay(day report.Weekday) string {
	return timeutil.To12Hour(d.Entries[day])
}

func (d *DocumentData) exitDisplay(day report.Weekday) string {
	return timeutil.To12Hour(d.Exits[day])
}
