package report

import (
	"time"

	"github.com/alamex/bitacora-backend-go/internal/pkg/timeutil"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
)

// WeeklyReport is one user's activity log for one working week. At most one
// draft is intended per user; finalizing freezes the content and assigns it
// to the completed history.
type WeeklyReport struct {
	ID             string
	Email          string
	SequenceNumber int
	PeriodLabel    string
	Status         Status
	Activities     [NumWeekdays]string
	Learnings      string
	Difficulties   string
	NextPlan       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DailyHours is the per-report time record: one entry/exit pair per weekday.
// Empty strings mean "not recorded" and are stored as NULL.
type DailyHours struct {
	ID             string
	ReportID       string
	Email          string
	Entries        [NumWeekdays]string
	Exits          [NumWeekdays]string
	TotalWeekHours float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TotalHours recomputes the week total from the five day pairs. Each day
// floors at zero; the stored total is never trusted as supplied.
func (h *DailyHours) TotalHours() float64 {
	var total float64
	for d := 0; d < NumWeekdays; d++ {
		total += timeutil.HoursDelta(h.Entries[d], h.Exits[d])
	}
	return total
}

// LockStates derives which weekdays are immutable in the editor. A day locks
// once its persisted activity text is non-empty; every day locks when the
// report is viewed read-only (a finalized report). Lock state is always
// recomputed from the report, never stored.
func LockStates(r *WeeklyReport, readOnly bool) [NumWeekdays]bool {
	var locked [NumWeekdays]bool
	for d := 0; d < NumWeekdays; d++ {
		locked[d] = readOnly || r.Activities[d] != ""
	}
	return locked
}
