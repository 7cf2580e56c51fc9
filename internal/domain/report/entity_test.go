package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockStates_ActivityLocksDay(t *testing.T) {
	t.Parallel()

	rep := WeeklyReport{}
	rep.Activities[Monday] = "Onboarding"
	rep.Activities[Wednesday] = "Code review"

	locked := LockStates(&rep, false)

	assert.True(t, locked[Monday])
	assert.False(t, locked[Tuesday])
	assert.True(t, locked[Wednesday])
	assert.False(t, locked[Thursday])
	assert.False(t, locked[Friday])
}

func TestLockStates_ReadOnlyLocksEverything(t *testing.T) {
	t.Parallel()

	rep := WeeklyReport{}
	rep.Activities[Monday] = "Onboarding"

	locked := LockStates(&rep, true)

	for d := 0; d < NumWeekdays; d++ {
		assert.True(t, locked[d])
	}
}

func TestDailyHours_TotalHours(t *testing.T) {
	t.Parallel()

	h := DailyHours{}
	h.Entries[Monday], h.Exits[Monday] = "09:00", "17:30" // 8.5
	h.Entries[Tuesday], h.Exits[Tuesday] = "10:00", "09:00" // backwards, floors to 0
	h.Entries[Wednesday] = "09:00" // exit missing, counts 0
	h.Exits[Thursday] = "17:00"    // entry missing, counts 0
	h.TotalWeekHours = 999         // stored total is ignored

	assert.InDelta(t, 8.5, h.TotalHours(), 0.0001)
}

func TestWeekday_DisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Lunes", Monday.DisplayName())
	assert.Equal(t, "Viernes", Friday.DisplayName())
}

func TestWeekdayOf_WeekendHasNoSlot(t *testing.T) {
	t.Parallel()

	saturday := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	_, ok := WeekdayOf(saturday)
	assert.False(t, ok)

	monday := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	d, ok := WeekdayOf(monday)
	assert.True(t, ok)
	assert.Equal(t, Monday, d)
}
