package hours

// WeekRow is one finalized week in the rollup. Remaining is the target minus
// the running sum up to and including this week.
type WeekRow struct {
	Period    string  `json:"period"`
	Hours     float64 `json:"hours"`
	Remaining float64 `json:"remaining"`
}

// Summary is the read-only rollup across all finalized reports: total versus
// the service-hour target plus the punctuality counters measured against the
// profile's fixed schedule.
type Summary struct {
	TargetHours     float64   `json:"target_hours"`
	TotalHours      float64   `json:"total_hours"`
	RemainingHours  float64   `json:"remaining_hours"`
	ProgressPercent float64   `json:"progress_percent"`
	EarlyArrivals   int       `json:"early_arrivals"`
	LateDepartures  int       `json:"late_departures"`
	FixedEntryTime  string    `json:"fixed_entry_time"`
	FixedExitTime   string    `json:"fixed_exit_time"`
	Weeks           []WeekRow `json:"weeks"`
}
