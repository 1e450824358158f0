package domain

import "time"

// DailyStat holds quiz correctness counters for one user and one calendar day
type DailyStat struct {
	Correct int
	Total   int
}

// StatsSummary aggregates everything the stats report shows
type StatsSummary struct {
	TotalWords int
	Today      DailyStat
	AllTime    DailyStat
}

// DayKey returns the calendar-day key used for stats rows
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
