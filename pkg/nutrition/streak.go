package nutrition

import (
	"time"
)

// DateLayout is the calendar-day key format used throughout the core.
// Callers supply dates already rendered in their local timezone; the core
// never reads the wall clock.
const DateLayout = "2006-01-02"

// MinStreakDisplay is the run length below which a streak is tracked for
// calendar highlighting but shown to the user as 0.
const MinStreakDisplay = 3

// DefaultLookbackDays bounds the backward walk from today.
const DefaultLookbackDays = 30

// StreakRun is the unbroken run of logged days anchored at today.
type StreakRun struct {
	// Days holds the run's dates, today first, walking backward.
	// Empty when today itself has no log.
	Days []string `json:"days"`
	// Display is len(Days) once the run reaches MinStreakDisplay, else 0.
	Display int `json:"display"`
}

// ComputeStreak walks backward from today, up to lookbackDays steps, and
// collects the consecutive run of days present in logged. The walk stops at
// the first missing day: only runs touching today count as a current
// streak. A 10-day run ending yesterday yields an empty run.
func ComputeStreak(logged map[string]bool, today string, lookbackDays int) StreakRun {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}

	day, err := time.Parse(DateLayout, today)
	if err != nil {
		return StreakRun{Days: []string{}}
	}

	run := StreakRun{Days: []string{}}
	for i := 0; i < lookbackDays; i++ {
		key := day.Format(DateLayout)
		if !logged[key] {
			break
		}
		run.Days = append(run.Days, key)
		day = day.AddDate(0, 0, -1)
	}
	if len(run.Days) >= MinStreakDisplay {
		run.Display = len(run.Days)
	}
	return run
}

// StreakCounters is the persisted, incrementally maintained streak state.
type StreakCounters struct {
	CurrentStreak  int
	LongestStreak  int
	LastLoggedDate string // "" before the first log
	TotalLogs      int
}

// ApplyLogWrite returns the counters after one log write. TotalLogs counts
// every write; the streak fields move only when the log's date equals
// today, so backfilled past or future entries cannot manufacture a streak.
//
// Rules for a today-dated log:
//   - already counted today: no change
//   - last logged yesterday: streak continues
//   - anything else (first log ever, or a gap): streak resets to 1
//
// LongestStreak ratchets up against CurrentStreak after every update.
func ApplyLogWrite(c StreakCounters, logDate, today string) StreakCounters {
	c.TotalLogs++
	if logDate != today {
		return c
	}

	switch c.LastLoggedDate {
	case today:
		// already counted
	case previousDay(today):
		c.CurrentStreak++
	default:
		c.CurrentStreak = 1
	}
	if c.CurrentStreak > c.LongestStreak {
		c.LongestStreak = c.CurrentStreak
	}
	c.LastLoggedDate = today
	return c
}

// StreakDisplay gates a streak length behind the minimum threshold.
func StreakDisplay(length int) int {
	if length >= MinStreakDisplay {
		return length
	}
	return 0
}

func previousDay(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, -1).Format(DateLayout)
}
