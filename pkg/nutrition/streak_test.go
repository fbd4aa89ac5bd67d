package nutrition

import (
	"reflect"
	"testing"
)

func loggedSet(dates ...string) map[string]bool {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set
}

// TestComputeStreak_ConsecutiveRun: a 4-day run touching today is returned
// today-first and surfaced (>= 3 days).
func TestComputeStreak_ConsecutiveRun(t *testing.T) {
	logged := loggedSet("2026-08-25", "2026-08-26", "2026-08-27", "2026-08-28")
	got := ComputeStreak(logged, "2026-08-28", 30)

	wantDays := []string{"2026-08-28", "2026-08-27", "2026-08-26", "2026-08-25"}
	if !reflect.DeepEqual(got.Days, wantDays) {
		t.Errorf("days = %v, want %v", got.Days, wantDays)
	}
	if got.Display != 4 {
		t.Errorf("display = %d, want 4", got.Display)
	}
}

// TestComputeStreak_StopsAtFirstGap: days beyond the first missing day do
// not count, even if a longer run exists earlier in the window.
func TestComputeStreak_StopsAtFirstGap(t *testing.T) {
	// Today and yesterday logged, the 26th missing, then five more days.
	logged := loggedSet(
		"2026-08-28", "2026-08-27",
		"2026-08-25", "2026-08-24", "2026-08-23", "2026-08-22", "2026-08-21",
	)
	got := ComputeStreak(logged, "2026-08-28", 30)
	if len(got.Days) != 2 {
		t.Errorf("run length = %d, want 2", len(got.Days))
	}
}

// TestComputeStreak_RecencyAnchored: a 10-day run ending yesterday yields
// an empty run when today has no log.
func TestComputeStreak_RecencyAnchored(t *testing.T) {
	logged := make(map[string]bool)
	for _, d := range []string{
		"2026-08-27", "2026-08-26", "2026-08-25", "2026-08-24", "2026-08-23",
		"2026-08-22", "2026-08-21", "2026-08-20", "2026-08-19", "2026-08-18",
	} {
		logged[d] = true
	}
	got := ComputeStreak(logged, "2026-08-28", 30)
	if len(got.Days) != 0 || got.Display != 0 {
		t.Errorf("got %+v, want empty run", got)
	}
}

// TestComputeStreak_BoundedByLookback: the run never exceeds the lookback
// window even when every day is logged.
func TestComputeStreak_BoundedByLookback(t *testing.T) {
	logged := make(map[string]bool)
	day := "2026-08-28"
	for i := 0; i < 60; i++ {
		logged[day] = true
		day = previousDay(day)
	}
	got := ComputeStreak(logged, "2026-08-28", 30)
	if len(got.Days) != 30 {
		t.Errorf("run length = %d, want 30", len(got.Days))
	}
}

// TestComputeStreak_DisplayGating: runs of 1 or 2 days show as 0, a 3-day
// run shows as 3.
func TestComputeStreak_DisplayGating(t *testing.T) {
	cases := []struct {
		days    []string
		display int
	}{
		{[]string{"2026-08-28"}, 0},
		{[]string{"2026-08-28", "2026-08-27"}, 0},
		{[]string{"2026-08-28", "2026-08-27", "2026-08-26"}, 3},
	}
	for _, tc := range cases {
		got := ComputeStreak(loggedSet(tc.days...), "2026-08-28", 30)
		if got.Display != tc.display {
			t.Errorf("%d-day run: display = %d, want %d", len(tc.days), got.Display, tc.display)
		}
		if len(got.Days) != len(tc.days) {
			t.Errorf("%d-day run: tracked length = %d", len(tc.days), len(got.Days))
		}
	}
}

// TestApplyLogWrite_FirstLogEver starts the streak at 1.
func TestApplyLogWrite_FirstLogEver(t *testing.T) {
	got := ApplyLogWrite(StreakCounters{}, "2026-08-28", "2026-08-28")
	want := StreakCounters{CurrentStreak: 1, LongestStreak: 1, LastLoggedDate: "2026-08-28", TotalLogs: 1}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

// TestApplyLogWrite_SameDayIdempotent: a second log on an already-counted
// day moves TotalLogs but nothing else.
func TestApplyLogWrite_SameDayIdempotent(t *testing.T) {
	st := StreakCounters{CurrentStreak: 5, LongestStreak: 8, LastLoggedDate: "2026-08-28", TotalLogs: 40}
	got := ApplyLogWrite(st, "2026-08-28", "2026-08-28")
	if got.CurrentStreak != 5 || got.LongestStreak != 8 {
		t.Errorf("counters moved on same-day log: %+v", got)
	}
	if got.TotalLogs != 41 {
		t.Errorf("total logs = %d, want 41", got.TotalLogs)
	}
}

// TestApplyLogWrite_ContinuationLaw: last logged yesterday with streak k
// yields k+1, and the longest ratchets to at least k+1.
func TestApplyLogWrite_ContinuationLaw(t *testing.T) {
	st := StreakCounters{CurrentStreak: 7, LongestStreak: 7, LastLoggedDate: "2026-08-27", TotalLogs: 20}
	got := ApplyLogWrite(st, "2026-08-28", "2026-08-28")
	if got.CurrentStreak != 8 {
		t.Errorf("current = %d, want 8", got.CurrentStreak)
	}
	if got.LongestStreak != 8 {
		t.Errorf("longest = %d, want 8", got.LongestStreak)
	}
	if got.LastLoggedDate != "2026-08-28" {
		t.Errorf("last logged = %s, want 2026-08-28", got.LastLoggedDate)
	}
}

// TestApplyLogWrite_ResetLaw: a gap of two or more days resets to 1
// regardless of the prior streak, while the longest is preserved.
func TestApplyLogWrite_ResetLaw(t *testing.T) {
	st := StreakCounters{CurrentStreak: 12, LongestStreak: 12, LastLoggedDate: "2026-08-20", TotalLogs: 50}
	got := ApplyLogWrite(st, "2026-08-28", "2026-08-28")
	if got.CurrentStreak != 1 {
		t.Errorf("current = %d, want 1", got.CurrentStreak)
	}
	if got.LongestStreak != 12 {
		t.Errorf("longest = %d, want 12", got.LongestStreak)
	}
}

// TestApplyLogWrite_BackfillDoesNotTouchCounters: logging for a past or
// future date only bumps TotalLogs. Retroactive entries cannot manufacture
// a streak.
func TestApplyLogWrite_BackfillDoesNotTouchCounters(t *testing.T) {
	st := StreakCounters{CurrentStreak: 3, LongestStreak: 6, LastLoggedDate: "2026-08-28", TotalLogs: 10}
	for _, logDate := range []string{"2026-08-01", "2026-09-15"} {
		got := ApplyLogWrite(st, logDate, "2026-08-28")
		if got.CurrentStreak != 3 || got.LongestStreak != 6 || got.LastLoggedDate != "2026-08-28" {
			t.Errorf("logDate=%s: counters moved: %+v", logDate, got)
		}
		if got.TotalLogs != 11 {
			t.Errorf("logDate=%s: total logs = %d, want 11", logDate, got.TotalLogs)
		}
	}
}

// TestStreakDisplay gates raw lengths behind the 3-day threshold.
func TestStreakDisplay(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0}, {1, 0}, {2, 0}, {3, 3}, {10, 10},
	}
	for _, tc := range cases {
		if got := StreakDisplay(tc.in); got != tc.want {
			t.Errorf("StreakDisplay(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
