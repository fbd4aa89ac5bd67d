package nutrition

import (
	"testing"
)

// TestBuildWeeklySeries_AlwaysSevenDays: an empty week still yields exactly
// seven Monday..Sunday points with all derived fields at zero.
func TestBuildWeeklySeries_AlwaysSevenDays(t *testing.T) {
	got := BuildWeeklySeries("2026-08-24", nil, nil) // a Monday

	wantDates := []string{
		"2026-08-24", "2026-08-25", "2026-08-26", "2026-08-27",
		"2026-08-28", "2026-08-29", "2026-08-30",
	}
	wantWeekdays := []string{
		"Monday", "Tuesday", "Wednesday", "Thursday",
		"Friday", "Saturday", "Sunday",
	}
	for i, p := range got.Days {
		if p.Date != wantDates[i] {
			t.Errorf("day %d: date = %s, want %s", i, p.Date, wantDates[i])
		}
		if p.Weekday != wantWeekdays[i] {
			t.Errorf("day %d: weekday = %s, want %s", i, p.Weekday, wantWeekdays[i])
		}
		if p.Calories != 0 || p.Protein != 0 || p.ProteinCalories != 0 {
			t.Errorf("day %d: non-zero fields on empty week: %+v", i, p)
		}
	}
	if got.FoodLogCount != 0 {
		t.Errorf("food log count = %d, want 0", got.FoodLogCount)
	}
}

// TestBuildWeeklySeries_CalorieFloor: a day where exercise exceeds intake
// reports 0, never a negative calorie count.
func TestBuildWeeklySeries_CalorieFloor(t *testing.T) {
	foods := []FoodLogItem{
		{Date: "2026-08-25", MealType: "lunch", Quantity: 1, Calories: 300, Protein: 10, Carbs: 30, Fat: 8},
	}
	exercises := []ExerciseItem{
		{Date: "2026-08-25", Name: "long ride", DurationMinutes: 120, CaloriesBurned: 900},
	}
	got := BuildWeeklySeries("2026-08-24", foods, exercises)

	tuesday := got.Days[1]
	if tuesday.Calories != 0 {
		t.Errorf("calories = %d, want 0 (floored)", tuesday.Calories)
	}
	if tuesday.CaloriesBurned != 900 {
		t.Errorf("calories burned = %d, want 900", tuesday.CaloriesBurned)
	}
}

// TestBuildWeeklySeries_MacroCaloriesIgnoreExercise: the stacked-bar fields
// derive from gram totals alone. On a day with exercise they intentionally
// do not reconcile with the netted Calories field.
func TestBuildWeeklySeries_MacroCaloriesIgnoreExercise(t *testing.T) {
	foods := []FoodLogItem{
		{Date: "2026-08-24", MealType: "dinner", Quantity: 1, Calories: 500, Protein: 25, Carbs: 50, Fat: 15},
	}
	exercises := []ExerciseItem{
		{Date: "2026-08-24", Name: "run", CaloriesBurned: 200},
	}
	got := BuildWeeklySeries("2026-08-24", foods, exercises)

	monday := got.Days[0]
	if monday.Calories != 300 {
		t.Errorf("net calories = %d, want 300", monday.Calories)
	}
	if monday.ProteinCalories != 100 || monday.CarbsCalories != 200 || monday.FatCalories != 135 {
		t.Errorf("macro calories = %d/%d/%d, want 100/200/135",
			monday.ProteinCalories, monday.CarbsCalories, monday.FatCalories)
	}
	// 100+200+135 = 435 != 300: the divergence is load-bearing for the UI.
	if monday.ProteinCalories+monday.CarbsCalories+monday.FatCalories == monday.Calories {
		t.Error("macro calorie stack unexpectedly reconciled with net calories")
	}
}

// TestBuildWeeklySeries_MealGroupingAndCount groups raw items per day per
// meal and counts food logs across the window.
func TestBuildWeeklySeries_MealGroupingAndCount(t *testing.T) {
	foods := []FoodLogItem{
		{Date: "2026-08-24", MealType: "breakfast", FoodName: "eggs", Quantity: 2, Calories: 70},
		{Date: "2026-08-24", MealType: "breakfast", FoodName: "toast", Quantity: 1, Calories: 80},
		{Date: "2026-08-26", MealType: "snack", FoodName: "apple", Quantity: 1, Calories: 95},
		{Date: "2026-09-05", MealType: "lunch", FoodName: "outside window", Quantity: 1, Calories: 500},
	}
	got := BuildWeeklySeries("2026-08-24", foods, nil)

	if n := len(got.Days[0].Meals["breakfast"]); n != 2 {
		t.Errorf("monday breakfast items = %d, want 2", n)
	}
	if n := len(got.Days[2].Meals["snack"]); n != 1 {
		t.Errorf("wednesday snack items = %d, want 1", n)
	}
	if got.FoodLogCount != 3 {
		t.Errorf("food log count = %d, want 3 (out-of-window entry ignored)", got.FoodLogCount)
	}
}

// TestTopRecentExercises keeps the five most recent by date.
func TestTopRecentExercises(t *testing.T) {
	items := []ExerciseItem{
		{Date: "2026-08-20", Name: "a"},
		{Date: "2026-08-28", Name: "b"},
		{Date: "2026-08-22", Name: "c"},
		{Date: "2026-08-27", Name: "d"},
		{Date: "2026-08-25", Name: "e"},
		{Date: "2026-08-26", Name: "f"},
	}
	got := TopRecentExercises(items, 5)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[0].Name != "b" || got[4].Name != "c" {
		t.Errorf("order = %v", got)
	}
	for _, e := range got {
		if e.Name == "a" {
			t.Error("oldest entry survived the cut")
		}
	}
}

// TestEstimateExerciseCalories checks the MET formula against a hand
// computation: 8 MET * 70kg * 0.5h = 280.
func TestEstimateExerciseCalories(t *testing.T) {
	if got := EstimateExerciseCalories(8, 70, 30); got != 280 {
		t.Errorf("got %d, want 280", got)
	}
	if got := EstimateExerciseCalories(3.5, 80, 45); got != 210 {
		t.Errorf("got %d, want 210", got)
	}
}
