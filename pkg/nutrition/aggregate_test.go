package nutrition

import (
	"testing"
)

// TestAggregateDay_ServingMultiplierScenario: 2 servings of a food with a
// per-serving profile of 200 cal / 10p / 20c / 5f logged at breakfast must
// contribute exactly double the profile, and only to the breakfast bucket.
func TestAggregateDay_ServingMultiplierScenario(t *testing.T) {
	foods := []FoodLogItem{
		{Date: "2026-08-20", MealType: "breakfast", FoodName: "oats", Quantity: 2, Calories: 200, Protein: 10, Carbs: 20, Fat: 5},
	}
	got := AggregateDay(foods, nil)

	if got.Calories != 400 || got.Protein != 20 || got.Carbs != 40 || got.Fat != 10 {
		t.Errorf("totals = %+v, want 400 cal / 20p / 40c / 10f", got)
	}
	b := got.Meals["breakfast"]
	if b.Calories != 400 || b.Protein != 20 || b.Carbs != 40 || b.Fat != 10 {
		t.Errorf("breakfast = %+v, want 400 cal / 20p / 40c / 10f", b)
	}
	for _, mt := range []string{"lunch", "dinner", "snack"} {
		if got.Meals[mt] != (MealTotals{}) {
			t.Errorf("%s = %+v, want zero", mt, got.Meals[mt])
		}
	}
}

// TestAggregateDay_Additivity: aggregating a union of disjoint log sets
// equals the sum of aggregating each separately.
func TestAggregateDay_Additivity(t *testing.T) {
	a := []FoodLogItem{
		{MealType: "breakfast", Quantity: 1, Calories: 150, Protein: 5, Carbs: 25, Fat: 3},
		{MealType: "lunch", Quantity: 1.5, Calories: 300, Protein: 20, Carbs: 30, Fat: 12},
	}
	b := []FoodLogItem{
		{MealType: "dinner", Quantity: 2, Calories: 250, Protein: 15, Carbs: 20, Fat: 8},
	}

	union := AggregateDay(append(append([]FoodLogItem{}, a...), b...), nil)
	onlyA := AggregateDay(a, nil)
	onlyB := AggregateDay(b, nil)

	if union.Calories != onlyA.Calories+onlyB.Calories {
		t.Errorf("calories: %d != %d + %d", union.Calories, onlyA.Calories, onlyB.Calories)
	}
	if union.Protein != onlyA.Protein+onlyB.Protein {
		t.Errorf("protein: %v != %v + %v", union.Protein, onlyA.Protein, onlyB.Protein)
	}
	if union.Carbs != onlyA.Carbs+onlyB.Carbs {
		t.Errorf("carbs: %v != %v + %v", union.Carbs, onlyA.Carbs, onlyB.Carbs)
	}
	if union.Fat != onlyA.Fat+onlyB.Fat {
		t.Errorf("fat: %v != %v + %v", union.Fat, onlyA.Fat, onlyB.Fat)
	}
}

// TestAggregateDay_ExerciseSubtractsCaloriesOnly: burned calories reduce
// the calorie total but never the gram totals.
func TestAggregateDay_ExerciseSubtractsCaloriesOnly(t *testing.T) {
	foods := []FoodLogItem{
		{MealType: "lunch", Quantity: 1, Calories: 600, Protein: 30, Carbs: 60, Fat: 20},
	}
	exercises := []ExerciseItem{
		{Name: "run", DurationMinutes: 30, CaloriesBurned: 250},
		{Name: "walk", DurationMinutes: 20, CaloriesBurned: 80},
	}
	got := AggregateDay(foods, exercises)

	if got.Calories != 270 {
		t.Errorf("calories = %d, want 270", got.Calories)
	}
	if got.CaloriesBurned != 330 {
		t.Errorf("calories burned = %d, want 330", got.CaloriesBurned)
	}
	if got.Protein != 30 || got.Carbs != 60 || got.Fat != 20 {
		t.Errorf("grams changed by exercise: %+v", got)
	}
}

// TestAggregateDay_NetNegativeAllowed: the daily summary may go negative;
// only the weekly chart floors at zero.
func TestAggregateDay_NetNegativeAllowed(t *testing.T) {
	foods := []FoodLogItem{
		{MealType: "snack", Quantity: 1, Calories: 100},
	}
	exercises := []ExerciseItem{{CaloriesBurned: 400}}
	if got := AggregateDay(foods, exercises); got.Calories != -300 {
		t.Errorf("calories = %d, want -300", got.Calories)
	}
}

// TestAggregateDay_Empty: empty inputs yield zero totals, never an error,
// and all four meal buckets still exist.
func TestAggregateDay_Empty(t *testing.T) {
	got := AggregateDay(nil, nil)
	if got.Calories != 0 || got.Protein != 0 || got.Carbs != 0 || got.Fat != 0 {
		t.Errorf("totals = %+v, want all zero", got)
	}
	if len(got.Meals) != len(MealTypes) {
		t.Errorf("meal buckets = %d, want %d", len(got.Meals), len(MealTypes))
	}
}

// TestAggregateDay_MacroRounding: grams round to one decimal place,
// calories to the nearest integer.
func TestAggregateDay_MacroRounding(t *testing.T) {
	foods := []FoodLogItem{
		{MealType: "snack", Quantity: 0.33, Calories: 100.4, Protein: 3.33, Carbs: 7.77, Fat: 1.11},
	}
	got := AggregateDay(foods, nil)
	if got.Calories != 33 { // 0.33*100.4 = 33.132
		t.Errorf("calories = %d, want 33", got.Calories)
	}
	if got.Protein != 1.1 { // 0.33*3.33 = 1.0989
		t.Errorf("protein = %v, want 1.1", got.Protein)
	}
	if got.Carbs != 2.6 { // 0.33*7.77 = 2.5641
		t.Errorf("carbs = %v, want 2.6", got.Carbs)
	}
	if got.Fat != 0.4 { // 0.33*1.11 = 0.3663
		t.Errorf("fat = %v, want 0.4", got.Fat)
	}
}
