package nutrition

import (
	"math"
	"sort"
	"time"
)

// DayPoint is one slot of the weekly chart series.
//
// Calories nets out exercise and floors at zero for chart rendering. The
// three macro-calorie fields feed a stacked bar and are derived from gram
// totals alone; they do not net out exercise and so need not sum to
// Calories. Callers rely on that split staying as-is.
type DayPoint struct {
	Date            string                   `json:"date"`
	Weekday         string                   `json:"weekday"`
	Calories        int                      `json:"calories"`
	Protein         float64                  `json:"protein"`
	Carbs           float64                  `json:"carbs"`
	Fat             float64                  `json:"fat"`
	ProteinCalories int                      `json:"protein_calories"`
	CarbsCalories   int                      `json:"carbs_calories"`
	FatCalories     int                      `json:"fat_calories"`
	CaloriesBurned  int                      `json:"calories_burned"`
	Meals           map[string][]FoodLogItem `json:"meals"`
}

// WeeklySeries is the full weekly report: exactly seven points, Monday
// through Sunday, plus the drill-down extras the chart page shows.
type WeeklySeries struct {
	Days         [7]DayPoint `json:"days"`
	FoodLogCount int         `json:"food_log_count"`
}

// BuildWeeklySeries produces the fixed 7-slot Monday through Sunday series for the
// week starting at weekStartMonday. Days without data keep all derived
// fields at zero. Entries dated outside the week are ignored.
func BuildWeeklySeries(weekStartMonday string, foods []FoodLogItem, exercises []ExerciseItem) WeeklySeries {
	start, err := time.Parse(DateLayout, weekStartMonday)
	if err != nil {
		return WeeklySeries{}
	}

	foodsByDate := make(map[string][]FoodLogItem)
	for _, f := range foods {
		foodsByDate[f.Date] = append(foodsByDate[f.Date], f)
	}
	exercisesByDate := make(map[string][]ExerciseItem)
	for _, e := range exercises {
		exercisesByDate[e.Date] = append(exercisesByDate[e.Date], e)
	}

	series := WeeklySeries{}
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format(DateLayout)
		dayFoods := foodsByDate[key]
		totals := AggregateDay(dayFoods, exercisesByDate[key])

		calories := totals.Calories
		if calories < 0 {
			calories = 0
		}

		meals := make(map[string][]FoodLogItem, len(MealTypes))
		for _, mt := range MealTypes {
			meals[mt] = []FoodLogItem{}
		}
		for _, f := range dayFoods {
			meals[f.MealType] = append(meals[f.MealType], f)
		}

		series.Days[i] = DayPoint{
			Date:            key,
			Weekday:         day.Weekday().String(),
			Calories:        calories,
			Protein:         totals.Protein,
			Carbs:           totals.Carbs,
			Fat:             totals.Fat,
			ProteinCalories: int(math.Round(totals.Protein * 4)),
			CarbsCalories:   int(math.Round(totals.Carbs * 4)),
			FatCalories:     int(math.Round(totals.Fat * 9)),
			CaloriesBurned:  totals.CaloriesBurned,
			Meals:           meals,
		}
		series.FoodLogCount += len(dayFoods)
	}
	return series
}

// TopRecentExercises returns up to n exercises, most recent date first.
// Order within a date is preserved from the input.
func TopRecentExercises(items []ExerciseItem, n int) []ExerciseItem {
	out := make([]ExerciseItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// EstimateExerciseCalories applies the MET formula: MET * weightKg * hours,
// rounded to the nearest calorie.
func EstimateExerciseCalories(met, weightKg float64, durationMinutes int) int {
	return int(math.Round(met * weightKg * float64(durationMinutes) / 60))
}
