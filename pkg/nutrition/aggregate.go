package nutrition

import (
	"math"
)

// MealTypes is the fixed set of meal buckets, in display order.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

// FoodLogItem is one logged consumption: a food's per-serving macro profile
// plus the serving multiplier actually eaten. Quantity already embeds the
// serving size; contributions are macro * Quantity, nothing else.
type FoodLogItem struct {
	Date     string
	MealType string
	FoodName string
	Quantity float64
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// ExerciseItem is one logged exercise session.
type ExerciseItem struct {
	Date            string
	Name            string
	DurationMinutes int
	CaloriesBurned  int
}

// MealTotals is the aggregate for one meal bucket.
type MealTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DayTotals is the reduction of one day's logs. Calories nets out exercise;
// macro grams never do (exercise has no macro composition). Calories may be
// negative here; only the weekly chart floors at zero.
type DayTotals struct {
	Calories       int                   `json:"calories"`
	Protein        float64               `json:"protein"`
	Carbs          float64               `json:"carbs"`
	Fat            float64               `json:"fat"`
	CaloriesBurned int                   `json:"calories_burned"`
	Meals          map[string]MealTotals `json:"meals"`
}

// AggregateDay reduces one day's food and exercise logs into totals plus a
// per-meal breakdown. Pure; empty inputs yield zero-valued totals. All four
// meal buckets are always present.
func AggregateDay(foods []FoodLogItem, exercises []ExerciseItem) DayTotals {
	var calories, protein, carbs, fat float64
	type rawMeal struct{ calories, protein, carbs, fat float64 }
	meals := make(map[string]rawMeal, len(MealTypes))

	for _, f := range foods {
		c := f.Calories * f.Quantity
		p := f.Protein * f.Quantity
		cb := f.Carbs * f.Quantity
		ft := f.Fat * f.Quantity

		calories += c
		protein += p
		carbs += cb
		fat += ft

		m := meals[f.MealType]
		m.calories += c
		m.protein += p
		m.carbs += cb
		m.fat += ft
		meals[f.MealType] = m
	}

	burned := 0
	for _, e := range exercises {
		burned += e.CaloriesBurned
	}

	totals := DayTotals{
		Calories:       int(math.Round(calories)) - burned,
		Protein:        round1(protein),
		Carbs:          round1(carbs),
		Fat:            round1(fat),
		CaloriesBurned: burned,
		Meals:          make(map[string]MealTotals, len(MealTypes)),
	}
	for _, mt := range MealTypes {
		m := meals[mt]
		totals.Meals[mt] = MealTotals{
			Calories: int(math.Round(m.calories)),
			Protein:  round1(m.protein),
			Carbs:    round1(m.carbs),
			Fat:      round1(m.fat),
		}
	}
	return totals
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
