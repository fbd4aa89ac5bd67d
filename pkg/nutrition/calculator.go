package nutrition

import (
	"math"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Unknown levels fall back to sedentary.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extra_active":      1.9,
}

// goalAdjustments maps a goal to its calorie delta and macro percentage
// split (protein/carbs/fat) of the resulting calorie target.
var goalAdjustments = map[string]goalAdjustment{
	"weight_loss": {CalorieDelta: -500, ProteinPct: 30, CarbsPct: 35, FatPct: 35},
	"maintenance": {CalorieDelta: 0, ProteinPct: 25, CarbsPct: 40, FatPct: 35},
	"muscle_gain": {CalorieDelta: 300, ProteinPct: 30, CarbsPct: 45, FatPct: 25},
}

type goalAdjustment struct {
	CalorieDelta int
	ProteinPct   float64
	CarbsPct     float64
	FatPct       float64
}

// Profile carries the body metrics and goal settings needed to compute
// daily targets. Inputs are assumed pre-validated by the caller; a caller
// missing any metric should fall back to manual targets instead of
// calling ComputeTargets.
type Profile struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Sex           string // "male", "female", "other"
	ActivityLevel string
	Goal          string
}

// Targets is a computed daily calorie target and macro split.
type Targets struct {
	BMR      int `json:"bmr"`
	TDEE     int `json:"tdee"`
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// ComputeTargets derives a daily calorie target and protein/carbs/fat gram
// split from body metrics, activity level, and goal.
//
// BMR uses Mifflin-St Jeor (male +5, female/other -161). TDEE is BMR times
// the activity multiplier, rounded to the nearest integer. The goal then
// shifts calories and fixes the macro percentage split; grams divide macro
// calories by 4 (protein, carbs) or 9 (fat).
func ComputeTargets(p Profile) Targets {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = 1.2
	}
	tdee := math.Round(bmr * mult)

	adj, ok := goalAdjustments[p.Goal]
	if !ok {
		adj = goalAdjustments["maintenance"]
	}
	calories := tdee + float64(adj.CalorieDelta)

	return Targets{
		BMR:      int(math.Round(bmr)),
		TDEE:     int(tdee),
		Calories: int(calories),
		ProteinG: int(math.Round(calories * adj.ProteinPct / 100 / 4)),
		CarbsG:   int(math.Round(calories * adj.CarbsPct / 100 / 4)),
		FatG:     int(math.Round(calories * adj.FatPct / 100 / 9)),
	}
}
