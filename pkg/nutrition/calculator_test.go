package nutrition

import (
	"testing"
)

func baseProfile() Profile {
	return Profile{
		WeightKg:      70,
		HeightCm:      170,
		Age:           30,
		Sex:           "male",
		ActivityLevel: "moderately_active",
		Goal:          "maintenance",
	}
}

// TestComputeTargets_Reference pins the calculator to hand-computed values
// for a fixed profile: BMR = 10*70 + 6.25*170 - 5*30 + 5 = 1617.5,
// TDEE = round(1617.5 * 1.55) = 2507, maintenance split 25/40/35.
func TestComputeTargets_Reference(t *testing.T) {
	got := ComputeTargets(baseProfile())

	want := Targets{
		BMR:      1618,
		TDEE:     2507,
		Calories: 2507,
		ProteinG: 157, // round(2507*0.25/4)
		CarbsG:   251, // round(2507*0.40/4)
		FatG:     97,  // round(2507*0.35/9)
	}
	if got != want {
		t.Errorf("ComputeTargets() = %+v, want %+v", got, want)
	}
}

// TestComputeTargets_FemaleBMR verifies the -161 constant for non-male
// profiles: 1617.5 - 5 - 161 = 1451.5.
func TestComputeTargets_FemaleBMR(t *testing.T) {
	for _, sex := range []string{"female", "other"} {
		p := baseProfile()
		p.Sex = sex
		got := ComputeTargets(p)
		if got.BMR != 1452 {
			t.Errorf("sex=%s: BMR = %d, want 1452", sex, got.BMR)
		}
	}
}

// TestComputeTargets_GoalAdjustments verifies the calorie delta per goal
// against the maintenance baseline.
func TestComputeTargets_GoalAdjustments(t *testing.T) {
	baseline := ComputeTargets(baseProfile())

	cases := []struct {
		goal  string
		delta int
	}{
		{"weight_loss", -500},
		{"maintenance", 0},
		{"muscle_gain", 300},
	}
	for _, tc := range cases {
		p := baseProfile()
		p.Goal = tc.goal
		got := ComputeTargets(p)
		if got.Calories != baseline.TDEE+tc.delta {
			t.Errorf("goal=%s: calories = %d, want %d", tc.goal, got.Calories, baseline.TDEE+tc.delta)
		}
	}
}

// TestComputeTargets_MuscleGainSplit checks the 30/45/25 split on the
// adjusted calorie target: 2507+300 = 2807.
func TestComputeTargets_MuscleGainSplit(t *testing.T) {
	p := baseProfile()
	p.Goal = "muscle_gain"
	got := ComputeTargets(p)

	if got.ProteinG != 211 { // round(2807*0.30/4) = round(210.525)
		t.Errorf("protein = %d, want 211", got.ProteinG)
	}
	if got.CarbsG != 316 { // round(2807*0.45/4) = round(315.7875)
		t.Errorf("carbs = %d, want 316", got.CarbsG)
	}
	if got.FatG != 78 { // round(2807*0.25/9) = round(77.97)
		t.Errorf("fat = %d, want 78", got.FatG)
	}
}

// TestComputeTargets_ActivityMultipliers walks the full multiplier table.
func TestComputeTargets_ActivityMultipliers(t *testing.T) {
	cases := []struct {
		level string
		tdee  int // round(1617.5 * multiplier)
	}{
		{"sedentary", 1941},
		{"lightly_active", 2224},
		{"moderately_active", 2507},
		{"very_active", 2790},
		{"extra_active", 3073},
		{"", 1941},        // unknown defaults to sedentary
		{"couch", 1941},   // unknown defaults to sedentary
	}
	for _, tc := range cases {
		p := baseProfile()
		p.ActivityLevel = tc.level
		got := ComputeTargets(p)
		if got.TDEE != tc.tdee {
			t.Errorf("level=%q: TDEE = %d, want %d", tc.level, got.TDEE, tc.tdee)
		}
	}
}

// TestComputeTargets_UnknownGoalFallsBackToMaintenance keeps the function
// total for out-of-enum goals instead of panicking or zeroing targets.
func TestComputeTargets_UnknownGoalFallsBackToMaintenance(t *testing.T) {
	p := baseProfile()
	p.Goal = "bulk???"
	got := ComputeTargets(p)
	want := ComputeTargets(baseProfile())
	if got != want {
		t.Errorf("unknown goal = %+v, want maintenance %+v", got, want)
	}
}
