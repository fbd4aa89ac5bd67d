package tracker

import (
	"strings"
	"testing"

	"NutriTrack-Backend/pkg/nutrition"
)

// TestBuildFoodLogCSV checks the header row and that macro columns are
// scaled by the serving multiplier.
func TestBuildFoodLogCSV(t *testing.T) {
	items := []nutrition.FoodLogItem{
		{Date: "2026-08-27", MealType: "breakfast", FoodName: "oats", Quantity: 2, Calories: 200, Protein: 10, Carbs: 20, Fat: 5},
		{Date: "2026-08-27", MealType: "snack", FoodName: "apple", Quantity: 1, Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3},
	}

	out, err := BuildFoodLogCSV(items)
	if err != nil {
		t.Fatalf("BuildFoodLogCSV() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3 (header + 2 rows)", len(lines))
	}
	if lines[0] != "date,meal_type,food,quantity,calories,protein_g,carbs_g,fat_g" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2026-08-27,breakfast,oats,2,400.0,20.0,40.0,10.0" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "2026-08-27,snack,apple,1,95.0,0.5,25.0,0.3" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

// TestBuildFoodLogCSV_Empty emits only the header.
func TestBuildFoodLogCSV_Empty(t *testing.T) {
	out, err := BuildFoodLogCSV(nil)
	if err != nil {
		t.Fatalf("BuildFoodLogCSV() error: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "date,meal_type,food,quantity,calories,protein_g,carbs_g,fat_g" {
		t.Errorf("got %q, want header only", got)
	}
}
