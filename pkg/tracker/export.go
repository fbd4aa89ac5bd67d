package tracker

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"NutriTrack-Backend/pkg/nutrition"
)

var exportHeader = []string{
	"date", "meal_type", "food", "quantity",
	"calories", "protein_g", "carbs_g", "fat_g",
}

// BuildFoodLogCSV renders food log items as CSV, one row per entry, with
// macro columns already scaled by the serving multiplier.
func BuildFoodLogCSV(items []nutrition.FoodLogItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, item := range items {
		record := []string{
			item.Date,
			item.MealType,
			item.FoodName,
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			strconv.FormatFloat(item.Calories*item.Quantity, 'f', 1, 64),
			strconv.FormatFloat(item.Protein*item.Quantity, 'f', 1, 64),
			strconv.FormatFloat(item.Carbs*item.Quantity, 'f', 1, 64),
			strconv.FormatFloat(item.Fat*item.Quantity, 'f', 1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
