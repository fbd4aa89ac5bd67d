package domain

import (
	"errors"

	"NutriTrack-Backend/pkg/nutrition"
)

var (
	MessageSuccessAddFoodLog        = "food log added successfully"
	MessageSuccessUpdateFoodLog     = "food log updated successfully"
	MessageSuccessDeleteFoodLog     = "food log deleted successfully"
	MessageSuccessAddExerciseLog    = "exercise log added successfully"
	MessageSuccessUpdateExerciseLog = "exercise log updated successfully"
	MessageSuccessDeleteExerciseLog = "exercise log deleted successfully"
	MessageSuccessAddWaterLog       = "water log added successfully"
	MessageSuccessDeleteWaterLog    = "water log deleted successfully"
	MessageSuccessGetDailySummary   = "daily summary retrieved successfully"
	MessageSuccessGetStreak         = "streak retrieved successfully"
	MessageSuccessGetCalendar       = "calendar retrieved successfully"
	MessageSuccessGetWeekly         = "weekly report retrieved successfully"
	MessageSuccessGetDashboard      = "dashboard retrieved successfully"

	MessageFailedAddFoodLog        = "failed to add food log"
	MessageFailedUpdateFoodLog     = "failed to update food log"
	MessageFailedDeleteFoodLog     = "failed to delete food log"
	MessageFailedAddExerciseLog    = "failed to add exercise log"
	MessageFailedUpdateExerciseLog = "failed to update exercise log"
	MessageFailedDeleteExerciseLog = "failed to delete exercise log"
	MessageFailedAddWaterLog       = "failed to add water log"
	MessageFailedDeleteWaterLog    = "failed to delete water log"
	MessageFailedGetDailySummary   = "failed to retrieve daily summary"
	MessageFailedGetStreak         = "failed to retrieve streak"
	MessageFailedGetCalendar       = "failed to retrieve calendar"
	MessageFailedGetWeekly         = "failed to retrieve weekly report"
	MessageFailedExportLogs        = "failed to export logs"
	MessageFailedGetDashboard      = "failed to retrieve dashboard"

	ErrLogEntryNotFound  = errors.New("log entry not found")
	ErrInvalidWeekStart  = errors.New("week start must be a Monday")
	ErrInvalidDateRange  = errors.New("from date must not be after to date")
	ErrMissingBodyWeight = errors.New("body weight required for MET estimate")
)

type (
	AddFoodLogRequest struct {
		FoodID   string  `json:"food_id" validate:"required,uuid"`
		Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
		MealType string  `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
	}

	UpdateFoodLogRequest struct {
		MealType string  `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
		Quantity float64 `json:"quantity" validate:"omitempty,gt=0"`
	}

	// AddExerciseLogRequest takes either an explicit calories-burned count
	// or a MET value from which the service estimates one.
	AddExerciseLogRequest struct {
		Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
		Name            string  `json:"name" validate:"required"`
		DurationMinutes int     `json:"duration_minutes" validate:"required,min=1"`
		CaloriesBurned  *int    `json:"calories_burned" validate:"omitempty,min=0"`
		MET             float64 `json:"met" validate:"omitempty,gt=0"`
	}

	UpdateExerciseLogRequest struct {
		Name            string `json:"name" validate:"omitempty"`
		DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=1"`
		CaloriesBurned  *int   `json:"calories_burned" validate:"omitempty,min=0"`
	}

	AddWaterLogRequest struct {
		Date     string `json:"date" validate:"required,datetime=2006-01-02"`
		AmountMl int    `json:"amount_ml" validate:"required,min=1"`
	}

	FoodLogResponse struct {
		ID       string  `json:"id"`
		FoodID   string  `json:"food_id"`
		FoodName string  `json:"food_name"`
		Date     string  `json:"date"`
		MealType string  `json:"meal_type"`
		Quantity float64 `json:"quantity"`
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}

	ExerciseLogResponse struct {
		ID              string `json:"id"`
		Date            string `json:"date"`
		Name            string `json:"name"`
		DurationMinutes int    `json:"duration_minutes"`
		CaloriesBurned  int    `json:"calories_burned"`
	}

	DailySummaryResponse struct {
		Date    string              `json:"date"`
		Totals  nutrition.DayTotals `json:"totals"`
		WaterMl int                 `json:"water_ml"`
		Targets *TargetsResponse    `json:"targets,omitempty"`
	}

	StreakResponse struct {
		CurrentStreak  int      `json:"current_streak"`
		LongestStreak  int      `json:"longest_streak"`
		DisplayValue   int      `json:"display_value"`
		LastLoggedDate string   `json:"last_logged_date,omitempty"`
		TotalLogs      int      `json:"total_logs"`
		RunDays        []string `json:"run_days"`
	}

	CalendarResponse struct {
		From        string   `json:"from"`
		To          string   `json:"to"`
		LoggedDates []string `json:"logged_dates"`
	}

	WeeklyResponse struct {
		WeekStart       string                  `json:"week_start"`
		Days            []nutrition.DayPoint    `json:"days"`
		FoodLogCount    int                     `json:"food_log_count"`
		RecentExercises []ExerciseLogResponse   `json:"recent_exercises"`
	}

	DashboardResponse struct {
		Date          string              `json:"date"`
		Totals        nutrition.DayTotals `json:"totals"`
		Targets       *TargetsResponse    `json:"targets,omitempty"`
		WaterMl       int                 `json:"water_ml"`
		StreakDisplay int                 `json:"streak_display"`
	}
)
