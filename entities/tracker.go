package entities

import (
	"github.com/google/uuid"
)

// Log dates are stored as local calendar day strings ("2006-01-02"), not
// timestamps. All aggregation keys on this column.

type FoodLogEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"index:idx_food_logs_user_date" json:"user_id"`
	FoodID      uuid.UUID `json:"food_id"`
	Date        string    `gorm:"index:idx_food_logs_user_date" json:"date"`
	MealType    string    `json:"meal_type"` // breakfast, lunch, dinner, snack
	Quantity    float64   `json:"quantity"`  // serving multiplier
	ServingSize float64   `json:"serving_size"`

	User *User `gorm:"foreignKey:UserID"`
	Food *Food `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type ExerciseLogEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"index:idx_exercise_logs_user_date" json:"user_id"`
	Date            string    `gorm:"index:idx_exercise_logs_user_date" json:"date"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	CaloriesBurned  int       `json:"calories_burned"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type WaterLogEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index:idx_water_logs_user_date" json:"user_id"`
	Date     string    `gorm:"index:idx_water_logs_user_date" json:"date"`
	AmountMl int       `json:"amount_ml"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// StreakState holds the incrementally maintained streak counters. Updated
// in the same transaction as the log insert, and only when the log's date
// equals the caller's "today" (backfilled entries never touch counters).
type StreakState struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	CurrentStreak  int       `json:"current_streak"`
	LongestStreak  int       `json:"longest_streak"`
	LastLoggedDate string    `json:"last_logged_date,omitempty"`
	TotalLogs      int       `json:"total_logs"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
