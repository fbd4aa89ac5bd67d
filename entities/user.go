package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timestamp struct {
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	IsVerified bool      `json:"is_verified"`

	// Body metrics and goal settings used to compute daily targets.
	// All optional; targets fall back to the manual overrides below
	// when any metric is missing.
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	HeightCm      *float64 `json:"height_cm,omitempty"`
	Age           *int     `json:"age,omitempty"`
	Sex           string   `json:"sex,omitempty"`            // "male", "female", "other"
	ActivityLevel string   `json:"activity_level,omitempty"` // sedentary .. extra_active
	Goal          string   `json:"goal,omitempty"`           // weight_loss, maintenance, muscle_gain

	// Manually entered daily targets, used when metrics are incomplete.
	ManualCalorieTarget *int `json:"manual_calorie_target,omitempty"`
	ManualProteinTarget *int `json:"manual_protein_target,omitempty"`
	ManualCarbsTarget   *int `json:"manual_carbs_target,omitempty"`
	ManualFatTarget     *int `json:"manual_fat_target,omitempty"`

	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`

	Timestamp
}
