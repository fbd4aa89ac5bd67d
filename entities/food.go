package entities

import (
	"github.com/google/uuid"
)

// Food is a catalog entry with a per-serving macro profile. UserID is nil
// for global catalog foods, which users can log but not edit.
type Food struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Name        string     `gorm:"index" json:"name"`
	Brand       string     `json:"brand,omitempty"`
	ServingSize float64    `json:"serving_size"`
	ServingUnit string     `json:"serving_unit"` // "g", "ml", "piece"
	Calories    float64    `json:"calories"`
	Protein     float64    `json:"protein"`
	Carbs       float64    `json:"carbs"`
	Fat         float64    `json:"fat"`
	ImageURL    string     `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
