package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessAddFood         = "food added successfully"
	MessageSuccessUpdateFood      = "food updated successfully"
	MessageSuccessDeleteFood      = "food deleted successfully"
	MessageSuccessGetFoods        = "foods retrieved successfully"
	MessageSuccessUploadFoodImage = "food image uploaded successfully"

	MessageFailedAddFood         = "failed to add food"
	MessageFailedUpdateFood      = "failed to update food"
	MessageFailedDeleteFood      = "failed to delete food"
	MessageFailedGetFoods        = "failed to retrieve foods"
	MessageFailedUploadFoodImage = "failed to upload food image"

	ErrFoodNotFound       = errors.New("food not found")
	ErrFoodNotEditable    = errors.New("global catalog foods cannot be modified")
	ErrInvalidServingSize = errors.New("serving size must be positive")
)

type (
	AddFoodRequest struct {
		Name        string  `json:"name" validate:"required"`
		Brand       string  `json:"brand" validate:"omitempty"`
		ServingSize float64 `json:"serving_size" validate:"required,gt=0"`
		ServingUnit string  `json:"serving_unit" validate:"required"`
		Calories    float64 `json:"calories" validate:"min=0"`
		Protein     float64 `json:"protein" validate:"min=0"`
		Carbs       float64 `json:"carbs" validate:"min=0"`
		Fat         float64 `json:"fat" validate:"min=0"`
	}

	UpdateFoodRequest struct {
		Name        string   `json:"name" validate:"omitempty"`
		Brand       string   `json:"brand" validate:"omitempty"`
		ServingSize *float64 `json:"serving_size" validate:"omitempty,gt=0"`
		ServingUnit string   `json:"serving_unit" validate:"omitempty"`
		Calories    *float64 `json:"calories" validate:"omitempty,min=0"`
		Protein     *float64 `json:"protein" validate:"omitempty,min=0"`
		Carbs       *float64 `json:"carbs" validate:"omitempty,min=0"`
		Fat         *float64 `json:"fat" validate:"omitempty,min=0"`
	}

	UploadFoodImageRequest struct {
		FoodID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FoodResponse struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Brand       string  `json:"brand,omitempty"`
		ServingSize float64 `json:"serving_size"`
		ServingUnit string  `json:"serving_unit"`
		Calories    float64 `json:"calories"`
		Protein     float64 `json:"protein"`
		Carbs       float64 `json:"carbs"`
		Fat         float64 `json:"fat"`
		ImageURL    string  `json:"image_url,omitempty"`
		IsCustom    bool    `json:"is_custom"`
	}
)
