package food

import (
	"context"
	"errors"

	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"NutriTrack-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.AddFoodRequest, userID string) (domain.FoodResponse, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, userID string) error
		DeleteFood(ctx context.Context, id string, userID string) error
		GetFoodByID(ctx context.Context, id string, userID string) (domain.FoodResponse, error)
		SearchFoods(ctx context.Context, userID string, query string, page, limit int) ([]domain.FoodResponse, int64, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest, userID string) (domain.FoodResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodResponse{}, domain.ErrParseUUID
	}

	food := &entities.Food{
		ID:          uuid.New(),
		UserID:      &userUUID,
		Name:        req.Name,
		Brand:       req.Brand,
		ServingSize: req.ServingSize,
		ServingUnit: req.ServingUnit,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
	}
	if err := s.foodRepository.CreateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}
	return toFoodResponse(food), nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, userID string) error {
	food, err := s.ownedFood(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		food.Name = req.Name
	}
	if req.Brand != "" {
		food.Brand = req.Brand
	}
	if req.ServingSize != nil {
		food.ServingSize = *req.ServingSize
	}
	if req.ServingUnit != "" {
		food.ServingUnit = req.ServingUnit
	}
	if req.Calories != nil {
		food.Calories = *req.Calories
	}
	if req.Protein != nil {
		food.Protein = *req.Protein
	}
	if req.Carbs != nil {
		food.Carbs = *req.Carbs
	}
	if req.Fat != nil {
		food.Fat = *req.Fat
	}

	return s.foodRepository.UpdateFood(ctx, food)
}

func (s *foodService) DeleteFood(ctx context.Context, id string, userID string) error {
	if _, err := s.ownedFood(ctx, id, userID); err != nil {
		return err
	}
	return s.foodRepository.DeleteFood(ctx, id)
}

func (s *foodService) GetFoodByID(ctx context.Context, id string, userID string) (domain.FoodResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}
	if food.UserID != nil && food.UserID.String() != userID {
		return domain.FoodResponse{}, domain.ErrFoodNotFound
	}
	return toFoodResponse(food), nil
}

func (s *foodService) SearchFoods(ctx context.Context, userID string, query string, page, limit int) ([]domain.FoodResponse, int64, error) {
	foods, count, err := s.foodRepository.SearchFoods(ctx, userID, query, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.FoodResponse, 0, len(foods))
	for _, f := range foods {
		responses = append(responses, toFoodResponse(f))
	}
	return responses, count, nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error {
	food, err := s.ownedFood(ctx, req.FoodID, userID)
	if err != nil {
		return err
	}

	url, err := s.s3.UploadFile(ctx, "foods", req.Image)
	if err != nil {
		return err
	}

	food.ImageURL = url
	return s.foodRepository.UpdateFood(ctx, food)
}

// ownedFood fetches a food and checks the caller may modify it. Global
// catalog foods (nil owner) are read-only.
func (s *foodService) ownedFood(ctx context.Context, id string, userID string) (*entities.Food, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	if food.UserID == nil {
		return nil, domain.ErrFoodNotEditable
	}
	if food.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return food, nil
}

func toFoodResponse(food *entities.Food) domain.FoodResponse {
	return domain.FoodResponse{
		ID:          food.ID.String(),
		Name:        food.Name,
		Brand:       food.Brand,
		ServingSize: food.ServingSize,
		ServingUnit: food.ServingUnit,
		Calories:    food.Calories,
		Protein:     food.Protein,
		Carbs:       food.Carbs,
		Fat:         food.Fat,
		ImageURL:    food.ImageURL,
		IsCustom:    food.UserID != nil,
	}
}
