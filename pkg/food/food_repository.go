package food

import (
	"context"

	"NutriTrack-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		UpdateFood(ctx context.Context, food *entities.Food) error
		DeleteFood(ctx context.Context, id string) error
		SearchFoods(ctx context.Context, userID string, query string, page, limit int) ([]*entities.Food, int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{
		db: db,
	}
}

func (r *foodRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Food{}).Error
}

// SearchFoods returns global catalog foods plus the user's own, filtered by
// name substring, newest first.
func (r *foodRepository) SearchFoods(ctx context.Context, userID string, query string, page, limit int) ([]*entities.Food, int64, error) {
	var foods []*entities.Food
	var count int64
	offset := (page - 1) * limit

	base := r.db.WithContext(ctx).
		Model(&entities.Food{}).
		Where("user_id IS NULL OR user_id = ?", userID)
	if query != "" {
		base = base.Where("name ILIKE ?", "%"+query+"%")
	}

	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := base.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, 0, err
	}

	return foods, count, nil
}
