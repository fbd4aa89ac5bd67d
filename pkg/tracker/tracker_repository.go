package tracker

import (
	"context"
	"errors"

	"NutriTrack-Backend/entities"
	"NutriTrack-Backend/pkg/nutrition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TrackerRepository interface {
		// Log creation runs in one transaction with the streak counter
		// update; today is the caller's local calendar day.
		CreateFoodLog(ctx context.Context, entry *entities.FoodLogEntry, today string) error
		GetFoodLogByID(ctx context.Context, id string) (*entities.FoodLogEntry, error)
		UpdateFoodLog(ctx context.Context, entry *entities.FoodLogEntry) error
		DeleteFoodLog(ctx context.Context, id string) error
		GetFoodLogsByDate(ctx context.Context, userID string, date string) ([]*entities.FoodLogEntry, error)
		GetFoodLogsByRange(ctx context.Context, userID string, from, to string) ([]*entities.FoodLogEntry, error)

		CreateExerciseLog(ctx context.Context, entry *entities.ExerciseLogEntry, today string) error
		GetExerciseLogByID(ctx context.Context, id string) (*entities.ExerciseLogEntry, error)
		UpdateExerciseLog(ctx context.Context, entry *entities.ExerciseLogEntry) error
		DeleteExerciseLog(ctx context.Context, id string) error
		GetExerciseLogsByDate(ctx context.Context, userID string, date string) ([]*entities.ExerciseLogEntry, error)
		GetExerciseLogsByRange(ctx context.Context, userID string, from, to string) ([]*entities.ExerciseLogEntry, error)
		GetRecentExerciseLogs(ctx context.Context, userID string, limit int) ([]*entities.ExerciseLogEntry, error)

		CreateWaterLog(ctx context.Context, entry *entities.WaterLogEntry) error
		GetWaterLogByID(ctx context.Context, id string) (*entities.WaterLogEntry, error)
		DeleteWaterLog(ctx context.Context, id string) error
		GetWaterTotalByDate(ctx context.Context, userID string, date string) (int, error)

		GetStreakState(ctx context.Context, userID string) (*entities.StreakState, error)
		GetLoggedDates(ctx context.Context, userID string, from, to string) ([]string, error)
	}

	trackerRepository struct {
		db *gorm.DB
	}
)

func NewTrackerRepository(db *gorm.DB) TrackerRepository {
	return &trackerRepository{
		db: db,
	}
}

func (r *trackerRepository) CreateFoodLog(ctx context.Context, entry *entities.FoodLogEntry, today string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return applyStreakWrite(tx, entry.UserID, entry.Date, today)
	})
}

func (r *trackerRepository) GetFoodLogByID(ctx context.Context, id string) (*entities.FoodLogEntry, error) {
	var entry entities.FoodLogEntry
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *trackerRepository) UpdateFoodLog(ctx context.Context, entry *entities.FoodLogEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *trackerRepository) DeleteFoodLog(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.FoodLogEntry{}).Error
}

func (r *trackerRepository) GetFoodLogsByDate(ctx context.Context, userID string, date string) ([]*entities.FoodLogEntry, error) {
	var entries []*entities.FoodLogEntry
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *trackerRepository) GetFoodLogsByRange(ctx context.Context, userID string, from, to string) ([]*entities.FoodLogEntry, error) {
	var entries []*entities.FoodLogEntry
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC, created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *trackerRepository) CreateExerciseLog(ctx context.Context, entry *entities.ExerciseLogEntry, today string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return applyStreakWrite(tx, entry.UserID, entry.Date, today)
	})
}

func (r *trackerRepository) GetExerciseLogByID(ctx context.Context, id string) (*entities.ExerciseLogEntry, error) {
	var entry entities.ExerciseLogEntry
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *trackerRepository) UpdateExerciseLog(ctx context.Context, entry *entities.ExerciseLogEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *trackerRepository) DeleteExerciseLog(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.ExerciseLogEntry{}).Error
}

func (r *trackerRepository) GetExerciseLogsByDate(ctx context.Context, userID string, date string) ([]*entities.ExerciseLogEntry, error) {
	var entries []*entities.ExerciseLogEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *trackerRepository) GetExerciseLogsByRange(ctx context.Context, userID string, from, to string) ([]*entities.ExerciseLogEntry, error) {
	var entries []*entities.ExerciseLogEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC, created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *trackerRepository) GetRecentExerciseLogs(ctx context.Context, userID string, limit int) ([]*entities.ExerciseLogEntry, error) {
	var entries []*entities.ExerciseLogEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *trackerRepository) CreateWaterLog(ctx context.Context, entry *entities.WaterLogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *trackerRepository) GetWaterLogByID(ctx context.Context, id string) (*entities.WaterLogEntry, error) {
	var entry entities.WaterLogEntry
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *trackerRepository) DeleteWaterLog(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.WaterLogEntry{}).Error
}

func (r *trackerRepository) GetWaterTotalByDate(ctx context.Context, userID string, date string) (int, error) {
	var total int
	if err := r.db.WithContext(ctx).
		Model(&entities.WaterLogEntry{}).
		Where("user_id = ? AND date = ?", userID, date).
		Select("COALESCE(SUM(amount_ml), 0) as total").
		Row().Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *trackerRepository) GetStreakState(ctx context.Context, userID string) (*entities.StreakState, error) {
	var state entities.StreakState
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No logs yet; zero-valued counters.
			return &entities.StreakState{}, nil
		}
		return nil, err
	}
	return &state, nil
}

// GetLoggedDates returns the distinct days in [from, to] with at least one
// food or exercise entry, ascending.
func (r *trackerRepository) GetLoggedDates(ctx context.Context, userID string, from, to string) ([]string, error) {
	var dates []string
	if err := r.db.WithContext(ctx).
		Raw(`
			SELECT DISTINCT date FROM (
				SELECT date FROM food_log_entries
				WHERE user_id = ? AND date >= ? AND date <= ? AND deleted_at IS NULL
				UNION ALL
				SELECT date FROM exercise_log_entries
				WHERE user_id = ? AND date >= ? AND date <= ? AND deleted_at IS NULL
			) AS logged ORDER BY date ASC`,
			userID, from, to, userID, from, to).
		Scan(&dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

// applyStreakWrite read-modify-writes the streak counters inside the log
// insert's transaction. Two concurrent same-day writes can race here;
// last-write-wins is acceptable because the counters self-correct on the
// next date-anchored update.
func applyStreakWrite(tx *gorm.DB, userID uuid.UUID, logDate, today string) error {
	var state entities.StreakState
	err := tx.Where("user_id = ?", userID).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state = entities.StreakState{
			ID:     uuid.New(),
			UserID: userID,
		}
	} else if err != nil {
		return err
	}

	counters := nutrition.ApplyLogWrite(nutrition.StreakCounters{
		CurrentStreak:  state.CurrentStreak,
		LongestStreak:  state.LongestStreak,
		LastLoggedDate: state.LastLoggedDate,
		TotalLogs:      state.TotalLogs,
	}, logDate, today)

	state.CurrentStreak = counters.CurrentStreak
	state.LongestStreak = counters.LongestStreak
	state.LastLoggedDate = counters.LastLoggedDate
	state.TotalLogs = counters.TotalLogs

	return tx.Save(&state).Error
}
