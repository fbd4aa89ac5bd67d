package tracker

import (
	"context"
	"errors"
	"time"

	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/entities"
	"NutriTrack-Backend/pkg/food"
	"NutriTrack-Backend/pkg/nutrition"
	"NutriTrack-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TrackerService interface {
		AddFoodLog(ctx context.Context, req domain.AddFoodLogRequest, userID string, today string) (domain.FoodLogResponse, error)
		UpdateFoodLog(ctx context.Context, id string, req domain.UpdateFoodLogRequest, userID string) error
		DeleteFoodLog(ctx context.Context, id string, userID string) error

		AddExerciseLog(ctx context.Context, req domain.AddExerciseLogRequest, userID string, today string) (domain.ExerciseLogResponse, error)
		UpdateExerciseLog(ctx context.Context, id string, req domain.UpdateExerciseLogRequest, userID string) error
		DeleteExerciseLog(ctx context.Context, id string, userID string) error

		AddWaterLog(ctx context.Context, req domain.AddWaterLogRequest, userID string) error
		DeleteWaterLog(ctx context.Context, id string, userID string) error

		GetDailySummary(ctx context.Context, userID string, date string) (domain.DailySummaryResponse, error)
		GetStreak(ctx context.Context, userID string, today string) (domain.StreakResponse, error)
		GetCalendar(ctx context.Context, userID string, today string) (domain.CalendarResponse, error)
		GetWeekly(ctx context.Context, userID string, weekStart string) (domain.WeeklyResponse, error)
		GetDashboard(ctx context.Context, userID string, today string) (domain.DashboardResponse, error)
		ExportLogs(ctx context.Context, userID string, from, to string) ([]byte, error)
	}

	trackerService struct {
		trackerRepository TrackerRepository
		foodRepository    food.FoodRepository
		userRepository    user.UserRepository
	}
)

func NewTrackerService(
	trackerRepository TrackerRepository,
	foodRepository food.FoodRepository,
	userRepository user.UserRepository,
) TrackerService {
	return &trackerService{
		trackerRepository: trackerRepository,
		foodRepository:    foodRepository,
		userRepository:    userRepository,
	}
}

func (s *trackerService) AddFoodLog(ctx context.Context, req domain.AddFoodLogRequest, userID string, today string) (domain.FoodLogResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodLogResponse{}, domain.ErrParseUUID
	}

	f, err := s.foodRepository.GetFoodByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodLogResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodLogResponse{}, err
	}
	if f.UserID != nil && f.UserID.String() != userID {
		return domain.FoodLogResponse{}, domain.ErrFoodNotFound
	}

	entry := &entities.FoodLogEntry{
		ID:          uuid.New(),
		UserID:      userUUID,
		FoodID:      f.ID,
		Date:        req.Date,
		MealType:    req.MealType,
		Quantity:    req.Quantity,
		ServingSize: f.ServingSize,
	}
	if err := s.trackerRepository.CreateFoodLog(ctx, entry, today); err != nil {
		return domain.FoodLogResponse{}, err
	}

	entry.Food = f
	return toFoodLogResponse(entry), nil
}

func (s *trackerService) UpdateFoodLog(ctx context.Context, id string, req domain.UpdateFoodLogRequest, userID string) error {
	entry, err := s.trackerRepository.GetFoodLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLogEntryNotFound
		}
		return err
	}
	if entry.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if req.MealType != "" {
		entry.MealType = req.MealType
	}
	if req.Quantity > 0 {
		entry.Quantity = req.Quantity
	}
	return s.trackerRepository.UpdateFoodLog(ctx, entry)
}

func (s *trackerService) DeleteFoodLog(ctx context.Context, id string, userID string) error {
	entry, err := s.trackerRepository.GetFoodLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLogEntryNotFound
		}
		return err
	}
	if entry.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}
	return s.trackerRepository.DeleteFoodLog(ctx, id)
}

func (s *trackerService) AddExerciseLog(ctx context.Context, req domain.AddExerciseLogRequest, userID string, today string) (domain.ExerciseLogResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ExerciseLogResponse{}, domain.ErrParseUUID
	}

	burned := 0
	switch {
	case req.CaloriesBurned != nil:
		burned = *req.CaloriesBurned
	case req.MET > 0:
		u, err := s.userRepository.GetUserByID(ctx, userID)
		if err != nil {
			return domain.ExerciseLogResponse{}, err
		}
		if u.WeightKg == nil {
			return domain.ExerciseLogResponse{}, domain.ErrMissingBodyWeight
		}
		burned = nutrition.EstimateExerciseCalories(req.MET, *u.WeightKg, req.DurationMinutes)
	}

	entry := &entities.ExerciseLogEntry{
		ID:              uuid.New(),
		UserID:          userUUID,
		Date:            req.Date,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  burned,
	}
	if err := s.trackerRepository.CreateExerciseLog(ctx, entry, today); err != nil {
		return domain.ExerciseLogResponse{}, err
	}
	return toExerciseLogResponse(entry), nil
}

func (s *trackerService) UpdateExerciseLog(ctx context.Context, id string, req domain.UpdateExerciseLogRequest, userID string) error {
	entry, err := s.trackerRepository.GetExerciseLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLogEntryNotFound
		}
		return err
	}
	if entry.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if req.Name != "" {
		entry.Name = req.Name
	}
	if req.DurationMinutes > 0 {
		entry.DurationMinutes = req.DurationMinutes
	}
	if req.CaloriesBurned != nil {
		entry.CaloriesBurned = *req.CaloriesBurned
	}
	return s.trackerRepository.UpdateExerciseLog(ctx, entry)
}

func (s *trackerService) DeleteExerciseLog(ctx context.Context, id string, userID string) error {
	entry, err := s.trackerRepository.GetExerciseLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLogEntryNotFound
		}
		return err
	}
	if entry.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}
	return s.trackerRepository.DeleteExerciseLog(ctx, id)
}

func (s *trackerService) AddWaterLog(ctx context.Context, req domain.AddWaterLogRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.trackerRepository.CreateWaterLog(ctx, &entities.WaterLogEntry{
		ID:       uuid.New(),
		UserID:   userUUID,
		Date:     req.Date,
		AmountMl: req.AmountMl,
	})
}

func (s *trackerService) DeleteWaterLog(ctx context.Context, id string, userID string) error {
	entry, err := s.trackerRepository.GetWaterLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLogEntryNotFound
		}
		return err
	}
	if entry.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}
	return s.trackerRepository.DeleteWaterLog(ctx, id)
}

func (s *trackerService) GetDailySummary(ctx context.Context, userID string, date string) (domain.DailySummaryResponse, error) {
	foods, exercises, err := s.dayLogs(ctx, userID, date)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	water, err := s.trackerRepository.GetWaterTotalByDate(ctx, userID, date)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	return domain.DailySummaryResponse{
		Date:    date,
		Totals:  nutrition.AggregateDay(foods, exercises),
		WaterMl: water,
		Targets: s.targetsOrNil(ctx, userID),
	}, nil
}

func (s *trackerService) GetStreak(ctx context.Context, userID string, today string) (domain.StreakResponse, error) {
	state, err := s.trackerRepository.GetStreakState(ctx, userID)
	if err != nil {
		return domain.StreakResponse{}, err
	}

	logged, err := s.lookbackSet(ctx, userID, today)
	if err != nil {
		return domain.StreakResponse{}, err
	}
	run := nutrition.ComputeStreak(logged, today, nutrition.DefaultLookbackDays)

	return domain.StreakResponse{
		CurrentStreak:  state.CurrentStreak,
		LongestStreak:  state.LongestStreak,
		DisplayValue:   nutrition.StreakDisplay(state.CurrentStreak),
		LastLoggedDate: state.LastLoggedDate,
		TotalLogs:      state.TotalLogs,
		RunDays:        run.Days,
	}, nil
}

func (s *trackerService) GetCalendar(ctx context.Context, userID string, today string) (domain.CalendarResponse, error) {
	day, err := time.Parse(nutrition.DateLayout, today)
	if err != nil {
		return domain.CalendarResponse{}, domain.ErrInvalidDate
	}
	from := day.AddDate(0, 0, -(nutrition.DefaultLookbackDays - 1)).Format(nutrition.DateLayout)

	dates, err := s.trackerRepository.GetLoggedDates(ctx, userID, from, today)
	if err != nil {
		return domain.CalendarResponse{}, err
	}
	return domain.CalendarResponse{
		From:        from,
		To:          today,
		LoggedDates: dates,
	}, nil
}

func (s *trackerService) GetWeekly(ctx context.Context, userID string, weekStart string) (domain.WeeklyResponse, error) {
	start, err := time.Parse(nutrition.DateLayout, weekStart)
	if err != nil {
		return domain.WeeklyResponse{}, domain.ErrInvalidDate
	}
	if start.Weekday() != time.Monday {
		return domain.WeeklyResponse{}, domain.ErrInvalidWeekStart
	}
	weekEnd := start.AddDate(0, 0, 6).Format(nutrition.DateLayout)

	foodEntries, err := s.trackerRepository.GetFoodLogsByRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return domain.WeeklyResponse{}, err
	}
	exerciseEntries, err := s.trackerRepository.GetExerciseLogsByRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return domain.WeeklyResponse{}, err
	}

	series := nutrition.BuildWeeklySeries(weekStart, toFoodItems(foodEntries), toExerciseItems(exerciseEntries))

	recent, err := s.trackerRepository.GetRecentExerciseLogs(ctx, userID, 5)
	if err != nil {
		return domain.WeeklyResponse{}, err
	}
	recentResponses := make([]domain.ExerciseLogResponse, 0, len(recent))
	for _, e := range recent {
		recentResponses = append(recentResponses, toExerciseLogResponse(e))
	}

	return domain.WeeklyResponse{
		WeekStart:       weekStart,
		Days:            series.Days[:],
		FoodLogCount:    series.FoodLogCount,
		RecentExercises: recentResponses,
	}, nil
}

func (s *trackerService) GetDashboard(ctx context.Context, userID string, today string) (domain.DashboardResponse, error) {
	foods, exercises, err := s.dayLogs(ctx, userID, today)
	if err != nil {
		return domain.DashboardResponse{}, err
	}
	water, err := s.trackerRepository.GetWaterTotalByDate(ctx, userID, today)
	if err != nil {
		return domain.DashboardResponse{}, err
	}
	state, err := s.trackerRepository.GetStreakState(ctx, userID)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	return domain.DashboardResponse{
		Date:          today,
		Totals:        nutrition.AggregateDay(foods, exercises),
		Targets:       s.targetsOrNil(ctx, userID),
		WaterMl:       water,
		StreakDisplay: nutrition.StreakDisplay(state.CurrentStreak),
	}, nil
}

func (s *trackerService) ExportLogs(ctx context.Context, userID string, from, to string) ([]byte, error) {
	if _, err := time.Parse(nutrition.DateLayout, from); err != nil {
		return nil, domain.ErrInvalidDate
	}
	if _, err := time.Parse(nutrition.DateLayout, to); err != nil {
		return nil, domain.ErrInvalidDate
	}
	if from > to {
		return nil, domain.ErrInvalidDateRange
	}

	entries, err := s.trackerRepository.GetFoodLogsByRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return BuildFoodLogCSV(toFoodItems(entries))
}

func (s *trackerService) dayLogs(ctx context.Context, userID string, date string) ([]nutrition.FoodLogItem, []nutrition.ExerciseItem, error) {
	foodEntries, err := s.trackerRepository.GetFoodLogsByDate(ctx, userID, date)
	if err != nil {
		return nil, nil, err
	}
	exerciseEntries, err := s.trackerRepository.GetExerciseLogsByDate(ctx, userID, date)
	if err != nil {
		return nil, nil, err
	}
	return toFoodItems(foodEntries), toExerciseItems(exerciseEntries), nil
}

func (s *trackerService) lookbackSet(ctx context.Context, userID string, today string) (map[string]bool, error) {
	day, err := time.Parse(nutrition.DateLayout, today)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	from := day.AddDate(0, 0, -(nutrition.DefaultLookbackDays - 1)).Format(nutrition.DateLayout)

	dates, err := s.trackerRepository.GetLoggedDates(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}
	logged := make(map[string]bool, len(dates))
	for _, d := range dates {
		logged[d] = true
	}
	return logged, nil
}

// targetsOrNil is best-effort: an incomplete profile just omits targets
// from summary payloads rather than failing the whole request.
func (s *trackerService) targetsOrNil(ctx context.Context, userID string) *domain.TargetsResponse {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil
	}
	targets, err := user.TargetsForUser(u)
	if err != nil {
		return nil
	}
	return &targets
}

func toFoodItems(entries []*entities.FoodLogEntry) []nutrition.FoodLogItem {
	items := make([]nutrition.FoodLogItem, 0, len(entries))
	for _, e := range entries {
		item := nutrition.FoodLogItem{
			Date:     e.Date,
			MealType: e.MealType,
			Quantity: e.Quantity,
		}
		if e.Food != nil {
			item.FoodName = e.Food.Name
			item.Calories = e.Food.Calories
			item.Protein = e.Food.Protein
			item.Carbs = e.Food.Carbs
			item.Fat = e.Food.Fat
		}
		items = append(items, item)
	}
	return items
}

func toExerciseItems(entries []*entities.ExerciseLogEntry) []nutrition.ExerciseItem {
	items := make([]nutrition.ExerciseItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, nutrition.ExerciseItem{
			Date:            e.Date,
			Name:            e.Name,
			DurationMinutes: e.DurationMinutes,
			CaloriesBurned:  e.CaloriesBurned,
		})
	}
	return items
}

func toFoodLogResponse(entry *entities.FoodLogEntry) domain.FoodLogResponse {
	res := domain.FoodLogResponse{
		ID:       entry.ID.String(),
		FoodID:   entry.FoodID.String(),
		Date:     entry.Date,
		MealType: entry.MealType,
		Quantity: entry.Quantity,
	}
	if entry.Food != nil {
		res.FoodName = entry.Food.Name
		res.Calories = entry.Food.Calories * entry.Quantity
		res.Protein = entry.Food.Protein * entry.Quantity
		res.Carbs = entry.Food.Carbs * entry.Quantity
		res.Fat = entry.Food.Fat * entry.Quantity
	}
	return res
}

func toExerciseLogResponse(entry *entities.ExerciseLogEntry) domain.ExerciseLogResponse {
	return domain.ExerciseLogResponse{
		ID:              entry.ID.String(),
		Date:            entry.Date,
		Name:            entry.Name,
		DurationMinutes: entry.DurationMinutes,
		CaloriesBurned:  entry.CaloriesBurned,
	}
}
