package handlers

import (
	"fmt"
	"time"

	"NutriTrack-Backend/domain"
	"NutriTrack-Backend/internal/api/presenters"
	"NutriTrack-Backend/pkg/nutrition"
	"NutriTrack-Backend/pkg/tracker"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TrackerHandler interface {
		AddFoodLog(c *fiber.Ctx) error
		UpdateFoodLog(c *fiber.Ctx) error
		DeleteFoodLog(c *fiber.Ctx) error
		AddExerciseLog(c *fiber.Ctx) error
		UpdateExerciseLog(c *fiber.Ctx) error
		DeleteExerciseLog(c *fiber.Ctx) error
		AddWaterLog(c *fiber.Ctx) error
		DeleteWaterLog(c *fiber.Ctx) error
		GetDailySummary(c *fiber.Ctx) error
		GetStreak(c *fiber.Ctx) error
		GetCalendar(c *fiber.Ctx) error
		GetWeekly(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
		ExportLogs(c *fiber.Ctx) error
	}

	trackerHandler struct {
		trackerService tracker.TrackerService
		validator      *validator.Validate
	}
)

func NewTrackerHandler(trackerService tracker.TrackerService, validator *validator.Validate) TrackerHandler {
	return &trackerHandler{
		trackerService: trackerService,
		validator:      validator,
	}
}

// clientToday returns the caller's local calendar day. Web clients send it
// via the X-Client-Date header (their timezone, not ours); absent that we
// fall back to server time.
func clientToday(c *fiber.Ctx) string {
	if d := c.Get("X-Client-Date"); d != "" {
		if _, err := time.Parse(nutrition.DateLayout, d); err == nil {
			return d
		}
	}
	return time.Now().Format(nutrition.DateLayout)
}

func (h *trackerHandler) AddFoodLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFoodLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodLog, err)
	}

	res, err := h.trackerService.AddFoodLog(c.Context(), *req, userID, clientToday(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodLog)
}

func (h *trackerHandler) UpdateFoodLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	logID := c.Params("id")
	req := new(domain.UpdateFoodLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodLog, err)
	}

	if err := h.trackerService.UpdateFoodLog(c.Context(), logID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFoodLog)
}

func (h *trackerHandler) DeleteFoodLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	logID := c.Params("id")

	if err := h.trackerService.DeleteFoodLog(c.Context(), logID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodLog)
}

func (h *trackerHandler) AddExerciseLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddExerciseLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddExerciseLog, err)
	}

	res, err := h.trackerService.AddExerciseLog(c.Context(), *req, userID, clientToday(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddExerciseLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddExerciseLog)
}

func (h *trackerHandler) UpdateExerciseLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	logID := c.Params("id")
	req := new(domain.UpdateExerciseLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateExerciseLog, err)
	}

	if err := h.trackerService.UpdateExerciseLog(c.Context(), logID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateExerciseLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateExerciseLog)
}

func (h *trackerHandler) DeleteExerciseLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	logID := c.Params("id")

	if err := h.trackerService.DeleteExerciseLog(c.Context(), logID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteExerciseLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteExerciseLog)
}

func (h *trackerHandler) AddWaterLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddWaterLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWaterLog, err)
	}

	if err := h.trackerService.AddWaterLog(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWaterLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddWaterLog)
}

func (h *trackerHandler) DeleteWaterLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	logID := c.Params("id")

	if err := h.trackerService.DeleteWaterLog(c.Context(), logID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteWaterLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteWaterLog)
}

func (h *trackerHandler) GetDailySummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	date := c.Query("date", clientToday(c))

	if _, err := time.Parse(nutrition.DateLayout, date); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDailySummary, domain.ErrInvalidDate)
	}

	res, err := h.trackerService.GetDailySummary(c.Context(), userID, date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDailySummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDailySummary)
}

func (h *trackerHandler) GetStreak(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.trackerService.GetStreak(c.Context(), userID, clientToday(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStreak, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStreak)
}

func (h *trackerHandler) GetCalendar(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.trackerService.GetCalendar(c.Context(), userID, clientToday(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCalendar, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCalendar)
}

func (h *trackerHandler) GetWeekly(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	weekStart := c.Query("start")
	if weekStart == "" {
		weekStart = currentMonday(clientToday(c))
	}

	res, err := h.trackerService.GetWeekly(c.Context(), userID, weekStart)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeekly, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeekly)
}

func (h *trackerHandler) GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.trackerService.GetDashboard(c.Context(), userID, clientToday(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *trackerHandler) ExportLogs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	from := c.Query("from")
	to := c.Query("to")

	csvBytes, err := h.trackerService.ExportLogs(c.Context(), userID, from, to)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportLogs, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=food-logs-%s-%s.csv", from, to))
	return c.Send(csvBytes)
}

// currentMonday returns the Monday of the week containing day. Sunday
// counts as day 7 so the week runs Monday..Sunday.
func currentMonday(day string) string {
	d, err := time.Parse(nutrition.DateLayout, day)
	if err != nil {
		return day
	}
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return d.AddDate(0, 0, -(weekday - 1)).Format(nutrition.DateLayout)
}
