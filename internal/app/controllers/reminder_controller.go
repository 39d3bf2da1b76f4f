package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanvi/examtrack/internal/app/models/dto"
	"github.com/tanvi/examtrack/internal/app/services"
	"github.com/tanvi/examtrack/internal/middleware"
)

// ReminderController handles reminder operations
type ReminderController struct {
	reminderService services.ReminderService
	logger          zerolog.Logger
}

// NewReminderController creates a new ReminderController
func NewReminderController(reminderService services.ReminderService, logger zerolog.Logger) *ReminderController {
	return &ReminderController{
		reminderService: reminderService,
		logger:          logger,
	}
}

// CreateReminder stores a user-authored reminder
// @Summary Create reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body dto.CreateReminderRequest true "Reminder details"
// @Success 201 {object} dto.APIResponse{data=models.Reminder} "Reminder created"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Security BearerAuth
// @Router /reminders [post]
func (c *ReminderController) CreateReminder(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	reminder, err := c.reminderService.CreateReminder(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(reminder))
}

// GetReminders returns the user's reminders bucketed for display
// @Summary List reminders
// @Description Returns the user's reminders partitioned into today, this-week, future and past buckets
// @Tags reminders
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ClassifiedRemindersResponse} "Classified reminders"
// @Security BearerAuth
// @Router /reminders [get]
func (c *ReminderController) GetReminders(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	buckets, err := c.reminderService.GetClassifiedReminders(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(buckets))
}

// AutoSetupReminders derives milestone reminders for an exam
// @Summary Auto-setup reminders
// @Description Derives application, exam and result reminders for an exam's key dates. Repeated calls are idempotent; zero created means already up to date.
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body dto.AutoSetupRemindersRequest true "Target exam"
// @Success 200 {object} dto.APIResponse{data=dto.AutoSetupRemindersResponse} "Inserted reminders"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Security BearerAuth
// @Router /reminders/auto-setup [post]
func (c *ReminderController) AutoSetupReminders(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.AutoSetupRemindersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.reminderService.AutoSetupReminders(ctx.Request.Context(), userID, req.ExamID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("userId", userID).
		Int64("examId", req.ExamID).
		Int("created", result.Created).
		Msg("Auto-setup reminders completed")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// MarkRead flags a reminder as read
// @Summary Mark reminder read
// @Tags reminders
// @Produce json
// @Param id path int true "Reminder ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Marked read"
// @Failure 404 {object} dto.ErrorResponse "Reminder not found"
// @Security BearerAuth
// @Router /reminders/{id}/read [put]
func (c *ReminderController) MarkRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Invalid reminder ID").WithField("id")))
		return
	}

	if err := c.reminderService.MarkReminderRead(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Reminder marked as read"}))
}

// DeleteReminder removes a reminder
// @Summary Delete reminder
// @Tags reminders
// @Produce json
// @Param id path int true "Reminder ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Reminder not found"
// @Security BearerAuth
// @Router /reminders/{id} [delete]
func (c *ReminderController) DeleteReminder(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Invalid reminder ID").WithField("id")))
		return
	}

	if err := c.reminderService.DeleteReminder(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Reminder deleted"}))
}
