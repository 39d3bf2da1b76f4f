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

// RegistrationController handles exam tracking operations
type RegistrationController struct {
	registrationService services.RegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// RegisterExam starts tracking an exam for the authenticated user
// @Summary Track an exam
// @Description Registers the user for an exam they want to track
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body dto.RegisterExamRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=models.UserExamRegistration} "Registration created"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Security BearerAuth
// @Router /registrations [post]
func (c *RegistrationController) RegisterExam(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.RegisterExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	reg, err := c.registrationService.RegisterExam(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userId", userID).Int64("examId", req.ExamID).Msg("Failed to register exam")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(reg))
}

// GetRegistrations lists the user's tracked exams
// @Summary List tracked exams
// @Tags registrations
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.UserExamRegistration} "Registrations"
// @Security BearerAuth
// @Router /registrations [get]
func (c *RegistrationController) GetRegistrations(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	regs, err := c.registrationService.GetRegistrations(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(regs))
}

// UpdateRegistration updates a registration's status fields
// @Summary Update registration
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path int true "Registration ID"
// @Param request body dto.UpdateRegistrationRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.UserExamRegistration} "Updated registration"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Security BearerAuth
// @Router /registrations/{id} [put]
func (c *RegistrationController) UpdateRegistration(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Invalid registration ID").WithField("id")))
		return
	}

	var req dto.UpdateRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	reg, err := c.registrationService.UpdateRegistration(ctx.Request.Context(), userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reg))
}

// DeleteRegistration stops tracking an exam
// @Summary Delete registration
// @Tags registrations
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Security BearerAuth
// @Router /registrations/{id} [delete]
func (c *RegistrationController) DeleteRegistration(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Invalid registration ID").WithField("id")))
		return
	}

	if err := c.registrationService.DeleteRegistration(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Registration deleted"}))
}
