package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanvi/examtrack/internal/app/models"
	"github.com/tanvi/examtrack/internal/app/models/dto"
	"github.com/tanvi/examtrack/internal/app/services"
	"github.com/tanvi/examtrack/internal/middleware"
)

// ExamController handles exam catalog operations
type ExamController struct {
	examService services.ExamService
	logger      zerolog.Logger
}

// NewExamController creates a new ExamController
func NewExamController(examService services.ExamService, logger zerolog.Logger) *ExamController {
	return &ExamController{
		examService: examService,
		logger:      logger,
	}
}

// GetExams lists the exam catalog
// @Summary List exams
// @Description Lists catalog exams, optionally filtered by category
// @Tags exams
// @Produce json
// @Param category query string false "Exam category" Enums(engineering, medical, law, management, architecture, other)
// @Success 200 {object} dto.APIResponse{data=[]dto.ExamResponse} "Exams"
// @Router /exams [get]
func (c *ExamController) GetExams(ctx *gin.Context) {
	category := models.ExamCategory(ctx.Query("category"))

	exams, err := c.examService.GetExams(ctx.Request.Context(), category)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list exams")
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.ExamResponse, 0, len(exams))
	for _, exam := range exams {
		responses = append(responses, dto.FromExam(exam))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(responses))
}

// GetExam fetches a single exam by ID
// @Summary Get exam
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=dto.ExamResponse} "Exam"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Invalid exam ID").WithField("id")))
		return
	}

	exam, err := c.examService.GetExamByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromExam(exam)))
}

// CreateExam adds a catalog exam (admin only)
// @Summary Create exam
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.CreateExamRequest true "Exam details"
// @Success 201 {object} dto.APIResponse{data=dto.ExamResponse} "Exam created"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 409 {object} dto.ErrorResponse "Exam name already exists"
// @Security BearerAuth
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	exam, err := c.examService.CreateExam(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create exam")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromExam(exam)))
}
