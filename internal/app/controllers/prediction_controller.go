package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanvi/examtrack/internal/app/models/dto"
	"github.com/tanvi/examtrack/internal/app/services"
	"github.com/tanvi/examtrack/internal/middleware"
)

// PredictionController handles rank prediction operations
type PredictionController struct {
	predictionService services.PredictionService
	logger            zerolog.Logger
}

// NewPredictionController creates a new PredictionController
func NewPredictionController(predictionService services.PredictionService, logger zerolog.Logger) *PredictionController {
	return &PredictionController{
		predictionService: predictionService,
		logger:            logger,
	}
}

// PredictRank computes a rank prediction for an expected score
// @Summary Predict rank
// @Description Predicts the likely rank for an expected score, adjusted for reservation category
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body dto.PredictRankRequest true "Prediction input"
// @Success 200 {object} dto.APIResponse{data=dto.PredictionResponse} "Prediction"
// @Failure 400 {object} dto.ErrorResponse "Invalid score or category"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Security BearerAuth
// @Router /predictions [post]
func (c *PredictionController) PredictRank(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.PredictRankRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	prediction, err := c.predictionService.PredictRank(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("examId", req.ExamID).Float64("score", req.ExpectedScore).Msg("Prediction failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(prediction))
}

// GetHistory lists the user's saved predictions, newest first
// @Summary Prediction history
// @Tags predictions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Prediction} "Saved predictions"
// @Security BearerAuth
// @Router /predictions/history [get]
func (c *PredictionController) GetHistory(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	predictions, err := c.predictionService.GetHistory(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(predictions))
}
