package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanvi/examtrack/internal/app/models/dto"
	"github.com/tanvi/examtrack/internal/app/services"
	"github.com/tanvi/examtrack/internal/middleware"
)

// CutoffController handles cutoff browsing operations
type CutoffController struct {
	cutoffService services.CutoffService
	logger        zerolog.Logger
}

// NewCutoffController creates a new CutoffController
func NewCutoffController(cutoffService services.CutoffService, logger zerolog.Logger) *CutoffController {
	return &CutoffController{
		cutoffService: cutoffService,
		logger:        logger,
	}
}

// GetCutoffs lists trend-annotated cutoffs matching the query filters
// @Summary Browse cutoffs
// @Description Lists reference cutoffs filtered by exam category, search term and branch, each annotated with its year-over-year trend
// @Tags cutoffs
// @Produce json
// @Param examCategory query string false "Exam category" Enums(engineering, medical, law, management, architecture, other)
// @Param search query string false "Case-insensitive college or branch substring"
// @Param branch query string false "Branch filter; 'all' or empty means no constraint"
// @Success 200 {object} dto.APIResponse{data=dto.CutoffListResponse} "Filtered cutoffs"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /cutoffs [get]
func (c *CutoffController) GetCutoffs(ctx *gin.Context) {
	var req dto.CutoffFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.cutoffService.FilterCutoffs(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to filter cutoffs")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// GetBranches lists distinct branch names for filter dropdowns
// @Summary List branches
// @Tags cutoffs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Branches"
// @Router /cutoffs/branches [get]
func (c *CutoffController) GetBranches(ctx *gin.Context) {
	branches, err := c.cutoffService.GetBranches(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(branches))
}
