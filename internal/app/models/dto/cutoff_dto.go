package dto

import "github.com/tanvi/examtrack/internal/app/models"

// CutoffFilterRequest carries the optional query-string filters for cutoff browsing
type CutoffFilterRequest struct {
	ExamCategory string `form:"examCategory" binding:"omitempty,oneof=engineering medical law management architecture other"`
	Search       string `form:"search"`
	Branch       string `form:"branch"`
}

// CutoffListResponse represents filtered, trend-annotated cutoff rows
type CutoffListResponse struct {
	Cutoffs  []models.AnnotatedCutoff `json:"cutoffs"`
	Branches []string                 `json:"branches,omitempty"`
}
