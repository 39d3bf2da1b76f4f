package dto

import (
	"time"

	"github.com/tanvi/examtrack/internal/app/models"
)

// ExamResponse represents a catalog exam
type ExamResponse struct {
	ID                   int64      `json:"id"`
	Name                 string     `json:"name"`
	FullName             string     `json:"fullName"`
	Category             string     `json:"category"`
	ExamDate             *time.Time `json:"examDate,omitempty"`
	ApplicationStartDate *time.Time `json:"applicationStartDate,omitempty"`
	ApplicationEndDate   *time.Time `json:"applicationEndDate,omitempty"`
	ResultDate           *time.Time `json:"resultDate,omitempty"`
}

// FromExam converts an Exam model to an ExamResponse
func FromExam(exam *models.Exam) ExamResponse {
	if exam == nil {
		return ExamResponse{}
	}
	return ExamResponse{
		ID:                   exam.ID,
		Name:                 exam.Name,
		FullName:             exam.FullName,
		Category:             string(exam.Category),
		ExamDate:             exam.ExamDate,
		ApplicationStartDate: exam.ApplicationStartDate,
		ApplicationEndDate:   exam.ApplicationEndDate,
		ResultDate:           exam.ResultDate,
	}
}

// CreateExamRequest represents an admin request to add a catalog exam
type CreateExamRequest struct {
	Name                 string     `json:"name" binding:"required"`
	FullName             string     `json:"fullName" binding:"required"`
	Category             string     `json:"category" binding:"required,oneof=engineering medical law management architecture other"`
	ExamDate             *time.Time `json:"examDate"`
	ApplicationStartDate *time.Time `json:"applicationStartDate"`
	ApplicationEndDate   *time.Time `json:"applicationEndDate"`
	ResultDate           *time.Time `json:"resultDate"`
}

// RegisterExamRequest represents a request to start tracking an exam
type RegisterExamRequest struct {
	ExamID            int64    `json:"examId" binding:"required,min=1"`
	ApplicationStatus string   `json:"applicationStatus" binding:"omitempty,oneof=planning applied appeared qualified"`
	PreparationStatus string   `json:"preparationStatus" binding:"omitempty,oneof=not_started started ongoing completed"`
	TargetRank        *int     `json:"targetRank" binding:"omitempty,min=1"`
	TargetPercentile  *float64 `json:"targetPercentile" binding:"omitempty,min=0,max=100"`
	IsPriority        bool     `json:"isPriority"`
}

// UpdateRegistrationRequest represents a status update on an existing registration
type UpdateRegistrationRequest struct {
	ApplicationStatus string   `json:"applicationStatus" binding:"omitempty,oneof=planning applied appeared qualified"`
	PreparationStatus string   `json:"preparationStatus" binding:"omitempty,oneof=not_started started ongoing completed"`
	TargetRank        *int     `json:"targetRank" binding:"omitempty,min=1"`
	TargetPercentile  *float64 `json:"targetPercentile" binding:"omitempty,min=0,max=100"`
	IsPriority        *bool    `json:"isPriority"`
}
