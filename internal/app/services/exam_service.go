package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tanvi/examtrack/internal/app/models"
	"github.com/tanvi/examtrack/internal/app/models/dto"
	"github.com/tanvi/examtrack/internal/app/repositories"
	"github.com/tanvi/examtrack/internal/pkg/apperrors"
)

// ExamService defines the interface for exam catalog operations
type ExamService interface {
	GetExams(ctx context.Context, category models.ExamCategory) ([]*models.Exam, error)
	GetExamByID(ctx context.Context, id int64) (*models.Exam, error)
	CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error)
}

// examServiceImpl implements ExamService
type examServiceImpl struct {
	examRepo *repositories.ExamRepository
}

// NewExamService creates a new ExamService
func NewExamService(examRepo *repositories.ExamRepository) ExamService {
	return &examServiceImpl{examRepo: examRepo}
}

// GetExams lists catalog exams, optionally restricted to a category
func (s *examServiceImpl) GetExams(ctx context.Context, category models.ExamCategory) ([]*models.Exam, error) {
	exams, err := s.examRepo.GetAll(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error getting exams: %w", err)
	}
	return exams, nil
}

// GetExamByID fetches a single catalog exam
func (s *examServiceImpl) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	return s.examRepo.GetByID(ctx, id)
}

// CreateExam adds a new exam to the catalog
func (s *examServiceImpl) CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error) {
	exam := &models.Exam{
		Name:                 req.Name,
		FullName:             req.FullName,
		Category:             models.ExamCategory(req.Category),
		ExamDate:             req.ExamDate,
		ApplicationStartDate: req.ApplicationStartDate,
		ApplicationEndDate:   req.ApplicationEndDate,
		ResultDate:           req.ResultDate,
	}

	id, err := s.examRepo.Create(ctx, exam)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return nil, apperrors.NewConflictError("an exam with this name already exists")
		}
		return nil, err
	}
	exam.ID = id
	return exam, nil
}
