package services

import (
	"context"
	"fmt"

	"github.com/tanvi/examtrack/internal/app/models"
	"github.com/tanvi/examtrack/internal/app/models/dto"
	"github.com/tanvi/examtrack/internal/app/repositories"
	"github.com/tanvi/examtrack/internal/pkg/apperrors"
)

// RegistrationService defines the interface for exam tracking operations
type RegistrationService interface {
	RegisterExam(ctx context.Context, userID int64, req *dto.RegisterExamRequest) (*models.UserExamRegistration, error)
	GetRegistrations(ctx context.Context, userID int64) ([]*models.UserExamRegistration, error)
	UpdateRegistration(ctx context.Context, userID, registrationID int64, req *dto.UpdateRegistrationRequest) (*models.UserExamRegistration, error)
	DeleteRegistration(ctx context.Context, userID, registrationID int64) error
}

// registrationServiceImpl implements RegistrationService
type registrationServiceImpl struct {
	registrationRepo *repositories.RegistrationRepository
	examRepo         *repositories.ExamRepository
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(registrationRepo *repositories.RegistrationRepository, examRepo *repositories.ExamRepository) RegistrationService {
	return &registrationServiceImpl{
		registrationRepo: registrationRepo,
		examRepo:         examRepo,
	}
}

// RegisterExam starts tracking an exam for a user
func (s *registrationServiceImpl) RegisterExam(ctx context.Context, userID int64, req *dto.RegisterExamRequest) (*models.UserExamRegistration, error) {
	exam, err := s.examRepo.GetByID(ctx, req.ExamID)
	if err != nil {
		return nil, err
	}

	reg := &models.UserExamRegistration{
		UserID:            userID,
		ExamID:            req.ExamID,
		ApplicationStatus: models.ApplicationPlanning,
		PreparationStatus: models.PreparationNotStarted,
		TargetRank:        req.TargetRank,
		TargetPercentile:  req.TargetPercentile,
		IsPriority:        req.IsPriority,
	}
	if req.ApplicationStatus != "" {
		reg.ApplicationStatus = models.ApplicationStatus(req.ApplicationStatus)
	}
	if req.PreparationStatus != "" {
		reg.PreparationStatus = models.PreparationStatus(req.PreparationStatus)
	}

	id, err := s.registrationRepo.Create(ctx, reg)
	if err != nil {
		return nil, err
	}

	reg.ID = id
	reg.Exam = exam
	return reg, nil
}

// GetRegistrations lists the user's tracked exams, priority ones first
func (s *registrationServiceImpl) GetRegistrations(ctx context.Context, userID int64) ([]*models.UserExamRegistration, error) {
	regs, err := s.registrationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting registrations: %w", err)
	}
	return regs, nil
}

// UpdateRegistration applies a partial update after verifying ownership
func (s *registrationServiceImpl) UpdateRegistration(ctx context.Context, userID, registrationID int64, req *dto.UpdateRegistrationRequest) (*models.UserExamRegistration, error) {
	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg.UserID != userID {
		return nil, apperrors.ErrRegistrationNotFound
	}

	if req.ApplicationStatus != "" {
		reg.ApplicationStatus = models.ApplicationStatus(req.ApplicationStatus)
	}
	if req.PreparationStatus != "" {
		reg.PreparationStatus = models.PreparationStatus(req.PreparationStatus)
	}
	if req.TargetRank != nil {
		reg.TargetRank = req.TargetRank
	}
	if req.TargetPercentile != nil {
		reg.TargetPercentile = req.TargetPercentile
	}
	if req.IsPriority != nil {
		reg.IsPriority = *req.IsPriority
	}

	if err := s.registrationRepo.Update(ctx, reg); err != nil {
		return nil, fmt.Errorf("error updating registration: %w", err)
	}
	return reg, nil
}

// DeleteRegistration stops tracking an exam after verifying ownership
func (s *registrationServiceImpl) DeleteRegistration(ctx context.Context, userID, registrationID int64) error {
	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		return err
	}
	if reg.UserID != userID {
		return apperrors.ErrRegistrationNotFound
	}
	return s.registrationRepo.Delete(ctx, registrationID)
}
