package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tanvi/examtrack/internal/app/models"
	"github.com/tanvi/examtrack/internal/pkg/apperrors"
	"github.com/tanvi/examtrack/internal/pkg/dberrors"
)

// RegistrationRepository handles user exam registration database operations
type RegistrationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new registration for a user and exam
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.UserExamRegistration) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO user_exam_registrations
			(user_id, exam_id, application_status, preparation_status, target_rank, target_percentile, is_priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id`,
		reg.UserID, reg.ExamID, reg.ApplicationStatus, reg.PreparationStatus,
		reg.TargetRank, reg.TargetPercentile, reg.IsPriority, time.Now()).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "user_exam_registrations_user_id_exam_id_key") {
			return 0, apperrors.ErrAlreadyRegistered
		}
		return 0, fmt.Errorf("error creating registration: %w", err)
	}
	return id, nil
}

// GetByID retrieves a registration by ID
func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*models.UserExamRegistration, error) {
	sql, args, err := r.sb.Select(
		"id", "user_id", "exam_id", "application_status", "preparation_status",
		"target_rank", "target_percentile", "is_priority", "created_at", "updated_at").
		From("user_exam_registrations").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build registration query: %w", err)
	}

	reg := &models.UserExamRegistration{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&reg.ID, &reg.UserID, &reg.ExamID, &reg.ApplicationStatus, &reg.PreparationStatus,
		&reg.TargetRank, &reg.TargetPercentile, &reg.IsPriority, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error querying registration: %w", err)
	}
	return reg, nil
}

// GetByUserID retrieves a user's registrations with their exams joined in
func (r *RegistrationRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.UserExamRegistration, error) {
	sql, args, err := r.sb.Select(
		"r.id", "r.user_id", "r.exam_id", "r.application_status", "r.preparation_status",
		"r.target_rank", "r.target_percentile", "r.is_priority", "r.created_at", "r.updated_at",
		"e.id", "e.name", "e.full_name", "e.category",
		"e.exam_date", "e.application_start_date", "e.application_end_date", "e.result_date", "e.created_at").
		From("user_exam_registrations r").
		Join("exams e ON r.exam_id = e.id").
		Where(squirrel.Eq{"r.user_id": userID}).
		OrderBy("r.is_priority DESC", "e.exam_date ASC NULLS LAST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build registrations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying registrations: %w", err)
	}
	defer rows.Close()

	var regs []*models.UserExamRegistration
	for rows.Next() {
		reg := &models.UserExamRegistration{Exam: &models.Exam{}}
		err := rows.Scan(
			&reg.ID, &reg.UserID, &reg.ExamID, &reg.ApplicationStatus, &reg.PreparationStatus,
			&reg.TargetRank, &reg.TargetPercentile, &reg.IsPriority, &reg.CreatedAt, &reg.UpdatedAt,
			&reg.Exam.ID, &reg.Exam.Name, &reg.Exam.FullName, &reg.Exam.Category,
			&reg.Exam.ExamDate, &reg.Exam.ApplicationStartDate, &reg.Exam.ApplicationEndDate,
			&reg.Exam.ResultDate, &reg.Exam.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning registration row: %w", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration rows: %w", err)
	}

	return regs, nil
}

// Update persists status and target changes on an existing registration
func (r *RegistrationRepository) Update(ctx context.Context, reg *models.UserExamRegistration) error {
	sql, args, err := r.sb.Update("user_exam_registrations").
		Set("application_status", reg.ApplicationStatus).
		Set("preparation_status", reg.PreparationStatus).
		Set("target_rank", reg.TargetRank).
		Set("target_percentile", reg.TargetPercentile).
		Set("is_priority", reg.IsPriority).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": reg.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build registration update: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}
	return nil
}

// Delete removes a registration
func (r *RegistrationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("user_exam_registrations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build registration delete: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}
	return nil
}
