package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tanvi/examtrack/internal/app/models"
	"github.com/tanvi/examtrack/internal/pkg/apperrors"
	"github.com/tanvi/examtrack/internal/pkg/dberrors"
)

// ExamRepository handles exam catalog database operations
type ExamRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const examColumns = "id, name, full_name, category, exam_date, application_start_date, application_end_date, result_date, created_at"

func scanExam(row pgx.Row) (*models.Exam, error) {
	exam := &models.Exam{}
	err := row.Scan(
		&exam.ID, &exam.Name, &exam.FullName, &exam.Category,
		&exam.ExamDate, &exam.ApplicationStartDate, &exam.ApplicationEndDate,
		&exam.ResultDate, &exam.CreatedAt)
	if err != nil {
		return nil, err
	}
	return exam, nil
}

// Create inserts a new exam into the catalog
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO exams (name, full_name, category, exam_date, application_start_date, application_end_date, result_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		exam.Name, exam.FullName, exam.Category,
		exam.ExamDate, exam.ApplicationStartDate, exam.ApplicationEndDate, exam.ResultDate).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "exams_name_key") {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		return 0, fmt.Errorf("error creating exam: %w", err)
	}
	return id, nil
}

// GetByID retrieves an exam by ID
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	sql, args, err := r.sb.Select(examColumns).
		From("exams").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build exam query: %w", err)
	}

	exam, err := scanExam(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error querying exam: %w", err)
	}
	return exam, nil
}

// GetByName retrieves an exam by its short display name
func (r *ExamRepository) GetByName(ctx context.Context, name string) (*models.Exam, error) {
	sql, args, err := r.sb.Select(examColumns).
		From("exams").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build exam query: %w", err)
	}

	exam, err := scanExam(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error querying exam: %w", err)
	}
	return exam, nil
}

// GetAll retrieves all exams, optionally filtered by category
func (r *ExamRepository) GetAll(ctx context.Context, category models.ExamCategory) ([]*models.Exam, error) {
	query := r.sb.Select(examColumns).
		From("exams").
		OrderBy("name ASC")
	if category != "" {
		query = query.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build exams query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying exams: %w", err)
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning exam row: %w", err)
		}
		exams = append(exams, exam)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exam rows: %w", err)
	}

	return exams, nil
}
