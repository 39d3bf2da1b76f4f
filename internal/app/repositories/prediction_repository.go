package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tanvi/examtrack/internal/app/models"
)

// PredictionRepository handles persisted prediction history rows
type PredictionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(db *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create stores a prediction history row and returns its ID
func (r *PredictionRepository) Create(ctx context.Context, p *models.Prediction) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO predictions
			(user_id, exam_id, category, expected_score, predicted_rank, confidence, range_low, range_high)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		p.UserID, p.ExamID, p.Category, p.ExpectedScore,
		p.PredictedRank, p.Confidence, p.RangeLow, p.RangeHigh).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating prediction: %w", err)
	}
	return id, nil
}

// GetByUserID retrieves a user's prediction history, newest first
func (r *PredictionRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Prediction, error) {
	sql, args, err := r.sb.Select(
		"id", "user_id", "exam_id", "category", "expected_score",
		"predicted_rank", "confidence", "range_low", "range_high", "created_at").
		From("predictions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build predictions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying predictions: %w", err)
	}
	defer rows.Close()

	var predictions []models.Prediction
	for rows.Next() {
		var p models.Prediction
		err := rows.Scan(
			&p.ID, &p.UserID, &p.ExamID, &p.Category, &p.ExpectedScore,
			&p.PredictedRank, &p.Confidence, &p.RangeLow, &p.RangeHigh, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning prediction row: %w", err)
		}
		predictions = append(predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prediction rows: %w", err)
	}

	return predictions, nil
}
