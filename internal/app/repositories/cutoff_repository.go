package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tanvi/examtrack/internal/app/models"
)

// CutoffRepository handles cutoff reference data access. The table is
// read-only at runtime; rows come from the seeder.
type CutoffRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCutoffRepository creates a new CutoffRepository
func NewCutoffRepository(db *pgxpool.Pool) *CutoffRepository {
	return &CutoffRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves the full cutoff reference dataset in insertion order
func (r *CutoffRepository) GetAll(ctx context.Context) ([]models.CutoffRecord, error) {
	sql, args, err := r.sb.Select(
		"id", "college", "branch", "category",
		"cutoff_prior_year", "cutoff_two_years_prior", "predicted_current_year",
		"seats", "round").
		From("cutoff_records").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build cutoffs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying cutoff records: %w", err)
	}
	defer rows.Close()

	var records []models.CutoffRecord
	for rows.Next() {
		var rec models.CutoffRecord
		err := rows.Scan(
			&rec.ID, &rec.College, &rec.Branch, &rec.Category,
			&rec.CutoffPriorYear, &rec.CutoffTwoYearsPrior, &rec.PredictedCurrentYear,
			&rec.Seats, &rec.Round)
		if err != nil {
			return nil, fmt.Errorf("error scanning cutoff row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cutoff rows: %w", err)
	}

	return records, nil
}

// GetDistinctBranches lists the branch names present in the dataset
func (r *CutoffRepository) GetDistinctBranches(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT branch FROM cutoff_records ORDER BY branch ASC`)
	if err != nil {
		return nil, fmt.Errorf("error querying branches: %w", err)
	}
	defer rows.Close()

	var branches []string
	for rows.Next() {
		var branch string
		if err := rows.Scan(&branch); err != nil {
			return nil, fmt.Errorf("error scanning branch row: %w", err)
		}
		branches = append(branches, branch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating branch rows: %w", err)
	}

	return branches, nil
}

// Count returns the number of reference rows; used by the seeder to
// decide whether the dataset still needs loading.
func (r *CutoffRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cutoff_records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting cutoff records: %w", err)
	}
	return count, nil
}

// InsertBatch loads reference rows; only the seeder calls this
func (r *CutoffRepository) InsertBatch(ctx context.Context, records []models.CutoffRecord) error {
	if len(records) == 0 {
		return nil
	}

	insert := r.sb.Insert("cutoff_records").
		Columns("college", "branch", "category",
			"cutoff_prior_year", "cutoff_two_years_prior", "predicted_current_year",
			"seats", "round")
	for _, rec := range records {
		insert = insert.Values(rec.College, rec.Branch, rec.Category,
			rec.CutoffPriorYear, rec.CutoffTwoYearsPrior, rec.PredictedCurrentYear,
			rec.Seats, rec.Round)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build cutoff insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error inserting cutoff records: %w", err)
	}
	return nil
}
