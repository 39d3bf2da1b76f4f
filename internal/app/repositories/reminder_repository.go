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
)

// ReminderRepository handles reminder database operations
type ReminderRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReminderRepository creates a new ReminderRepository
func NewReminderRepository(db *pgxpool.Pool) *ReminderRepository {
	return &ReminderRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const reminderColumns = "id, user_id, exam_id, title, description, reminder_type, reminder_date, priority, is_sent, is_read, created_at"

func scanReminder(row pgx.Row) (*models.Reminder, error) {
	rem := &models.Reminder{}
	err := row.Scan(
		&rem.ID, &rem.UserID, &rem.ExamID, &rem.Title, &rem.Description,
		&rem.ReminderType, &rem.ReminderDate, &rem.Priority,
		&rem.IsSent, &rem.IsRead, &rem.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rem, nil
}

// InsertBatch stores a batch of reminders and fills in the generated IDs
func (r *ReminderRepository) InsertBatch(ctx context.Context, reminders []models.Reminder) error {
	if len(reminders) == 0 {
		return nil
	}

	// Batched round trip; each insert still returns its generated ID.
	batch := &pgx.Batch{}
	for _, rem := range reminders {
		batch.Queue(`
			INSERT INTO reminders
				(user_id, exam_id, title, description, reminder_type, reminder_date, priority, is_sent, is_read)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`,
			rem.UserID, rem.ExamID, rem.Title, rem.Description,
			rem.ReminderType, rem.ReminderDate, rem.Priority, rem.IsSent, rem.IsRead)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for i := range reminders {
		if err := results.QueryRow().Scan(&reminders[i].ID); err != nil {
			return fmt.Errorf("error inserting reminder %d: %w", i, err)
		}
	}

	return nil
}

// GetByID retrieves a reminder by ID
func (r *ReminderRepository) GetByID(ctx context.Context, id int64) (*models.Reminder, error) {
	sql, args, err := r.sb.Select(reminderColumns).
		From("reminders").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reminder query: %w", err)
	}

	rem, err := scanReminder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReminderNotFound
		}
		return nil, fmt.Errorf("error querying reminder: %w", err)
	}
	return rem, nil
}

// GetByUserID retrieves all reminders for a user ordered by reminder date
func (r *ReminderRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Reminder, error) {
	return r.getReminders(ctx, squirrel.Eq{"user_id": userID})
}

// GetByUserAndExam retrieves a user's reminders attached to a specific exam.
// The scheduler's dedup check reads through this.
func (r *ReminderRepository) GetByUserAndExam(ctx context.Context, userID, examID int64) ([]models.Reminder, error) {
	return r.getReminders(ctx, squirrel.Eq{"user_id": userID, "exam_id": examID})
}

func (r *ReminderRepository) getReminders(ctx context.Context, pred squirrel.Eq) ([]models.Reminder, error) {
	sql, args, err := r.sb.Select(reminderColumns).
		From("reminders").
		Where(pred).
		OrderBy("reminder_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reminders query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning reminder row: %w", err)
		}
		reminders = append(reminders, *rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminder rows: %w", err)
	}

	return reminders, nil
}

// GetDueUnsent retrieves reminders whose date has passed but are not yet marked sent
func (r *ReminderRepository) GetDueUnsent(ctx context.Context, now time.Time, limit int) ([]models.Reminder, error) {
	sql, args, err := r.sb.Select(reminderColumns).
		From("reminders").
		Where(squirrel.And{
			squirrel.LtOrEq{"reminder_date": now},
			squirrel.Eq{"is_sent": false},
		}).
		OrderBy("reminder_date ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build due reminders query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying due reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning due reminder row: %w", err)
		}
		reminders = append(reminders, *rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating due reminder rows: %w", err)
	}

	return reminders, nil
}

// MarkSent flips is_sent on the given reminders
func (r *ReminderRepository) MarkSent(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("reminders").
		Set("is_sent", true).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark sent update: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error marking reminders sent: %w", err)
	}
	return nil
}

// MarkRead flips is_read on a single reminder
func (r *ReminderRepository) MarkRead(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("reminders").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark read update: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error marking reminder read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReminderNotFound
	}
	return nil
}

// Delete removes a reminder
func (r *ReminderRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("reminders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build reminder delete: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReminderNotFound
	}
	return nil
}
