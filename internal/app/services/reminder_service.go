package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tanvi/examtrack/internal/app/models"
	"github.com/tanvi/examtrack/internal/app/models/dto"
	"github.com/tanvi/examtrack/internal/app/repositories"
	"github.com/tanvi/examtrack/internal/pkg/apperrors"
)

// reminderHour is the local wall-clock hour auto-derived reminders fire at
const reminderHour = 9

// deriveRule pairs a key-date accessor with the reminder it produces
type deriveRule struct {
	date         func(*models.Exam) *time.Time
	offsetDays   int
	reminderType models.ReminderType
	priority     models.ReminderPriority
	title        func(*models.Exam) string
	description  func(*models.Exam) string
}

var deriveRules = []deriveRule{
	{
		date:         func(e *models.Exam) *time.Time { return e.ApplicationEndDate },
		offsetDays:   -7,
		reminderType: models.ReminderApplicationDeadline,
		priority:     models.PriorityHigh,
		title:        func(e *models.Exam) string { return "Application Deadline Approaching - " + e.Name },
		description: func(e *models.Exam) string {
			return fmt.Sprintf("The application window for %s closes in 7 days.", e.Name)
		},
	},
	{
		date:         func(e *models.Exam) *time.Time { return e.ExamDate },
		offsetDays:   -3,
		reminderType: models.ReminderExamDate,
		priority:     models.PriorityUrgent,
		title:        func(e *models.Exam) string { return "Exam in 3 Days - " + e.Name },
		description: func(e *models.Exam) string {
			return fmt.Sprintf("%s is only 3 days away. Time for final revision.", e.Name)
		},
	},
	{
		date:         func(e *models.Exam) *time.Time { return e.ResultDate },
		offsetDays:   -1,
		reminderType: models.ReminderResultDate,
		priority:     models.PriorityMedium,
		title:        func(e *models.Exam) string { return "Results Expected Tomorrow - " + e.Name },
		description: func(e *models.Exam) string {
			return fmt.Sprintf("Results for %s are expected tomorrow.", e.Name)
		},
	},
}

// DeriveReminders produces the candidate milestone reminders for an exam.
// Each rule is evaluated independently; a missing key date skips its rule,
// and a candidate whose instant is not strictly after now is discarded.
// The returned reminders are unpersisted and carry no user.
func DeriveReminders(exam *models.Exam, now time.Time) []models.Reminder {
	candidates := make([]models.Reminder, 0, len(deriveRules))
	for _, rule := range deriveRules {
		keyDate := rule.date(exam)
		if keyDate == nil {
			continue
		}

		base := keyDate.AddDate(0, 0, rule.offsetDays)
		at := time.Date(base.Year(), base.Month(), base.Day(), reminderHour, 0, 0, 0, base.Location())
		if !at.After(now) {
			continue
		}

		examID := exam.ID
		description := rule.description(exam)
		candidates = append(candidates, models.Reminder{
			ExamID:       &examID,
			Title:        rule.title(exam),
			Description:  &description,
			ReminderType: rule.reminderType,
			ReminderDate: at,
			Priority:     rule.priority,
		})
	}
	return candidates
}

// ScheduleReminders filters DeriveReminders output against the reminders
// already stored for the same user and exam. A candidate is a duplicate
// when an existing reminder shares its exam_id and reminder_type; the
// timestamp is deliberately ignored so repeated auto-setup calls stay
// idempotent. An empty result means "already up to date", not an error.
func ScheduleReminders(userID int64, exam *models.Exam, now time.Time, existing []models.Reminder) []models.Reminder {
	have := make(map[models.ReminderType]bool, len(existing))
	for _, rem := range existing {
		if rem.ExamID != nil && *rem.ExamID == exam.ID {
			have[rem.ReminderType] = true
		}
	}

	inserts := make([]models.Reminder, 0, 3)
	for _, candidate := range DeriveReminders(exam, now) {
		if have[candidate.ReminderType] {
			continue
		}
		candidate.UserID = userID
		inserts = append(inserts, candidate)
	}
	return inserts
}

// sameCalendarDay reports whether two instants fall on the same local day
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ClassifyReminders partitions reminders into display buckets. Every
// input lands in exactly one bucket:
//   - today: same calendar day as now, or strictly inside (now, now+24h)
//   - thisWeek: unsent and strictly inside (now, now+7d), excluding today
//   - future: everything else after now+24h (and sent ones within the week)
//   - past: before now, unless the calendar-day rule already claimed it
//
// A reminder earlier today is still "today" even though its instant has
// passed; the calendar-day check wins over time ordering for that bucket.
func ClassifyReminders(reminders []models.Reminder, now time.Time) *dto.ClassifiedRemindersResponse {
	buckets := &dto.ClassifiedRemindersResponse{
		Today:    []models.Reminder{},
		ThisWeek: []models.Reminder{},
		Future:   []models.Reminder{},
		Past:     []models.Reminder{},
	}

	dayAhead := now.AddDate(0, 0, 1)
	weekAhead := now.AddDate(0, 0, 7)

	for _, rem := range reminders {
		at := rem.ReminderDate
		switch {
		case sameCalendarDay(at, now) || (at.After(now) && at.Before(dayAhead)):
			buckets.Today = append(buckets.Today, rem)
		case at.Before(now):
			buckets.Past = append(buckets.Past, rem)
		case !rem.IsSent && at.Before(weekAhead):
			buckets.ThisWeek = append(buckets.ThisWeek, rem)
		default:
			buckets.Future = append(buckets.Future, rem)
		}
	}
	return buckets
}

// ReminderService defines the interface for reminder operations
type ReminderService interface {
	CreateReminder(ctx context.Context, userID int64, req *dto.CreateReminderRequest) (*models.Reminder, error)
	GetClassifiedReminders(ctx context.Context, userID int64) (*dto.ClassifiedRemindersResponse, error)
	AutoSetupReminders(ctx context.Context, userID int64, examID int64) (*dto.AutoSetupRemindersResponse, error)
	MarkReminderRead(ctx context.Context, userID, reminderID int64) error
	DeleteReminder(ctx context.Context, userID, reminderID int64) error
}

// reminderServiceImpl implements ReminderService
type reminderServiceImpl struct {
	reminderRepo *repositories.ReminderRepository
	examRepo     *repositories.ExamRepository
	now          func() time.Time
}

// NewReminderService creates a new ReminderService
func NewReminderService(reminderRepo *repositories.ReminderRepository, examRepo *repositories.ExamRepository) ReminderService {
	return &reminderServiceImpl{
		reminderRepo: reminderRepo,
		examRepo:     examRepo,
		now:          time.Now,
	}
}

// CreateReminder stores a user-authored reminder
func (s *reminderServiceImpl) CreateReminder(ctx context.Context, userID int64, req *dto.CreateReminderRequest) (*models.Reminder, error) {
	if !req.ReminderDate.After(s.now()) {
		return nil, apperrors.NewBadRequestError("reminder date must be in the future")
	}
	if req.ExamID != nil {
		if _, err := s.examRepo.GetByID(ctx, *req.ExamID); err != nil {
			return nil, err
		}
	}

	reminderType := models.ReminderCustom
	if req.ReminderType != "" {
		reminderType = models.ReminderType(req.ReminderType)
	}
	priority := models.PriorityMedium
	if req.Priority != "" {
		priority = models.ReminderPriority(req.Priority)
	}

	reminder := models.Reminder{
		UserID:       userID,
		ExamID:       req.ExamID,
		Title:        req.Title,
		Description:  req.Description,
		ReminderType: reminderType,
		ReminderDate: req.ReminderDate,
		Priority:     priority,
	}

	inserted := []models.Reminder{reminder}
	if err := s.reminderRepo.InsertBatch(ctx, inserted); err != nil {
		return nil, fmt.Errorf("error creating reminder: %w", err)
	}
	return &inserted[0], nil
}

// GetClassifiedReminders loads the user's reminders and buckets them for display
func (s *reminderServiceImpl) GetClassifiedReminders(ctx context.Context, userID int64) (*dto.ClassifiedRemindersResponse, error) {
	reminders, err := s.reminderRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting reminders: %w", err)
	}
	return ClassifyReminders(reminders, s.now()), nil
}

// AutoSetupReminders derives milestone reminders for an exam and inserts
// the ones the user does not already have
func (s *reminderServiceImpl) AutoSetupReminders(ctx context.Context, userID int64, examID int64) (*dto.AutoSetupRemindersResponse, error) {
	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	existing, err := s.reminderRepo.GetByUserAndExam(ctx, userID, examID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing reminders: %w", err)
	}

	inserts := ScheduleReminders(userID, exam, s.now(), existing)
	if len(inserts) > 0 {
		if err := s.reminderRepo.InsertBatch(ctx, inserts); err != nil {
			return nil, fmt.Errorf("error inserting reminders: %w", err)
		}
	}

	return &dto.AutoSetupRemindersResponse{
		Created:   len(inserts),
		Reminders: inserts,
	}, nil
}

// MarkReminderRead flags a reminder as read after verifying ownership
func (s *reminderServiceImpl) MarkReminderRead(ctx context.Context, userID, reminderID int64) error {
	reminder, err := s.reminderRepo.GetByID(ctx, reminderID)
	if err != nil {
		return err
	}
	if reminder.UserID != userID {
		return apperrors.ErrReminderNotFound
	}
	return s.reminderRepo.MarkRead(ctx, reminderID)
}

// DeleteReminder removes a reminder after verifying ownership
func (s *reminderServiceImpl) DeleteReminder(ctx context.Context, userID, reminderID int64) error {
	reminder, err := s.reminderRepo.GetByID(ctx, reminderID)
	if err != nil {
		return err
	}
	if reminder.UserID != userID {
		return apperrors.ErrReminderNotFound
	}
	return s.reminderRepo.Delete(ctx, reminderID)
}
