package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tanvi/examtrack/internal/app/models"
	"github.com/tanvi/examtrack/internal/app/models/dto"
	"github.com/tanvi/examtrack/internal/pkg/apperrors"
)

func timePtr(t time.Time) *time.Time { return &t }

func fullDatesExam(now time.Time) *models.Exam {
	return &models.Exam{
		ID:                 7,
		Name:               "JEE Main",
		ApplicationEndDate: timePtr(now.AddDate(0, 0, 30)),
		ExamDate:           timePtr(now.AddDate(0, 0, 60)),
		ResultDate:         timePtr(now.AddDate(0, 0, 90)),
	}
}

func TestDeriveRemindersAllMilestones(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	exam := fullDatesExam(now)

	reminders := DeriveReminders(exam, now)
	if len(reminders) != 3 {
		t.Fatalf("got %d reminders, want 3", len(reminders))
	}

	tests := []struct {
		wantType     models.ReminderType
		wantPriority models.ReminderPriority
		wantDay      time.Time
		wantTitle    string
	}{
		{models.ReminderApplicationDeadline, models.PriorityHigh, exam.ApplicationEndDate.AddDate(0, 0, -7), "Application Deadline Approaching - JEE Main"},
		{models.ReminderExamDate, models.PriorityUrgent, exam.ExamDate.AddDate(0, 0, -3), "Exam in 3 Days - JEE Main"},
		{models.ReminderResultDate, models.PriorityMedium, exam.ResultDate.AddDate(0, 0, -1), "Results Expected Tomorrow - JEE Main"},
	}

	for i, tt := range tests {
		rem := reminders[i]
		if rem.ReminderType != tt.wantType {
			t.Errorf("reminder %d: type = %q, want %q", i, rem.ReminderType, tt.wantType)
		}
		if rem.Priority != tt.wantPriority {
			t.Errorf("reminder %d: priority = %q, want %q", i, rem.Priority, tt.wantPriority)
		}
		if rem.Title != tt.wantTitle {
			t.Errorf("reminder %d: title = %q, want %q", i, rem.Title, tt.wantTitle)
		}
		if !sameCalendarDay(rem.ReminderDate, tt.wantDay) {
			t.Errorf("reminder %d: date = %v, want day of %v", i, rem.ReminderDate, tt.wantDay)
		}
		if rem.ReminderDate.Hour() != reminderHour || rem.ReminderDate.Minute() != 0 {
			t.Errorf("reminder %d: fires at %02d:%02d, want %02d:00", i,
				rem.ReminderDate.Hour(), rem.ReminderDate.Minute(), reminderHour)
		}
		if rem.ExamID == nil || *rem.ExamID != exam.ID {
			t.Errorf("reminder %d: exam ID not carried over", i)
		}
		if rem.Description == nil || *rem.Description == "" {
			t.Errorf("reminder %d: missing description", i)
		}
	}
}

func TestDeriveRemindersSkipsMissingDates(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	exam := &models.Exam{
		ID:       3,
		Name:     "NEET UG",
		ExamDate: timePtr(now.AddDate(0, 0, 45)),
	}

	reminders := DeriveReminders(exam, now)
	if len(reminders) != 1 {
		t.Fatalf("got %d reminders, want 1", len(reminders))
	}
	if reminders[0].ReminderType != models.ReminderExamDate {
		t.Errorf("type = %q, want %q", reminders[0].ReminderType, models.ReminderExamDate)
	}
}

func TestDeriveRemindersDiscardsPastCandidates(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// Exam in 2 days: the 3-days-before trigger already passed
	exam := &models.Exam{ID: 3, Name: "CAT", ExamDate: timePtr(now.AddDate(0, 0, 2))}
	if got := DeriveReminders(exam, now); len(got) != 0 {
		t.Fatalf("got %d reminders for an elapsed trigger, want 0", len(got))
	}

	// Exam in 4 days: the trigger lands tomorrow at 09:00
	exam.ExamDate = timePtr(now.AddDate(0, 0, 4))
	got := DeriveReminders(exam, now)
	if len(got) != 1 {
		t.Fatalf("got %d reminders, want 1", len(got))
	}
	if !got[0].ReminderDate.After(now) {
		t.Errorf("reminder at %v is not in the future of %v", got[0].ReminderDate, now)
	}
}

func TestDeriveRemindersExactInstantIsNotFuture(t *testing.T) {
	// The candidate would land exactly on now; strictly-after means it drops
	now := time.Date(2026, 8, 28, reminderHour, 0, 0, 0, time.UTC)
	exam := &models.Exam{ID: 3, Name: "CLAT", ResultDate: timePtr(now.AddDate(0, 0, 1))}

	if got := DeriveReminders(exam, now); len(got) != 0 {
		t.Fatalf("got %d reminders for a candidate equal to now, want 0", len(got))
	}
}

func TestScheduleRemindersDeduplicatesByType(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	exam := fullDatesExam(now)
	examID := exam.ID

	// The stored timestamp differs from what derivation would produce;
	// dedup ignores it and still treats the pair as a duplicate
	existing := []models.Reminder{{
		ID:           41,
		UserID:       12,
		ExamID:       &examID,
		ReminderType: models.ReminderApplicationDeadline,
		ReminderDate: now.AddDate(0, 0, 99),
	}}

	inserts := ScheduleReminders(12, exam, now, existing)
	if len(inserts) != 2 {
		t.Fatalf("got %d inserts, want 2", len(inserts))
	}
	for _, rem := range inserts {
		if rem.ReminderType == models.ReminderApplicationDeadline {
			t.Errorf("duplicate type %q was not filtered", rem.ReminderType)
		}
		if rem.UserID != 12 {
			t.Errorf("insert UserID = %d, want 12", rem.UserID)
		}
	}
}

func TestScheduleRemindersIsIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	exam := fullDatesExam(now)

	first := ScheduleReminders(12, exam, now, nil)
	if len(first) != 3 {
		t.Fatalf("first run produced %d inserts, want 3", len(first))
	}

	second := ScheduleReminders(12, exam, now, first)
	if len(second) != 0 {
		t.Fatalf("second run produced %d inserts, want 0", len(second))
	}
}

func TestScheduleRemindersIgnoresOtherExams(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	exam := fullDatesExam(now)
	otherID := exam.ID + 1

	existing := []models.Reminder{{
		UserID:       12,
		ExamID:       &otherID,
		ReminderType: models.ReminderExamDate,
		ReminderDate: now.AddDate(0, 0, 5),
	}}

	if got := ScheduleReminders(12, exam, now, existing); len(got) != 3 {
		t.Fatalf("got %d inserts, want 3: another exam's reminders must not block", len(got))
	}
}

func TestCreateReminderRejectsPastDate(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc := &reminderServiceImpl{now: func() time.Time { return now }}

	req := &dto.CreateReminderRequest{
		Title:        "Mock test",
		ReminderDate: now.Add(-time.Hour),
	}
	if _, err := svc.CreateReminder(context.Background(), 12, req); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("CreateReminder error = %v, want ErrBadRequest", err)
	}
}

func TestClassifyRemindersBuckets(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	reminders := []models.Reminder{
		{ID: 1, ReminderDate: now.Add(-3 * time.Hour)},                // earlier today
		{ID: 2, ReminderDate: now.Add(20 * time.Hour)},                // tomorrow morning, inside 24h
		{ID: 3, ReminderDate: now.AddDate(0, 0, -1)},                  // yesterday
		{ID: 4, ReminderDate: now.AddDate(0, 0, 3)},                   // unsent, within the week
		{ID: 5, ReminderDate: now.AddDate(0, 0, 3), IsSent: true},     // sent, within the week
		{ID: 6, ReminderDate: now.AddDate(0, 0, 10)},                  // beyond the week
	}

	buckets := ClassifyReminders(reminders, now)

	wantBuckets := map[string][]int64{
		"today":    {1, 2},
		"past":     {3},
		"thisWeek": {4},
		"future":   {5, 6},
	}
	gotBuckets := map[string][]models.Reminder{
		"today":    buckets.Today,
		"past":     buckets.Past,
		"thisWeek": buckets.ThisWeek,
		"future":   buckets.Future,
	}

	total := 0
	for name, want := range wantBuckets {
		got := gotBuckets[name]
		total += len(got)
		if len(got) != len(want) {
			t.Errorf("%s: got %d reminders, want %d", name, len(got), len(want))
			continue
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("%s[%d]: got reminder %d, want %d", name, i, got[i].ID, id)
			}
		}
	}
	if total != len(reminders) {
		t.Errorf("buckets hold %d reminders, input had %d", total, len(reminders))
	}
}

func TestClassifyRemindersEmptyInput(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	buckets := ClassifyReminders(nil, now)

	if buckets.Today == nil || buckets.ThisWeek == nil || buckets.Future == nil || buckets.Past == nil {
		t.Fatal("expected empty slices, got nil buckets")
	}
	if len(buckets.Today)+len(buckets.ThisWeek)+len(buckets.Future)+len(buckets.Past) != 0 {
		t.Error("expected all buckets empty")
	}
}
