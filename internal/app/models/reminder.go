package models

import "time"

// ReminderType identifies which milestone a reminder tracks
type ReminderType string

// Reminder type constants
const (
	ReminderCustom              ReminderType = "custom"
	ReminderApplicationDeadline ReminderType = "application_deadline"
	ReminderExamDate            ReminderType = "exam_date"
	ReminderResultDate          ReminderType = "result_date"
	ReminderCounseling          ReminderType = "counseling"
)

// ReminderPriority ranks how pressing a reminder is
type ReminderPriority string

// Priority constants
const (
	PriorityLow    ReminderPriority = "low"
	PriorityMedium ReminderPriority = "medium"
	PriorityHigh   ReminderPriority = "high"
	PriorityUrgent ReminderPriority = "urgent"
)

// Reminder is a scheduled milestone notification for a user.
// Auto-derived reminders always carry a future reminder_date at creation;
// past-due candidates are discarded before insert.
type Reminder struct {
	ID           int64            `json:"id" db:"id"`
	UserID       int64            `json:"userId" db:"user_id"`
	ExamID       *int64           `json:"examId,omitempty" db:"exam_id"`
	Title        string           `json:"title" db:"title" example:"Exam in 3 Days - JEE Main"`
	Description  *string          `json:"description,omitempty" db:"description"`
	ReminderType ReminderType     `json:"reminderType" db:"reminder_type" example:"exam_date"`
	ReminderDate time.Time        `json:"reminderDate" db:"reminder_date"`
	Priority     ReminderPriority `json:"priority" db:"priority" example:"urgent"`
	IsSent       bool             `json:"isSent" db:"is_sent"`
	IsRead       bool             `json:"isRead" db:"is_read"`
	CreatedAt    time.Time        `json:"createdAt" db:"created_at"`
}
