package dto

import (
	"time"

	"github.com/tanvi/examtrack/internal/app/models"
)

// CreateReminderRequest represents a manual reminder creation request
type CreateReminderRequest struct {
	ExamID       *int64    `json:"examId" binding:"omitempty,min=1"`
	Title        string    `json:"title" binding:"required"`
	Description  *string   `json:"description"`
	ReminderType string    `json:"reminderType" binding:"omitempty,oneof=custom application_deadline exam_date result_date counseling"`
	ReminderDate time.Time `json:"reminderDate" binding:"required"`
	Priority     string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

// AutoSetupRemindersRequest asks the scheduler to derive milestone reminders for an exam
type AutoSetupRemindersRequest struct {
	ExamID int64 `json:"examId" binding:"required,min=1"`
}

// AutoSetupRemindersResponse reports how many reminders the scheduler inserted.
// Zero inserts means the exam's reminders were already up to date.
type AutoSetupRemindersResponse struct {
	Created   int               `json:"created"`
	Reminders []models.Reminder `json:"reminders"`
}

// ClassifiedRemindersResponse partitions a user's reminders into display buckets
type ClassifiedRemindersResponse struct {
	Today    []models.Reminder `json:"today"`
	ThisWeek []models.Reminder `json:"thisWeek"`
	Future   []models.Reminder `json:"future"`
	Past     []models.Reminder `json:"past"`
}
