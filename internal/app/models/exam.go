package models

import "time"

// Exam represents a competitive exam definition in the catalog.
// Key dates are nullable; a missing date simply skips the reminder
// rule that depends on it.
type Exam struct {
	ID                   int64        `json:"id" db:"id" example:"1"`
	Name                 string       `json:"name" db:"name" example:"JEE Main"`
	FullName             string       `json:"fullName" db:"full_name" example:"Joint Entrance Examination Main"`
	Category             ExamCategory `json:"category" db:"category" example:"engineering"`
	ExamDate             *time.Time   `json:"examDate,omitempty" db:"exam_date"`
	ApplicationStartDate *time.Time   `json:"applicationStartDate,omitempty" db:"application_start_date"`
	ApplicationEndDate   *time.Time   `json:"applicationEndDate,omitempty" db:"application_end_date"`
	ResultDate           *time.Time   `json:"resultDate,omitempty" db:"result_date"`
	CreatedAt            time.Time    `json:"createdAt" db:"created_at"`
}

// UserExamRegistration links a user to an exam they are tracking
type UserExamRegistration struct {
	ID                int64             `json:"id" db:"id"`
	UserID            int64             `json:"userId" db:"user_id"`
	ExamID            int64             `json:"examId" db:"exam_id"`
	ApplicationStatus ApplicationStatus `json:"applicationStatus" db:"application_status" example:"planning"`
	PreparationStatus PreparationStatus `json:"preparationStatus" db:"preparation_status" example:"ongoing"`
	TargetRank        *int              `json:"targetRank,omitempty" db:"target_rank"`             // Positive when present
	TargetPercentile  *float64          `json:"targetPercentile,omitempty" db:"target_percentile"` // 0-100 when present
	IsPriority        bool              `json:"isPriority" db:"is_priority"`
	CreatedAt         time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time         `json:"updatedAt" db:"updated_at"`

	// Relation
	Exam *Exam `json:"exam,omitempty"`
}
