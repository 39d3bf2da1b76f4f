package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleAdmin   RoleType = "ADMIN"
)

// ExamCategory classifies an exam by the admission stream it serves
type ExamCategory string

// Exam category constants
const (
	ExamCategoryEngineering  ExamCategory = "engineering"
	ExamCategoryMedical      ExamCategory = "medical"
	ExamCategoryLaw          ExamCategory = "law"
	ExamCategoryManagement   ExamCategory = "management"
	ExamCategoryArchitecture ExamCategory = "architecture"
	ExamCategoryOther        ExamCategory = "other"
)

// ReservationCategory is the candidate's reservation category; it scales
// predicted ranks via a fixed multiplier
type ReservationCategory string

// Reservation category constants
const (
	CategoryGeneral ReservationCategory = "general"
	CategoryOBC     ReservationCategory = "obc"
	CategorySC      ReservationCategory = "sc"
	CategoryST      ReservationCategory = "st"
)

// ApplicationStatus tracks where a registration stands in the application cycle
type ApplicationStatus string

// Application status constants
const (
	ApplicationPlanning  ApplicationStatus = "planning"
	ApplicationApplied   ApplicationStatus = "applied"
	ApplicationAppeared  ApplicationStatus = "appeared"
	ApplicationQualified ApplicationStatus = "qualified"
)

// PreparationStatus tracks the candidate's preparation progress for an exam
type PreparationStatus string

// Preparation status constants
const (
	PreparationNotStarted PreparationStatus = "not_started"
	PreparationStarted    PreparationStatus = "started"
	PreparationOngoing    PreparationStatus = "ongoing"
	PreparationCompleted  PreparationStatus = "completed"
)
