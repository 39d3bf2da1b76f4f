package models

// Trend describes the direction of a predicted cutoff relative to the prior year
type Trend string

// Trend constants
const (
	TrendIncreasing Trend = "Increasing"
	TrendDecreasing Trend = "Decreasing"
	TrendStable     Trend = "Stable"
)

// CutoffRecord is a historical admission-cutoff reference row. Reference
// data only; rows are seeded, never user-owned.
type CutoffRecord struct {
	ID                   int64               `json:"id" db:"id"`
	College              string              `json:"college" db:"college" example:"IIT Delhi"`
	Branch               string              `json:"branch" db:"branch" example:"Computer Science Engineering"`
	Category             ReservationCategory `json:"category" db:"category" example:"general"`
	CutoffPriorYear      int                 `json:"cutoffPriorYear" db:"cutoff_prior_year"`
	CutoffTwoYearsPrior  int                 `json:"cutoffTwoYearsPrior" db:"cutoff_two_years_prior"`
	PredictedCurrentYear int                 `json:"predictedCurrentYear" db:"predicted_current_year"`
	Seats                int                 `json:"seats" db:"seats"`
	Round                int                 `json:"round" db:"round"`
}

// AnnotatedCutoff is a cutoff record decorated with its year-over-year trend
type AnnotatedCutoff struct {
	CutoffRecord
	Trend  Trend `json:"trend" example:"Decreasing"`
	Change int   `json:"change" example:"-4"` // predicted_current_year - cutoff_prior_year
}
