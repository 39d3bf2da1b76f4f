package models

import "time"

// PredictionResult is the outcome of a rank prediction. Derived data;
// only persisted when the caller asks to keep a history row.
type PredictionResult struct {
	PredictedRank int     `json:"predictedRank" example:"5333"`
	Confidence    float64 `json:"confidence" example:"0.9"` // In [0,1]
	RangeLow      int     `json:"rangeLow" example:"4266"`
	RangeHigh     int     `json:"rangeHigh" example:"6400"`
}

// Prediction is a persisted prediction history row for a user
type Prediction struct {
	ID            int64               `json:"id" db:"id"`
	UserID        int64               `json:"userId" db:"user_id"`
	ExamID        int64               `json:"examId" db:"exam_id"`
	Category      ReservationCategory `json:"category" db:"category"`
	ExpectedScore float64             `json:"expectedScore" db:"expected_score"`
	PredictedRank int                 `json:"predictedRank" db:"predicted_rank"`
	Confidence    float64             `json:"confidence" db:"confidence"`
	RangeLow      int                 `json:"rangeLow" db:"range_low"`
	RangeHigh     int                 `json:"rangeHigh" db:"range_high"`
	CreatedAt     time.Time           `json:"createdAt" db:"created_at"`
}
