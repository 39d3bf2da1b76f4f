package dto

// PredictRankRequest represents a rank prediction request
type PredictRankRequest struct {
	ExamID        int64   `json:"examId" binding:"required,min=1"`
	ExpectedScore float64 `json:"expectedScore" binding:"required"`
	Category      string  `json:"category" binding:"omitempty,oneof=general obc sc st"`
	Save          bool    `json:"save"` // Persist the result as a history row
}

// PredictionResponse represents a computed rank prediction
type PredictionResponse struct {
	ExamID        int64   `json:"examId"`
	ExamName      string  `json:"examName"`
	Category      string  `json:"category"`
	ExpectedScore float64 `json:"expectedScore"`
	PredictedRank int     `json:"predictedRank"`
	Confidence    float64 `json:"confidence"`
	RangeLow      int     `json:"rangeLow"`
	RangeHigh     int     `json:"rangeHigh"`
}
