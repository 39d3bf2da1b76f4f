package services

import (
	"errors"
	"math"
	"testing"

	"github.com/tanvi/examtrack/internal/app/models"
	"github.com/tanvi/examtrack/internal/pkg/apperrors"
)

func TestPredictRankJEEMainWorkedExample(t *testing.T) {
	result, err := PredictRank("JEE Main", 280, models.CategoryGeneral)
	if err != nil {
		t.Fatalf("PredictRank returned error: %v", err)
	}

	if result.PredictedRank != 5333 {
		t.Errorf("PredictedRank = %d, want 5333", result.PredictedRank)
	}
	if result.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", result.Confidence)
	}
	if result.RangeLow != 4266 {
		t.Errorf("RangeLow = %d, want 4266", result.RangeLow)
	}
	if result.RangeHigh != 6400 {
		t.Errorf("RangeHigh = %d, want 6400", result.RangeHigh)
	}
}

func TestPredictRankCategoryMultipliers(t *testing.T) {
	tests := []struct {
		category models.ReservationCategory
		wantRank int
	}{
		{models.CategoryGeneral, 5333},
		{models.CategoryOBC, 4533},  // round(5333 * 0.85)
		{models.CategorySC, 3733},   // round(5333 * 0.70)
		{models.CategoryST, 3466},   // round(5333 * 0.65)
		{"unknown-category", 5333},  // falls back to the general multiplier
	}

	for _, tt := range tests {
		result, err := PredictRank("JEE Main", 280, tt.category)
		if err != nil {
			t.Fatalf("PredictRank(%q) returned error: %v", tt.category, err)
		}
		if result.PredictedRank != tt.wantRank {
			t.Errorf("PredictRank(%q) = %d, want %d", tt.category, result.PredictedRank, tt.wantRank)
		}
	}
}

func TestPredictRankMonotonicity(t *testing.T) {
	prevRank := math.MaxInt
	for score := 0.0; score <= 300; score += 10 {
		result, err := PredictRank("JEE Main", score, models.CategoryGeneral)
		if err != nil {
			t.Fatalf("PredictRank(score=%v) returned error: %v", score, err)
		}
		if result.PredictedRank > prevRank {
			t.Fatalf("rank increased with score: score=%v rank=%d prev=%d", score, result.PredictedRank, prevRank)
		}
		prevRank = result.PredictedRank
	}
}

func TestPredictRankClampsOutOfRangeScores(t *testing.T) {
	// Above the exam maximum the score clamps to maxScore and the rank
	// bottoms out at 1
	result, err := PredictRank("JEE Main", 400, models.CategoryGeneral)
	if err != nil {
		t.Fatalf("PredictRank returned error: %v", err)
	}
	if result.PredictedRank != 1 {
		t.Errorf("PredictedRank = %d, want 1", result.PredictedRank)
	}
	// Confidence still reads the raw score
	if result.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", result.Confidence)
	}

	// Below zero the score clamps to 0 and the rank hits the ceiling
	result, err = PredictRank("JEE Main", -50, models.CategoryGeneral)
	if err != nil {
		t.Fatalf("PredictRank returned error: %v", err)
	}
	if result.PredictedRank != 1200000 {
		t.Errorf("PredictedRank = %d, want 1200000", result.PredictedRank)
	}
	if result.Confidence != 0.6 {
		t.Errorf("Confidence = %v, want base confidence 0.6", result.Confidence)
	}
}

func TestPredictRankNonFiniteScore(t *testing.T) {
	for _, score := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := PredictRank("JEE Main", score, models.CategoryGeneral)
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("PredictRank(%v) error = %v, want ErrInvalidInput", score, err)
		}
	}
}

func TestPredictRankUnknownExamUsesDefaultCurve(t *testing.T) {
	result, err := PredictRank("CLAT", 900, models.CategoryGeneral)
	if err != nil {
		t.Fatalf("PredictRank returned error: %v", err)
	}

	// Default curve: 100000 * ((1000-900)/1000)^2 = 1000
	if result.PredictedRank != 1000 {
		t.Errorf("PredictedRank = %d, want 1000", result.PredictedRank)
	}
	if result.Confidence != 0.70 {
		t.Errorf("Confidence = %v, want 0.70", result.Confidence)
	}
}

func TestPredictRankBandBracketsPrediction(t *testing.T) {
	for _, score := range []float64{50, 120, 200, 280} {
		result, err := PredictRank("NEET UG", score, models.CategoryOBC)
		if err != nil {
			t.Fatalf("PredictRank returned error: %v", err)
		}
		if result.RangeLow > result.PredictedRank || result.RangeHigh < result.PredictedRank {
			t.Errorf("band [%d, %d] does not bracket rank %d",
				result.RangeLow, result.RangeHigh, result.PredictedRank)
		}
	}
}
