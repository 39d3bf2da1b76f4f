package services

import (
	"context"
	"fmt"
	"math"

	"github.com/tanvi/examtrack/internal/app/models"
	"github.com/tanvi/examtrack/internal/app/models/dto"
	"github.com/tanvi/examtrack/internal/app/repositories"
	"github.com/tanvi/examtrack/internal/pkg/apperrors"
)

// rankCurve defines the monotonically decreasing power-law curve and
// confidence tiers used to map a raw score to a predicted rank:
//
//	baseRank = max(1, round(rankCeiling * ((maxScore - score) / maxScore) ^ exponent))
type rankCurve struct {
	maxScore       float64
	rankCeiling    float64
	exponent       float64
	tiers          []confidenceTier // Checked top-down; first match wins
	baseConfidence float64          // Used when no tier matches
}

// confidenceTier maps a raw-score threshold to a confidence level
type confidenceTier struct {
	above      float64
	confidence float64
}

// rankCurves holds the per-exam curve parameters, keyed by the exam's
// short display name. Exams without an entry use defaultCurve.
var rankCurves = map[string]rankCurve{
	"JEE Main": {
		maxScore:    300,
		rankCeiling: 1200000,
		exponent:    2,
		tiers: []confidenceTier{
			{above: 250, confidence: 0.9},
			{above: 200, confidence: 0.8},
			{above: 150, confidence: 0.7},
		},
		baseConfidence: 0.6,
	},
	"JEE Advanced": {
		maxScore:    360,
		rankCeiling: 250000,
		exponent:    1.8,
		tiers: []confidenceTier{
			{above: 300, confidence: 0.95},
			{above: 250, confidence: 0.85},
			{above: 200, confidence: 0.75},
		},
		baseConfidence: 0.65,
	},
	"NEET UG": {
		maxScore:    720,
		rankCeiling: 1800000,
		exponent:    2.2,
		tiers: []confidenceTier{
			{above: 650, confidence: 0.92},
			{above: 600, confidence: 0.82},
			{above: 550, confidence: 0.72},
		},
		baseConfidence: 0.62,
	},
}

// defaultCurve covers exams without tuned parameters. Scores are read on
// a 0-1000 scale and confidence stays flat.
var defaultCurve = rankCurve{
	maxScore:       1000,
	rankCeiling:    100000,
	exponent:       2,
	baseConfidence: 0.70,
}

// categoryMultipliers scale the base rank per reservation category.
// Unknown or empty categories fall back to the general multiplier.
var categoryMultipliers = map[models.ReservationCategory]float64{
	models.CategoryGeneral: 1.00,
	models.CategoryOBC:     0.85,
	models.CategorySC:      0.70,
	models.CategoryST:      0.65,
}

// curveForExam returns the curve parameters used for an exam name,
// falling back to the generic curve for unknown exams.
func curveForExam(examName string) rankCurve {
	if curve, ok := rankCurves[examName]; ok {
		return curve
	}
	return defaultCurve
}

// PredictRank maps an expected score and reservation category to a
// predicted rank with a confidence estimate and a ±20% band. The
// function is deterministic and side-effect free; out-of-range scores
// are clamped into [0, maxScore] rather than rejected, since front-end
// inputs arrive unvalidated. A non-finite score returns ErrInvalidInput.
func PredictRank(examName string, expectedScore float64, category models.ReservationCategory) (*models.PredictionResult, error) {
	if math.IsNaN(expectedScore) || math.IsInf(expectedScore, 0) {
		return nil, apperrors.NewInvalidInputError("expected score must be a finite number")
	}

	curve := curveForExam(examName)

	score := expectedScore
	if score < 0 {
		score = 0
	}
	if score > curve.maxScore {
		score = curve.maxScore
	}

	baseRank := math.Max(1, math.Round(curve.rankCeiling*math.Pow((curve.maxScore-score)/curve.maxScore, curve.exponent)))

	// Confidence tiers compare against the raw (unclamped) score.
	confidence := curve.baseConfidence
	for _, tier := range curve.tiers {
		if expectedScore > tier.above {
			confidence = tier.confidence
			break
		}
	}

	multiplier, ok := categoryMultipliers[category]
	if !ok {
		multiplier = 1.0
	}

	finalRank := int(math.Round(baseRank * multiplier))
	if finalRank < 1 {
		finalRank = 1
	}

	return &models.PredictionResult{
		PredictedRank: finalRank,
		Confidence:    confidence,
		RangeLow:      int(math.Round(float64(finalRank) * 0.8)),
		RangeHigh:     int(math.Round(float64(finalRank) * 1.2)),
	}, nil
}

// PredictionService defines the interface for rank prediction operations
type PredictionService interface {
	PredictRank(ctx context.Context, userID int64, req *dto.PredictRankRequest) (*dto.PredictionResponse, error)
	GetHistory(ctx context.Context, userID int64) ([]models.Prediction, error)
}

// predictionServiceImpl implements PredictionService
type predictionServiceImpl struct {
	examRepo       *repositories.ExamRepository
	predictionRepo *repositories.PredictionRepository
}

// NewPredictionService creates a new PredictionService
func NewPredictionService(
	examRepo *repositories.ExamRepository,
	predictionRepo *repositories.PredictionRepository,
) PredictionService {
	return &predictionServiceImpl{
		examRepo:       examRepo,
		predictionRepo: predictionRepo,
	}
}

// PredictRank resolves the exam, runs the model, and optionally persists
// the result as a history row
func (s *predictionServiceImpl) PredictRank(ctx context.Context, userID int64, req *dto.PredictRankRequest) (*dto.PredictionResponse, error) {
	exam, err := s.examRepo.GetByID(ctx, req.ExamID)
	if err != nil {
		return nil, err
	}

	category := models.ReservationCategory(req.Category)
	if category == "" {
		category = models.CategoryGeneral
	}

	result, err := PredictRank(exam.Name, req.ExpectedScore, category)
	if err != nil {
		return nil, err
	}

	if req.Save {
		prediction := &models.Prediction{
			UserID:        userID,
			ExamID:        exam.ID,
			Category:      category,
			ExpectedScore: req.ExpectedScore,
			PredictedRank: result.PredictedRank,
			Confidence:    result.Confidence,
			RangeLow:      result.RangeLow,
			RangeHigh:     result.RangeHigh,
		}
		if _, err := s.predictionRepo.Create(ctx, prediction); err != nil {
			return nil, fmt.Errorf("error saving prediction: %w", err)
		}
	}

	return &dto.PredictionResponse{
		ExamID:        exam.ID,
		ExamName:      exam.Name,
		Category:      string(category),
		ExpectedScore: req.ExpectedScore,
		PredictedRank: result.PredictedRank,
		Confidence:    result.Confidence,
		RangeLow:      result.RangeLow,
		RangeHigh:     result.RangeHigh,
	}, nil
}

// GetHistory retrieves the user's saved predictions
func (s *predictionServiceImpl) GetHistory(ctx context.Context, userID int64) ([]models.Prediction, error) {
	predictions, err := s.predictionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting prediction history: %w", err)
	}
	return predictions, nil
}
