package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tanvi/examtrack/internal/app/models"
	"github.com/tanvi/examtrack/internal/app/models/dto"
	"github.com/tanvi/examtrack/internal/app/repositories"
	"github.com/tanvi/examtrack/internal/pkg/cache"
	"github.com/tanvi/examtrack/internal/pkg/logger"
)

// BranchFilterAll is the sentinel branch filter meaning "no constraint"
const BranchFilterAll = "all"

// FilterCutoffs applies the staged cutoff filters in order: exam
// category, then search term, then branch. Each stage narrows the
// previous stage's output; an absent constraint is a no-op. Dataset
// order is preserved and an empty result is a valid outcome.
func FilterCutoffs(dataset []models.CutoffRecord, examCategory models.ExamCategory, searchTerm, branchFilter string) []models.AnnotatedCutoff {
	filtered := dataset

	switch examCategory {
	case models.ExamCategoryEngineering:
		filtered = keepRecords(filtered, func(rec models.CutoffRecord) bool {
			return strings.Contains(rec.College, "IIT") || strings.Contains(rec.Branch, "Engineering")
		})
	case models.ExamCategoryMedical:
		filtered = keepRecords(filtered, func(rec models.CutoffRecord) bool {
			return strings.Contains(rec.College, "AIIMS") || strings.Contains(rec.Branch, "MBBS")
		})
	}

	if searchTerm != "" {
		term := strings.ToLower(searchTerm)
		filtered = keepRecords(filtered, func(rec models.CutoffRecord) bool {
			return strings.Contains(strings.ToLower(rec.College), term) ||
				strings.Contains(strings.ToLower(rec.Branch), term)
		})
	}

	if branchFilter != "" && branchFilter != BranchFilterAll {
		branch := strings.ToLower(branchFilter)
		filtered = keepRecords(filtered, func(rec models.CutoffRecord) bool {
			return strings.Contains(strings.ToLower(rec.Branch), branch)
		})
	}

	annotated := make([]models.AnnotatedCutoff, 0, len(filtered))
	for _, rec := range filtered {
		annotated = append(annotated, annotateCutoff(rec))
	}
	return annotated
}

func keepRecords(records []models.CutoffRecord, keep func(models.CutoffRecord) bool) []models.CutoffRecord {
	out := make([]models.CutoffRecord, 0, len(records))
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// annotateCutoff derives the year-over-year trend and signed change for a record
func annotateCutoff(rec models.CutoffRecord) models.AnnotatedCutoff {
	trend := models.TrendStable
	switch {
	case rec.PredictedCurrentYear < rec.CutoffPriorYear:
		trend = models.TrendDecreasing
	case rec.PredictedCurrentYear > rec.CutoffPriorYear:
		trend = models.TrendIncreasing
	}

	return models.AnnotatedCutoff{
		CutoffRecord: rec,
		Trend:        trend,
		Change:       rec.PredictedCurrentYear - rec.CutoffPriorYear,
	}
}

// CutoffService defines the interface for cutoff browsing operations
type CutoffService interface {
	FilterCutoffs(ctx context.Context, req *dto.CutoffFilterRequest) (*dto.CutoffListResponse, error)
	GetBranches(ctx context.Context) ([]string, error)
}

// cutoffServiceImpl implements CutoffService
type cutoffServiceImpl struct {
	cutoffRepo *repositories.CutoffRepository
	cache      *cache.Cache
}

// NewCutoffService creates a new CutoffService. The cache is optional;
// a nil cache means every read goes to the database.
func NewCutoffService(cutoffRepo *repositories.CutoffRepository, c *cache.Cache) CutoffService {
	return &cutoffServiceImpl{
		cutoffRepo: cutoffRepo,
		cache:      c,
	}
}

const cutoffDatasetCacheKey = "cutoffs:dataset"

// loadDataset reads the reference dataset through the cache when one is
// configured. The dataset is small and changes only on reseed, so a
// stale read is harmless.
func (s *cutoffServiceImpl) loadDataset(ctx context.Context) ([]models.CutoffRecord, error) {
	if s.cache != nil {
		var cached []models.CutoffRecord
		found, err := s.cache.Get(ctx, cutoffDatasetCacheKey, &cached)
		if err != nil {
			logger.Warn().Err(err).Msg("Cutoff cache read failed, falling back to database")
		} else if found {
			return cached, nil
		}
	}

	records, err := s.cutoffRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading cutoff dataset: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cutoffDatasetCacheKey, records); err != nil {
			logger.Warn().Err(err).Msg("Cutoff cache write failed")
		}
	}

	return records, nil
}

// FilterCutoffs loads the dataset and runs the staged filter engine over it
func (s *cutoffServiceImpl) FilterCutoffs(ctx context.Context, req *dto.CutoffFilterRequest) (*dto.CutoffListResponse, error) {
	dataset, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}

	annotated := FilterCutoffs(dataset, models.ExamCategory(req.ExamCategory), req.Search, req.Branch)
	return &dto.CutoffListResponse{Cutoffs: annotated}, nil
}

// GetBranches lists the distinct branch names for filter dropdowns
func (s *cutoffServiceImpl) GetBranches(ctx context.Context) ([]string, error) {
	branches, err := s.cutoffRepo.GetDistinctBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting branches: %w", err)
	}
	return branches, nil
}
