package services

import (
	"testing"

	"github.com/tanvi/examtrack/internal/app/models"
)

func cutoffFixture() []models.CutoffRecord {
	return []models.CutoffRecord{
		{ID: 1, College: "IIT Delhi", Branch: "Computer Science Engineering", CutoffPriorYear: 144, CutoffTwoYearsPrior: 152, PredictedCurrentYear: 140, Seats: 97, Round: 1},
		{ID: 2, College: "IIT Bombay", Branch: "Computer Science Engineering", CutoffPriorYear: 67, CutoffTwoYearsPrior: 72, PredictedCurrentYear: 65, Seats: 119, Round: 1},
		{ID: 3, College: "NIT Trichy", Branch: "Electrical Engineering", CutoffPriorYear: 900, CutoffTwoYearsPrior: 950, PredictedCurrentYear: 940, Seats: 60, Round: 1},
		{ID: 4, College: "AIIMS Delhi", Branch: "MBBS", CutoffPriorYear: 50, CutoffTwoYearsPrior: 44, PredictedCurrentYear: 48, Seats: 125, Round: 1},
		{ID: 5, College: "JIPMER Puducherry", Branch: "MBBS", CutoffPriorYear: 89, CutoffTwoYearsPrior: 95, PredictedCurrentYear: 89, Seats: 200, Round: 1},
		{ID: 6, College: "National Law School", Branch: "Law", CutoffPriorYear: 120, CutoffTwoYearsPrior: 110, PredictedCurrentYear: 130, Seats: 80, Round: 1},
	}
}

func cutoffIDs(results []models.AnnotatedCutoff) []int64 {
	ids := make([]int64, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

func assertIDs(t *testing.T, results []models.AnnotatedCutoff, want ...int64) {
	t.Helper()
	got := cutoffIDs(results)
	if len(got) != len(want) {
		t.Fatalf("got IDs %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got IDs %v, want %v", got, want)
		}
	}
}

func TestFilterCutoffsEngineeringCategory(t *testing.T) {
	results := FilterCutoffs(cutoffFixture(), models.ExamCategoryEngineering, "", "")
	// IIT colleges plus any engineering branch; medical and law rows drop out
	assertIDs(t, results, 1, 2, 3)
}

func TestFilterCutoffsMedicalCategory(t *testing.T) {
	results := FilterCutoffs(cutoffFixture(), models.ExamCategoryMedical, "", "")
	assertIDs(t, results, 4, 5)
}

func TestFilterCutoffsNoCategoryKeepsEverything(t *testing.T) {
	results := FilterCutoffs(cutoffFixture(), "", "", "")
	assertIDs(t, results, 1, 2, 3, 4, 5, 6)
}

func TestFilterCutoffsSearchIsCaseInsensitive(t *testing.T) {
	// "delhi" matches both the IIT and the AIIMS row across categories
	results := FilterCutoffs(cutoffFixture(), "", "delhi", "")
	assertIDs(t, results, 1, 4)
}

func TestFilterCutoffsSearchMatchesBranch(t *testing.T) {
	results := FilterCutoffs(cutoffFixture(), "", "mbbs", "")
	assertIDs(t, results, 4, 5)
}

func TestFilterCutoffsStagesCompose(t *testing.T) {
	results := FilterCutoffs(cutoffFixture(), models.ExamCategoryEngineering, "engineering", "electrical")
	assertIDs(t, results, 3)
}

func TestFilterCutoffsBranchFilterAllIsNoOp(t *testing.T) {
	all := FilterCutoffs(cutoffFixture(), models.ExamCategoryEngineering, "", BranchFilterAll)
	none := FilterCutoffs(cutoffFixture(), models.ExamCategoryEngineering, "", "")
	if len(all) != len(none) {
		t.Errorf("branch filter %q removed rows: %d vs %d", BranchFilterAll, len(all), len(none))
	}
}

func TestFilterCutoffsEmptyResultIsValid(t *testing.T) {
	results := FilterCutoffs(cutoffFixture(), models.ExamCategoryMedical, "no-such-college", "")
	if results == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestFilterCutoffsTrendAnnotation(t *testing.T) {
	results := FilterCutoffs(cutoffFixture(), "", "", "")

	byID := make(map[int64]models.AnnotatedCutoff, len(results))
	for _, r := range results {
		byID[r.ID] = r
	}

	tests := []struct {
		id         int64
		wantTrend  models.Trend
		wantChange int
	}{
		{1, models.TrendDecreasing, -4}, // 140 vs 144
		{3, models.TrendIncreasing, 40}, // 940 vs 900
		{5, models.TrendStable, 0},      // 89 vs 89
	}
	for _, tt := range tests {
		got := byID[tt.id]
		if got.Trend != tt.wantTrend {
			t.Errorf("record %d: Trend = %q, want %q", tt.id, got.Trend, tt.wantTrend)
		}
		if got.Change != tt.wantChange {
			t.Errorf("record %d: Change = %d, want %d", tt.id, got.Change, tt.wantChange)
		}
	}
}
