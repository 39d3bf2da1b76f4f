// Package seed populates the database with the exam catalog, the cutoff
// reference dataset and a default admin account.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/tanvi/examtrack/internal/app/models"
	appRepos "github.com/tanvi/examtrack/internal/app/repositories"
	"github.com/tanvi/examtrack/internal/config"
	"github.com/tanvi/examtrack/internal/pkg/apperrors"
	"github.com/tanvi/examtrack/internal/pkg/auth"
)

// CreateDefaultData seeds the exam catalog, cutoff reference data and a
// default admin user if they don't exist. Individual failures are logged
// and collected; seeding never aborts server startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	examRepo := appRepos.NewExamRepository(dbPool)
	cutoffRepo := appRepos.NewCutoffRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (exams, cutoffs, admin)...")
	var finalErr error

	for _, exam := range defaultExams() {
		if _, err := examRepo.GetByName(ctx, exam.Name); err == nil {
			continue
		}
		if _, err := examRepo.Create(ctx, exam); err != nil {
			if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("exam", exam.Name).Msg("Error seeding exam")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Cutoffs are reference data with no natural key, so seed only once
	count, err := cutoffRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting cutoff records")
		finalErr = errors.Join(finalErr, err)
	} else if count == 0 {
		if err := cutoffRepo.InsertBatch(ctx, ReferenceCutoffs()); err != nil {
			lgr.Error().Err(err).Msg("Error seeding cutoff records")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Int("records", len(ReferenceCutoffs())).Msg("Cutoff reference data seeded")
		}
	}

	if err := seedAdminUser(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// seedAdminUser creates the default admin account unless it exists
func seedAdminUser(ctx context.Context, userRepo *appRepos.UserRepository, lgr zerolog.Logger) error {
	adminEmail := config.GetEnv("ADMIN_EMAIL", "admin@examtrack.app")

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking admin user")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(config.GetEnv("ADMIN_PASSWORD", "changeme123"))
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Email:     adminEmail,
		Password:  hashed,
		FirstName: "Admin",
		LastName:  "User",
		RoleType:  appModels.RoleAdmin,
		IsActive:  true,
	}
	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Str("email", adminEmail).Msg("Default admin user created")
	return nil
}

// defaultExams returns the seeded exam catalog with the upcoming cycle's key dates
func defaultExams() []*appModels.Exam {
	return []*appModels.Exam{
		{
			Name:                 "JEE Main",
			FullName:             "Joint Entrance Examination Main",
			Category:             appModels.ExamCategoryEngineering,
			ApplicationStartDate: datePtr(2026, time.November, 1),
			ApplicationEndDate:   datePtr(2026, time.December, 1),
			ExamDate:             datePtr(2027, time.January, 24),
			ResultDate:           datePtr(2027, time.February, 12),
		},
		{
			Name:                 "JEE Advanced",
			FullName:             "Joint Entrance Examination Advanced",
			Category:             appModels.ExamCategoryEngineering,
			ApplicationStartDate: datePtr(2027, time.April, 23),
			ApplicationEndDate:   datePtr(2027, time.May, 2),
			ExamDate:             datePtr(2027, time.May, 23),
			ResultDate:           datePtr(2027, time.June, 8),
		},
		{
			Name:                 "NEET UG",
			FullName:             "National Eligibility cum Entrance Test Undergraduate",
			Category:             appModels.ExamCategoryMedical,
			ApplicationStartDate: datePtr(2027, time.February, 9),
			ApplicationEndDate:   datePtr(2027, time.March, 9),
			ExamDate:             datePtr(2027, time.May, 2),
			ResultDate:           datePtr(2027, time.June, 4),
		},
		{
			Name:                 "CLAT",
			FullName:             "Common Law Admission Test",
			Category:             appModels.ExamCategoryLaw,
			ApplicationStartDate: datePtr(2026, time.July, 15),
			ApplicationEndDate:   datePtr(2026, time.October, 15),
			ExamDate:             datePtr(2026, time.December, 6),
			ResultDate:           datePtr(2026, time.December, 20),
		},
		{
			Name:                 "CAT",
			FullName:             "Common Admission Test",
			Category:             appModels.ExamCategoryManagement,
			ApplicationStartDate: datePtr(2026, time.August, 2),
			ApplicationEndDate:   datePtr(2026, time.September, 21),
			ExamDate:             datePtr(2026, time.November, 29),
			ResultDate:           datePtr(2026, time.December, 21),
		},
	}
}

// ReferenceCutoffs returns the historical cutoff dataset. Rank values
// are closing ranks for the general category, round 1.
func ReferenceCutoffs() []appModels.CutoffRecord {
	return []appModels.CutoffRecord{
		{College: "IIT Delhi", Branch: "Computer Science Engineering", Category: appModels.CategoryGeneral, CutoffPriorYear: 144, CutoffTwoYearsPrior: 152, PredictedCurrentYear: 140, Seats: 97, Round: 1},
		{College: "IIT Bombay", Branch: "Computer Science Engineering", Category: appModels.CategoryGeneral, CutoffPriorYear: 67, CutoffTwoYearsPrior: 72, PredictedCurrentYear: 65, Seats: 119, Round: 1},
		{College: "IIT Madras", Branch: "Computer Science Engineering", Category: appModels.CategoryGeneral, CutoffPriorYear: 89, CutoffTwoYearsPrior: 94, PredictedCurrentYear: 85, Seats: 110, Round: 1},
		{College: "IIT Kanpur", Branch: "Computer Science Engineering", Category: appModels.CategoryGeneral, CutoffPriorYear: 201, CutoffTwoYearsPrior: 208, PredictedCurrentYear: 195, Seats: 83, Round: 1},
		{College: "IIT Kharagpur", Branch: "Computer Science Engineering", Category: appModels.CategoryGeneral, CutoffPriorYear: 354, CutoffTwoYearsPrior: 361, PredictedCurrentYear: 350, Seats: 142, Round: 1},
		{College: "AIIMS Delhi", Branch: "MBBS", Category: appModels.CategoryGeneral, CutoffPriorYear: 50, CutoffTwoYearsPrior: 44, PredictedCurrentYear: 48, Seats: 125, Round: 1},
		{College: "AIIMS Jodhpur", Branch: "MBBS", Category: appModels.CategoryGeneral, CutoffPriorYear: 196, CutoffTwoYearsPrior: 203, PredictedCurrentYear: 190, Seats: 125, Round: 1},
		{College: "JIPMER Puducherry", Branch: "MBBS", Category: appModels.CategoryGeneral, CutoffPriorYear: 89, CutoffTwoYearsPrior: 95, PredictedCurrentYear: 85, Seats: 200, Round: 1},
	}
}

// datePtr builds a local midnight timestamp pointer for seed key dates
func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return &t
}
