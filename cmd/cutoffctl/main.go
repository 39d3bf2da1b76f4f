// cutoffctl is a terminal tool for browsing the cutoff reference data.
// It applies the same staged filters as the API and prints the
// trend-annotated results as a table.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/tanvi/examtrack/internal/app/models"
	"github.com/tanvi/examtrack/internal/app/repositories"
	"github.com/tanvi/examtrack/internal/app/services"
	"github.com/tanvi/examtrack/internal/config"
	"github.com/tanvi/examtrack/internal/db"
	"github.com/tanvi/examtrack/internal/seed"
)

func main() {
	examCategory := flag.String("category", "", "exam category filter (engineering, medical, law, management, architecture, other)")
	search := flag.String("search", "", "case-insensitive college or branch substring")
	branch := flag.String("branch", "all", "branch filter; 'all' means no constraint")
	offline := flag.Bool("offline", false, "use the built-in reference dataset instead of the database")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		color.Cyan("Loaded environment from .env")
	}

	records, err := loadRecords(*offline)
	if err != nil {
		color.Red("Error loading cutoff data: %v", err)
		os.Exit(1)
	}

	annotated := services.FilterCutoffs(records, models.ExamCategory(*examCategory), *search, *branch)

	color.Yellow("\nCutoff Reference (%d of %d records)", len(annotated), len(records))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"College", "Branch", "Prior Year", "Two Years Prior", "Predicted", "Trend", "Change", "Seats"})

	for _, cutoff := range annotated {
		table.Append([]string{
			cutoff.College,
			cutoff.Branch,
			strconv.Itoa(cutoff.CutoffPriorYear),
			strconv.Itoa(cutoff.CutoffTwoYearsPrior),
			strconv.Itoa(cutoff.PredictedCurrentYear),
			trendLabel(cutoff.Trend),
			fmt.Sprintf("%+d", cutoff.Change),
			strconv.Itoa(cutoff.Seats),
		})
	}
	table.Render()

	if len(annotated) == 0 {
		color.Red("No cutoffs match the given filters.")
	}
}

// loadRecords reads the dataset from the database, or from the seed
// package when running offline
func loadRecords(offline bool) ([]models.CutoffRecord, error) {
	if offline {
		return seed.ReferenceCutoffs(), nil
	}

	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		return nil, err
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return repositories.NewCutoffRepository(database.Pool).GetAll(ctx)
}

// trendLabel colors the trend cell for terminal display
func trendLabel(trend models.Trend) string {
	switch trend {
	case models.TrendIncreasing:
		return color.RedString(string(trend))
	case models.TrendDecreasing:
		return color.GreenString(string(trend))
	default:
		return color.YellowString(string(trend))
	}
}
