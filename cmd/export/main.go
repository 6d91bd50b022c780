package main

import (
	"context"
	"encoding/csv"
	"flag"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/your-org/lift-form-analyzer/internal/config"
	"github.com/your-org/lift-form-analyzer/internal/resultstore"
	"github.com/your-org/lift-form-analyzer/pkg/logger"
)

func main() {
	// --- Argument Parsing ---
	runID := flag.String("run", "", "Run ID whose evaluation records should be exported")
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	if *runID == "" {
		logger.Fatal("The --run flag is required.")
	}

	// --- Config and Logger Setup ---
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load configuration to get DB settings: %v", err)
	}
	logger.SetGlobalLogLevel(cfg.LogLevel)

	// --- Database Connection ---
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL())
	if err != nil {
		logger.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	store := resultstore.New(pool, zap.NewNop())
	records, err := store.FetchRecords(ctx, *runID)
	if err != nil {
		logger.Fatalf("Failed to fetch evaluation records: %v", err)
	}
	if len(records) == 0 {
		logger.Fatalf("No evaluation records found for run %s", *runID)
	}

	// --- CSV Writer Setup ---
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	header := []string{
		"subset_index", "subset", "in_sample_mean", "in_sample_stddev",
		"out_of_sample_accuracy", "ci_lower", "ci_upper", "correct", "total", "selected",
	}
	if err := writer.Write(header); err != nil {
		logger.Fatalf("Failed to write CSV header: %v", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.SubsetIndex),
			r.Subset,
			strconv.FormatFloat(r.InSampleMean, 'f', 6, 64),
			strconv.FormatFloat(r.InSampleStdDev, 'f', 6, 64),
			strconv.FormatFloat(r.OutOfSample, 'f', 6, 64),
			strconv.FormatFloat(r.CILower, 'f', 6, 64),
			strconv.FormatFloat(r.CIUpper, 'f', 6, 64),
			strconv.Itoa(r.Correct),
			strconv.Itoa(r.Total),
			strconv.FormatBool(r.Selected),
		}
		if err := writer.Write(row); err != nil {
			logger.Fatalf("Failed to write CSV row: %v", err)
		}
	}
	logger.Infof("Exported %d evaluation records for run %s", len(records), *runID)
}
