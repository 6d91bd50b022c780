package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/your-org/lift-form-analyzer/internal/classifier"
	"github.com/your-org/lift-form-analyzer/internal/config"
	"github.com/your-org/lift-form-analyzer/internal/csvwriter"
	"github.com/your-org/lift-form-analyzer/internal/dataset"
	"github.com/your-org/lift-form-analyzer/internal/experiment"
	"github.com/your-org/lift-form-analyzer/internal/features"
	"github.com/your-org/lift-form-analyzer/internal/report"
	"github.com/your-org/lift-form-analyzer/internal/resultstore"
	"github.com/your-org/lift-form-analyzer/pkg/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetGlobalLogLevel(cfg.LogLevel)

	// golearn's cross-fold shuffling draws from the global source, so the
	// whole run is seeded here for reproducibility.
	rand.Seed(cfg.Seed)

	ctx := context.Background()
	startedAt := time.Now()

	// --- Load and partition the labeled dataset ---
	labeled, naSummary, err := dataset.LoadCSV(cfg.Data.TrainingCSV, dataset.LoadOptions{LabelColumn: cfg.LabelColumn})
	if err != nil {
		logger.Fatalf("Failed to load training data: %v", err)
	}
	if n := len(naSummary.DroppedColumns); n > 0 {
		logger.Warnf("%d columns excluded from the numeric set (missing or non-numeric values)", n)
	}

	train, valid, err := dataset.StratifiedSplit(labeled, cfg.TrainFraction, cfg.Seed)
	if err != nil {
		logger.Fatalf("Failed to partition dataset: %v", err)
	}
	logger.Infof("Partitioned %d observations into %d training / %d validation",
		labeled.NumRows(), train.NumRows(), valid.NumRows())

	// --- Run the subset-search experiment ---
	spec := classifier.Spec{
		Kind:           cfg.Classifier.Kind,
		Neighbours:     cfg.Classifier.Neighbours,
		ForestSize:     cfg.Classifier.ForestSize,
		ForestFeatures: cfg.Classifier.ForestFeatures,
		Significance:   cfg.Classifier.Significance,
	}
	evaluator, err := experiment.NewEvaluator(train, valid, spec, cfg.Folds, cfg.Confidence)
	if err != nil {
		logger.Fatalf("Failed to build evaluator: %v", err)
	}
	runner, err := experiment.NewRunner(evaluator, features.Universe())
	if err != nil {
		logger.Fatalf("Failed to build runner: %v", err)
	}
	result, err := runner.Run(ctx)
	if err != nil {
		logger.Fatalf("Experiment failed: %v", err)
	}
	best, ok := result.Selection.Best()
	if !ok {
		logger.Fatal("Experiment produced no evaluation records")
	}

	// --- Render the report ---
	fmt.Println()
	fmt.Println(report.RenderResults(result.Records, best))

	actual, predicted, err := evaluator.ValidationPredictions(ctx, result.Selection.Model(), best.Subset)
	if err != nil {
		logger.Fatalf("Failed to compute validation predictions: %v", err)
	}
	confusion, err := report.NewConfusionMatrix(actual, predicted)
	if err != nil {
		logger.Fatalf("Failed to build confusion matrix: %v", err)
	}
	fmt.Println(report.RenderConfusion(confusion))

	// --- Apply the selected model to the unlabeled dataset ---
	unlabeled, _, err := dataset.LoadCSV(cfg.Data.UnlabeledCSV, dataset.LoadOptions{})
	if err != nil {
		logger.Fatalf("Failed to load unlabeled data: %v", err)
	}
	unlabeledView, err := unlabeled.Select(features.Columns(best.Subset))
	if err != nil {
		logger.Fatalf("Unlabeled data is missing columns for subset %s: %v", best.Subset, err)
	}
	predictions, err := result.Selection.Model().Predict(ctx, unlabeledView)
	if err != nil {
		logger.Fatalf("Failed to predict unlabeled data: %v", err)
	}
	fmt.Println(report.RenderPredictions(predictions))

	// --- Emit CSV artifacts ---
	zapLogger, err := zap.NewProduction()
	if err != nil {
		logger.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.Output.ResultsCSV != "" {
		writeResultsCSV(cfg.Output.ResultsCSV, result.Records, best, zapLogger)
	}
	if cfg.Output.PredictionsCSV != "" {
		writePredictionsCSV(cfg.Output.PredictionsCSV, predictions, zapLogger)
	}

	// --- Optionally persist to Postgres ---
	if bool(cfg.PersistResults) {
		persistResults(ctx, cfg, result, best, startedAt, zapLogger)
	}

	logger.Infof("Run %s finished in %v. Selected subset: %s (out-of-sample accuracy %.4f)",
		result.RunID, time.Since(startedAt).Round(time.Millisecond), best.Subset, best.OutOfSample.Value)
}

func writeResultsCSV(path string, records []experiment.Record, best experiment.Record, zapLogger *zap.Logger) {
	w, err := csvwriter.NewWriter(path, report.ResultsHeader(), zapLogger)
	if err != nil {
		logger.Fatalf("Failed to create results CSV: %v", err)
	}
	for _, rec := range records {
		if err := w.Write(report.ResultsRow(rec, rec.Index == best.Index)); err != nil {
			logger.Fatalf("Failed to write results CSV: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		logger.Fatalf("Failed to close results CSV: %v", err)
	}
}

func writePredictionsCSV(path string, predictions []string, zapLogger *zap.Logger) {
	w, err := csvwriter.NewWriter(path, report.PredictionsHeader(), zapLogger)
	if err != nil {
		logger.Fatalf("Failed to create predictions CSV: %v", err)
	}
	if err := w.WriteAll(report.PredictionRows(predictions)); err != nil {
		logger.Fatalf("Failed to write predictions CSV: %v", err)
	}
	if err := w.Close(); err != nil {
		logger.Fatalf("Failed to close predictions CSV: %v", err)
	}
}

func persistResults(ctx context.Context, cfg *config.Config, result *experiment.Result, best experiment.Record, startedAt time.Time, zapLogger *zap.Logger) {
	pool, err := pgxpool.New(ctx, cfg.Database.URL())
	if err != nil {
		logger.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	store := resultstore.New(pool, zapLogger)
	run := resultstore.RunMeta{
		RunID:         result.RunID,
		Classifier:    cfg.Classifier.Kind,
		Seed:          cfg.Seed,
		TrainFraction: cfg.TrainFraction,
		Folds:         cfg.Folds,
		StartedAt:     startedAt,
	}
	if err := store.SaveRun(ctx, run); err != nil {
		logger.Fatalf("Failed to persist run metadata: %v", err)
	}
	if err := store.SaveRecords(ctx, result.RunID, result.Records, best.Index); err != nil {
		logger.Fatalf("Failed to persist evaluation records: %v", err)
	}
	logger.Infof("Persisted results for run %s", result.RunID)
}
