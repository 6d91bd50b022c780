// Package resultstore persists experiment results to Postgres.
package resultstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/your-org/lift-form-analyzer/internal/experiment"
)

// Pool は、*pgxpool.Poolが満たすべきメソッドのインターフェースです。
// これにより、テストでモックを注入できます。
type Pool interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// RunMeta は1回の実験実行のメタデータです。
type RunMeta struct {
	RunID         string
	Classifier    string
	Seed          int64
	TrainFraction float64
	Folds         int
	StartedAt     time.Time
}

// RecordRow is an evaluation record as stored in the database.
type RecordRow struct {
	SubsetIndex    int
	Subset         string
	InSampleMean   float64
	InSampleStdDev float64
	OutOfSample    float64
	CILower        float64
	CIUpper        float64
	Correct        int
	Total          int
	Selected       bool
}

// Store はデータベースへの実験結果の保存を担当します。
type Store struct {
	pool   Pool
	logger *zap.Logger
}

// New は新しいStoreを生成します。
func New(pool Pool, logger *zap.Logger) *Store {
	return &Store{pool: pool, logger: logger}
}

// SaveRun は実行メタデータを保存します。
func (s *Store) SaveRun(ctx context.Context, run RunMeta) error {
	const query = `
		INSERT INTO analysis_runs (run_id, classifier, seed, train_fraction, folds, started_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.Exec(ctx, query,
		run.RunID, run.Classifier, run.Seed, run.TrainFraction, run.Folds, run.StartedAt)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.RunID, err)
	}
	return nil
}

// SaveRecords は評価レコードを列挙順のまま保存します。
// selectedIndex は選択されたレコードの列挙インデックスです。
func (s *Store) SaveRecords(ctx context.Context, runID string, records []experiment.Record, selectedIndex int) error {
	const query = `
		INSERT INTO evaluation_records (
			run_id, subset_index, subset, in_sample_mean, in_sample_stddev,
			out_of_sample_accuracy, ci_lower, ci_upper, correct, total, selected
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for _, rec := range records {
		_, err := s.pool.Exec(ctx, query,
			runID, rec.Index, rec.Subset.String(),
			rec.InSampleMean, rec.InSampleStdDev,
			rec.OutOfSample.Value, rec.OutOfSample.Lower, rec.OutOfSample.Upper,
			rec.OutOfSample.Correct, rec.OutOfSample.Total,
			rec.Index == selectedIndex)
		if err != nil {
			return fmt.Errorf("failed to save record for subset %s: %w", rec.Subset, err)
		}
	}
	s.logger.Info("Saved evaluation records",
		zap.String("run_id", runID),
		zap.Int("records", len(records)))
	return nil
}

// FetchRecords は指定された実行の評価レコードを列挙順で取得します。
func (s *Store) FetchRecords(ctx context.Context, runID string) ([]RecordRow, error) {
	const query = `
		SELECT subset_index, subset, in_sample_mean, in_sample_stddev,
		       out_of_sample_accuracy, ci_lower, ci_upper, correct, total, selected
		FROM evaluation_records
		WHERE run_id = $1
		ORDER BY subset_index ASC
	`
	rows, err := s.pool.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluation records: %w", err)
	}
	defer rows.Close()

	var out []RecordRow
	for rows.Next() {
		var r RecordRow
		if err := rows.Scan(&r.SubsetIndex, &r.Subset, &r.InSampleMean, &r.InSampleStdDev,
			&r.OutOfSample, &r.CILower, &r.CIUpper, &r.Correct, &r.Total, &r.Selected); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation record: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read evaluation records: %w", err)
	}
	return out, nil
}
