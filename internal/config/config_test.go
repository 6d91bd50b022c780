// Package config_test tests the config package.
package config_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/lift-form-analyzer/internal/config"
)

// createTestConfigFile creates a dummy config file for testing.
func createTestConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := createTestConfigFile(t, `
data:
  training_csv: "data/train.csv"
  unlabeled_csv: "data/test.csv"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "classe", cfg.LabelColumn)
	assert.Equal(t, int64(3323), cfg.Seed)
	assert.Equal(t, 0.7, cfg.TrainFraction)
	assert.Equal(t, 5, cfg.Folds)
	assert.Equal(t, 0.95, cfg.Confidence)
	assert.Equal(t, "knn", cfg.Classifier.Kind)
	assert.Equal(t, 5, cfg.Classifier.Neighbours)
	assert.False(t, bool(cfg.PersistResults))
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := createTestConfigFile(t, `
seed: 99
train_fraction: 0.8
folds: 10
classifier:
  kind: "forest"
  forest_size: 100
persist_results: "true"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 0.8, cfg.TrainFraction)
	assert.Equal(t, 10, cfg.Folds)
	assert.Equal(t, "forest", cfg.Classifier.Kind)
	assert.Equal(t, 100, cfg.Classifier.ForestSize)
	assert.True(t, bool(cfg.PersistResults))
}

func TestLoadConfig_EnvOverridesDatabase(t *testing.T) {
	path := createTestConfigFile(t, `
database:
  host: "db.internal"
  user: "from_yaml"
`)
	t.Setenv("DB_USER", "from_env")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "from_env", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestLoadConfig_Validation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"train fraction too high", "train_fraction: 1.0"},
		{"train fraction zero", "train_fraction: 0"},
		{"one fold", "folds: 1"},
		{"bad classifier", "classifier:\n  kind: \"svm\""},
		{"bad confidence", "confidence: 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := createTestConfigFile(t, tc.content)
			_, err := config.LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDatabaseConf_URL(t *testing.T) {
	d := config.DatabaseConf{
		Host: "localhost", Port: 5432, User: "u", Password: "p", Name: "db", SSLMode: "disable",
	}
	assert.Equal(t,
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s", "u", "p", "localhost", 5432, "db", "disable"),
		d.URL())
}
