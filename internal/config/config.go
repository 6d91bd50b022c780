// Package config handles application configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines the structure for all application configuration.
type Config struct {
	LabelColumn    string           `yaml:"label_column"`
	Seed           int64            `yaml:"seed"`
	TrainFraction  float64          `yaml:"train_fraction"`
	Folds          int              `yaml:"folds"`
	Confidence     float64          `yaml:"confidence"`
	Classifier     ClassifierConf   `yaml:"classifier"`
	Data           DataConf         `yaml:"data"`
	Output         OutputConf       `yaml:"output"`
	PersistResults FlexBool         `yaml:"persist_results"`
	Database       DatabaseConf     `yaml:"database"`
	LogLevel       string           `yaml:"log_level"`
}

// ClassifierConf holds the classifier kind and its hyperparameters.
type ClassifierConf struct {
	Kind           string  `yaml:"kind"` // "knn" or "forest"
	Neighbours     int     `yaml:"neighbours"`
	ForestSize     int     `yaml:"forest_size"`
	ForestFeatures int     `yaml:"forest_features"`
	Significance   float64 `yaml:"significance"` // ChiMerge significance for forest discretization
}

// DataConf holds input file locations.
type DataConf struct {
	TrainingCSV  string `yaml:"training_csv"`
	UnlabeledCSV string `yaml:"unlabeled_csv"`
}

// OutputConf holds output file locations.
type OutputConf struct {
	ResultsCSV     string `yaml:"results_csv"`
	PredictionsCSV string `yaml:"predictions_csv"`
}

// DatabaseConf holds connection settings for the optional results store.
type DatabaseConf struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// URL builds a postgres connection URL from the settings.
func (d DatabaseConf) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

// LoadConfig loads configuration from the specified YAML file path
// and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{
		// Default values
		LabelColumn:   "classe",
		Seed:          3323,
		TrainFraction: 0.7,
		Folds:         5,
		Confidence:    0.95,
		Classifier: ClassifierConf{
			Kind:           "knn",
			Neighbours:     5,
			ForestSize:     50,
			ForestFeatures: 7,
			Significance:   0.999,
		},
		LogLevel: "info",
	}

	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Load sensitive data and overrides from environment variables
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if dbHost := os.Getenv("DB_HOST"); dbHost != "" {
		cfg.Database.Host = dbHost
	}
	if dbUser := os.Getenv("DB_USER"); dbUser != "" {
		cfg.Database.User = dbUser
	}
	if dbPassword := os.Getenv("DB_PASSWORD"); dbPassword != "" {
		cfg.Database.Password = dbPassword
	}
	if dbName := os.Getenv("DB_NAME"); dbName != "" {
		cfg.Database.Name = dbName
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TrainFraction <= 0 || c.TrainFraction >= 1 {
		return fmt.Errorf("train_fraction must be in (0, 1), got %v", c.TrainFraction)
	}
	if c.Folds < 2 {
		return fmt.Errorf("folds must be at least 2, got %d", c.Folds)
	}
	if c.Confidence <= 0 || c.Confidence >= 1 {
		return fmt.Errorf("confidence must be in (0, 1), got %v", c.Confidence)
	}
	switch c.Classifier.Kind {
	case "knn", "forest":
	default:
		return fmt.Errorf("unknown classifier kind %q", c.Classifier.Kind)
	}
	if c.LabelColumn == "" {
		return fmt.Errorf("label_column must not be empty")
	}
	return nil
}
