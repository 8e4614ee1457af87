package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// tableNameRe limits source.table to a plain SQL identifier, since the
// sources interpolate it into their queries.
var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Recovery RecoveryConfig `yaml:"recovery"`
	Source   SourceConfig   `yaml:"source"`
}

type AnalysisConfig struct {
	AcuteWindow   int     `yaml:"acute_window"`
	ChronicWindow int     `yaml:"chronic_window"`
	Method        string  `yaml:"method"`
	HighRisk      float64 `yaml:"high_risk_threshold"`
	Undertraining float64 `yaml:"undertraining_threshold"`
	SWCFactor     float64 `yaml:"swc_factor"`
	Confidence    float64 `yaml:"confidence_level"`
}

type RecoveryConfig struct {
	Weights []float64 `yaml:"weights"`
}

// SourceConfig selects where athlete load series are read from.
// Exactly one backend is used, chosen by Type.
type SourceConfig struct {
	Type     string         `yaml:"type"` // csv | sqlite | postgres
	Path     string         `yaml:"path"` // csv file or sqlite db
	Table    string         `yaml:"table"`
	Database DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix TRAINLOAD_ and underscore-separated
// paths:
//
//	TRAINLOAD_METHOD, TRAINLOAD_ACUTE_WINDOW, TRAINLOAD_CHRONIC_WINDOW,
//	TRAINLOAD_SOURCE_TYPE, TRAINLOAD_SOURCE_PATH, TRAINLOAD_SOURCE_TABLE,
//	TRAINLOAD_DB_HOST, TRAINLOAD_DB_PORT, TRAINLOAD_DB_NAME,
//	TRAINLOAD_DB_USER, TRAINLOAD_DB_PASSWORD, TRAINLOAD_DB_SSLMODE
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Default returns the config used when a field is absent from the file:
// 7/28-day EWMA analysis against the literature-default thresholds and
// the 0.4/0.3/0.3 recovery blend.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			AcuteWindow:   7,
			ChronicWindow: 28,
			Method:        "ewma",
			HighRisk:      1.5,
			Undertraining: 0.8,
			SWCFactor:     0.2,
			Confidence:    0.95,
		},
		Recovery: RecoveryConfig{
			Weights: []float64{0.4, 0.3, 0.3},
		},
		Source: SourceConfig{
			Type:  "csv",
			Table: "daily_loads",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRAINLOAD_METHOD"); v != "" {
		cfg.Analysis.Method = v
	}
	if v := os.Getenv("TRAINLOAD_ACUTE_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.AcuteWindow = n
		}
	}
	if v := os.Getenv("TRAINLOAD_CHRONIC_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.ChronicWindow = n
		}
	}
	if v := os.Getenv("TRAINLOAD_SOURCE_TYPE"); v != "" {
		cfg.Source.Type = v
	}
	if v := os.Getenv("TRAINLOAD_SOURCE_PATH"); v != "" {
		cfg.Source.Path = v
	}
	if v := os.Getenv("TRAINLOAD_SOURCE_TABLE"); v != "" {
		cfg.Source.Table = v
	}
	if v := os.Getenv("TRAINLOAD_DB_HOST"); v != "" {
		cfg.Source.Database.Host = v
	}
	if v := os.Getenv("TRAINLOAD_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Source.Database.Port = port
		}
	}
	if v := os.Getenv("TRAINLOAD_DB_NAME"); v != "" {
		cfg.Source.Database.Name = v
	}
	if v := os.Getenv("TRAINLOAD_DB_USER"); v != "" {
		cfg.Source.Database.User = v
	}
	if v := os.Getenv("TRAINLOAD_DB_PASSWORD"); v != "" {
		cfg.Source.Database.Password = v
	}
	if v := os.Getenv("TRAINLOAD_DB_SSLMODE"); v != "" {
		cfg.Source.Database.SSLMode = v
	}
}

func (c *Config) validate() error {
	a := c.Analysis
	if a.AcuteWindow <= 0 || a.ChronicWindow <= 0 {
		return fmt.Errorf("analysis windows must be positive (acute=%d, chronic=%d)", a.AcuteWindow, a.ChronicWindow)
	}
	if a.AcuteWindow > a.ChronicWindow {
		return fmt.Errorf("analysis.acute_window (%d) must not exceed analysis.chronic_window (%d)", a.AcuteWindow, a.ChronicWindow)
	}
	if a.Method != "rolling" && a.Method != "ewma" {
		return fmt.Errorf("analysis.method must be rolling or ewma, got %q", a.Method)
	}
	if a.HighRisk <= a.Undertraining {
		return fmt.Errorf("analysis.high_risk_threshold (%v) must exceed undertraining_threshold (%v)", a.HighRisk, a.Undertraining)
	}
	if a.SWCFactor <= 0 {
		return fmt.Errorf("analysis.swc_factor must be positive")
	}
	if a.Confidence != 0.90 && a.Confidence != 0.95 && a.Confidence != 0.99 {
		return fmt.Errorf("analysis.confidence_level must be 0.90, 0.95 or 0.99, got %v", a.Confidence)
	}

	var sum float64
	for _, w := range c.Recovery.Weights {
		sum += w
	}
	if len(c.Recovery.Weights) > 0 && (sum < 1-1e-6 || sum > 1+1e-6) {
		return fmt.Errorf("recovery.weights must sum to 1.0, got %v", sum)
	}

	switch c.Source.Type {
	case "csv":
		if c.Source.Path == "" {
			return fmt.Errorf("source.path is required for source.type %q", c.Source.Type)
		}
	case "sqlite":
		if c.Source.Path == "" {
			return fmt.Errorf("source.path is required for source.type %q", c.Source.Type)
		}
		if c.Source.Table != "" && !tableNameRe.MatchString(c.Source.Table) {
			return fmt.Errorf("source.table %q is not a valid identifier", c.Source.Table)
		}
	case "postgres":
		d := c.Source.Database
		if d.Host == "" || d.Port == 0 || d.Name == "" || d.User == "" {
			return fmt.Errorf("source.database host/port/name/user are required for postgres")
		}
		if c.Source.Table != "" && !tableNameRe.MatchString(c.Source.Table) {
			return fmt.Errorf("source.table %q is not a valid identifier", c.Source.Table)
		}
	default:
		return fmt.Errorf("source.type must be csv, sqlite or postgres, got %q", c.Source.Type)
	}
	return nil
}
