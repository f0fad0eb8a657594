package dump

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ready "github.com/WelcomerTeam/Sandwich-Ready"
)

// EnvPrefix prefixes every environment variable the dump reads.
const EnvPrefix = "READYDUMP_"

// Output modes.
const (
	OutputSummary = "summary"
	OutputJSON    = "json"
	OutputYAML    = "yaml"
)

// Frame modes.
const (
	FrameAuto  = "auto"
	FrameRaw   = "raw"
	FrameFrame = "frame"
)

// Config holds the settings of a dump run.
type Config struct {
	Schema          string        `yaml:"schema" env:"SCHEMA"`
	Inputs          []string      `yaml:"inputs" env:"INPUTS" envSeparator:","`
	Output          string        `yaml:"output" env:"OUTPUT"`
	OutputDirectory string        `yaml:"output_directory" env:"OUTPUT_DIRECTORY"`
	Frame           string        `yaml:"frame" env:"FRAME"`
	MetricsTextfile string        `yaml:"metrics_textfile" env:"METRICS_TEXTFILE"`
	Workers         int           `yaml:"workers" env:"WORKERS"`
	Logging         LoggingConfig `yaml:"logging" envPrefix:"LOG_"`
}

// LoggingConfig holds the logger settings.
type LoggingConfig struct {
	Level      string `yaml:"level" env:"LEVEL"`
	File       string `yaml:"file" env:"FILE"`
	MaxSize    int    `yaml:"max_size" env:"MAX_SIZE"`
	MaxBackups int    `yaml:"max_backups" env:"MAX_BACKUPS"`
	MaxAge     int    `yaml:"max_age" env:"MAX_AGE"`
	Compress   bool   `yaml:"compress" env:"COMPRESS"`
	NoColor    bool   `yaml:"no_color" env:"NO_COLOR"`
}

func DefaultConfig() Config {
	return Config{
		Schema:  string(ready.SchemaV2),
		Output:  OutputSummary,
		Frame:   FrameAuto,
		Workers: runtime.NumCPU(),
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     14,
			Compress:   true,
		},
	}
}

// LoadConfig layers the configuration: defaults, then the YAML file at path,
// then the .env file at envFile, then the process environment. Empty paths
// are skipped. A missing .env file is not an error.
func LoadConfig(path, envFile string) (Config, error) {
	configuration := DefaultConfig()

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return configuration, fmt.Errorf("%w: %w", ErrReadConfigurationFailure, err)
		}

		if err := yaml.Unmarshal(file, &configuration); err != nil {
			return configuration, fmt.Errorf("%w: %w", ErrLoadConfigurationFailure, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return configuration, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if err := env.ParseWithOptions(&configuration, env.Options{Prefix: EnvPrefix}); err != nil {
		return configuration, fmt.Errorf("parse env: %w", err)
	}

	return configuration, nil
}

// Validate checks the configuration and returns the selected schema.
func (c Config) Validate() (ready.SchemaVersion, error) {
	version, err := ready.ParseSchemaVersion(c.Schema)
	if err != nil {
		return "", err
	}

	switch c.Output {
	case OutputSummary, OutputJSON, OutputYAML:
	default:
		return "", fmt.Errorf("%w: output %q", ErrInvalidConfiguration, c.Output)
	}

	switch c.Frame {
	case FrameAuto, FrameRaw, FrameFrame:
	default:
		return "", fmt.Errorf("%w: frame %q", ErrInvalidConfiguration, c.Frame)
	}

	if c.Workers < 1 {
		return "", fmt.Errorf("%w: workers must be at least 1", ErrInvalidConfiguration)
	}

	if c.Output != OutputSummary && c.OutputDirectory == "" {
		return "", fmt.Errorf("%w: output %s needs an output directory", ErrInvalidConfiguration, c.Output)
	}

	if len(c.Inputs) == 0 {
		return "", ErrNoInputs
	}

	return version, nil
}
