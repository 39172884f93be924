package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Iterations            int    `yaml:"iterations"`
	DatasetSize           int    `yaml:"dataset_size"`
	ValidationDatasetSize int    `yaml:"validation_dataset_size"`
	Seed                  int64  `yaml:"seed"`
	Workers               int    `yaml:"workers"`
	LogEvery              int    `yaml:"log_every"`
	Output                string `yaml:"output"`
	PlotOutput            string `yaml:"plot_output"`
}

// Overrides captures CLI supplied values. Nil fields were not set.
type Overrides struct {
	Iterations            *int
	DatasetSize           *int
	ValidationDatasetSize *int
	Seed                  *int64
	Workers               *int
	LogEvery              *int
	Output                *string
	PlotOutput            *string
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Iterations:            100,
		DatasetSize:           200,
		ValidationDatasetSize: 20,
		LogEvery:              1,
	}
}

// Load reads a YAML config on top of Default and validates it.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates cfg using every override that was set.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Iterations != nil {
		c.Iterations = *o.Iterations
	}
	if o.DatasetSize != nil {
		c.DatasetSize = *o.DatasetSize
	}
	if o.ValidationDatasetSize != nil {
		c.ValidationDatasetSize = *o.ValidationDatasetSize
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.Workers != nil {
		c.Workers = *o.Workers
	}
	if o.LogEvery != nil {
		c.LogEvery = *o.LogEvery
	}
	if o.Output != nil {
		c.Output = *o.Output
	}
	if o.PlotOutput != nil {
		c.PlotOutput = *o.PlotOutput
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Iterations < 0 {
		return errors.Errorf("iterations must be >= 0 (got %d)", c.Iterations)
	}
	if c.DatasetSize < 0 {
		return errors.Errorf("dataset_size must be >= 0 (got %d)", c.DatasetSize)
	}
	if c.ValidationDatasetSize < 0 {
		return errors.Errorf("validation_dataset_size must be >= 0 (got %d)", c.ValidationDatasetSize)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must be >= 0 (got %d)", c.Workers)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 1
	}
	return nil
}
