package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the formatting defaults.
type Config struct {
	Notation        string `yaml:"notation"`
	Places          int    `yaml:"places"`
	PlacesUnder1000 int    `yaml:"places_under_1000"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Notation:        "prime",
		Places:          2,
		PlacesUnder1000: 0,
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (cfg Config, err error) {
	defer Error.WrapP(&err)

	cfg = DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, err
	}

	if cfg.Places < 0 || cfg.PlacesUnder1000 < 0 {
		return cfg, Error.New("places must not be negative")
	}

	return cfg, nil
}
