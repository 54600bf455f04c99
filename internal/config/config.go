package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where battleview looks for its config when --config is
// not given. A missing file is not an error; defaults apply.
const DefaultPath = "battleview.yaml"

// Rerun configures the simulation retry supervisor.
type Rerun struct {
	Command         string `yaml:"command"`          // shell command producing one output file
	ExpectedBattles int    `yaml:"expected-battles"` // completed blocks required per file
	MaxIterations   int    `yaml:"max-iterations"`   // output files to produce
	RetryDelay      int    `yaml:"retry-delay"`      // seconds between attempts
	MaxAttempts     int    `yaml:"max-attempts"`     // per-file attempt cap, 0 = unlimited
}

type Config struct {
	Folder    string `yaml:"folder"`     // directory holding simulation output
	Input     string `yaml:"input"`      // log file name inside folder
	Output    string `yaml:"output"`     // replay HTML name inside folder
	EmbedBase string `yaml:"embed-base"` // server hosting replay-embed.js
	Rerun     Rerun  `yaml:"rerun"`
}

// Default returns a Config with every field at its documented default.
func Default() *Config {
	return &Config{
		Folder:    "TestOutput",
		Input:     "output1.txt",
		Output:    "replay.html",
		EmbedBase: "https://play.pokemonshowdown.com",
		Rerun: Rerun{
			ExpectedBattles: 1,
			MaxIterations:   100,
			RetryDelay:      2,
		},
	}
}

// Load reads a YAML config file and returns a validated Config. A
// missing file yields the defaults; any other read error is surfaced.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
