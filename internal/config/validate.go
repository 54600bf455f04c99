package config

import (
	"fmt"
	"strings"
)

// Validate checks the config for errors and fills in defaults for any
// field left empty or zero.
func Validate(cfg *Config) error {
	def := Default()

	if cfg.Folder == "" {
		cfg.Folder = def.Folder
	}
	if cfg.Input == "" {
		cfg.Input = def.Input
	}
	if cfg.Output == "" {
		cfg.Output = def.Output
	}
	if cfg.EmbedBase == "" {
		cfg.EmbedBase = def.EmbedBase
	}
	if !strings.HasPrefix(cfg.EmbedBase, "http://") && !strings.HasPrefix(cfg.EmbedBase, "https://") {
		return fmt.Errorf("config: 'embed-base' must be an http(s) URL, got %q", cfg.EmbedBase)
	}

	r := &cfg.Rerun
	if r.ExpectedBattles == 0 {
		r.ExpectedBattles = def.Rerun.ExpectedBattles
	}
	if r.MaxIterations == 0 {
		r.MaxIterations = def.Rerun.MaxIterations
	}
	if r.RetryDelay == 0 {
		r.RetryDelay = def.Rerun.RetryDelay
	}
	if r.ExpectedBattles < 0 {
		return fmt.Errorf("config: rerun 'expected-battles' must be >= 0, got %d", r.ExpectedBattles)
	}
	if r.MaxIterations < 0 {
		return fmt.Errorf("config: rerun 'max-iterations' must be >= 0, got %d", r.MaxIterations)
	}
	if r.RetryDelay < 0 {
		return fmt.Errorf("config: rerun 'retry-delay' must be >= 0, got %d", r.RetryDelay)
	}
	if r.MaxAttempts < 0 {
		return fmt.Errorf("config: rerun 'max-attempts' must be >= 0, got %d", r.MaxAttempts)
	}
	return nil
}
