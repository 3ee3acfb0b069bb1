package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
)

// config holds defaults read from the environment. Flags override them.
type config struct {
	Sweep      string `env:"QUIZSOLVER_SWEEP" envDefault:"classic"`
	Format     string `env:"QUIZSOLVER_FORMAT" envDefault:"text"`
	Output     string `env:"QUIZSOLVER_OUTPUT"`
	Trace      string `env:"QUIZSOLVER_TRACE"`
	Verbose    bool   `env:"QUIZSOLVER_VERBOSE"`
	OnlySolved bool   `env:"QUIZSOLVER_ONLY_SOLVED"`
	NoColor    string `env:"NO_COLOR"`
}

// loadConfig reads the environment into a config.
func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// useColor reports whether text output should be colored: only when
// writing to a terminal and NO_COLOR is empty.
func useColor(cfg config, toFile bool) bool {
	if cfg.NoColor != "" || toFile {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
