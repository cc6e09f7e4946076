// Package config provides YAML-based game configuration loading and
// preset management for ttfe.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/ttfe/internal/engine"
)

// Config contains all configuration for one game.
type Config struct {
	Board    BoardConfig `yaml:"board"`
	WinValue int         `yaml:"win_value"`
	Spawn    SpawnConfig `yaml:"spawn"`
	Seed     int64       `yaml:"seed"` // 0 = seed from the clock
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// SpawnConfig defines the values new tiles can take.
type SpawnConfig struct {
	Values []int `yaml:"values"`
}

// Validate checks that the config can start a game.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Rows < engine.MinBoardSize {
		errs = append(errs, fmt.Errorf("config: board.rows %d is below %d", c.Board.Rows, engine.MinBoardSize))
	}
	if c.Board.Columns < engine.MinBoardSize {
		errs = append(errs, fmt.Errorf("config: board.columns %d is below %d", c.Board.Columns, engine.MinBoardSize))
	}
	if err := engine.ValidateValue(c.WinValue); err != nil {
		errs = append(errs, fmt.Errorf("config: win_value %d: %w", c.WinValue, err))
	}
	if len(c.Spawn.Values) == 0 {
		errs = append(errs, errors.New("config: spawn.values is empty"))
	}
	for _, v := range c.Spawn.Values {
		if err := engine.ValidateValue(v); err != nil {
			errs = append(errs, fmt.Errorf("config: spawn value %d: %w", v, err))
		}
	}

	return errors.Join(errs...)
}

// EngineOptions converts the config into engine options. Board size and
// win value are passed to ResetWith separately.
func (c Config) EngineOptions() []engine.Option {
	opts := []engine.Option{engine.WithSpawnValues(c.Spawn.Values...)}
	if c.Seed != 0 {
		opts = append(opts, engine.WithSeed(c.Seed))
	}
	return opts
}

// Reset starts a new game on e using the configured board and win value.
func (c Config) Reset(e *engine.Engine) error {
	return e.ResetWith(c.Board.Rows, c.Board.Columns, c.WinValue)
}
