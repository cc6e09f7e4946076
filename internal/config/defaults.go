package config

import (
	_ "embed"

	"github.com/vovakirdan/ttfe/internal/engine"
)

//go:embed defaults/ttfe.yaml
var defaultYAML []byte

// Default returns the classic configuration: 4x4, win at 2048.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows:    engine.DefaultRows,
			Columns: engine.DefaultColumns,
		},
		WinValue: engine.DefaultWinValue,
		Spawn: SpawnConfig{
			Values: append([]int(nil), engine.DefaultSpawnValues...),
		},
	}
}
