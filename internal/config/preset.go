package config

import "fmt"

// Preset represents a named game variant.
type Preset string

const (
	PresetClassic  Preset = "classic"
	PresetQuick    Preset = "quick"
	PresetBig      Preset = "big"
	PresetMarathon Preset = "marathon"
)

// Presets lists every known preset in display order.
var Presets = []Preset{PresetClassic, PresetQuick, PresetBig, PresetMarathon}

// ParsePreset returns the preset with the given name.
func ParsePreset(name string) (Preset, error) {
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q", name)
}

// ApplyPreset modifies the config based on a preset. Only the board size
// and win value change; spawn values and seed are kept.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Board = BoardConfig{Rows: 4, Columns: 4}
		cfg.WinValue = 2048
	case PresetQuick:
		cfg.Board = BoardConfig{Rows: 4, Columns: 4}
		cfg.WinValue = 512
	case PresetBig:
		cfg.Board = BoardConfig{Rows: 6, Columns: 6}
		cfg.WinValue = 4096
	case PresetMarathon:
		cfg.Board = BoardConfig{Rows: 5, Columns: 5}
		cfg.WinValue = 16384
	}
}
