package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/ttfe/internal/engine"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	return home, work
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  rows: 5\n  columns: 6\nwin_value: 1024\nseed: 42\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if cfg.Board.Rows != 5 || cfg.Board.Columns != 6 {
		t.Errorf("board = %dx%d, want 5x6", cfg.Board.Rows, cfg.Board.Columns)
	}
	if cfg.WinValue != 1024 || cfg.Seed != 42 {
		t.Errorf("win_value, seed = %d, %d, want 1024, 42", cfg.WinValue, cfg.Seed)
	}
	// Missing fields keep their defaults
	if !reflect.DeepEqual(cfg.Spawn.Values, []int{2, 4}) {
		t.Errorf("spawn values = %v, want [2 4]", cfg.Spawn.Values)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "board: [not, a, map\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed YAML should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, LocalPath), "win_value: 256\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.WinValue != 256 {
		t.Errorf("local config win_value = %d, want 256", cfg.WinValue)
	}

	writeFile(t, filepath.Join(home, ".ttfe", "config.yaml"), "win_value: 128\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.WinValue != 128 {
		t.Errorf("user config should win over local, win_value = %d", cfg.WinValue)
	}
}

func TestLoadSkipsBrokenUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".ttfe", "config.yaml"), "win_value: [\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.WinValue != engine.DefaultWinValue {
		t.Errorf("win_value = %d, want default %d", cfg.WinValue, engine.DefaultWinValue)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		wantPow bool
	}{
		{"default", func(*Config) {}, false, false},
		{"small board", func(c *Config) { c.Board.Rows = 3 }, true, false},
		{"narrow board", func(c *Config) { c.Board.Columns = 0 }, true, false},
		{"win value not power of two", func(c *Config) { c.WinValue = 1000 }, true, true},
		{"no spawn values", func(c *Config) { c.Spawn.Values = nil }, true, false},
		{"bad spawn value", func(c *Config) { c.Spawn.Values = []int{2, 3} }, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantPow && !errors.Is(err, engine.ErrNotPowerOfTwo) {
				t.Errorf("Validate() = %v, want ErrNotPowerOfTwo", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset              Preset
		rows, columns, wins int
	}{
		{PresetClassic, 4, 4, 2048},
		{PresetQuick, 4, 4, 512},
		{PresetBig, 6, 6, 4096},
		{PresetMarathon, 5, 5, 16384},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			cfg.Seed = 7
			ApplyPreset(&cfg, tc.preset)

			if cfg.Board.Rows != tc.rows || cfg.Board.Columns != tc.columns || cfg.WinValue != tc.wins {
				t.Errorf("ApplyPreset(%s) = %dx%d win %d, want %dx%d win %d",
					tc.preset, cfg.Board.Rows, cfg.Board.Columns, cfg.WinValue, tc.rows, tc.columns, tc.wins)
			}
			if cfg.Seed != 7 {
				t.Error("ApplyPreset should keep the seed")
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s is invalid: %v", tc.preset, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestConfigStartsEngine(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, PresetBig)
	cfg.Seed = 3
	cfg.Spawn.Values = []int{4}

	e := engine.New(cfg.EngineOptions()...)
	if err := cfg.Reset(e); err != nil {
		t.Fatalf("Reset error: %v", err)
	}

	snap := e.Snapshot()
	if snap.Rows != 6 || snap.Columns != 6 || snap.WinValue != 4096 {
		t.Errorf("engine board %dx%d win %d, want 6x6 win 4096", snap.Rows, snap.Columns, snap.WinValue)
	}
	for _, row := range snap.Values {
		for _, v := range row {
			if v != 0 && v != 4 {
				t.Errorf("spawned %d, want 4", v)
			}
		}
	}
}
