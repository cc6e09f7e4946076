package engine

import (
	"errors"
	"testing"
)

func TestTileDefaults(t *testing.T) {
	var tile Tile
	if !tile.IsVoid() {
		t.Error("zero Tile should be void")
	}
	if tile.IsJustCreated() || tile.ShouldNotMergeThisTurn() {
		t.Error("zero Tile should have no flags set")
	}

	tile.SetValue(8)
	if tile.Value() != 8 || tile.IsVoid() {
		t.Errorf("SetValue(8): Value() = %d, IsVoid() = %v", tile.Value(), tile.IsVoid())
	}
}

func TestTileEqualIgnoresFlags(t *testing.T) {
	a := Tile{value: 4, justCreated: true}
	b := Tile{value: 4, notMergeThisTurn: true}
	c := NewTile(8)

	if !a.Equal(b) {
		t.Error("tiles with the same value should be equal regardless of flags")
	}
	if a.Equal(c) {
		t.Error("tiles with different values should not be equal")
	}
}

func TestTileCloneCarriesValueOnly(t *testing.T) {
	src := Tile{value: 16, justCreated: true, notMergeThisTurn: true}
	clone := src.Clone()

	if clone.Value() != 16 {
		t.Errorf("Clone().Value() = %d, want 16", clone.Value())
	}
	if clone.IsJustCreated() || clone.ShouldNotMergeThisTurn() {
		t.Error("Clone() should not copy per-turn flags")
	}
}

func TestValidateValue(t *testing.T) {
	tests := []struct {
		value int
		valid bool
	}{
		{2, true},
		{4, true},
		{2048, true},
		{1 << 20, true},
		{0, false},
		{1, false},
		{3, false},
		{6, false},
		{-4, false},
	}

	for _, tc := range tests {
		err := ValidateValue(tc.value)
		if tc.valid && err != nil {
			t.Errorf("ValidateValue(%d) = %v, want nil", tc.value, err)
		}
		if !tc.valid && !errors.Is(err, ErrNotPowerOfTwo) {
			t.Errorf("ValidateValue(%d) = %v, want ErrNotPowerOfTwo", tc.value, err)
		}
	}
}
