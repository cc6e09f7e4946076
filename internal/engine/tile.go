package engine

// VoidValue is the value of an empty tile.
const VoidValue = 0

// Tile is a single board cell: a value plus two flags that only live for
// the current turn.
type Tile struct {
	value            int
	justCreated      bool
	notMergeThisTurn bool
}

// NewTile returns a tile holding value with both flags cleared.
func NewTile(value int) Tile {
	return Tile{value: value}
}

// Value returns the tile value, 0 when empty.
func (t Tile) Value() int {
	return t.value
}

// SetValue overwrites the value and leaves the flags untouched.
func (t *Tile) SetValue(value int) {
	t.value = value
}

// IsVoid reports whether the tile is empty.
func (t Tile) IsVoid() bool {
	return t.value == VoidValue
}

// ShouldNotMergeThisTurn is true for a tile produced by a merge this turn.
func (t Tile) ShouldNotMergeThisTurn() bool {
	return t.notMergeThisTurn
}

// IsJustCreated is true for a tile spawned at the end of the last turn.
func (t Tile) IsJustCreated() bool {
	return t.justCreated
}

// Clone returns a copy carrying only the value.
func (t Tile) Clone() Tile {
	return Tile{value: t.value}
}

// Equal compares tiles by value. Flags are presentation state, not identity.
func (t Tile) Equal(other Tile) bool {
	return t.value == other.value
}

// isPowerOfTwo reports whether v is 2, 4, 8, ...
func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// ValidateValue returns ErrNotPowerOfTwo unless v can appear on a board.
func ValidateValue(v int) error {
	if !isPowerOfTwo(v) {
		return ErrNotPowerOfTwo
	}
	return nil
}
