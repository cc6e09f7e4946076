package engine

import (
	"reflect"
	"testing"
)

func TestMoveTile(t *testing.T) {
	tests := []struct {
		name       string
		row        []int
		src, dst   int
		wantRow    []int
		wantOK     bool
		wantResult playResult
	}{
		{
			name:       "wall",
			row:        []int{2, 0, 0, 0},
			src:        0,
			dst:        -1,
			wantRow:    []int{2, 0, 0, 0},
			wantOK:     true,
			wantResult: playResult{row: 0, column: 0},
		},
		{
			name:    "empty source",
			row:     []int{2, 0, 0, 0},
			src:     1,
			dst:     0,
			wantRow: []int{2, 0, 0, 0},
			wantOK:  false,
		},
		{
			name:       "slides to the wall",
			row:        []int{0, 0, 0, 8},
			src:        3,
			dst:        2,
			wantRow:    []int{8, 0, 0, 0},
			wantOK:     true,
			wantResult: playResult{row: 0, column: 0},
		},
		{
			name:       "slides to an obstacle",
			row:        []int{4, 0, 0, 8},
			src:        3,
			dst:        2,
			wantRow:    []int{4, 8, 0, 0},
			wantOK:     true,
			wantResult: playResult{row: 0, column: 1},
		},
		{
			name:       "merges",
			row:        []int{4, 4, 0, 0},
			src:        1,
			dst:        0,
			wantRow:    []int{8, 0, 0, 0},
			wantOK:     true,
			wantResult: playResult{row: 0, column: 0, merged: true},
		},
		{
			name:       "slides then merges",
			row:        []int{2, 0, 0, 2},
			src:        3,
			dst:        2,
			wantRow:    []int{4, 0, 0, 0},
			wantOK:     true,
			wantResult: playResult{row: 0, column: 0, merged: true},
		},
		{
			name:       "blocked by different value",
			row:        []int{2, 4, 0, 0},
			src:        1,
			dst:        0,
			wantRow:    []int{2, 4, 0, 0},
			wantOK:     true,
			wantResult: playResult{row: 0, column: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom([][]int{tc.row, make([]int, 4), make([]int, 4), make([]int, 4)})

			result, ok := moveTile(b, 0, tc.src, 0, tc.dst)
			if ok != tc.wantOK {
				t.Fatalf("moveTile ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && result != tc.wantResult {
				t.Errorf("moveTile result = %+v, want %+v", result, tc.wantResult)
			}
			if got := b.values()[0]; !reflect.DeepEqual(got, tc.wantRow) {
				t.Errorf("row after moveTile = %v, want %v", got, tc.wantRow)
			}
		})
	}
}

func TestMoveTileBlockedByMergedTile(t *testing.T) {
	b := newBoard(4, 4)
	b.setValue(4, 0, 0, true, false)
	b.place(4, 0, 1)

	result, ok := moveTile(b, 0, 1, 0, 0)
	if !ok || result != (playResult{row: 0, column: 1}) {
		t.Errorf("moveTile onto merged tile = %+v, %v; want stay at (0, 1)", result, ok)
	}
	if b.tiles[0][0].Value() != 4 || b.tiles[0][1].Value() != 4 {
		t.Errorf("merged tile should block a second merge, row = %v", b.values()[0])
	}
}

func TestResolveRowLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{"simple merge", []int{2, 2, 0, 0}, []int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, 4},
		{"double merge", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, 8},
		{"no merge possible", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, 0},
		{"slide with gap", []int{0, 0, 2, 2}, []int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, []int{4, 0, 0, 0}, 4},
		{"no change needed", []int{4, 2, 0, 0}, []int{4, 2, 0, 0}, 0},
		{"empty row", []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, 0},
		{"single tile", []int{0, 4, 0, 0}, []int{4, 0, 0, 0}, 0},
		{"one merge per tile", []int{4, 4, 4, 4}, []int{8, 8, 0, 0}, 16},
		{"merged tile not merged again", []int{4, 4, 8, 0}, []int{8, 8, 0, 0}, 8},
		{"pair after blocker", []int{2, 4, 4, 0}, []int{2, 8, 0, 0}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(WithSeed(1))
			b := boardFrom([][]int{tt.input, make([]int, 4), make([]int, 4), make([]int, 4)})

			e.resolve(b, DirLeft, true)

			if got := b.values()[0]; !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("resolve left %v = %v, want %v", tt.input, got, tt.expected)
			}
			if e.Score() != tt.score {
				t.Errorf("resolve left %v score = %d, want %d", tt.input, e.Score(), tt.score)
			}
		})
	}
}

func TestResolveDirections(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		board    [][]int
		expected [][]int
	}{
		{
			name: "left",
			dir:  DirLeft,
			board: [][]int{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: [][]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
		},
		{
			name: "right",
			dir:  DirRight,
			board: [][]int{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: [][]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
		},
		{
			name: "up",
			dir:  DirUp,
			board: [][]int{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			expected: [][]int{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "down",
			dir:  DirDown,
			board: [][]int{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			expected: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
		},
		{
			name: "rectangular right",
			dir:  DirRight,
			board: [][]int{
				{2, 0, 2, 0, 4},
				{0, 0, 0, 0, 0},
				{8, 8, 8, 0, 0},
				{0, 0, 0, 0, 2},
			},
			expected: [][]int{
				{0, 0, 0, 4, 4},
				{0, 0, 0, 0, 0},
				{0, 0, 0, 8, 16},
				{0, 0, 0, 0, 2},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := New(WithSeed(1))
			b := boardFrom(tc.board)

			if !e.resolve(b, tc.dir, true) {
				t.Error("resolve should report a move")
			}
			if got := b.values(); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("resolve %s: got\n%v\nwant\n%v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	src := boardFrom([][]int{
		{2, 2, 4, 8},
		{0, 4, 4, 4},
		{16, 0, 16, 2},
		{2, 2, 0, 2},
	})

	for _, dir := range Directions {
		e := New(WithSeed(1))
		a, b := src.clone(), src.clone()
		e.resolve(a, dir, false)
		e.resolve(b, dir, false)

		if !reflect.DeepEqual(a.values(), b.values()) {
			t.Errorf("resolve %s on two clones differs:\n%v\n%v", dir, a.values(), b.values())
		}
	}
}

func TestResolveNoChange(t *testing.T) {
	e := New(WithSeed(1))
	b := boardFrom([][]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if e.resolve(b, DirLeft, true) {
		t.Error("resolve left should not move already left-aligned tiles")
	}
}
