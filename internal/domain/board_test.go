package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		score    int
	}{
		{
			name:     "empty line",
			input:    [Size]int{0, 0, 0, 0},
			expected: [Size]int{0, 0, 0, 0},
		},
		{
			name:     "no merge needed",
			input:    [Size]int{2, 4, 8, 16},
			expected: [Size]int{2, 4, 8, 16},
		},
		{
			name:     "simple merge",
			input:    [Size]int{2, 2, 0, 0},
			expected: [Size]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with gap",
			input:    [Size]int{2, 0, 2, 0},
			expected: [Size]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "pair nearest the edge wins",
			input:    [Size]int{2, 0, 2, 2},
			expected: [Size]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "two merges",
			input:    [Size]int{2, 2, 4, 4},
			expected: [Size]int{4, 8, 0, 0},
			score:    12,
		},
		{
			name:     "chain does not cascade",
			input:    [Size]int{2, 2, 2, 2},
			expected: [Size]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    [Size]int{4, 2, 2, 0},
			expected: [Size]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "three same values",
			input:    [Size]int{2, 2, 2, 0},
			expected: [Size]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "shift left",
			input:    [Size]int{0, 0, 0, 2},
			expected: [Size]int{2, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := mergeLine(tt.input)
			assert.Equal(t, tt.expected, result, "mergeLine(%v)", tt.input)
			assert.Equal(t, tt.score, score, "mergeLine(%v) score", tt.input)
		})
	}
}

func TestSwipeWithoutSpawn(t *testing.T) {
	board := NewBoardFromCells([Size][Size]int{
		{2, 2, 4, 8},
		{4, 0, 4, 0},
		{8, 8, 0, 0},
		{0, 0, 0, 2},
	})

	tests := []struct {
		dir      Direction
		expected [Size][Size]int
		score    int
	}{
		{
			dir: Left,
			expected: [Size][Size]int{
				{4, 4, 8, 0},
				{8, 0, 0, 0},
				{16, 0, 0, 0},
				{2, 0, 0, 0},
			},
			score: 4 + 8 + 16,
		},
		{
			dir: Right,
			expected: [Size][Size]int{
				{0, 4, 4, 8},
				{0, 0, 0, 8},
				{0, 0, 0, 16},
				{0, 0, 0, 2},
			},
			score: 4 + 8 + 16,
		},
		{
			dir: Up,
			expected: [Size][Size]int{
				{2, 2, 8, 8},
				{4, 8, 0, 2},
				{8, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 8,
		},
		{
			dir: Down,
			expected: [Size][Size]int{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 2, 0, 8},
				{8, 8, 8, 2},
			},
			score: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			swiped, score := board.SwipeWithoutSpawn(tt.dir)
			assert.Equal(t, tt.expected, swiped.Cells())
			assert.Equal(t, tt.score, score)
		})
	}
}

func TestSwipeDoesNotMutateReceiver(t *testing.T) {
	original := NewBoardFromCells([Size][Size]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := original.Cells()

	_, _ = original.SwipeWithoutSpawn(Left)

	assert.Equal(t, before, original.Cells(), "original board was mutated")
}

func TestEmptyCells(t *testing.T) {
	board := NewBoardFromCells([Size][Size]int{
		{2, 4, 2, 4},
		{4, 0, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 0},
	})

	assert.Equal(t, [][2]int{{1, 1}, {3, 3}}, board.EmptyCells())
	assert.Len(t, NewBoard().EmptyCells(), Size*Size)
}

func TestMaxTile(t *testing.T) {
	board := NewBoardFromCells([Size][Size]int{
		{2, 4, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 16, 0},
		{0, 0, 0, 2},
	})
	assert.Equal(t, 128, board.MaxTile())
	assert.Equal(t, 0, NewBoard().MaxTile())
}

func TestEqual(t *testing.T) {
	board1 := NewBoardFromCells([Size][Size]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	board2 := NewBoardFromCells([Size][Size]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	board3 := NewBoardFromCells([Size][Size]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	assert.True(t, board1.Equal(board2), "expected board1 and board2 to be equal")
	assert.False(t, board1.Equal(board3), "expected board1 and board3 to be different")
}

func TestString(t *testing.T) {
	board := NewBoardFromCells([Size][Size]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 0},
		{0, 0, 0, 2},
	})

	expected := "" +
		"2    4    8    16   \n" +
		"32   64   128  256  \n" +
		"512  1024 2048 0    \n" +
		"0    0    0    2    \n"
	assert.Equal(t, expected, board.String())
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		dir   Direction
		ok    bool
	}{
		{"w", Up, true},
		{"s", Down, true},
		{"a", Left, true},
		{"d", Right, true},
		{"", 0, false},
		{"W", 0, false},
		{"q", 0, false},
		{"wa", 0, false},
	}

	for _, tt := range tests {
		dir, ok := ParseDirection(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseDirection(%q)", tt.input)
		if tt.ok {
			assert.Equal(t, tt.dir, dir, "ParseDirection(%q)", tt.input)
		}
	}
}

func BenchmarkSwipe(b *testing.B) {
	board := NewBoardFromCells([Size][Size]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 0},
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, dir := range Directions {
			board.SwipeWithoutSpawn(dir)
		}
	}
}
