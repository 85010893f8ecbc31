package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

type cells = []gridpath.Cell

func TestNewGame(t *testing.T) {
	game, err := New(gridpath.NewBoard(10, 5), 3, 1)
	require.NoError(t, err)

	assert.Equal(t, cells{{X: 6, Y: 2}, {X: 5, Y: 2}, {X: 4, Y: 2}}, game.Body())
	assert.Equal(t, gridpath.East, game.Heading())
	assert.Equal(t, Running, game.Status())

	food, ok := game.Food()
	require.True(t, ok)
	assert.NotContains(t, game.Body(), food)

	_, err = New(gridpath.NewBoard(3, 3), 3, 1)
	assert.ErrorIs(t, err, ErrBoardTooSmall)
}

func TestFromBodyValidates(t *testing.T) {
	board := gridpath.NewBoard(4, 4)
	testCases := []struct {
		name string
		body cells
		food gridpath.Cell
	}{
		{name: "empty", body: nil, food: gridpath.Cell{X: 0, Y: 0}},
		{name: "off board", body: cells{{X: 4, Y: 0}}, food: gridpath.Cell{X: 0, Y: 0}},
		{name: "detached", body: cells{{X: 0, Y: 0}, {X: 2, Y: 0}}, food: gridpath.Cell{X: 3, Y: 3}},
		{name: "overlap", body: cells{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, food: gridpath.Cell{X: 3, Y: 3}},
		{name: "food on body", body: cells{{X: 0, Y: 0}, {X: 1, Y: 0}}, food: gridpath.Cell{X: 1, Y: 0}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := FromBody(board, testCase.body, gridpath.East, testCase.food, 1)
			assert.ErrorIs(t, err, ErrInvalidBody)
		})
	}
}

func TestStepEatsAndGrows(t *testing.T) {
	game, err := FromBody(gridpath.NewBoard(5, 5), cells{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}, gridpath.East, gridpath.Cell{X: 3, Y: 2}, 7)
	require.NoError(t, err)

	assert.Equal(t, Running, game.Step(gridpath.East))
	assert.Equal(t, 1, game.Score())
	assert.Equal(t, cells{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}, game.Body())

	food, ok := game.Food()
	require.True(t, ok)
	assert.NotContains(t, game.Body(), food)
}

func TestStepIgnoresReverse(t *testing.T) {
	game, err := FromBody(gridpath.NewBoard(5, 5), cells{{X: 2, Y: 2}, {X: 1, Y: 2}}, gridpath.East, gridpath.Cell{X: 0, Y: 0}, 1)
	require.NoError(t, err)

	game.Step(gridpath.West)
	assert.Equal(t, gridpath.Cell{X: 3, Y: 2}, game.Head())
	assert.Equal(t, gridpath.East, game.Heading())

	game.Step(gridpath.None)
	assert.Equal(t, gridpath.Cell{X: 4, Y: 2}, game.Head())
}

func TestStepCollisions(t *testing.T) {
	t.Run("wall", func(t *testing.T) {
		game, err := FromBody(gridpath.NewBoard(5, 5), cells{{X: 4, Y: 2}, {X: 3, Y: 2}}, gridpath.East, gridpath.Cell{X: 0, Y: 0}, 1)
		require.NoError(t, err)
		assert.Equal(t, Dead, game.Step(gridpath.East))
		assert.Equal(t, Dead, game.Step(gridpath.South))
		assert.Equal(t, gridpath.Cell{X: 4, Y: 2}, game.Head())
	})

	t.Run("own body", func(t *testing.T) {
		body := cells{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}
		game, err := FromBody(gridpath.NewBoard(5, 5), body, gridpath.West, gridpath.Cell{X: 4, Y: 4}, 1)
		require.NoError(t, err)
		assert.Equal(t, Dead, game.Step(gridpath.South))
	})

	t.Run("chasing the tail is allowed", func(t *testing.T) {
		body := cells{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
		game, err := FromBody(gridpath.NewBoard(5, 5), body, gridpath.West, gridpath.Cell{X: 4, Y: 4}, 1)
		require.NoError(t, err)
		assert.Equal(t, Running, game.Step(gridpath.South))
		assert.Equal(t, cells{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}, game.Body())
	})
}

func TestStepWinsOnFullBoard(t *testing.T) {
	game, err := FromBody(gridpath.NewBoard(2, 1), cells{{X: 0, Y: 0}}, gridpath.East, gridpath.Cell{X: 1, Y: 0}, 1)
	require.NoError(t, err)

	assert.Equal(t, Won, game.Step(gridpath.East))
	_, ok := game.Food()
	assert.False(t, ok)
	assert.Equal(t, 2, game.Length())
	assert.Equal(t, Won, game.Step(gridpath.West))
}
