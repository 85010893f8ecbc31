package gridpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepperFirstSteps(t *testing.T) {
	stepper, err := NewStepper(NewBoard(5, 5), Cell{0, 0}, Cell{4, 4}, nil)
	require.NoError(t, err)

	snapshot, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.StepIndex)
	assert.Equal(t, Cell{0, 0}, snapshot.Current)
	assert.Equal(t, []Cell{{0, 0}}, snapshot.Closed)
	assert.ElementsMatch(t, []Cell{{1, 0}, {0, 1}}, snapshot.Open)
	assert.False(t, snapshot.Done)

	// equal f: east was discovered before south
	snapshot, err = stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, Cell{1, 0}, snapshot.Current)
	assert.ElementsMatch(t, []Cell{{0, 1}, {2, 0}, {1, 1}}, snapshot.Open)

	snapshot, err = stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, Cell{0, 1}, snapshot.Current)
}

func TestStepperClosedNodesAreFrozen(t *testing.T) {
	board := NewBoard(4, 4)
	blocked := walls(Cell{1, 1}, Cell{2, 1})
	stepper, err := NewStepper(board, Cell{0, 0}, Cell{3, 3}, blocked)
	require.NoError(t, err)

	frozen := make(map[Cell]NodeState)
	for !stepper.Done() {
		snapshot, err := stepper.Step()
		require.NoError(t, err)

		for _, cell := range snapshot.Closed {
			state, ok := stepper.Node(cell)
			require.True(t, ok)
			assert.True(t, state.Closed)
			assert.False(t, state.Open, "closed cell %s back in the open set", cell)
			if previous, seen := frozen[cell]; seen {
				assert.Equal(t, previous, state, "closed cell %s changed", cell)
			} else {
				frozen[cell] = state
			}
		}
		for _, cell := range snapshot.Open {
			assert.NotContains(t, frozen, cell)
		}
	}

	result := stepper.Result()
	require.True(t, result.Found)
	assert.Equal(t, 60, result.Cost)
}

func TestStepperNodeState(t *testing.T) {
	stepper, err := NewStepper(NewBoard(3, 3), Cell{0, 0}, Cell{2, 2}, nil)
	require.NoError(t, err)

	state, ok := stepper.Node(Cell{2, 0})
	require.True(t, ok)
	assert.Equal(t, 20, state.H)
	assert.False(t, state.HasParent)
	assert.False(t, state.Open)

	_, err = stepper.Step()
	require.NoError(t, err)
	state, ok = stepper.Node(Cell{1, 0})
	require.True(t, ok)
	assert.True(t, state.Open)
	assert.True(t, state.HasParent)
	assert.Equal(t, Cell{0, 0}, state.Parent)
	assert.Equal(t, East, state.Arrival)
	assert.Equal(t, 10, state.G)
	assert.Equal(t, 40, state.F)

	_, ok = stepper.Node(Cell{3, 0})
	assert.False(t, ok)
}

func TestStepperDoneIsSticky(t *testing.T) {
	stepper, err := NewStepper(NewBoard(2, 1), Cell{0, 0}, Cell{1, 0}, nil)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := stepper.Step()
		require.NoError(t, err)
	}
	require.True(t, stepper.Done())

	snapshot, err := stepper.Step()
	require.NoError(t, err)
	assert.True(t, snapshot.Done)
	assert.True(t, snapshot.Found)
	assert.Equal(t, Cell{1, 0}, snapshot.Current)
	assert.Equal(t, []Cell{{0, 0}, {1, 0}}, snapshot.Path)
	assert.Equal(t, 2, snapshot.StepIndex)
	assert.Equal(t, East, stepper.Result().Direction)
}

func TestStepperExhausted(t *testing.T) {
	stepper, err := NewStepper(NewBoard(3, 1), Cell{0, 0}, Cell{2, 0}, walls(Cell{1, 0}))
	require.NoError(t, err)

	snapshot, err := stepper.Step()
	require.NoError(t, err)
	assert.False(t, snapshot.Done)

	snapshot, err = stepper.Step()
	require.NoError(t, err)
	assert.True(t, snapshot.Done)
	assert.False(t, snapshot.Found)
	assert.Nil(t, snapshot.Path)
	assert.False(t, stepper.Result().Found)
}
