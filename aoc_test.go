package aoc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/aoc/cmd"
	"github.com/zjrosen/aoc/day"
)

func TestRun_InvalidRegistry(t *testing.T) {
	err := Run(context.Background(), Project{}, []day.Solver{nil}, nil, []string{"list"})
	require.ErrorIs(t, err, day.ErrNilSolver)
}

func TestRun_Dispatches(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	calls := 0
	solver := day.New(1, func(string) (string, error) {
		calls++
		return "ok", nil
	}, nil)

	err := Run(context.Background(), Project{Version: "test"}, []day.Solver{solver},
		map[int]string{1: "input"}, []string{"run", "-d", "1", "-p", "1"})
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	err = Run(context.Background(), Project{}, []day.Solver{solver}, nil, []string{"run", "-d", "7"})
	require.ErrorIs(t, err, cmd.ErrRunFailed)
}
