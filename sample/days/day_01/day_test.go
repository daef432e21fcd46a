package day_01

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/aoc/aocerr"
	"github.com/zjrosen/aoc/day"
)

const example = "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n"

func TestParts(t *testing.T) {
	s := New()

	out, err := day.Solve(s, day.Part1, example)
	require.NoError(t, err)
	require.Equal(t, "24000", out)

	out, err = day.Solve(s, day.Part2, example)
	require.NoError(t, err)
	require.Equal(t, "45000", out)
}

func TestParts_BadInput(t *testing.T) {
	_, err := part1("100\nabc\n")
	var aerr *aocerr.Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, aocerr.KindParse, aerr.Kind)
}
