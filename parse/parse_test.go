package parse

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/aoc/aocerr"
)

func atoi(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, aocerr.Wrap(err)
	}
	return uint(v), nil
}

func TestParse_Delimited(t *testing.T) {
	out, err := Parse[uint]("0,1,2,3,4", ",")
	require.NoError(t, err)
	require.Equal(t, []uint{0, 1, 2, 3, 4}, out)
}

func TestParseWith_Delimited(t *testing.T) {
	out, err := ParseWith("0,1,2,3,4", ",", atoi)
	require.NoError(t, err)
	require.Equal(t, []uint{0, 1, 2, 3, 4}, out)
}

func TestParseLines(t *testing.T) {
	out, err := ParseLines[uint]("0\n1\n2\n3\n4")
	require.NoError(t, err)
	require.Equal(t, []uint{0, 1, 2, 3, 4}, out)
}

func TestParseLinesWith(t *testing.T) {
	out, err := ParseLinesWith("0\n1\n2\n3\n4", atoi)
	require.NoError(t, err)
	require.Equal(t, []uint{0, 1, 2, 3, 4}, out)
}

func TestParseLines_SkipsBlankAndTrims(t *testing.T) {
	out, err := ParseLines[int]("\n  10\r\n\n-3  \n\t\n7\n")
	require.NoError(t, err)
	require.Equal(t, []int{10, -3, 7}, out)
}

func TestParse_StrictFailsOnFirstBadSegment(t *testing.T) {
	out, err := Parse[int]("1, 2, x, 4", ",")
	require.Nil(t, out)

	var aerr *aocerr.Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, aocerr.KindParse, aerr.Kind)
}

func TestParseWith_CustomErrorIsPreserved(t *testing.T) {
	_, err := ParseWith("a b", " ", func(string) (int, error) {
		return 0, aocerr.Numbered(3)
	})

	var aerr *aocerr.Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, aocerr.KindNumbered, aerr.Kind)
	require.Equal(t, 3, aerr.Code)
}

func TestNumbers_DropsFailures(t *testing.T) {
	out := Numbers[int]("1\nfoo\n\n 3 \n4.5\n-2")
	require.Equal(t, []int{1, 3, -2}, out)

	require.Empty(t, Numbers[int](""))
}

func TestValue_Kinds(t *testing.T) {
	type cost int
	type label string

	i8, err := Value[int8]("-128")
	require.NoError(t, err)
	require.Equal(t, int8(-128), i8)

	_, err = Value[int8]("128")
	require.Error(t, err, "out of range for int8")

	_, err = Value[uint]("-1")
	require.Error(t, err)

	f, err := Value[float64]("2.5")
	require.NoError(t, err)
	require.InDelta(t, 2.5, f, 1e-9)

	b, err := Value[bool]("true")
	require.NoError(t, err)
	require.True(t, b)

	c, err := Value[cost]("17")
	require.NoError(t, err)
	require.Equal(t, cost(17), c)

	l, err := Value[label]("north")
	require.NoError(t, err)
	require.Equal(t, label("north"), l)

	// Leading zeros are decimal, not octal.
	z, err := Value[int]("010")
	require.NoError(t, err)
	require.Equal(t, 10, z)
}

func TestParse_MatchesParseWithDefaultConversion(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		nums := rapid.SliceOfN(rapid.Int64(), 1, 50).Draw(r, "nums")
		parts := make([]string, len(nums))
		for i, n := range nums {
			parts[i] = strconv.FormatInt(n, 10)
		}
		sep := rapid.SampledFrom([]string{",", ";", " ", "|"}).Draw(r, "sep")
		joined := strings.Join(parts, sep)

		got, err := Parse[int64](joined, sep)
		require.NoError(r, err)

		gotWith, err := ParseWith(joined, sep, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
		require.NoError(r, err)

		require.Equal(r, nums, got)
		require.Equal(r, got, gotWith)

		lines, err := ParseLines[int64](strings.Join(parts, "\n"))
		require.NoError(r, err)
		require.Equal(r, got, lines)
	})
}
