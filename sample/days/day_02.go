package days

import (
	"strconv"
	"strings"

	"github.com/zjrosen/aoc/aocerr"
	"github.com/zjrosen/aoc/day"
	"github.com/zjrosen/aoc/parse"
	"github.com/zjrosen/aoc/vec"
)

var directions = map[string]vec.Vec2[int]{
	"U": vec.New2(0, 1),
	"D": vec.New2(0, -1),
	"L": vec.New2(-1, 0),
	"R": vec.New2(1, 0),
}

type move struct {
	dir   vec.Vec2[int]
	steps int
}

func parseMove(line string) (move, error) {
	d, n, ok := strings.Cut(line, " ")
	if !ok {
		return move{}, aocerr.Parsef("malformed move %q", line)
	}
	dir, ok := directions[d]
	if !ok {
		return move{}, aocerr.Parsef("unknown direction %q", d)
	}
	steps, err := parse.Value[int](n)
	if err != nil {
		return move{}, err
	}
	return move{dir: dir, steps: steps}, nil
}

// walk follows the moves from the origin and returns the final distance and
// the largest distance seen after any move.
func walk(input string) (final, farthest int, err error) {
	moves, err := parse.ParseLinesWith(input, parseMove)
	if err != nil {
		return 0, 0, err
	}
	var origin, pos vec.Vec2[int]
	for _, m := range moves {
		pos = pos.Add(m.dir.Scale(m.steps))
		farthest = max(farthest, pos.ManhattanTo(origin))
	}
	return pos.ManhattanTo(origin), farthest, nil
}

// Day02 measures Manhattan distances along a walk.
func Day02() day.Solver {
	return day.New(2,
		func(input string) (string, error) {
			final, _, err := walk(input)
			return strconv.Itoa(final), err
		},
		func(input string) (string, error) {
			_, farthest, err := walk(input)
			return strconv.Itoa(farthest), err
		},
		day.WithExpected(day.Known("8", "9")),
	)
}
