// Package day defines the contract every daily puzzle implements and the
// ordered registry the runner dispatches through.
//
// # Solver
//
// A Solver identifies its day, solves both parts from the raw input text and
// optionally states the known-correct answers used for self checks. Part1 and
// Part2 must depend only on their input argument so that days can be run
// repeatedly and in any order.
//
// Puzzle code can implement Solver on its own type or build one from plain
// functions with New:
//
//	func New() day.Solver {
//	    return day.New(5, part1, part2, day.WithExpected(day.Known("CMZ", "MCD")))
//	}
//
// # Registry
//
// Registry holds all solvers of a run sorted ascending by day number. It is
// built once and never modified.
package day

import (
	"errors"
	"fmt"
	"strconv"
)

// Solver is implemented by each daily puzzle.
type Solver interface {
	// Day returns the puzzle day, a positive integer.
	Day() int
	Part1(input string) (string, error)
	Part2(input string) (string, error)
	Expected() Expected
}

// Part selects one of the two halves of a puzzle.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// ErrInvalidPart is returned by ParsePart for anything but 1 or 2.
var ErrInvalidPart = errors.New("invalid part value")

// ParsePart parses "1" or "2".
func ParsePart(s string) (Part, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse part value %q: %w", s, err)
	}
	p := Part(n)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPart, n)
	}
	return p, nil
}

// Valid reports whether p is Part1 or Part2.
func (p Part) Valid() bool {
	return p == Part1 || p == Part2
}

// Solve runs the requested part of s.
func Solve(s Solver, p Part, input string) (string, error) {
	switch p {
	case Part1:
		return s.Part1(input)
	case Part2:
		return s.Part2(input)
	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidPart, int(p))
	}
}
