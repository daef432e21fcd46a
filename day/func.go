package day

import "github.com/zjrosen/aoc/aocerr"

// PartFunc solves one part from the puzzle input.
type PartFunc func(input string) (string, error)

// Option configures a Solver built with New.
type Option func(*funcSolver)

// WithExpected sets the known answers.
func WithExpected(e Expected) Option {
	return func(s *funcSolver) {
		s.expected = e
	}
}

// New builds a Solver from two functions. A nil function reports
// aocerr.NotImplemented for that part.
func New(day int, part1, part2 PartFunc, opts ...Option) Solver {
	s := &funcSolver{day: day, part1: part1, part2: part2}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type funcSolver struct {
	day      int
	part1    PartFunc
	part2    PartFunc
	expected Expected
}

func (s *funcSolver) Day() int { return s.day }
func (s *funcSolver) Expected() Expected { return s.expected }

func (s *funcSolver) Part1(input string) (string, error) {
	if s.part1 == nil {
		return "", aocerr.NotImplemented()
	}
	return s.part1(input)
}

func (s *funcSolver) Part2(input string) (string, error) {
	if s.part2 == nil {
		return "", aocerr.NotImplemented()
	}
	return s.part2(input)
}
