// Package day_01 sums calorie groups.
package day_01 //nolint:revive // directory name is the day package convention

import (
	"slices"
	"strconv"
	"strings"

	"github.com/zjrosen/aoc/day"
	"github.com/zjrosen/aoc/parse"
)

func New() day.Solver {
	return day.New(1, part1, part2, day.WithExpected(day.Known("24000", "45000")))
}

// totals returns each blank-line separated group's sum, largest first.
func totals(input string) ([]int, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	var sums []int
	for _, group := range strings.Split(strings.TrimSpace(input), "\n\n") {
		nums, err := parse.ParseLines[int](group)
		if err != nil {
			return nil, err
		}
		total := 0
		for _, n := range nums {
			total += n
		}
		sums = append(sums, total)
	}
	slices.Sort(sums)
	slices.Reverse(sums)
	return sums, nil
}

func part1(input string) (string, error) {
	sums, err := totals(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(sums[0]), nil
}

func part2(input string) (string, error) {
	sums, err := totals(input)
	if err != nil {
		return "", err
	}
	top := 0
	for _, s := range sums[:min(3, len(sums))] {
		top += s
	}
	return strconv.Itoa(top), nil
}
