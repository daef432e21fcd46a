// Package parse provides split, trim and convert pipelines for puzzle input.
//
// The strict functions (Parse, ParseWith, ParseLines, ParseLinesWith) fail on
// the first segment that does not convert. Numbers is the lenient variant and
// silently drops segments that do not convert. All of them skip blank segments
// and keep the order of appearance.
package parse

import (
	"strings"

	"github.com/zjrosen/aoc/aocerr"
)

// Parse splits s on sep and converts every non-blank segment to T.
func Parse[T Scalar](s, sep string) ([]T, error) {
	return ParseWith(s, sep, Value[T])
}

// ParseWith splits s on sep and converts every non-blank segment with fn.
func ParseWith[T any](s, sep string, fn func(string) (T, error)) ([]T, error) {
	return convertAll(strings.Split(s, sep), fn)
}

// ParseLines converts every non-blank line of s to T.
func ParseLines[T Scalar](s string) ([]T, error) {
	return ParseLinesWith(s, Value[T])
}

// ParseLinesWith converts every non-blank line of s with fn.
func ParseLinesWith[T any](s string, fn func(string) (T, error)) ([]T, error) {
	return convertAll(Lines(s), fn)
}

// Numbers converts every non-blank line of s to T, dropping lines that fail to convert.
func Numbers[T Scalar](s string) []T {
	out := make([]T, 0)
	for _, seg := range Lines(s) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		v, err := Value[T](seg)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Lines splits s into lines. A trailing carriage return on each line is removed.
func Lines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func convertAll[T any](segments []string, fn func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		v, err := fn(seg)
		if err != nil {
			return nil, aocerr.From(err)
		}
		out = append(out, v)
	}
	return out, nil
}
