// Package days holds the example solutions. Run go generate after adding a
// day_NN package, a day_NN.go file or an input/day_N.txt file.
package days

//go:generate go run github.com/zjrosen/aoc/cmd/aocgen
