// Package aoc runs Advent of Code solutions.
//
// A solutions binary generates its day list and embedded inputs with
// cmd/aocgen and hands both to Main:
//
//	func main() {
//		aoc.Main(aoc.Project{Year: 2022, Version: "1.0.0"}, days.Days(), days.Inputs())
//	}
package aoc

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/zjrosen/aoc/cmd"
	"github.com/zjrosen/aoc/day"
)

// Project describes the solutions binary. Unset fields are filled from the
// config file; Title defaults to "AoC <year>".
type Project = cmd.Project

// Main runs the command line and exits with status 1 on any failure.
func Main(p Project, days []day.Solver, inputs map[int]string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := Run(ctx, p, days, inputs, os.Args[1:])
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// Run executes args against the given days. Errors have already been
// written to stderr when Run returns.
func Run(ctx context.Context, p Project, days []day.Solver, inputs map[int]string, args []string) error {
	reg, err := day.NewRegistry(days...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}

	root := cmd.NewRootCmd(p, reg, inputs)
	root.SetArgs(args)
	return cmd.Execute(ctx, root)
}
