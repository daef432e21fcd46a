// Package runner executes registered days and parts and evaluates their
// answers against the expected values.
//
// Execution is sequential: days ascend, part 1 runs before part 2. A failing
// part or a day without input never stops a batch run; it is reported through
// the Reporter and counted in the Summary.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zjrosen/aoc/aocerr"
	"github.com/zjrosen/aoc/day"
	"github.com/zjrosen/aoc/internal/input"
	"github.com/zjrosen/aoc/internal/log"
)

// Request errors
var (
	ErrPartWithoutDay  = errors.New("part requires a day")
	ErrInputWithoutDay = errors.New("input file requires a day")
)

// Request is the parsed intent of a run invocation. Zero Day means every
// registered day, zero Part means both parts.
type Request struct {
	Day       int
	Part      day.Part
	InputFile string
}

// Validate rejects a part or an input file without a day and out of range parts.
func (r Request) Validate() error {
	if r.Day == 0 {
		if r.Part != 0 {
			return ErrPartWithoutDay
		}
		if r.InputFile != "" {
			return ErrInputWithoutDay
		}
	}
	if r.Part != 0 && !r.Part.Valid() {
		return fmt.Errorf("%w: %d", day.ErrInvalidPart, int(r.Part))
	}
	return nil
}

// PartResult is the outcome of one executed part.
type PartResult struct {
	Part     day.Part
	Status   Status
	Value    string
	Expected *string
	Elapsed  time.Duration
}

// DayResult groups the parts executed for a day. Err is set when the day
// could not run at all, for example because it has no input.
type DayResult struct {
	Day    int
	Source input.Source
	Parts  []PartResult
	Err    error
}

// Summary counts outcomes of a run.
type Summary struct {
	Succeeded int
	Failed    int
	Unknown   int
	Skipped   int
}

// OK reports whether nothing failed.
func (s Summary) OK() bool {
	return s.Failed == 0
}

func (s *Summary) add(res DayResult) {
	if res.Err != nil {
		s.Skipped++
		return
	}
	for _, p := range res.Parts {
		switch p.Status {
		case StatusSuccess:
			s.Succeeded++
		case StatusFailure:
			s.Failed++
		default:
			s.Unknown++
		}
	}
}

// Reporter receives each day's result as soon as it is available.
type Reporter interface {
	Report(res DayResult) error
}

// InputSource resolves puzzle input; *input.Provider implements it.
type InputSource interface {
	Resolve(ctx context.Context, day int, override string) (string, input.Source, error)
}

// Runner dispatches requests to the registered solvers.
type Runner struct {
	days   day.Provider
	inputs InputSource
}

// New creates a Runner.
func New(days day.Provider, inputs InputSource) *Runner {
	return &Runner{days: days, inputs: inputs}
}

// Run executes req and reports every day result to rep.
//
// For a batch run (no day) days without input are reported and skipped. For a
// single day a missing solver, a missing input or an unreadable input file is
// returned as an error before anything is reported.
func (r *Runner) Run(ctx context.Context, req Request, rep Reporter) (Summary, error) {
	var sum Summary
	if err := req.Validate(); err != nil {
		return sum, err
	}

	if req.Day == 0 {
		for _, s := range r.days.List() {
			if err := ctx.Err(); err != nil {
				return sum, err
			}
			res := r.runDay(ctx, s, 0, "")
			sum.add(res)
			if err := rep.Report(res); err != nil {
				return sum, err
			}
		}
		return sum, nil
	}

	s, err := r.days.Get(req.Day)
	if err != nil {
		log.Warn(log.CatRun, "Day not registered", "day", req.Day)
		return sum, err
	}
	res := r.runDay(ctx, s, req.Part, req.InputFile)
	if res.Err != nil {
		return sum, res.Err
	}
	sum.add(res)
	return sum, rep.Report(res)
}

func (r *Runner) runDay(ctx context.Context, s day.Solver, part day.Part, override string) DayResult {
	res := DayResult{Day: s.Day()}

	text, src, err := r.inputs.Resolve(ctx, s.Day(), override)
	if err != nil {
		res.Err = err
		return res
	}
	res.Source = src

	parts := []day.Part{day.Part1, day.Part2}
	if part != 0 {
		parts = []day.Part{part}
	}
	expected := s.Expected()
	for _, p := range parts {
		res.Parts = append(res.Parts, runPart(s, p, text, expected))
	}
	return res
}

func runPart(s day.Solver, p day.Part, text string, expected day.Expected) PartResult {
	start := time.Now()
	value, err := solve(s, p, text)
	elapsed := time.Since(start)

	want, ok := expected.For(p)
	status, shown := Check(want, ok, value, err)
	log.Debug(log.CatRun, "Part finished", "day", s.Day(), "part", int(p), "status", status, "elapsed", elapsed)

	pr := PartResult{Part: p, Status: status, Value: shown, Elapsed: elapsed}
	if ok {
		pr.Expected = &want
	}
	return pr
}

// solve turns a solver panic into an error so one day cannot abort a batch.
func solve(s day.Solver, p day.Part, text string) (value string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error(log.CatRun, "Solver panicked", "day", s.Day(), "part", int(p), "panic", rec)
			value, err = "", aocerr.Newf("panic: %v", rec)
		}
	}()
	return day.Solve(s, p, text)
}
