package presentation

import (
	"github.com/zjrosen/aoc/day"
	"github.com/zjrosen/aoc/internal/runner"
)

// DayDTO is the listing view of a registered day.
type DayDTO struct {
	Day           int  `json:"day" yaml:"day"`
	HasInput      bool `json:"has_input" yaml:"has_input"`
	ExpectedPart1 bool `json:"expected_part1" yaml:"expected_part1"`
	ExpectedPart2 bool `json:"expected_part2" yaml:"expected_part2"`
}

// FromSolvers converts registered solvers to listing DTOs. hasInput reports
// whether input is available for a day.
func FromSolvers(solvers []day.Solver, hasInput func(int) bool) []DayDTO {
	dtos := make([]DayDTO, 0, len(solvers))
	for _, s := range solvers {
		e := s.Expected()
		dtos = append(dtos, DayDTO{
			Day:           s.Day(),
			HasInput:      hasInput(s.Day()),
			ExpectedPart1: e.Part1 != nil,
			ExpectedPart2: e.Part2 != nil,
		})
	}
	return dtos
}

// PartDTO is the serialized outcome of one part.
type PartDTO struct {
	Part      int     `json:"part" yaml:"part"`
	Status    string  `json:"status" yaml:"status"`
	Value     string  `json:"value" yaml:"value"`
	Expected  *string `json:"expected,omitempty" yaml:"expected,omitempty"`
	ElapsedMS float64 `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// DayResultDTO is the serialized outcome of one day.
type DayResultDTO struct {
	Day    int       `json:"day" yaml:"day"`
	Source string    `json:"source,omitempty" yaml:"source,omitempty"`
	Error  string    `json:"error,omitempty" yaml:"error,omitempty"`
	Parts  []PartDTO `json:"parts,omitempty" yaml:"parts,omitempty"`
}

// FromDayResult converts a runner result to its DTO.
func FromDayResult(res runner.DayResult) DayResultDTO {
	dto := DayResultDTO{Day: res.Day, Source: string(res.Source)}
	if res.Err != nil {
		dto.Error = res.Err.Error()
	}
	for _, p := range res.Parts {
		dto.Parts = append(dto.Parts, PartDTO{
			Part:      int(p.Part),
			Status:    p.Status.String(),
			Value:     p.Value,
			Expected:  p.Expected,
			ElapsedMS: float64(p.Elapsed.Microseconds()) / 1000,
		})
	}
	return dto
}
