package presentation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/aoc/day"
	"github.com/zjrosen/aoc/internal/config"
	"github.com/zjrosen/aoc/internal/runner"
)

func plainFormatter(buf *bytes.Buffer, format string) *Formatter {
	styles := NewStyles(NewRenderer(buf, config.ColorNever), config.Defaults().Theme)
	return NewFormatter(buf, format, styles)
}

func strp(s string) *string { return &s }

func bothParts() runner.DayResult {
	return runner.DayResult{
		Day:    5,
		Source: "embedded",
		Parts: []runner.PartResult{
			{Part: day.Part1, Status: runner.StatusSuccess, Value: "1234", Expected: strp("1234"), Elapsed: 1500 * time.Microsecond},
			{Part: day.Part2, Status: runner.StatusUnknown, Value: "5678"},
		},
	}
}

func TestFormatter_Report_TextBothParts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, plainFormatter(&buf, "").Report(bothParts()))

	require.Equal(t, "Day 05, Part 1: ✓ 1234\n        Part 2: ? 5678\n", buf.String())
}

func TestFormatter_Report_TextSinglePart(t *testing.T) {
	var buf bytes.Buffer
	res := runner.DayResult{
		Day:   12,
		Parts: []runner.PartResult{{Part: day.Part2, Status: runner.StatusFailure, Value: "not implemented"}},
	}
	require.NoError(t, plainFormatter(&buf, config.FormatText).Report(res))

	require.Equal(t, "Day 12, Part 2: ✗ not implemented\n", buf.String())
}

func TestFormatter_Report_TextNoInput(t *testing.T) {
	var buf bytes.Buffer
	res := runner.DayResult{Day: 3, Err: errors.New("no input for day 3")}
	require.NoError(t, plainFormatter(&buf, "").Report(res))

	require.Equal(t, "Day 03: no input for day 3\n", buf.String())
}

func TestFormatter_Report_ColoredGlyphs(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(NewRenderer(&buf, config.ColorAlways), config.Defaults().Theme)
	require.NoError(t, NewFormatter(&buf, "", styles).Report(bothParts()))

	require.NotEqual(t, ansi.Strip(buf.String()), buf.String(), "expected ANSI styling")
	require.Equal(t, "Day 05, Part 1: ✓ 1234\n        Part 2: ? 5678\n", ansi.Strip(buf.String()))
}

func TestFormatter_Report_JSONLines(t *testing.T) {
	var buf bytes.Buffer
	f := plainFormatter(&buf, config.FormatJSON)
	require.NoError(t, f.Report(bothParts()))
	require.NoError(t, f.Report(runner.DayResult{Day: 6, Err: errors.New("no input for day 6")}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first DayResultDTO
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, 5, first.Day)
	require.Equal(t, "embedded", first.Source)
	require.Len(t, first.Parts, 2)
	require.Equal(t, "success", first.Parts[0].Status)
	require.Equal(t, "1234", *first.Parts[0].Expected)
	require.InDelta(t, 1.5, first.Parts[0].ElapsedMS, 1e-9)
	require.Nil(t, first.Parts[1].Expected)

	var second DayResultDTO
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Equal(t, "no input for day 6", second.Error)
	require.Empty(t, second.Parts)
}

func TestFormatter_Report_YAMLDocuments(t *testing.T) {
	var buf bytes.Buffer
	f := plainFormatter(&buf, config.FormatYAML)
	require.NoError(t, f.Report(bothParts()))
	require.NoError(t, f.Report(runner.DayResult{Day: 6, Err: errors.New("no input for day 6")}))

	dec := yaml.NewDecoder(strings.NewReader(buf.String()))
	var docs []DayResultDTO
	for {
		var d DayResultDTO
		if err := dec.Decode(&d); err != nil {
			break
		}
		docs = append(docs, d)
	}
	require.Len(t, docs, 2)
	require.Equal(t, 5, docs[0].Day)
	require.Equal(t, 6, docs[1].Day)
}

func TestFormatter_FormatDays(t *testing.T) {
	solvers := []day.Solver{
		day.New(1, nil, nil, day.WithExpected(day.KnownPart1("x"))),
		day.New(4, nil, nil),
	}
	dtos := FromSolvers(solvers, func(d int) bool { return d == 1 })
	require.Equal(t, []DayDTO{
		{Day: 1, HasInput: true, ExpectedPart1: true},
		{Day: 4},
	}, dtos)

	var text bytes.Buffer
	require.NoError(t, plainFormatter(&text, "").FormatDays(dtos))
	require.Equal(t, "1\n4\n", text.String())

	var js bytes.Buffer
	require.NoError(t, plainFormatter(&js, config.FormatJSON).FormatDays(dtos))
	var decoded []DayDTO
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	require.Equal(t, dtos, decoded)

	var ym bytes.Buffer
	require.NoError(t, plainFormatter(&ym, config.FormatYAML).FormatDays(dtos))
	var fromYAML []DayDTO
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &fromYAML))
	require.Equal(t, dtos, fromYAML)
}
