// Package cmd implements the command line of a puzzle solution binary.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/aoc/day"
	"github.com/zjrosen/aoc/internal/config"
	"github.com/zjrosen/aoc/internal/input"
	"github.com/zjrosen/aoc/internal/log"
	"github.com/zjrosen/aoc/internal/paths"
)

// ErrRunFailed is returned when a part failed or a requested run could not
// start. The details have already been written to the command's output.
var ErrRunFailed = errors.New("run failed")

// Project describes the solution binary.
type Project struct {
	Year    int
	Version string
	Title   string // defaults to "AoC <year>"
	Author  string
	URL     string
}

// withConfig fills unset fields from cfg.
func (p Project) withConfig(cfg config.Config) Project {
	if p.Year == 0 {
		p.Year = cfg.Year
	}
	if p.Title == "" {
		p.Title = cfg.Title
	}
	if p.Author == "" {
		p.Author = cfg.Author
	}
	if p.URL == "" {
		p.URL = cfg.URL
	}
	if p.Title == "" && p.Year > 0 {
		p.Title = "AoC " + strconv.Itoa(p.Year)
	}
	return p
}

type app struct {
	project Project
	days    day.Provider
	inputs  map[int]string

	cfgFile string
	debug   bool
	verbose int

	cfg      config.Config
	provider *input.Provider
	closeLog func()
}

// NewRootCmd builds the command tree for a project.
func NewRootCmd(p Project, days day.Provider, inputs map[int]string) *cobra.Command {
	a := &app{project: p, days: days, inputs: inputs}

	about := "Advent of Code solutions"
	if p.Year > 0 {
		about = fmt.Sprintf("Solutions for Advent of Code %d", p.Year)
	}

	root := &cobra.Command{
		Use:               "aoc",
		Short:             about,
		Version:           p.Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: .aoc/config.yaml or ~/.config/aoc/config.yaml)")
	root.PersistentFlags().CountVarP(&a.verbose, "verbose", "v",
		"increase log verbosity (repeatable)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false,
		"write a debug log (path from AOC_LOG, default debug.log)")

	root.AddCommand(
		newVersionCmd(a),
		newListCmd(a),
		newRunCmd(a),
		newConfigCmd(a),
	)
	return root
}

// Execute runs root and reports errors that were not already shown.
func Execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrRunFailed) {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

// initLogging enables the debug log when requested by flag or AOC_DEBUG.
func (a *app) initLogging() error {
	if !a.debug && os.Getenv("AOC_DEBUG") == "" {
		return nil
	}
	path := os.Getenv("AOC_LOG")
	if path == "" {
		path = "debug.log"
	}
	cleanup, err := log.InitWithTeaLog(path, "aoc")
	if err != nil {
		return fmt.Errorf("initializing debug log: %w", err)
	}
	a.closeLog = cleanup
	log.SetMinLevel(log.LevelForVerbosity(a.verbose))
	log.Info(log.CatConfig, "Debug logging enabled", "path", path, "verbosity", a.verbose)
	return nil
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.initLogging(); err != nil {
		return err
	}

	cfg, err := config.Load(config.NewViper(), a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.project = a.project.withConfig(cfg)

	var opts []input.Option
	if a.project.Year > 0 {
		base, err := paths.ResolveCacheBase(cfg.CacheDir)
		if err != nil {
			log.Warn(log.CatInput, "Input cache disabled", "error", err)
		} else {
			opts = append(opts, input.WithCacheDir(base, a.project.Year))
		}
	}
	a.provider = input.NewProvider(a.inputs, opts...)

	log.Debug(log.CatConfig, "Command ready", "cmd", cmd.Name(), "year", a.project.Year)
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}
