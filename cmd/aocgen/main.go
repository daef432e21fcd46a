// Command aocgen writes days_gen.go and inputs_gen.go for a package of day
// solutions. It is meant to run from go generate:
//
//	//go:generate go run github.com/zjrosen/aoc/cmd/aocgen
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zjrosen/aoc/internal/generator"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opts    generator.Options
		verbose bool
		logger  *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "aocgen",
		Short: "Generate the day registry and embedded inputs",
		Long: `Scan a days directory and write the registration code.

Subdirectories named day_<N> containing day.go must declare func New().
Files named day_<N>.go in the days directory must declare func Day<N>().
Inputs are read from <days-dir>/input/day_<N>.txt and embedded.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			config := zap.NewDevelopmentConfig()
			config.DisableStacktrace = true
			config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(*cobra.Command, []string) error {
			logger.Debug("scanning", zap.String("days_dir", opts.DaysDir), zap.String("input_dir", opts.InputDir))
			m, err := generator.Generate(opts)
			if err != nil {
				logger.Error("generation failed", zap.Error(err))
				return err
			}
			for _, d := range m.Days {
				logger.Debug("day", zap.Int("number", d.Number), zap.String("constructor", d.Func))
			}
			logger.Info("generated registry",
				zap.String("package", m.Package),
				zap.Int("days", len(m.Days)),
				zap.Int("inputs", len(m.Inputs)))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DaysDir, "days-dir", ".", "directory containing day_<N> packages and files")
	cmd.Flags().StringVar(&opts.InputDir, "input-dir", "", "directory of day_<N>.txt inputs (default <days-dir>/input)")
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", "", "directory for generated files (default <days-dir>)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package name of generated files (default detected)")
	cmd.Flags().StringVar(&opts.ImportPath, "import-path", "", "import path of <days-dir> (default from go.mod)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug output")
	return cmd
}
