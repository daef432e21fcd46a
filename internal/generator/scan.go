// Package generator discovers day packages and cached input files and emits
// the Go source that registers them.
//
// A days directory contains one subdirectory per day named day_<N> whose
// day.go declares func New() returning the solver, or flat files day_<N>.go in
// the output package declaring func Day<N>(). Inputs are files day_<N>.txt in
// an input directory below the output directory so they can be embedded.
package generator

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/zjrosen/aoc/internal/log"
)

const (
	// Prefix marks day packages, day files and input files.
	Prefix = "day_"
	// DeclFile must exist in a day subdirectory for it to be registered.
	DeclFile = "day.go"
	// Constructor is the function every day package declares.
	Constructor = "New"

	DaysFile   = "days_gen.go"
	InputsFile = "inputs_gen.go"
)

// Scan errors
var (
	ErrInvalidDayNumber = errors.New("invalid day number")
	ErrMissingCtor      = errors.New("missing constructor")
	ErrInputOutsideOut  = errors.New("input directory must be inside the output directory")
	ErrNoModule         = errors.New("no go.mod found")
)

// Options configures a generation run. Only DaysDir is required.
type Options struct {
	DaysDir    string // scanned for day_<N>/ and day_<N>.go
	InputDir   string // default: <DaysDir>/input
	OutDir     string // default: DaysDir
	Package    string // default: package of existing files in OutDir, else its base name
	ImportPath string // import path of DaysDir; default derived from go.mod
}

// DayModule is one discovered day.
type DayModule struct {
	Name   string // file or directory name without extension, e.g. day_05
	Number int
	// Alias and ImportPath are set for day subpackages.
	Alias      string
	ImportPath string
	// Func is the constructor call target, e.g. "day_05.New" or "Day05".
	Func string
}

// InputFile is one discovered input.
type InputFile struct {
	Name    string // e.g. day_5.txt
	Day     int
	Embed   string // slash path relative to OutDir
	VarName string
}

// Manifest is the result of a scan.
type Manifest struct {
	Package string
	Days    []DayModule
	Inputs  []InputFile
}

func (o Options) withDefaults() Options {
	if o.DaysDir == "" {
		o.DaysDir = "."
	}
	if o.OutDir == "" {
		o.OutDir = o.DaysDir
	}
	if o.InputDir == "" {
		o.InputDir = filepath.Join(o.DaysDir, "input")
	}
	return o
}

// Scan enumerates the days and input directories.
func Scan(opts Options) (*Manifest, error) {
	opts = opts.withDefaults()

	pkg := opts.Package
	if pkg == "" {
		var err error
		if pkg, err = detectPackage(opts.OutDir); err != nil {
			return nil, err
		}
	}

	days, err := scanDays(opts)
	if err != nil {
		return nil, err
	}
	inputs, err := scanInputs(opts.InputDir, opts.OutDir)
	if err != nil {
		return nil, err
	}

	log.Info(log.CatGen, "Scan complete", "days", len(days), "inputs", len(inputs), "package", pkg)
	return &Manifest{Package: pkg, Days: days, Inputs: inputs}, nil
}

// DayNumber parses the numeric suffix of a day_<N> name. The suffix must be
// ASCII digits only since it becomes part of generated identifiers.
func DayNumber(name string) (int, error) {
	suffix, ok := strings.CutPrefix(name, Prefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q lacks prefix %s", ErrInvalidDayNumber, name, Prefix)
	}
	if suffix == "" || strings.TrimLeft(suffix, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDayNumber, name)
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDayNumber, name)
	}
	return n, nil
}

func scanDays(opts Options) ([]DayModule, error) {
	entries, err := os.ReadDir(opts.DaysDir)
	if err != nil {
		return nil, fmt.Errorf("reading days directory: %w", err)
	}

	var importBase string
	var days []DayModule
	for _, ent := range entries {
		name := ent.Name()
		if !strings.HasPrefix(name, Prefix) {
			continue
		}

		switch {
		case ent.IsDir():
			decl := filepath.Join(opts.DaysDir, name, DeclFile)
			if info, err := os.Stat(decl); err != nil || !info.Mode().IsRegular() {
				log.Debug(log.CatGen, "Skipping directory without declaration file", "dir", name)
				continue
			}
			n, err := DayNumber(name)
			if err != nil {
				return nil, err
			}
			if err := requireFunc(decl, Constructor); err != nil {
				return nil, err
			}
			if importBase == "" {
				if importBase, err = resolveImportPath(opts); err != nil {
					return nil, err
				}
			}
			days = append(days, DayModule{
				Name:       name,
				Number:     n,
				Alias:      name,
				ImportPath: path.Join(importBase, name),
				Func:       name + "." + Constructor,
			})

		case isDayFile(name):
			stem := strings.TrimSuffix(name, ".go")
			n, err := DayNumber(stem)
			if err != nil {
				return nil, err
			}
			ctor := "Day" + strings.TrimPrefix(stem, Prefix)
			if err := requireFunc(filepath.Join(opts.DaysDir, name), ctor); err != nil {
				return nil, err
			}
			days = append(days, DayModule{Name: stem, Number: n, Func: ctor})
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Name < days[j].Name })
	return days, nil
}

func isDayFile(name string) bool {
	return strings.HasSuffix(name, ".go") &&
		!strings.HasSuffix(name, "_test.go") &&
		!strings.HasSuffix(name, "_gen.go")
}

func scanInputs(inputDir, outDir string) ([]InputFile, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	rel, err := filepath.Rel(outDir, inputDir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: %s", ErrInputOutsideOut, inputDir)
	}

	var inputs []InputFile
	for _, ent := range entries {
		name := ent.Name()
		if !ent.Type().IsRegular() || filepath.Ext(name) != ".txt" || !strings.HasPrefix(name, Prefix) {
			continue
		}
		stem := strings.TrimSuffix(name, ".txt")
		n, err := DayNumber(stem)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, InputFile{
			Name:    name,
			Day:     n,
			Embed:   path.Join(filepath.ToSlash(rel), name),
			VarName: "input_" + strings.TrimPrefix(stem, Prefix),
		})
	}

	// Equal day numbers keep name order so the last one wins deterministically.
	sort.Slice(inputs, func(i, j int) bool {
		if inputs[i].Day != inputs[j].Day {
			return inputs[i].Day < inputs[j].Day
		}
		return inputs[i].Name < inputs[j].Name
	})
	return inputs, nil
}

// requireFunc parses file and checks it declares a top-level function named fn.
func requireFunc(file, fn string) error {
	f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.SkipObjectResolution)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if ok && fd.Recv == nil && fd.Name.Name == fn {
			return nil
		}
	}
	return fmt.Errorf("%w: %s does not declare func %s", ErrMissingCtor, file, fn)
}

// detectPackage reads the package clause of the first hand-written Go file in dir.
func detectPackage(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading output directory: %w", err)
	}
	for _, ent := range entries {
		if ent.IsDir() || !isDayFile(ent.Name()) {
			continue
		}
		f, err := parser.ParseFile(token.NewFileSet(), filepath.Join(dir, ent.Name()), nil, parser.PackageClauseOnly)
		if err != nil {
			return "", fmt.Errorf("parsing %s: %w", ent.Name(), err)
		}
		return f.Name.Name, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(strings.ToLower(filepath.Base(abs)), "-", ""), nil
}

// resolveImportPath returns the import path of opts.DaysDir, reading the
// module path from the nearest go.mod when not given explicitly.
func resolveImportPath(opts Options) (string, error) {
	if opts.ImportPath != "" {
		return opts.ImportPath, nil
	}

	dir, err := filepath.Abs(opts.DaysDir)
	if err != nil {
		return "", err
	}
	for root := dir; ; {
		data, err := os.ReadFile(filepath.Join(root, "go.mod"))
		if err == nil {
			mod := modfile.ModulePath(data)
			if mod == "" {
				return "", fmt.Errorf("%w: %s has no module directive", ErrNoModule, root)
			}
			rel, err := filepath.Rel(root, dir)
			if err != nil {
				return "", err
			}
			return path.Join(mod, filepath.ToSlash(rel)), nil
		}
		parent := filepath.Dir(root)
		if parent == root {
			return "", fmt.Errorf("%w above %s", ErrNoModule, dir)
		}
		root = parent
	}
}
