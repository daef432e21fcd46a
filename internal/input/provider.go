// Package input resolves the puzzle input text for a day.
//
// Sources are tried in order: an explicit file chosen by the caller, the
// inputs embedded at build time, and finally the on-disk cache at
// <cache-dir>/aoc/<year>/<day>/input.txt. File reads are memoized so a batch
// run touches each file once.
package input

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/zjrosen/aoc/aocerr"
	"github.com/zjrosen/aoc/internal/cachemanager"
	"github.com/zjrosen/aoc/internal/log"
	"github.com/zjrosen/aoc/internal/paths"
)

// ErrNoInput is returned when no source has input for the requested day.
var ErrNoInput = errors.New("no input")

// Source names the place an input was read from.
type Source string

const (
	SourceFile     Source = "file"
	SourceEmbedded Source = "embedded"
	SourceCache    Source = "cache"
)

// Provider maps day numbers to input text. It is read-only after construction.
type Provider struct {
	embedded  map[int]string
	cacheBase string
	year      int
	files     *cachemanager.ReadThroughCache[string, string, string]
}

// Option configures a Provider.
type Option func(*Provider)

// WithCacheDir enables the on-disk cache lookup under base for the given year.
// It is ignored when base is empty or year is not positive.
func WithCacheDir(base string, year int) Option {
	return func(p *Provider) {
		p.cacheBase = base
		p.year = year
	}
}

// WithFileCache replaces the cache used to memoize file reads.
func WithFileCache(cache cachemanager.CacheManager[string, string]) Option {
	return func(p *Provider) {
		p.files = cachemanager.NewReadThroughCache[string, string, string](cache, readFile, false)
	}
}

// NewProvider returns a Provider over the embedded inputs.
func NewProvider(embedded map[int]string, opts ...Option) *Provider {
	p := &Provider{embedded: embedded}
	for _, opt := range opts {
		opt(p)
	}
	if p.files == nil {
		cache := cachemanager.NewInMemoryCacheManager[string, string]("input-files",
			cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
		p.files = cachemanager.NewReadThroughCache[string, string, string](cache, readFile, false)
	}
	return p
}

// Get returns the input for day. A non-empty override path takes priority and
// any failure to read it is returned as an aocerr I/O error.
func (p *Provider) Get(ctx context.Context, day int, override string) (string, error) {
	text, _, err := p.Resolve(ctx, day, override)
	return text, err
}

// Resolve is Get that also reports which source supplied the input.
func (p *Provider) Resolve(ctx context.Context, day int, override string) (string, Source, error) {
	if override != "" {
		text, err := p.read(ctx, override)
		if err != nil {
			log.ErrorErr(log.CatInput, "Failed to read input file", err, "day", day, "path", override)
			return "", "", fmt.Errorf("reading input file %s: %w", override, aocerr.IO(err))
		}
		log.Debug(log.CatInput, "Using input file", "day", day, "path", override)
		return text, SourceFile, nil
	}

	if text, ok := p.embedded[day]; ok {
		log.Debug(log.CatInput, "Using embedded input", "day", day)
		return text, SourceEmbedded, nil
	}

	if p.cacheBase != "" && p.year > 0 {
		path := paths.InputCachePath(p.cacheBase, p.year, day)
		text, err := p.read(ctx, path)
		switch {
		case err == nil:
			log.Debug(log.CatInput, "Using cached input", "day", day, "path", path)
			return text, SourceCache, nil
		case !errors.Is(err, fs.ErrNotExist):
			log.ErrorErr(log.CatInput, "Failed to read cached input", err, "day", day, "path", path)
			return "", "", fmt.Errorf("reading cached input %s: %w", path, aocerr.IO(err))
		}
	}

	log.Warn(log.CatInput, "No input available", "day", day)
	return "", "", fmt.Errorf("%w for day %d", ErrNoInput, day)
}

// Has reports whether an embedded or cached input exists for day.
func (p *Provider) Has(day int) bool {
	if _, ok := p.embedded[day]; ok {
		return true
	}
	if p.cacheBase == "" || p.year <= 0 {
		return false
	}
	info, err := os.Stat(paths.InputCachePath(p.cacheBase, p.year, day))
	return err == nil && info.Mode().IsRegular()
}

func (p *Provider) read(ctx context.Context, path string) (string, error) {
	return p.files.Get(ctx, path, path, cachemanager.DefaultExpiration)
}

func readFile(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is user-selected input file
	if err != nil {
		return "", err
	}
	return string(data), nil
}
