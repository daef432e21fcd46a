// Package paths provides path resolution utilities.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNoCacheDir is returned when no cache base directory can be determined.
var ErrNoCacheDir = errors.New("no cache directory available")

// InputFileName is the name of the cached puzzle input inside a day directory.
const InputFileName = "input.txt"

// ResolveCacheBase resolves the base cache directory from user input.
//
// Input normalization:
//   - "" -> os.UserCacheDir() (e.g. ~/.cache on linux)
//   - "~/x" -> "$HOME/x"
//   - anything else is cleaned and used as is
func ResolveCacheBase(base string) (string, error) {
	if base == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoCacheDir, err)
		}
		return dir, nil
	}

	if rest, ok := strings.CutPrefix(base, "~"); ok && (rest == "" || rest[0] == '/' || rest[0] == filepath.Separator) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoCacheDir, err)
		}
		base = filepath.Join(home, rest)
	}

	return filepath.Clean(base), nil
}

// DayCacheDir returns <base>/aoc/<year>/<day>.
func DayCacheDir(base string, year, day int) string {
	return filepath.Join(base, "aoc", strconv.Itoa(year), strconv.Itoa(day))
}

// InputCachePath returns <base>/aoc/<year>/<day>/input.txt.
func InputCachePath(base string, year, day int) string {
	return filepath.Join(DayCacheDir(base, year, day), InputFileName)
}
