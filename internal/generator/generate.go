package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zjrosen/aoc/internal/log"
)

// Generate scans opts and writes DaysFile and InputsFile into the output
// directory. Both files are rendered and staged before either is replaced;
// if the second replacement fails the first is restored.
func Generate(opts Options) (*Manifest, error) {
	opts = opts.withDefaults()

	m, err := Scan(opts)
	if err != nil {
		log.ErrorErr(log.CatGen, "Scan failed", err, "dir", opts.DaysDir)
		return nil, err
	}

	days, err := RenderDays(m)
	if err != nil {
		return nil, err
	}
	inputs, err := RenderInputs(m)
	if err != nil {
		return nil, err
	}

	err = writeAll([]output{
		{path: filepath.Join(opts.OutDir, DaysFile), data: days},
		{path: filepath.Join(opts.OutDir, InputsFile), data: inputs},
	})
	if err != nil {
		log.ErrorErr(log.CatGen, "Write failed", err, "out", opts.OutDir)
		return nil, err
	}

	log.Info(log.CatGen, "Generated registry", "out", opts.OutDir)
	return m, nil
}

type output struct {
	path string
	data []byte

	temp    string
	prev    []byte // content replaced by the rename, nil if the file was new
	existed bool
}

// writeAll stages every output in a temp file, then renames them into place
// in order. A failed rename rolls back the outputs already replaced.
func writeAll(outs []output) error {
	defer func() {
		for _, o := range outs {
			if o.temp != "" {
				_ = os.Remove(o.temp)
			}
		}
	}()

	for i := range outs {
		temp, err := stage(outs[i].path, outs[i].data)
		if err != nil {
			return err
		}
		outs[i].temp = temp

		info, err := os.Stat(outs[i].path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return fmt.Errorf("checking %s: %w", outs[i].path, err)
		case info.Mode().IsRegular():
			prev, err := os.ReadFile(outs[i].path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", outs[i].path, err)
			}
			outs[i].prev, outs[i].existed = prev, true
		}
	}

	for i := range outs {
		if err := os.Rename(outs[i].temp, outs[i].path); err != nil {
			rollback(outs[:i])
			return fmt.Errorf("renaming temp file: %w", err)
		}
		outs[i].temp = ""
	}
	return nil
}

// rollback restores outputs that were already renamed into place.
func rollback(done []output) {
	for _, o := range done {
		var err error
		if o.existed {
			err = writeAtomic(o.path, o.prev)
		} else {
			err = os.Remove(o.path)
		}
		if err != nil {
			log.ErrorErr(log.CatGen, "Rollback failed", err, "path", o.path)
		}
	}
}

// writeAtomic writes data to a temp file next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	temp, err := stage(path, data)
	if err != nil {
		return err
	}
	if err := os.Rename(temp, path); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// stage writes data to a temp file next to path and returns the temp path.
func stage(path string, data []byte) (string, error) {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil { //nolint:gosec // generated source is world-readable
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("setting permissions: %w", err)
	}
	return tempPath, nil
}
