package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes content to path, creating parent directories. The file
// is written to a temporary sibling first and renamed into place, so path
// holds either its old content or the complete new content.
func WriteFile(path string, content []byte) error {
	tmp, err := stage(path, content)
	if err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

// stage writes content to a temporary file next to path and returns its
// name.
func stage(path string, content []byte) (string, error) {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}

	_, werr := f.Write(content)
	cerr := f.Close()

	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}

	if err := os.Chmod(f.Name(), filePerm); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}

	return f.Name(), nil
}

// WriteFiles writes every file to its path. All contents are staged
// before the first rename; a staging failure leaves every path untouched.
func WriteFiles(paths []string, files []*GeneratedFile) error {
	if len(paths) != len(files) {
		return fmt.Errorf("got %d paths for %d files", len(paths), len(files))
	}

	staged := make([]string, 0, len(files))

	cleanup := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	for i, f := range files {
		tmp, err := stage(paths[i], f.Content)
		if err != nil {
			cleanup()
			return err
		}

		staged = append(staged, tmp)
	}

	for i, tmp := range staged {
		if err := os.Rename(tmp, paths[i]); err != nil {
			staged = staged[i:]
			cleanup()

			return fmt.Errorf("writing file %s: %w", paths[i], err)
		}
	}

	return nil
}
