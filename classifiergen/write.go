package classifiergen

import (
	"os"
	"path/filepath"

	"github.com/pytrove/trove-classifiers/errors"
)

// WriteFile atomically replaces path with data.
//
// The artifact is written to a temporary file in the destination directory
// and renamed into place, so a failed run never leaves a partially written
// file and the prior artifact survives any failure. All failures wrap
// errors.ErrWriteFailed.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(errors.ErrWriteFailed, "creating output directory %s: %v", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(errors.ErrWriteFailed, "creating temp file in %s: %v", dir, err)
	}
	tmpName := tmp.Name()

	// The temp file only survives on the rename path below.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(errors.ErrWriteFailed, "writing %s: %v", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrapf(errors.ErrWriteFailed, "syncing %s: %v", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(errors.ErrWriteFailed, "closing %s: %v", tmpName, err)
	}

	// CreateTemp opens 0600; the artifact is a source file.
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrapf(errors.ErrWriteFailed, "setting mode on %s: %v", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(errors.ErrWriteFailed, "renaming %s to %s: %v", tmpName, path, err)
	}

	return nil
}
