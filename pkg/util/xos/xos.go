// Package xos provides filesystem helpers on top of afero.
package xos

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteFileAtomic writes data to path by writing a temporary file in the
// target directory first and renaming it into place. The parent directory
// is created when missing.
func WriteFileAtomic(fsys afero.Fs, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := afero.TempFile(fsys, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func(err error) error {
		_ = fsys.Remove(tmpName)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		return cleanup(err)
	}
	if err := fsys.Chmod(tmpName, perm); err != nil {
		return cleanup(err)
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		// Some backends refuse to rename over an existing file.
		if removeErr := fsys.Remove(path); removeErr != nil {
			return cleanup(err)
		}
		if err := fsys.Rename(tmpName, path); err != nil {
			return cleanup(err)
		}
	}
	return nil
}

// Exists reports whether path exists on the given filesystem.
func Exists(fsys afero.Fs, path string) bool {
	ok, err := afero.Exists(fsys, path)
	return err == nil && ok
}
