package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// FileSink writes 8-bit grayscale PNG files to the local filesystem.
type FileSink struct{}

// EnsureDir creates dir and any missing parents. It is a no-op when dir
// already exists.
func (FileSink) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// Save encodes img as PNG at path.
//
// The image is encoded into a temporary file in the destination directory
// and renamed into place, so a failed save never leaves a truncated file at
// path.
func (FileSink) Save(path string, img *image.Gray) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err = imaging.Encode(tmp, img, imaging.PNG); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}

// Remove deletes the file at path. A missing file is not an error.
func (FileSink) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
