package glitch

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// SafeWrite encodes img as a PNG into a temp file next to fname, then
// renames it into place. The directory of fname must already exist.
func SafeWrite(img image.Image, fname string) error {
	if ext := filepath.Ext(fname); ext != ".png" {
		return fmt.Errorf("unsupported file format %s", ext)
	}
	// Note: the temp file must be on the same drive for the rename
	tmpfile, err := os.CreateTemp(filepath.Dir(fname), "glitch.*.png")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", fname, err)
	}
	if err := writePNG(tmpfile, img); err != nil {
		os.Remove(tmpfile.Name())
		return fmt.Errorf("encode %s: %w", fname, err)
	}
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	return os.Chmod(fname, 0664)
}

func writePNG(f *os.File, img image.Image) error {
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
