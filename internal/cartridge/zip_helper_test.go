package cartridge

import (
	"archive/zip"
	"os"
)

// writeZip creates a single-entry zip archive at path, used to exercise
// Insert's zip-contained ROM path.
func writeZip(path, entryName string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := zip.NewWriter(f)
	entry, err := w.Create(entryName)
	if err != nil {
		return err
	}
	if _, err := entry.Write(data); err != nil {
		return err
	}
	return w.Close()
}
