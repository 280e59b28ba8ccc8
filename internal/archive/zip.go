// Package archive assembles flat in-memory zip bundles.
package archive

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"audiozip/internal/utils/logging"
)

// BuildZip packages the given files into an in-memory zip archive. Each
// existing path is added flat under its base name, in input order, with
// maximum-ratio deflate compression. Paths missing on disk are skipped.
func BuildZip(paths []string) ([]byte, error) {
	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	for _, p := range paths {
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			logging.D(1, "Skipping archive entry %q: not a readable file", p)
			continue
		}

		if err := addFile(zw, p, info); err != nil {
			if cerr := zw.Close(); cerr != nil {
				logging.E("Failed to close zip writer: %v", cerr)
			}
			return nil, fmt.Errorf("failed to add %q to archive: %w", p, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// addFile writes one file entry under its base name.
func addFile(zw *zip.Writer, path string, info os.FileInfo) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("Failed to close file %q: %v", path, err)
		}
	}()

	hdr := &zip.FileHeader{
		Name:     filepath.Base(path),
		Method:   zip.Deflate,
		Modified: info.ModTime(),
	}

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}
