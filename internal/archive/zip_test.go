package archive_test

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"audiozip/internal/archive"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %q: %v", p, err)
	}
	return p
}

func readEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open built archive: %v", err)
	}

	out := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open entry %q: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read entry %q: %v", f.Name, err)
		}
		out[f.Name] = string(b)
	}
	return out
}

func TestBuildZip_FlatEntriesInOrder(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	a := writeFile(t, dir, "a.mp3", "aaa")
	b := writeFile(t, sub, "b.mp3", "bbb")

	data, err := archive.BuildZip([]string{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(zr.File))
	}
	if zr.File[0].Name != "a.mp3" || zr.File[1].Name != "b.mp3" {
		t.Fatalf("entries not flat or out of order: %q, %q", zr.File[0].Name, zr.File[1].Name)
	}

	entries := readEntries(t, data)
	if entries["b.mp3"] != "bbb" {
		t.Fatalf("entry content mismatch: %q", entries["b.mp3"])
	}
}

func TestBuildZip_SkipsMissingPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "kept.mp3", "data")

	data, err := archive.BuildZip([]string{
		filepath.Join(dir, "missing.mp3"),
		a,
		"",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := readEntries(t, data)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if _, ok := entries["kept.mp3"]; !ok {
		t.Fatalf("existing file missing from archive: %v", entries)
	}
}

func TestBuildZip_EmptyInput(t *testing.T) {
	data, err := archive.BuildZip(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("empty archive is unreadable: %v", err)
	}
	if len(zr.File) != 0 {
		t.Fatalf("expected no entries, got %d", len(zr.File))
	}
}
