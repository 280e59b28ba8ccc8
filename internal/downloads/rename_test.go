package downloads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"audiozip/internal/domain/consts"
	"audiozip/internal/models"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("mp3"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
}

func TestFindOutput_ReportedPath(t *testing.T) {
	dir := t.TempDir()
	reported := filepath.Join(dir, "Some Song - abc123.webm")
	converted := filepath.Join(dir, "Some Song - abc123.mp3")
	touch(t, converted)

	info := &models.MediaInfo{
		ID:                 "abc123",
		RequestedDownloads: []models.RequestedDownload{{Filepath: reported}},
	}

	got, ok := findOutput(dir, info)
	if !ok || got != converted {
		t.Fatalf("expected %q, got %q (ok=%v)", converted, got, ok)
	}
}

func TestFindOutput_ScanFallback(t *testing.T) {
	dir := t.TempDir()
	onDisk := filepath.Join(dir, "renamed by ytdlp - abc123.mp3")
	touch(t, onDisk)

	info := &models.MediaInfo{
		ID:                 "abc123",
		RequestedDownloads: []models.RequestedDownload{{Filepath: filepath.Join(dir, "gone.mp3")}},
	}

	got, ok := findOutput(dir, info)
	if !ok || got != onDisk {
		t.Fatalf("expected scan to find %q, got %q (ok=%v)", onDisk, got, ok)
	}
}

func TestFindOutput_Missing(t *testing.T) {
	dir := t.TempDir()

	if _, ok := findOutput(dir, &models.MediaInfo{ID: "nope"}); ok {
		t.Fatalf("expected no output for empty directory")
	}
	if _, ok := findOutput(dir, &models.MediaInfo{}); ok {
		t.Fatalf("expected no output without an identifier")
	}
}

func TestPreferredArtistTitle(t *testing.T) {
	cases := []struct {
		name       string
		info       models.MediaInfo
		wantArtist string
		wantTitle  string
	}{
		{
			name:       "explicit fields win",
			info:       models.MediaInfo{Artist: "The Band", Track: "Hit Song", Uploader: "SomeChannel", Title: "Full Video Title"},
			wantArtist: "The Band",
			wantTitle:  "Hit Song",
		},
		{
			name:       "uploader fallback",
			info:       models.MediaInfo{Uploader: "SomeChannel", Title: "Full Video Title"},
			wantArtist: "SomeChannel",
			wantTitle:  "Full Video Title",
		},
		{
			name:       "channel fallback",
			info:       models.MediaInfo{Channel: "A Channel", Title: "T"},
			wantArtist: "A Channel",
			wantTitle:  "T",
		},
		{
			name:       "placeholders",
			info:       models.MediaInfo{},
			wantArtist: "Unknown Artist",
			wantTitle:  "Unknown Title",
		},
		{
			name:       "illegal characters sanitized",
			info:       models.MediaInfo{Artist: "AC/DC", Track: "Back: In Black?"},
			wantArtist: "ACDC",
			wantTitle:  "Back In Black",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			artist, title := preferredArtistTitle(&c.info)
			if artist != c.wantArtist || title != c.wantTitle {
				t.Fatalf("expected (%q, %q), got (%q, %q)", c.wantArtist, c.wantTitle, artist, title)
			}
		})
	}
}

func TestRenameToConvention_Disambiguates(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "raw one - id1.mp3")
	second := filepath.Join(dir, "raw two - id2.mp3")
	touch(t, first)
	touch(t, second)

	got1 := renameToConvention(first, "Artist", "Title")
	want1 := filepath.Join(dir, "Artist - Title.mp3")
	if got1 != want1 {
		t.Fatalf("expected %q, got %q", want1, got1)
	}

	got2 := renameToConvention(second, "Artist", "Title")
	want2 := filepath.Join(dir, "Artist - Title (1).mp3")
	if got2 != want2 {
		t.Fatalf("expected disambiguated %q, got %q", want2, got2)
	}

	// Both files coexist on disk.
	for _, p := range []string{got1, got2} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected %q on disk: %v", p, err)
		}
	}
}

func TestRenameToConvention_KeepsOriginalOnFailure(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "never existed.mp3")

	// Renaming a non-existent source fails mechanically both times; the
	// original path is kept rather than erroring out.
	got := renameToConvention(missing, "Artist", "Title")
	if got != missing {
		t.Fatalf("expected original path back, got %q", got)
	}
}

func TestRenameToConvention_OverlongCombinedName(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "raw - id9.mp3")
	touch(t, src)

	// Each half is capped at the filename limit individually, so the
	// combined base would exceed what the filesystem accepts.
	artist := strings.Repeat("a", consts.MaxFilenameLen)
	title := strings.Repeat("b", consts.MaxFilenameLen)

	done := make(chan string, 1)
	go func() { done <- renameToConvention(src, artist, title) }()

	select {
	case got := <-done:
		base := filepath.Base(got)
		if n := len([]rune(base)); n > consts.MaxFilenameLen+len(consts.AudioExt) {
			t.Fatalf("resulting name too long (%d runes): %q", n, base)
		}
		if _, err := os.Stat(got); err != nil {
			t.Fatalf("expected %q on disk: %v", got, err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("rename did not complete for overlong names")
	}
}

func TestNextFreeName_UnstatableCandidate(t *testing.T) {
	dir := t.TempDir()

	// A base the filesystem cannot hold makes os.Stat fail with an error
	// that is not not-exist; the probe must hand it back immediately
	// instead of appending disambiguators forever.
	base := strings.Repeat("x", 300)
	got := nextFreeName(dir, base)
	want := filepath.Join(dir, base+consts.AudioExt)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNextFreeName(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Song.mp3"))
	touch(t, filepath.Join(dir, "Song (1).mp3"))

	got := nextFreeName(dir, "Song")
	want := filepath.Join(dir, "Song (2).mp3")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTagYear(t *testing.T) {
	if y := tagYear(&models.MediaInfo{UploadDate: "20230614"}); y != "2023" {
		t.Fatalf("expected 2023, got %q", y)
	}
	if y := tagYear(&models.MediaInfo{}); y != "" {
		t.Fatalf("expected empty year, got %q", y)
	}
	if y := tagYear(&models.MediaInfo{UploadDate: "garbage"}); y != "" {
		t.Fatalf("expected empty year for unparseable date, got %q", y)
	}
}
