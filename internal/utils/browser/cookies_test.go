package browser

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/browserutils/kooky"
)

func TestExportDirSeparateFromWorkspace(t *testing.T) {
	workspace := t.TempDir()

	dir, err := ExportDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	sep := string(os.PathSeparator)
	if strings.HasPrefix(dir+sep, workspace+sep) {
		t.Fatalf("cookie directory %q sits inside the workspace %q", dir, workspace)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("cookie directory not usable: %v", err)
	}
}

func TestWriteNetscapeFile(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "cookies.txt")
	cookies := []*kooky.Cookie{
		{Cookie: http.Cookie{
			Domain:  ".example.com",
			Path:    "/",
			Secure:  true,
			Expires: time.Unix(1700000000, 0),
			Name:    "sid",
			Value:   "abc",
		}},
	}

	if err := writeNetscapeFile(fpath, cookies); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(fpath)
	if err != nil {
		t.Fatalf("failed to read cookie file: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Netscape HTTP Cookie File") {
		t.Fatalf("missing Netscape header: %q", data)
	}
	if !strings.Contains(string(data), ".example.com\tTRUE\t/\tTRUE\t1700000000\tsid\tabc") {
		t.Fatalf("unexpected cookie line in %q", data)
	}
}

func TestExtractBaseDomain(t *testing.T) {
	cases := []struct {
		link string
		want string
	}{
		{"https://www.youtube.com/watch?v=abc", "youtube.com"},
		{"https://music.example.co/track", "example.co"},
		{"https://example.com", "example.com"},
	}
	for _, c := range cases {
		got, err := extractBaseDomain(c.link)
		if err != nil || got != c.want {
			t.Fatalf("extractBaseDomain(%q): expected %q, got %q (%v)", c.link, c.want, got, err)
		}
	}
}
