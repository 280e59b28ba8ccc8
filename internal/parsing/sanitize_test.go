package parsing_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"audiozip/internal/parsing"
)

func TestSlugify(t *testing.T) {
	got := parsing.Slugify("My: Cool/Mix!!", 80)
	if got != "My_CoolMix" {
		t.Fatalf("expected %q, got %q", "My_CoolMix", got)
	}

	for _, r := range got {
		if !(r == '_' || r == '-' ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')) {
			t.Fatalf("unexpected rune %q in slug %q", r, got)
		}
	}
}

func TestSlugify_TrimAndFallback(t *testing.T) {
	if got := parsing.Slugify("  --__  ", 80); got != "untitled" {
		t.Fatalf("expected fallback for empty slug, got %q", got)
	}

	// No leading or trailing underscores survive truncation.
	got := parsing.Slugify("a b", 2)
	if strings.HasPrefix(got, "_") || strings.HasSuffix(got, "_") {
		t.Fatalf("slug has surrounding underscores: %q", got)
	}
}

func TestSlugify_Truncates(t *testing.T) {
	got := parsing.Slugify(strings.Repeat("a", 200), 80)
	if len(got) != 80 {
		t.Fatalf("expected length 80, got %d", len(got))
	}
}

func TestSlugify_TruncatesOnRuneBoundary(t *testing.T) {
	got := parsing.Slugify(strings.Repeat("é", 20), 5)
	if got != strings.Repeat("é", 5) {
		t.Fatalf("expected 5 runes, got %q", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
}

func TestSanitizeFilename(t *testing.T) {
	got := parsing.SanitizeFilename("Track: Name?.mp3", 180)
	if got != "Track Name.mp3" {
		t.Fatalf("expected %q, got %q", "Track Name.mp3", got)
	}
}

func TestSanitizeFilename_IllegalSet(t *testing.T) {
	got := parsing.SanitizeFilename(`a<b>c:d"e/f\g|h?i*j`, 180)
	for _, bad := range `<>:"/\|?*` {
		if strings.ContainsRune(got, bad) {
			t.Fatalf("illegal rune %q survived in %q", bad, got)
		}
	}
	if got != "abcdefghij" {
		t.Fatalf("expected %q, got %q", "abcdefghij", got)
	}
}

func TestSanitizeFilename_Fallback(t *testing.T) {
	if got := parsing.SanitizeFilename("???", 180); got != "untitled" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestSanitizeFilename_TruncatesOnRuneBoundary(t *testing.T) {
	got := parsing.SanitizeFilename(strings.Repeat("日", 10), 4)
	if got != strings.Repeat("日", 4) {
		t.Fatalf("expected 4 runes, got %q", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
}
