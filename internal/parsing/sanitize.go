package parsing

import (
	"regexp"
	"strings"

	"audiozip/internal/domain/consts"
)

var (
	slugStrip    = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)

	illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	extraSpaces  = regexp.MustCompile(`\s+`)
)

// Slugify converts a title into a strict filesystem-portable slug: word
// characters only, runs of spaces/underscores/hyphens collapsed to a
// single underscore.
func Slugify(name string, maxLen int) string {
	s := slugStrip.ReplaceAllString(name, "")
	s = strings.TrimSpace(s)
	s = slugCollapse.ReplaceAllString(s, "_")

	if r := []rune(s); maxLen > 0 && len(r) > maxLen {
		s = string(r[:maxLen])
	}
	s = strings.Trim(s, "_")

	if s == "" {
		return consts.UntitledName
	}
	return s
}

// SanitizeFilename strips characters illegal in common filesystems while
// keeping spacing and punctuation readable. Used for final media file
// names.
func SanitizeFilename(name string, maxLen int) string {
	s := illegalChars.ReplaceAllString(name, "")
	s = extraSpaces.ReplaceAllString(s, " ")
	s = strings.Trim(s, " .-_")

	if r := []rune(s); maxLen > 0 && len(r) > maxLen {
		s = strings.Trim(string(r[:maxLen]), " .-_")
	}

	if s == "" {
		return consts.UntitledName
	}
	return s
}
