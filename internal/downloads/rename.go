package downloads

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"audiozip/internal/domain/consts"
	"audiozip/internal/models"
	"audiozip/internal/parsing"
	"audiozip/internal/utils/logging"
)

// renameRetryDelay is the pause before retrying a mechanically failed
// rename (covers transient locks).
const renameRetryDelay = 250 * time.Millisecond

// findOutput locates the converted file. It first derives the expected
// path from yt-dlp's own report, then falls back to scanning the target
// directory for a file ending in the resolved identifier.
func findOutput(dir string, info *models.MediaInfo) (string, bool) {
	for _, rd := range info.RequestedDownloads {
		if rd.Filepath == "" {
			continue
		}
		p := rd.Filepath
		if !strings.EqualFold(filepath.Ext(p), consts.AudioExt) {
			p = strings.TrimSuffix(p, filepath.Ext(p)) + consts.AudioExt
		}
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}

	if info.ID == "" {
		return "", false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.D(1, "Failed to scan %q for output: %v", dir, err)
		return "", false
	}
	suffix := info.ID + consts.AudioExt
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			return filepath.Join(dir, entry.Name()), true
		}
	}
	return "", false
}

// preferredArtistTitle computes the artist/title pair from metadata
// fallbacks: explicit artist/track fields, else uploader/channel, else
// generic title fields, else fixed placeholders. Both halves are
// sanitized for final file naming.
func preferredArtistTitle(info *models.MediaInfo) (artist, title string) {
	switch {
	case info.Artist != "":
		artist = info.Artist
	case info.Creator != "":
		artist = info.Creator
	case info.Uploader != "":
		artist = info.Uploader
	case info.Channel != "":
		artist = info.Channel
	default:
		artist = consts.UnknownArtist
	}

	switch {
	case info.Track != "":
		title = info.Track
	case info.Title != "":
		title = info.Title
	default:
		title = consts.UnknownTitle
	}

	artist = parsing.SanitizeFilename(artist, consts.MaxFilenameLen)
	title = parsing.SanitizeFilename(title, consts.MaxFilenameLen)
	return artist, title
}

// renameToConvention renames path to "Artist - Title.mp3" in the same
// directory, appending a numeric disambiguator when the target name is
// taken. A mechanical rename failure is retried once, then the original
// path is kept.
func renameToConvention(path, artist, title string) string {
	dir := filepath.Dir(path)

	// Both halves are individually capped, so the combined base can still
	// exceed what the filesystem accepts for a single name.
	base := fmt.Sprintf("%s - %s", artist, title)
	if r := []rune(base); len(r) > consts.MaxFilenameLen {
		base = strings.TrimRight(string(r[:consts.MaxFilenameLen]), " .-_")
	}
	target := nextFreeName(dir, base)

	if target == path {
		return path
	}

	if err := os.Rename(path, target); err != nil {
		logging.W("Rename of %q failed, retrying once: %v", path, err)
		time.Sleep(renameRetryDelay)
		if err := os.Rename(path, target); err != nil {
			logging.W("Rename retry failed, keeping original name %q: %v", path, err)
			return path
		}
	}
	return target
}

// nextFreeName finds the first unused "<base>.mp3" / "<base> (n).mp3"
// name under dir. Only a successful stat counts as "taken": not-exist
// means the name is free, and any other stat failure (for example a name
// the filesystem cannot hold) is handed back as-is so the rename itself
// surfaces the problem instead of the probe loop spinning forever.
func nextFreeName(dir, base string) string {
	candidate := filepath.Join(dir, base+consts.AudioExt)
	for n := 1; ; n++ {
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, n, consts.AudioExt))
	}
}
