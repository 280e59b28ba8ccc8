// Package tags rewrites ID3v2 metadata on finished MP3 files.
package tags

import (
	"fmt"

	id3v2 "github.com/bogem/id3v2/v2"
)

// Write sets artist and title frames on the file at path. A year frame is
// added when year is non-empty. The file is modified in place.
func Write(path, artist, title, year string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open %q for tagging: %w", path, err)
	}
	defer func() {
		_ = tag.Close()
	}()

	tag.SetArtist(artist)
	tag.SetTitle(title)
	if year != "" {
		tag.SetYear(year)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("failed to save tags to %q: %w", path, err)
	}
	return nil
}
