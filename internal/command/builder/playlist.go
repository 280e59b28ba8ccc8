package builder

import (
	"fmt"
	"os/exec"

	"audiozip/internal/domain/consts"
	"audiozip/internal/utils/logging"
)

// PlaylistMetaCommandBuilder builds the flat, metadata-only yt-dlp probe
// for a playlist link. No media is downloaded.
type PlaylistMetaCommandBuilder struct {
	URL        string
	CookieFile string
}

// NewPlaylistMetaCommandBuilder returns a builder for the given playlist link.
func NewPlaylistMetaCommandBuilder(url, cookieFile string) *PlaylistMetaCommandBuilder {
	return &PlaylistMetaCommandBuilder{
		URL:        url,
		CookieFile: cookieFile,
	}
}

// MetaCommand builds the probe command. Stdout carries the playlist JSON.
func (pm *PlaylistMetaCommandBuilder) MetaCommand() (*exec.Cmd, error) {
	if pm.URL == "" {
		return nil, fmt.Errorf("no URL set, returning no command")
	}
	if _, err := exec.LookPath(consts.YtDLP); err != nil {
		return nil, fmt.Errorf("%s command not found: %w", consts.YtDLP, err)
	}

	args := []string{
		"-J",
		"--flat-playlist",
		"--skip-download",
		"--yes-playlist",
		"--no-warnings",
	}
	if pm.CookieFile != "" {
		args = append(args, "--cookies", pm.CookieFile)
	}
	args = append(args, pm.URL)

	logging.D(1, "Built playlist probe argument list: %v", args)

	return exec.Command(consts.YtDLP, args...), nil
}
