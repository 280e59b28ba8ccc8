// Package builder constructs yt-dlp commands.
package builder

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"

	"audiozip/internal/domain/consts"
	"audiozip/internal/models"
	"audiozip/internal/utils/logging"
)

// AudioFetchCommandBuilder builds the yt-dlp command which downloads the
// best audio stream for one link and pipes it through ffmpeg into an MP3
// at the target bitrate, all as one backend operation.
type AudioFetchCommandBuilder struct {
	URL        string
	Settings   models.Settings
	CookieFile string

	// Fallback switches to the alternate extractor client identity for
	// the second attempt.
	Fallback bool
}

// NewAudioFetchCommandBuilder returns a builder for the given link.
func NewAudioFetchCommandBuilder(url string, s models.Settings, cookieFile string) *AudioFetchCommandBuilder {
	return &AudioFetchCommandBuilder{
		URL:        url,
		Settings:   s,
		CookieFile: cookieFile,
	}
}

// FetchCommand builds the download command. Stdout carries the resolved
// metadata as a single JSON document ("-J --no-simulate").
func (af *AudioFetchCommandBuilder) FetchCommand() (*exec.Cmd, error) {
	if af.URL == "" {
		return nil, fmt.Errorf("no URL set, returning no command")
	}
	if _, err := exec.LookPath(consts.YtDLP); err != nil {
		return nil, fmt.Errorf("%s command not found: %w", consts.YtDLP, err)
	}

	args := []string{
		"-f", "bestaudio/best",
		"--no-playlist",
		"--extract-audio",
		"--audio-format", consts.AudioCodec,
		"--audio-quality", strconv.Itoa(af.Settings.BitrateKbps),
		"--add-metadata",
		"-o", filepath.Join(af.Settings.OutputDir, consts.OutputTemplate),
		"-J", "--no-simulate",
		"--no-warnings",
	}

	if af.Settings.EmbedThumbnail {
		args = append(args, "--write-thumbnail", "--embed-thumbnail")
	}
	if af.Settings.FFmpegLocation != "" {
		args = append(args, "--ffmpeg-location", af.Settings.FFmpegLocation)
	}
	if af.CookieFile != "" {
		args = append(args, "--cookies", af.CookieFile)
	}
	if af.Fallback {
		args = append(args,
			"--extractor-args", consts.FallbackExtractorArgs,
			"--user-agent", consts.FallbackUserAgent)
	}

	args = append(args, af.URL)

	logging.D(1, "Built audio fetch argument list: %v", args)

	return exec.Command(consts.YtDLP, args...), nil
}
