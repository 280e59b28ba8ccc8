// Package keys holds Viper configuration key names.
package keys

// Terminal keys
const (
	OutputDir      string = "output-dir"
	Bitrate        string = "bitrate"
	EmbedThumbnail string = "embed-thumbnail"
	FFmpegLocation string = "ffmpeg-location"
	ArchiveMode    string = "archive-mode"
	ArchiveName    string = "archive-name"
	PlaylistLimit  string = "playlist-limit"
	CookieSource   string = "cookies-from-browser"
	ConfigFile     string = "config-file"
)

// Web related
const (
	ServePort string = "port"
)

// Logging
const (
	DebugLevel string = "debug-level"
)

// Archive modes
const (
	ArchiveModeCombined    string = "combined"
	ArchiveModePerPlaylist string = "per-playlist"
)
