// Package consts holds shared constants for audiozip.
package consts

// Colors
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[91m"
	ColorGreen  = "\033[92m"
	ColorYellow = "\033[93m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[96m"
)

const (
	RedError      string = ColorRed + "[ERROR] " + ColorReset
	YellowWarning string = ColorYellow + "[Warning] " + ColorReset
	GreenSuccess  string = ColorGreen + "[Success] " + ColorReset
	YellowDebug   string = ColorYellow + "[Debug] " + ColorReset
	BlueInfo      string = ColorCyan + "[Info] " + ColorReset
)

// Placeholders used when metadata is absent or sanitization empties a name.
const (
	UnknownArtist   = "Unknown Artist"
	UnknownTitle    = "Unknown Title"
	UntitledName    = "untitled"
	UngroupedBundle = "Lainnya"
)

// Program names for external binaries.
const (
	YtDLP  = "yt-dlp"
	FFmpeg = "ffmpeg"
)

// Audio output settings.
const (
	AudioExt       = ".mp3"
	AudioCodec     = "mp3"
	MinBitrateKbps = 64
	MaxBitrateKbps = 320
)

// yt-dlp output template: keeps the resolved ID in the filename so the
// post-conversion directory scan can find the file when the title was
// mangled by yt-dlp's own restrictions.
const OutputTemplate = "%(title).180B - %(id)s.%(ext)s"

// Alternate extractor identity for the single fallback attempt.
const (
	FallbackExtractorArgs = "youtube:player_client=android"
	FallbackUserAgent     = "Mozilla/5.0 (Linux; Android 14) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36"
)

// Filename length caps.
const (
	MaxSlugLen     = 80
	MaxFilenameLen = 180
)

// Log file written into the working directory.
const LogFilename = "audiozip.log"
