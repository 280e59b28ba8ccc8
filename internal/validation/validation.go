// Package validation checks and normalizes user-supplied configuration.
package validation

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"audiozip/internal/domain/consts"
	"audiozip/internal/domain/keys"
	"audiozip/internal/utils/logging"
)

// ValidateBitrate clamps the target bitrate into the supported MP3 range.
func ValidateBitrate(kbps int) int {
	switch {
	case kbps < consts.MinBitrateKbps:
		logging.W("Bitrate %d kbps below minimum, clamping to %d", kbps, consts.MinBitrateKbps)
		return consts.MinBitrateKbps
	case kbps > consts.MaxBitrateKbps:
		logging.W("Bitrate %d kbps above maximum, clamping to %d", kbps, consts.MaxBitrateKbps)
		return consts.MaxBitrateKbps
	default:
		return kbps
	}
}

// ValidateArchiveMode checks the archive mode string.
func ValidateArchiveMode(mode string) (string, error) {
	switch mode {
	case keys.ArchiveModeCombined, keys.ArchiveModePerPlaylist:
		return mode, nil
	case "":
		return keys.ArchiveModeCombined, nil
	default:
		return "", fmt.Errorf("invalid archive mode %q (valid: %q, %q)",
			mode, keys.ArchiveModeCombined, keys.ArchiveModePerPlaylist)
	}
}

// ValidateDirectory checks that the path exists and is a directory,
// creating it first when createIfMissing is set.
func ValidateDirectory(dir string, createIfMissing bool) (os.FileInfo, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("path %q exists but is not a directory", dir)
		}
		return info, nil
	case os.IsNotExist(err) && createIfMissing:
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
		return os.Stat(dir)
	default:
		return nil, fmt.Errorf("failed check for directory %q: %w", dir, err)
	}
}

// ResolveOutputDir validates the configured working directory, falling
// back to a fresh system temp location when it is unusable or unwritable.
func ResolveOutputDir(dir string) string {
	if dir != "" {
		if _, err := ValidateDirectory(dir, true); err == nil {
			if writable(dir) {
				return dir
			}
			logging.W("Output directory %q is not writable", dir)
		} else {
			logging.W("Output directory %q is unusable: %v", dir, err)
		}
	}

	tmp, err := os.MkdirTemp("", "audiozip-*")
	if err != nil {
		// Last resort: the OS temp root itself.
		return os.TempDir()
	}
	logging.I("Falling back to temp output directory: %s", tmp)
	return tmp
}

// ResolveFFmpeg resolves the transcoder binary: an explicit path when
// configured, otherwise PATH auto-detection.
func ResolveFFmpeg(explicit string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return "", fmt.Errorf("configured ffmpeg location %q: %w", explicit, err)
		}
		if info.IsDir() {
			// yt-dlp accepts a directory containing the binaries.
			return explicit, nil
		}
		return explicit, nil
	}

	path, err := exec.LookPath(consts.FFmpeg)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH and no explicit location configured: %w", consts.FFmpeg, err)
	}
	return path, nil
}

// writable probes the directory with a throwaway file.
func writable(dir string) bool {
	probe := filepath.Join(dir, ".audiozip-probe")
	f, err := os.Create(probe)
	if err != nil {
		return false
	}
	if err := f.Close(); err != nil {
		logging.D(2, "Failed to close probe file: %v", err)
	}
	if err := os.Remove(probe); err != nil {
		logging.D(2, "Failed to remove probe file: %v", err)
	}
	return true
}
