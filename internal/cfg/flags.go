package cfg

import (
	"fmt"

	"audiozip/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initProgramFlags initializes the program-wide flag settings.
func initProgramFlags(rootCmd *cobra.Command) error {

	// Working directory for downloads and bundles
	rootCmd.PersistentFlags().StringP(keys.OutputDir, "o", "", "Working directory for downloads and bundles (falls back to a temp dir)")
	if err := viper.BindPFlag(keys.OutputDir, rootCmd.PersistentFlags().Lookup(keys.OutputDir)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.OutputDir, err)
	}

	// Target MP3 bitrate
	rootCmd.PersistentFlags().IntP(keys.Bitrate, "b", 192, "Target MP3 bitrate in kbps (64-320)")
	if err := viper.BindPFlag(keys.Bitrate, rootCmd.PersistentFlags().Lookup(keys.Bitrate)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.Bitrate, err)
	}

	// Embed video thumbnail as cover art
	rootCmd.PersistentFlags().Bool(keys.EmbedThumbnail, false, "Embed the video thumbnail as MP3 cover art")
	if err := viper.BindPFlag(keys.EmbedThumbnail, rootCmd.PersistentFlags().Lookup(keys.EmbedThumbnail)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.EmbedThumbnail, err)
	}

	// Explicit ffmpeg location
	rootCmd.PersistentFlags().String(keys.FFmpegLocation, "", "Path to the ffmpeg binary or its directory (default: PATH auto-detect)")
	if err := viper.BindPFlag(keys.FFmpegLocation, rootCmd.PersistentFlags().Lookup(keys.FFmpegLocation)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.FFmpegLocation, err)
	}

	// Archive grouping mode
	rootCmd.PersistentFlags().String(keys.ArchiveMode, keys.ArchiveModeCombined, "Bundle grouping mode (combined or per-playlist)")
	if err := viper.BindPFlag(keys.ArchiveMode, rootCmd.PersistentFlags().Lookup(keys.ArchiveMode)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.ArchiveMode, err)
	}

	// Combined archive name override
	rootCmd.PersistentFlags().String(keys.ArchiveName, "", "Custom name for the combined bundle (default: timestamped)")
	if err := viper.BindPFlag(keys.ArchiveName, rootCmd.PersistentFlags().Lookup(keys.ArchiveName)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.ArchiveName, err)
	}

	// Playlist member cap
	rootCmd.PersistentFlags().Int(keys.PlaylistLimit, 0, "Max members taken per playlist (0 = unlimited)")
	if err := viper.BindPFlag(keys.PlaylistLimit, rootCmd.PersistentFlags().Lookup(keys.PlaylistLimit)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.PlaylistLimit, err)
	}

	// Browser cookie source
	rootCmd.PersistentFlags().String(keys.CookieSource, "", "Browser to export cookies from (e.g. firefox, chrome)")
	if err := viper.BindPFlag(keys.CookieSource, rootCmd.PersistentFlags().Lookup(keys.CookieSource)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.CookieSource, err)
	}

	// Config file
	rootCmd.PersistentFlags().String(keys.ConfigFile, "", "Path to a config file with flag defaults")
	if err := viper.BindPFlag(keys.ConfigFile, rootCmd.PersistentFlags().Lookup(keys.ConfigFile)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.ConfigFile, err)
	}

	// Web server port
	rootCmd.PersistentFlags().StringP(keys.ServePort, "p", "8688", "Port for the web server")
	if err := viper.BindPFlag(keys.ServePort, rootCmd.PersistentFlags().Lookup(keys.ServePort)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.ServePort, err)
	}

	// Debug level
	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debug level (0-3)")
	if err := viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return fmt.Errorf("failed to bind flag %q: %w", keys.DebugLevel, err)
	}

	return nil
}
