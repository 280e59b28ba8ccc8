package cfg

import (
	"fmt"

	"audiozip/internal/domain/keys"
	"audiozip/internal/models"
	"audiozip/internal/validation"

	"github.com/spf13/viper"
)

// EffectiveSettings resolves the bound configuration into validated run
// settings. Unusable values are clamped or replaced rather than fatal,
// except the archive mode which has no sane reinterpretation.
func EffectiveSettings() (models.Settings, error) {
	mode, err := validation.ValidateArchiveMode(viper.GetString(keys.ArchiveMode))
	if err != nil {
		return models.Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}

	limit := viper.GetInt(keys.PlaylistLimit)
	if limit < 0 {
		limit = 0
	}

	return models.Settings{
		OutputDir:      validation.ResolveOutputDir(viper.GetString(keys.OutputDir)),
		BitrateKbps:    validation.ValidateBitrate(viper.GetInt(keys.Bitrate)),
		EmbedThumbnail: viper.GetBool(keys.EmbedThumbnail),
		FFmpegLocation: viper.GetString(keys.FFmpegLocation),
		ArchiveMode:    mode,
		ArchiveName:    viper.GetString(keys.ArchiveName),
		PlaylistLimit:  limit,
		CookieSource:   viper.GetString(keys.CookieSource),
	}, nil
}
