// Package session orchestrates one interactive run: input normalization,
// playlist expansion, the sequential fetch loop, grouping, bundle
// assembly and workspace cleanup.
package session

import (
	"audiozip/internal/models"
	"audiozip/internal/playlist"
)

// Fetcher resolves one link to a fetch outcome.
type Fetcher interface {
	FetchTranscode(url string) models.Outcome
}

// Expander expands playlist links into a group map and summary rows.
type Expander interface {
	ExpandAll(urls []string) (*playlist.GroupMap, []models.PlaylistSummary)
}
