package playlist

import (
	"fmt"
	"strings"

	"audiozip/internal/command/builder"
	"audiozip/internal/command/execute"
	"audiozip/internal/models"
	"audiozip/internal/utils/logging"
)

// watchURLTemplate synthesizes a canonical watch link from a bare entry ID.
const watchURLTemplate = "https://www.youtube.com/watch?v=%s"

// fallbackTitle names playlists whose probe returned no title.
const fallbackTitle = "Playlist"

// Expander probes playlist links in flat metadata mode. Limit caps member
// entries per playlist before URL resolution; 0 means unlimited.
type Expander struct {
	Limit      int
	CookieFile string
}

// NewExpander returns an Expander with the given per-playlist cap.
func NewExpander(limit int, cookieFile string) *Expander {
	return &Expander{
		Limit:      limit,
		CookieFile: cookieFile,
	}
}

// ExpandOne probes a single playlist link. No media is downloaded.
func (e *Expander) ExpandOne(url string) (models.Expansion, error) {
	cmd, err := builder.NewPlaylistMetaCommandBuilder(url, e.CookieFile).MetaCommand()
	if err != nil {
		return models.Expansion{}, err
	}

	info, err := execute.FetchJSON(cmd)
	if err != nil {
		return models.Expansion{}, fmt.Errorf("failed to probe playlist %q: %w", url, err)
	}

	return ResolveEntries(info, e.Limit), nil
}

// ExpandAll probes every playlist link sequentially, building the
// link-to-group mapping (first group wins) and a per-playlist summary. A
// failed probe degrades to a zero-count summary row for that playlist and
// does not abort the rest.
func (e *Expander) ExpandAll(urls []string) (*GroupMap, []models.PlaylistSummary) {
	groups := NewGroupMap()
	summaries := make([]models.PlaylistSummary, 0, len(urls))

	for _, u := range urls {
		exp, err := e.ExpandOne(u)
		if err != nil {
			logging.E("Playlist expansion failed for %q: %v", u, err)
			summaries = append(summaries, models.PlaylistSummary{
				Title: fmt.Sprintf("Failed to read playlist (%s)", u),
				URL:   u,
			})
			continue
		}

		claimed := 0
		for _, member := range exp.MemberURLs {
			if groups.PutIfAbsent(member, exp.Title) {
				claimed++
			}
		}
		summaries = append(summaries, models.PlaylistSummary{
			Title: exp.Title,
			Count: claimed,
			URL:   u,
		})
	}

	return groups, summaries
}

// ResolveEntries converts a decoded playlist document into an Expansion.
// The cap truncates entries before URL resolution. Member URL preference:
// absolute url field, then webpage_url, then a watch link synthesized
// from the entry ID. Entries yielding none of these are skipped.
func ResolveEntries(info *models.MediaInfo, limit int) models.Expansion {
	exp := models.Expansion{Title: fallbackTitle}
	if info == nil {
		return exp
	}
	if info.Title != "" {
		exp.Title = info.Title
	}

	entries := info.Entries
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		switch {
		case strings.HasPrefix(entry.URL, "http"):
			exp.MemberURLs = append(exp.MemberURLs, entry.URL)
		case entry.WebpageURL != "":
			exp.MemberURLs = append(exp.MemberURLs, entry.WebpageURL)
		case entry.ID != "":
			exp.MemberURLs = append(exp.MemberURLs, fmt.Sprintf(watchURLTemplate, entry.ID))
		}
	}
	return exp
}
