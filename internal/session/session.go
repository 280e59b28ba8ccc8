package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"audiozip/internal/archive"
	"audiozip/internal/domain/consts"
	"audiozip/internal/domain/keys"
	"audiozip/internal/models"
	"audiozip/internal/parsing"
	"audiozip/internal/playlist"
	"audiozip/internal/utils/fs"
	"audiozip/internal/utils/logging"

	"github.com/google/uuid"
)

// State is the session lifecycle state.
type State string

const (
	StateIdle         State = "idle"
	StateRunning      State = "running"
	StateResultsReady State = "results-ready"
	StateNoResults    State = "no-results"
	StateCleaned      State = "cleaned"
)

// timestampLayout suffixes bundle names to avoid collisions across runs.
const timestampLayout = "20060102_150405"

// defaultBundlePrefix names the combined bundle when none is configured.
const defaultBundlePrefix = "mp3_bundle_"

// Session holds all mutable state for one interactive user session.
// Mutated only by Run and Download; read via Snapshot.
type Session struct {
	mu sync.RWMutex

	id       string
	settings models.Settings
	fetcher  Fetcher
	expander Expander

	state     State
	outcomes  []models.Outcome
	summaries []models.PlaylistSummary
	groups    *playlist.GroupMap
	bundles   []*models.Bundle
	total     int
	done      int
}

// Snapshot is a read-only copy of session state for display.
type Snapshot struct {
	ID        string                   `json:"id"`
	State     State                    `json:"state"`
	Progress  float64                  `json:"progress"`
	Total     int                      `json:"total"`
	Done      int                      `json:"done"`
	Outcomes  []models.Outcome         `json:"outcomes"`
	Summaries []models.PlaylistSummary `json:"playlists"`
	Bundles   []models.Bundle          `json:"bundles"`
	Failures  []models.Outcome         `json:"failures,omitempty"`
}

// New returns an idle session.
func New(settings models.Settings, fetcher Fetcher, expander Expander) *Session {
	return &Session{
		id:       uuid.NewString(),
		settings: settings,
		fetcher:  fetcher,
		expander: expander,
		state:    StateIdle,
	}
}

// Run executes one full batch: normalize and merge inputs, expand
// playlists, fetch every link sequentially, group successes and build
// bundles. Prior results are replaced wholesale. Returns an error when a
// run is already in progress or no links were supplied.
func (s *Session) Run(input models.RunInput) error {
	s.mu.Lock()
	if s.state == StateRunning {
		s.mu.Unlock()
		return fmt.Errorf("a run is already in progress")
	}
	s.state = StateRunning
	s.outcomes = nil
	s.summaries = nil
	s.groups = nil
	s.bundles = nil
	s.total = 0
	s.done = 0
	s.mu.Unlock()

	videoURLs := parsing.ParseURLText(input.VideoText)
	uploadURLs := parsing.ParseURLText(input.UploadedText)
	playlistURLs := parsing.ParseURLText(input.PlaylistText)

	groups, summaries := s.expander.ExpandAll(playlistURLs)
	all := parsing.MergeURLLists(videoURLs, uploadURLs, groups.Links())

	s.mu.Lock()
	s.groups = groups
	s.summaries = summaries
	s.total = len(all)
	s.mu.Unlock()

	if len(all) == 0 {
		s.setState(StateNoResults)
		return fmt.Errorf("no links to process")
	}

	logging.I("Processing %d links", len(all))

	// Strictly sequential: one in-flight fetch and transcode at a time.
	for _, u := range all {
		rec := s.fetcher.FetchTranscode(u)

		s.mu.Lock()
		s.outcomes = append(s.outcomes, rec)
		s.done++
		s.mu.Unlock()
	}

	s.buildBundles()
	return nil
}

// buildBundles groups successful outputs and assembles the zip bundles
// per the configured archive mode.
func (s *Session) buildBundles() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var okPaths []string
	groupOrder := make([]string, 0)
	grouped := make(map[string][]string)
	var ungrouped []string

	for _, rec := range s.outcomes {
		if rec.Status != models.StatusOK || rec.Path == "" {
			continue
		}
		okPaths = append(okPaths, rec.Path)

		if group, ok := s.groups.Get(rec.URL); ok {
			if _, seen := grouped[group]; !seen {
				groupOrder = append(groupOrder, group)
			}
			grouped[group] = append(grouped[group], rec.Path)
		} else {
			ungrouped = append(ungrouped, rec.Path)
		}
	}

	if len(okPaths) == 0 {
		logging.W("Run produced zero successful files")
		s.state = StateNoResults
		return
	}

	ts := time.Now().Format(timestampLayout)

	if s.settings.ArchiveMode == keys.ArchiveModePerPlaylist {
		for _, group := range groupOrder {
			name := fmt.Sprintf("playlist_%s_%s.zip", parsing.Slugify(group, consts.MaxSlugLen), ts)
			s.appendBundle(group, name, grouped[group])
		}
		if len(ungrouped) > 0 {
			name := fmt.Sprintf("%s_%s.zip", consts.UngroupedBundle, ts)
			s.appendBundle(consts.UngroupedBundle, name, ungrouped)
		}
	} else {
		name := s.settings.ArchiveName
		if name == "" {
			name = defaultBundlePrefix + ts + ".zip"
		} else if !strings.HasSuffix(name, ".zip") {
			name += ".zip"
		}
		s.appendBundle("", name, okPaths)
	}

	if len(s.bundles) == 0 {
		s.state = StateNoResults
		return
	}
	s.state = StateResultsReady
}

// appendBundle builds one archive; a failure is logged and skipped so one
// bad bundle cannot block the others. Caller holds the lock.
func (s *Session) appendBundle(group, name string, paths []string) {
	data, err := archive.BuildZip(paths)
	if err != nil {
		logging.E("Failed to build archive %q: %v", name, err)
		return
	}
	s.bundles = append(s.bundles, &models.Bundle{
		ID:    uuid.NewString(),
		Name:  name,
		Group: group,
		Data:  data,
	})
	logging.S("Built archive %q (%d files, %d bytes)", name, len(paths), len(data))
}

// Download returns the bundle with the given ID. The first download of
// any bundle empties the working directory; cached bundle bytes stay
// downloadable afterwards.
func (s *Session) Download(id string) (*models.Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *models.Bundle
	for _, b := range s.bundles {
		if b.ID == id {
			found = b
			break
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no bundle with ID %q", id)
	}

	if s.state == StateResultsReady {
		fs.EmptyDir(s.settings.OutputDir)
		s.state = StateCleaned
		logging.I("Working directory %q cleaned after first download", s.settings.OutputDir)
	}
	return found, nil
}

// Snapshot returns a copy of the displayable session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		ID:        s.id,
		State:     s.state,
		Total:     s.total,
		Done:      s.done,
		Outcomes:  append([]models.Outcome(nil), s.outcomes...),
		Summaries: append([]models.PlaylistSummary(nil), s.summaries...),
	}

	if s.total > 0 {
		snap.Progress = float64(s.done) / float64(s.total)
	}

	for _, b := range s.bundles {
		snap.Bundles = append(snap.Bundles, models.Bundle{
			ID:    b.ID,
			Name:  b.Name,
			Group: b.Group,
		})
	}

	if s.state == StateNoResults {
		for _, rec := range s.outcomes {
			if rec.Status == models.StatusFailed {
				snap.Failures = append(snap.Failures, rec)
			}
		}
	}
	return snap
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// setState transitions the lifecycle state.
func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}
