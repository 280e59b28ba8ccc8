// Package downloads implements the per-link fetch-transcode worker.
package downloads

import (
	"fmt"
	"math"
	"os"

	"audiozip/internal/command/builder"
	"audiozip/internal/command/execute"
	"audiozip/internal/models"
	"audiozip/internal/parsing"
	"audiozip/internal/tags"
	"audiozip/internal/utils/fs"
	"audiozip/internal/utils/logging"
)

// Worker downloads and transcodes one link per call. Calls are strictly
// sequential; the only shared state between calls is the target directory.
type Worker struct {
	settings   models.Settings
	cookieFile string
}

// NewWorker returns a Worker operating on the given settings.
func NewWorker(s models.Settings, cookieFile string) *Worker {
	return &Worker{
		settings:   s,
		cookieFile: cookieFile,
	}
}

// FetchTranscode resolves one link to a tagged MP3 inside the target
// directory. Every failure degrades to a failed outcome; nothing panics
// or aborts the batch.
func (w *Worker) FetchTranscode(url string) models.Outcome {
	rec := models.Outcome{
		URL:    url,
		Status: models.StatusPending,
	}

	if err := fs.EnsureDir(w.settings.OutputDir); err != nil {
		return failed(rec, fmt.Errorf("failed to create output directory: %w", err))
	}

	info, err := w.fetch(url)
	if err != nil {
		return failed(rec, err)
	}

	// A link that unexpectedly resolved to a collection collapses to its
	// first member. Entries can decode to nil from JSON null.
	if info.IsPlaylist() {
		if len(info.Entries) == 0 || info.Entries[0] == nil {
			return failed(rec, fmt.Errorf("backend returned an empty collection"))
		}
		info = info.Entries[0]
	}

	rec.Title = info.Title
	rec.ID = info.ID

	path, ok := findOutput(w.settings.OutputDir, info)
	if !ok {
		return failed(rec, fmt.Errorf("output not found after conversion"))
	}

	artist, title := preferredArtistTitle(info)
	path = renameToConvention(path, artist, title)

	if err := tags.Write(path, artist, title, tagYear(info)); err != nil {
		// Tag failure never demotes the outcome.
		logging.W("Failed to write tags to %q: %v", path, err)
	}

	rec.Status = models.StatusOK
	rec.Path = path
	if stat, err := os.Stat(path); err == nil {
		rec.FilesizeMB = math.Round(float64(stat.Size())/(1024*1024)*100) / 100
	}
	return rec
}

// fetch runs the backend operation, retrying once with the alternate
// extractor identity before giving up.
func (w *Worker) fetch(url string) (*models.MediaInfo, error) {
	b := builder.NewAudioFetchCommandBuilder(url, w.settings, w.cookieFile)

	cmd, err := b.FetchCommand()
	if err != nil {
		return nil, err
	}

	info, primaryErr := execute.FetchJSON(cmd)
	if primaryErr == nil && info != nil {
		return info, nil
	}

	logging.W("Primary fetch failed for %q, retrying with alternate client identity: %v", url, primaryErr)

	b.Fallback = true
	cmd, err = b.FetchCommand()
	if err != nil {
		return nil, err
	}

	info, fallbackErr := execute.FetchJSON(cmd)
	if fallbackErr != nil || info == nil {
		if fallbackErr == nil {
			fallbackErr = fmt.Errorf("backend returned no document")
		}
		return nil, fmt.Errorf("both extraction attempts failed: primary: %v; fallback: %v", primaryErr, fallbackErr)
	}
	return info, nil
}

// tagYear derives a year frame from the reported upload date, when any.
func tagYear(info *models.MediaInfo) string {
	if info.UploadDate == "" {
		return ""
	}
	year, err := parsing.ParseYear(info.UploadDate)
	if err != nil {
		logging.D(1, "Unparseable upload date %q: %v", info.UploadDate, err)
		return ""
	}
	return year
}

// failed finalizes a failed outcome.
func failed(rec models.Outcome, err error) models.Outcome {
	rec.Status = models.StatusFailed
	rec.Error = err.Error()
	logging.E("Fetch failed for %q: %v", rec.URL, err)
	return rec
}
