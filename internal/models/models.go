// Package models holds shared data models for audiozip.
package models

// DownloadStatus is the per-link fetch outcome status.
type DownloadStatus string

const (
	StatusPending DownloadStatus = "pending"
	StatusOK      DownloadStatus = "ok"
	StatusFailed  DownloadStatus = "failed"
)

// Outcome is the record produced for one attempted link. Immutable once
// returned by the fetch worker.
type Outcome struct {
	URL        string         `json:"url"`
	Title      string         `json:"title,omitempty"`
	ID         string         `json:"id,omitempty"`
	Status     DownloadStatus `json:"status"`
	Path       string         `json:"path,omitempty"`
	Error      string         `json:"error,omitempty"`
	FilesizeMB float64        `json:"filesize_mb,omitempty"`
}

// Expansion is the result of probing one playlist link in metadata-only
// mode: its display title and the resolved member links, in order.
type Expansion struct {
	Title      string
	MemberURLs []string
}

// PlaylistSummary is one row of the post-expansion report.
type PlaylistSummary struct {
	Title string `json:"title"`
	Count int    `json:"count"`
	URL   string `json:"url"`
}

// Bundle is an in-memory zip archive plus its suggested file name.
type Bundle struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group,omitempty"`
	Data  []byte `json:"-"`
}

// RunInput carries the raw link sources for one run.
type RunInput struct {
	VideoText    string `json:"video_text"`
	PlaylistText string `json:"playlist_text"`
	UploadedText string `json:"uploaded_text"`
}

// Settings holds the effective per-run configuration.
type Settings struct {
	OutputDir      string
	BitrateKbps    int
	EmbedThumbnail bool
	FFmpegLocation string
	ArchiveMode    string
	ArchiveName    string
	PlaylistLimit  int
	CookieSource   string
}
