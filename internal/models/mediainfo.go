package models

// MediaInfo is the subset of the yt-dlp JSON document the program reads.
// A playlist result carries Entries; a single video carries the rest.
type MediaInfo struct {
	Type       string `json:"_type,omitempty"`
	ID         string `json:"id,omitempty"`
	Title      string `json:"title,omitempty"`
	Track      string `json:"track,omitempty"`
	Artist     string `json:"artist,omitempty"`
	Creator    string `json:"creator,omitempty"`
	Uploader   string `json:"uploader,omitempty"`
	Channel    string `json:"channel,omitempty"`
	UploadDate string `json:"upload_date,omitempty"`
	URL        string `json:"url,omitempty"`
	WebpageURL string `json:"webpage_url,omitempty"`

	Entries            []*MediaInfo        `json:"entries,omitempty"`
	RequestedDownloads []RequestedDownload `json:"requested_downloads,omitempty"`
}

// RequestedDownload reports where yt-dlp moved a finished download.
type RequestedDownload struct {
	Filepath string `json:"filepath,omitempty"`
}

// IsPlaylist reports whether the document represents a collection.
func (m *MediaInfo) IsPlaylist() bool {
	return m.Type == "playlist" || len(m.Entries) > 0
}
