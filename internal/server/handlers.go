package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"

	"audiozip/internal/command/execute"
	"audiozip/internal/models"
	"audiozip/internal/session"
	"audiozip/internal/utils/logging"
	"audiozip/internal/validation"

	"github.com/go-chi/chi/v5"
)

// maxUploadBytes caps the link file upload size.
const maxUploadBytes = 1 << 20

// runRequest is the JSON body accepted by handleStartRun.
type runRequest struct {
	Videos    string `json:"videos"`
	Playlists string `json:"playlists"`
	Uploaded  string `json:"uploaded"`
}

// handleStartRun kicks off a batch run in the background.
func handleStartRun(w http.ResponseWriter, r *http.Request) {
	if sess.State() == session.StateRunning {
		http.Error(w, "a run is already in progress", http.StatusConflict)
		return
	}

	input, err := readRunInput(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid run request: %v", err), http.StatusBadRequest)
		return
	}

	go func() {
		if err := sess.Run(input); err != nil {
			logging.E("Run failed: %v", err)
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"status": "started"})
}

// handleCurrentRun returns the live session snapshot.
func handleCurrentRun(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sess.Snapshot()); err != nil {
		http.Error(w, "failed to encode JSON", http.StatusInternalServerError)
	}
}

// handleListBundles lists bundle metadata without payload bytes.
func handleListBundles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	snap := sess.Snapshot()
	bundles := snap.Bundles
	if bundles == nil {
		bundles = []models.Bundle{}
	}
	if err := json.NewEncoder(w).Encode(bundles); err != nil {
		http.Error(w, "failed to encode JSON", http.StatusInternalServerError)
	}
}

// handleDownloadBundle streams one zip bundle.
func handleDownloadBundle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b, err := sess.Download(id)
	if err != nil {
		http.Error(w, "bundle not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", b.Name))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(b.Data)))
	if _, err := w.Write(b.Data); err != nil {
		logging.E("Failed to stream bundle %q: %v", b.Name, err)
	}
}

// handleEnvironment reports the runtime the service is operating with.
func handleEnvironment(w http.ResponseWriter, r *http.Request) {
	env := map[string]string{
		"go_version": runtime.Version(),
		"output_dir": settings.OutputDir,
	}

	if v, err := execute.Version(); err == nil {
		env["ytdlp_version"] = v
	} else {
		env["ytdlp_version"] = "unavailable"
	}

	if p, err := validation.ResolveFFmpeg(settings.FFmpegLocation); err == nil {
		env["ffmpeg_path"] = p
	} else {
		env["ffmpeg_path"] = "unavailable"
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(env); err != nil {
		http.Error(w, "failed to encode JSON", http.StatusInternalServerError)
	}
}

// readRunInput decodes a run request from either a multipart form (the
// browser UI, which may attach a link file) or a plain JSON body.
func readRunInput(r *http.Request) (models.RunInput, error) {
	ct := r.Header.Get("Content-Type")

	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return models.RunInput{}, fmt.Errorf("failed to parse form: %w", err)
		}
		input := models.RunInput{
			VideoText:    r.FormValue("videos"),
			PlaylistText: r.FormValue("playlists"),
		}
		if f, _, err := r.FormFile("links_file"); err == nil {
			defer f.Close()
			data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
			if err != nil {
				return models.RunInput{}, fmt.Errorf("failed to read link file: %w", err)
			}
			input.UploadedText = string(data)
		}
		return input, nil
	}

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.RunInput{}, fmt.Errorf("failed to decode JSON body: %w", err)
	}
	return models.RunInput{
		VideoText:    req.Videos,
		PlaylistText: req.Playlists,
		UploadedText: req.Uploaded,
	}, nil
}
