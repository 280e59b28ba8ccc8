package builder_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"audiozip/internal/command/builder"
	"audiozip/internal/models"
)

// fakeYtdlp places a stub yt-dlp executable on PATH so LookPath succeeds.
func fakeYtdlp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	stub := filepath.Join(dir, "yt-dlp")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("failed to write stub: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestFetchCommand_Args(t *testing.T) {
	fakeYtdlp(t)

	s := models.Settings{
		OutputDir:      "/tmp/out",
		BitrateKbps:    320,
		EmbedThumbnail: true,
		FFmpegLocation: "/usr/bin/ffmpeg",
	}

	cmd, err := builder.NewAudioFetchCommandBuilder("https://example.com/watch?v=abc", s, "").FetchCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	args := cmd.Args
	for _, want := range []string{
		"--extract-audio", "--audio-format", "mp3", "--audio-quality", "320",
		"--no-playlist", "--embed-thumbnail", "--write-thumbnail",
		"--ffmpeg-location", "/usr/bin/ffmpeg", "-J", "--no-simulate",
	} {
		if !slices.Contains(args, want) {
			t.Fatalf("expected argument %q in %v", want, args)
		}
	}

	if args[len(args)-1] != "https://example.com/watch?v=abc" {
		t.Fatalf("URL should be the final argument, got %v", args)
	}
	if slices.Contains(args, "--cookies") {
		t.Fatalf("cookies flag set without a cookie file: %v", args)
	}
}

func TestFetchCommand_FallbackIdentity(t *testing.T) {
	fakeYtdlp(t)

	b := builder.NewAudioFetchCommandBuilder("https://example.com/v", models.Settings{BitrateKbps: 128}, "")

	cmd, err := b.FetchCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slices.Contains(cmd.Args, "--extractor-args") {
		t.Fatalf("primary attempt must not carry the fallback identity: %v", cmd.Args)
	}

	b.Fallback = true
	cmd, err = b.FetchCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Contains(cmd.Args, "--extractor-args") || !slices.Contains(cmd.Args, "--user-agent") {
		t.Fatalf("fallback attempt missing alternate identity: %v", cmd.Args)
	}
}

func TestFetchCommand_NoURL(t *testing.T) {
	fakeYtdlp(t)

	if _, err := builder.NewAudioFetchCommandBuilder("", models.Settings{}, "").FetchCommand(); err == nil {
		t.Fatalf("expected error for empty URL")
	}
}

func TestMetaCommand_Args(t *testing.T) {
	fakeYtdlp(t)

	cmd, err := builder.NewPlaylistMetaCommandBuilder("https://example.com/playlist?list=x", "/tmp/cookies.txt").MetaCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"-J", "--flat-playlist", "--skip-download", "--cookies", "/tmp/cookies.txt"} {
		if !slices.Contains(cmd.Args, want) {
			t.Fatalf("expected argument %q in %v", want, cmd.Args)
		}
	}
	if slices.Contains(cmd.Args, "--no-playlist") {
		t.Fatalf("playlist probe must allow playlist resolution: %v", cmd.Args)
	}
}
