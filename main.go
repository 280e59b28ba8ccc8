package main

import (
	"fmt"
	"os"
	"time"

	"audiozip/internal/cfg"
	"audiozip/internal/domain/keys"
	"audiozip/internal/downloads"
	"audiozip/internal/playlist"
	"audiozip/internal/server"
	"audiozip/internal/session"
	"audiozip/internal/utils/browser"
	"audiozip/internal/utils/fs"
	"audiozip/internal/utils/logging"

	"github.com/spf13/viper"
)

// youtubeHome anchors the cookie export domain.
const youtubeHome = "https://www.youtube.com"

var startTime time.Time

func init() {
	startTime = time.Now()
}

func main() {
	if err := cfg.InitCommands(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cfg.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !viper.GetBool("execute") {
		return // Exit early if not meant to execute
	}

	settings, err := cfg.EffectiveSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := fs.EnsureDir(settings.OutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create working directory: %v\n", err)
		os.Exit(1)
	}

	logging.Level = viper.GetInt(keys.DebugLevel)
	if err := logging.SetupLogging(settings.OutputDir); err != nil {
		fmt.Printf("Notice: log file was not created: %v\n", err)
	}

	logging.I("audiozip started at: %v", startTime.Format("2006-01-02 15:04:05.00 MST"))
	logging.I("Working directory: %s", settings.OutputDir)

	// Browser cookies are optional; a failed export degrades to
	// cookie-less operation. The export lives outside the working
	// directory so per-run cleanup never removes it.
	var cookieFile string
	if settings.CookieSource != "" {
		cookieDir, err := browser.ExportDir()
		if err != nil {
			logging.W("Cookie export skipped: %v", err)
		} else {
			cookieFile, err = browser.ExportCookies(cookieDir, settings.CookieSource, youtubeHome)
			if err != nil {
				logging.W("Cookie export from %q failed, continuing without cookies: %v", settings.CookieSource, err)
				cookieFile = ""
			}
		}
	}

	worker := downloads.NewWorker(settings, cookieFile)
	expander := playlist.NewExpander(settings.PlaylistLimit, cookieFile)
	sess := session.New(settings, worker, expander)

	if err := server.StartServer(sess, settings, viper.GetString(keys.ServePort)); err != nil {
		logging.E("Server failed: %v", err)
		os.Exit(1)
	}

	logging.I("audiozip stopped after %.2f seconds", time.Since(startTime).Seconds())
}
