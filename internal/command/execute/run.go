// Package execute runs built yt-dlp commands and decodes their output.
package execute

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"audiozip/internal/domain/consts"
	"audiozip/internal/models"
	"audiozip/internal/utils/logging"
)

// errDetailLimit caps how much stderr is folded into a returned error.
const errDetailLimit = 500

// FetchJSON runs the command and decodes the JSON document it prints to
// stdout.
func FetchJSON(cmd *exec.Cmd) (*models.MediaInfo, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.D(1, "Executing command: %s", cmd.String())

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s failed: %v: %s", consts.YtDLP, err, errDetail(&stderr))
	}

	if stdout.Len() == 0 {
		return nil, fmt.Errorf("%s returned no metadata: %s", consts.YtDLP, errDetail(&stderr))
	}

	var info models.MediaInfo
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return nil, fmt.Errorf("failed to decode %s output: %w", consts.YtDLP, err)
	}
	return &info, nil
}

// Version probes the installed yt-dlp version.
func Version() (string, error) {
	out, err := exec.Command(consts.YtDLP, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("failed to probe %s version: %w", consts.YtDLP, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// errDetail condenses captured stderr into a single error detail string.
func errDetail(stderr *bytes.Buffer) string {
	s := strings.TrimSpace(stderr.String())
	if s == "" {
		return "(no stderr output)"
	}
	if len(s) > errDetailLimit {
		s = s[:errDetailLimit]
	}
	return s
}
