// Package git supplies the changed-file inputs for a scan. The engine never
// talks to git itself; it only consumes the file lists and diff streams
// produced here, so tests can feed it fixed inputs instead.
package git

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/gitleaks/go-gitdiff/gitdiff"
	"github.com/rs/zerolog/log"
)

// StagedFiles returns the paths staged for the pending commit, restricted to
// added, copied, and modified files. Paths are relative to the repository
// root and returned in git's output order.
func StagedFiles(source string) ([]string, error) {
	sourceClean := filepath.Clean(source)
	cmd := exec.Command("git", "-C", sourceClean,
		"diff", "--cached", "--name-only", "--diff-filter=ACM", "-z")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff --cached: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return parseFileList(out), nil
}

// parseFileList splits NUL-terminated git output into paths.
func parseFileList(out []byte) []string {
	var files []string
	for _, p := range bytes.Split(out, []byte{0}) {
		if len(p) > 0 {
			files = append(files, string(p))
		}
	}
	return files
}

// Log streams the full repository history as parsed diff files.
func Log(source string) (<-chan *gitdiff.File, error) {
	sourceClean := filepath.Clean(source)
	cmd := exec.Command("git", "-C", sourceClean,
		"log", "-p", "-U0", "--full-history", "--all")
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}

	go drainStderr(stderr)

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	time.Sleep(50 * time.Millisecond)
	return gitdiff.Parse(stdout)
}

// Rename-detection notices are expected on big histories and only worth a
// warning; anything else git says on stderr is an error.
func drainStderr(stderr io.ReadCloser) {
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "rename detection was skipped") ||
			strings.Contains(line, "diff.renameLimit") {
			log.Warn().Msg(line)
			continue
		}
		log.Error().Str("source", "git").Msg(line)
	}
}
