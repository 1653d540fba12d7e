package detect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/semgroup"
	"github.com/h2non/filetype"
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"github.com/rs/zerolog/log"

	"leakgate/config"
	"leakgate/models"
)

// allowSignature marks a line as a known false positive. Lines containing it
// are never reported.
const allowSignature = "leakgate:allow"

const defaultWorkers = 4

// ErrBinaryFile is returned by the default line reader for non-text content.
var ErrBinaryFile = errors.New("binary file")

// Detector applies the compiled catalog to lines of text. The catalog is
// read-only for the lifetime of the detector, so files may be evaluated in
// parallel.
type Detector struct {
	Config  config.Config
	Redact  bool
	Verbose bool

	// MaxWorkers bounds parallel file evaluation.
	MaxWorkers int

	// Stat reports whether path currently exists as a regular file.
	// Replaced in tests so scans run without touching the filesystem.
	Stat func(path string) bool

	// ReadLines returns the file's text lines. It returns ErrBinaryFile for
	// non-text content; any error skips the file without failing the scan.
	ReadLines func(path string) ([]string, error)

	prefilter    ahocorasick.AhoCorasick
	findingMutex sync.Mutex
	findings     []models.Finding
}

// NewDetector creates a detector for the given catalog.
func NewDetector(cfg config.Config) *Detector {
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})

	return &Detector{
		Config:     cfg,
		MaxWorkers: defaultWorkers,
		Stat:       statRegularFile,
		ReadLines:  readTextLines,
		prefilter:  builder.Build(cfg.Keywords),
	}
}

// EvaluateLine checks a single line against the catalog and returns at most
// one finding. Order of checks:
//
//  1. the inline allow signature and the allowlist regexes suppress the
//     whole line before any rule runs
//  2. rules are tried in catalog order; the first match that passes the
//     confidence gate wins and no further rules are tried, so a line is
//     reported under a single category
func (d *Detector) EvaluateLine(file string, lineNumber int, line string) []models.Finding {
	if line == "" {
		return nil
	}
	if strings.Contains(line, allowSignature) {
		return nil
	}
	if d.Config.Allowlist.LineAllowed(line) {
		return nil
	}

	keywords := d.lineKeywords(line)
	for _, rule := range d.Config.Rules {
		if len(rule.Keywords) > 0 && !containsAnyKeyword(keywords, rule.Keywords) {
			continue
		}
		loc := rule.Regex.FindStringIndex(line)
		if loc == nil {
			continue
		}
		secret := line[loc[0]:loc[1]]
		if d.Config.Allowlist.ContainsStopWord(secret) {
			continue
		}
		score := Diversity(secret)
		if rule.Confidence != config.AlwaysHigh && score <= diversityThreshold {
			continue
		}
		finding := models.Finding{
			Description: rule.Description,
			RuleID:      rule.RuleID,
			File:        file,
			StartLine:   lineNumber,
			Line:        line,
			Match:       secret,
			Secret:      secret,
			Entropy:     score,
		}
		if d.Redact {
			finding.Redact()
		}
		return []models.Finding{finding}
	}
	return nil
}

// Eligible reports whether path should be scanned at all: not matched by any
// exclude rule, not the config file itself, and currently a regular file.
func (d *Detector) Eligible(path string) bool {
	if d.Config.Allowlist.PathAllowed(path) {
		return false
	}
	if d.Config.Path != "" && path == d.Config.Path {
		return false
	}
	return d.Stat(path)
}

// Scan evaluates the given files in order and returns the final report.
// Files are processed in parallel but findings are assembled in input order,
// so the same input always yields the same report. Ineligible or unreadable
// files are skipped and not counted as scanned. An empty file list is a
// passing scan with zero files scanned.
func (d *Detector) Scan(paths []string) models.Report {
	results := make([][]models.Finding, len(paths))
	scanned := make([]bool, len(paths))

	s := semgroup.NewGroup(context.Background(), int64(d.MaxWorkers))
	for i, path := range paths {
		i, path := i, path
		s.Go(func() error {
			if !d.Eligible(path) {
				return nil
			}
			lines, err := d.ReadLines(path)
			if err != nil {
				log.Debug().Err(err).Str("file", path).Msg("skipping unreadable file")
				return nil
			}
			scanned[i] = true
			for n, line := range lines {
				results[i] = append(results[i], d.EvaluateLine(path, n+1, line)...)
			}
			return nil
		})
	}
	// workers never return errors; read failures are recovered per file
	_ = s.Wait()

	var report models.Report
	for i := range paths {
		if scanned[i] {
			report.FilesScanned++
		}
		for _, f := range results[i] {
			f.Fingerprint = fingerprint(f)
			if d.Verbose {
				PrintFinding(os.Stdout, f)
			}
			report.Findings = append(report.Findings, f)
		}
	}
	report.Finalize()
	return report
}

// ScanDir walks root and scans every regular file, skipping .git and empty
// files. Paths are collected first so the report order is the walk order.
func (d *Detector) ScanDir(root string) (models.Report, error) {
	var paths []string
	err := filepath.Walk(root,
		func(path string, fInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fInfo.Name() == ".git" && fInfo.IsDir() {
				return filepath.SkipDir
			}
			if fInfo.Size() == 0 {
				return nil
			}
			if fInfo.Mode().IsRegular() {
				paths = append(paths, path)
			}
			return nil
		})
	if err != nil {
		return models.Report{}, err
	}
	return d.Scan(paths), nil
}

func (d *Detector) lineKeywords(line string) map[string]bool {
	normalized := strings.ToLower(line)
	keywords := make(map[string]bool)
	for _, m := range d.prefilter.FindAll(normalized) {
		keywords[normalized[m.Start():m.End()]] = true
	}
	return keywords
}

func containsAnyKeyword(found map[string]bool, keywords []string) bool {
	for _, k := range keywords {
		if found[k] {
			return true
		}
	}
	return false
}

// addFinding synchronously adds a finding to the findings slice.
func (d *Detector) addFinding(finding models.Finding) {
	finding.Fingerprint = fingerprint(finding)
	d.findingMutex.Lock()
	d.findings = append(d.findings, finding)
	if d.Verbose {
		PrintFinding(os.Stdout, finding)
	}
	d.findingMutex.Unlock()
}

func fingerprint(f models.Finding) string {
	if f.Commit == "" {
		return fmt.Sprintf("%s:%s:%d", f.File, f.RuleID, f.StartLine)
	}
	return fmt.Sprintf("%s:%s:%s:%d", f.Commit, f.File, f.RuleID, f.StartLine)
}

func statRegularFile(path string) bool {
	fInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fInfo.Mode().IsRegular()
}

// readTextLines reads path and splits it into lines. Content sniffed as
// binary is rejected with ErrBinaryFile so it never reaches the evaluator.
func readTextLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mimetype, err := filetype.Match(b)
	if err != nil {
		return nil, err
	}
	if mimetype.MIME.Type == "application" {
		return nil, ErrBinaryFile
	}
	return strings.Split(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n"), nil
}
