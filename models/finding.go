package models

import "strings"

// Finding is one suspected secret occurrence at a specific file and line.
type Finding struct {
	Description string
	RuleID      string
	File        string
	// StartLine is 1-based.
	StartLine int
	Line      string `json:"-"`
	Match     string
	Secret    string
	// Entropy is the distinct-character score of the matched secret.
	Entropy     int
	Commit      string
	Author      string
	Email       string
	Date        string
	Message     string
	Fingerprint string
}

// Redact removes sensitive information from a finding.
func (f *Finding) Redact() {
	f.Line = strings.Replace(f.Line, f.Secret, "REDACTED", -1)
	f.Match = strings.Replace(f.Match, f.Secret, "REDACTED", -1)
	f.Secret = "REDACTED"
}

type Verdict string

const (
	VerdictPass Verdict = "PASS"
	VerdictFail Verdict = "FAIL"
)

// Report is the outcome of one scan: every finding in input order plus the
// final accept/reject verdict.
type Report struct {
	FilesScanned int
	Findings     []Finding
	Verdict      Verdict
}

// Finalize sets the verdict from whether any finding exists.
func (r *Report) Finalize() {
	if len(r.Findings) > 0 {
		r.Verdict = VerdictFail
	} else {
		r.Verdict = VerdictPass
	}
}
