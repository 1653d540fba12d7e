package config

import (
	"regexp"
	"strings"
)

// Allowlist suppresses findings. Regexes match lines, Paths match file
// paths, StopWords match inside a candidate secret.
type Allowlist struct {
	Description string
	Regexes     []*regexp.Regexp
	Paths       []*regexp.Regexp
	StopWords   []string
}

// LineAllowed returns true if the line is allowed to be ignored. Regexes are
// compiled case-insensitive, see Translate.
func (a *Allowlist) LineAllowed(line string) bool {
	return anyRegexMatch(line, a.Regexes)
}

// PathAllowed returns true if the path is allowed to be ignored.
func (a *Allowlist) PathAllowed(path string) bool {
	return anyRegexMatch(path, a.Paths)
}

// ContainsStopWord reports whether s contains any stop word.
func (a *Allowlist) ContainsStopWord(s string) bool {
	s = strings.ToLower(s)
	for _, stopWord := range a.StopWords {
		if strings.Contains(s, strings.ToLower(stopWord)) {
			return true
		}
	}
	return false
}

func anyRegexMatch(s string, regexes []*regexp.Regexp) bool {
	for _, r := range regexes {
		if r.MatchString(s) {
			return true
		}
	}
	return false
}
