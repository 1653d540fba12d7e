package config

import (
	"fmt"
	"regexp"
	"strings"
)

// ViperConfig is the TOML-shaped view of the catalog, as unmarshalled by
// viper before regexes are compiled.
type ViperConfig struct {
	Title     string
	Rules     []ViperRule
	Allowlist ViperAllowlist
}

type ViperRule struct {
	ID          string
	Description string
	Regex       string
	Confidence  string
	Keywords    []string
}

type ViperAllowlist struct {
	Description string
	Regexes     []string
	Paths       []string
	StopWords   []string
}

// Config is the compiled, immutable catalog handed to the detector. Rule
// order is preserved from the source config: the first matching rule on a
// line determines the reported category.
type Config struct {
	Rules     []Rule
	Allowlist Allowlist
	// Keywords is the union of all rule keywords, used to build the
	// prefilter automaton.
	Keywords []string
	// Path of the user-supplied config file, empty when running on the
	// built-in catalog. The file itself is never scanned.
	Path string
}

// Translate compiles the string regexes into a Config. Any regex that fails
// to compile is a configuration error and aborts the whole scan; silently
// dropping a broken pattern would silently weaken detection.
func (vc *ViperConfig) Translate() (Config, error) {
	var (
		rules    []Rule
		keywords []string
	)
	for _, vr := range vc.Rules {
		if vr.Regex == "" {
			return Config{}, fmt.Errorf("rule %s has no regex", vr.ID)
		}
		re, err := regexp.Compile(vr.Regex)
		if err != nil {
			return Config{}, fmt.Errorf("rule %s: %w", vr.ID, err)
		}
		confidence, err := parseConfidence(vr.Confidence)
		if err != nil {
			return Config{}, fmt.Errorf("rule %s: %w", vr.ID, err)
		}
		var ruleKeywords []string
		for _, k := range vr.Keywords {
			k = strings.ToLower(k)
			ruleKeywords = append(ruleKeywords, k)
			keywords = append(keywords, k)
		}
		rules = append(rules, Rule{
			RuleID:      vr.ID,
			Description: vr.Description,
			Regex:       re,
			Confidence:  confidence,
			Keywords:    ruleKeywords,
		})
	}

	allowlist := Allowlist{
		Description: vc.Allowlist.Description,
		StopWords:   vc.Allowlist.StopWords,
	}
	for _, s := range vc.Allowlist.Regexes {
		// allowlist matching is case-insensitive on the raw line
		re, err := regexp.Compile("(?i)" + s)
		if err != nil {
			return Config{}, fmt.Errorf("allowlist regex %q: %w", s, err)
		}
		allowlist.Regexes = append(allowlist.Regexes, re)
	}
	for _, s := range vc.Allowlist.Paths {
		re, err := regexp.Compile(s)
		if err != nil {
			return Config{}, fmt.Errorf("allowlist path %q: %w", s, err)
		}
		allowlist.Paths = append(allowlist.Paths, re)
	}

	return Config{Rules: rules, Allowlist: allowlist, Keywords: keywords}, nil
}

func parseConfidence(s string) (Confidence, error) {
	switch strings.ToLower(s) {
	case "high":
		return AlwaysHigh, nil
	case "", "entropy":
		return EntropyGated, nil
	default:
		return EntropyGated, fmt.Errorf("unknown confidence %q", s)
	}
}
