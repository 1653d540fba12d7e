package config

import (
	"regexp"
)

// Confidence classifies how a rule match is gated before it is reported.
type Confidence int

const (
	// EntropyGated matches are reported only when the matched text scores
	// above the distinct-character threshold.
	EntropyGated Confidence = iota
	// AlwaysHigh matches are reported unconditionally. Used for inherently
	// high-signal shapes such as private-key headers and vendor token
	// prefixes (AWS, GitHub, Stripe, Google, Slack).
	AlwaysHigh
)

// Rule defines one secret signature: a compiled regex, a reporting category,
// and the confidence class deciding whether matches are entropy gated.
type Rule struct {
	RuleID      string
	Description string
	Regex       *regexp.Regexp
	Confidence  Confidence
	// Keywords are lowercase prefilter tokens. A rule with keywords is only
	// evaluated against lines containing at least one of them.
	Keywords []string
}
