package detect

const (
	// minSecretLength is the shortest match worth scoring. Anything shorter
	// is too short to be meaningfully random and scores 0.
	minSecretLength = 16

	// diversityThreshold is the distinct-character count a match must exceed
	// to be considered high confidence.
	diversityThreshold = 8
)

// Diversity returns the number of distinct characters in s, or 0 when s is
// shorter than minSecretLength. This is a cheap proxy for randomness, not
// Shannon entropy: it accepts false negatives on short, low-variety secrets
// in exchange for almost no work per line.
func Diversity(s string) int {
	if len(s) < minSecretLength {
		return 0
	}
	seen := make(map[rune]struct{})
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}
