package detect

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"leakgate/models"
)

const maxSnippetLength = 80

var (
	secretStyle = lipgloss.NewStyle().
			Bold(true).
			Italic(true).
			Foreground(lipgloss.Color("#f05c07"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5d445"))
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71"))
	failStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f05c07"))
)

// WriteReport renders the scan outcome: every finding in order, a summary
// line, and on failure the remediation guidance.
func WriteReport(w io.Writer, report models.Report) {
	for _, f := range report.Findings {
		fmt.Fprintf(w, "%s:%d  %s  %s\n",
			f.File, f.StartLine,
			categoryStyle.Render("["+f.Description+"]"),
			snippet(f))
	}

	if report.Verdict == models.VerdictPass {
		fmt.Fprintf(w, "%s no leaks found (%d files scanned)\n",
			passStyle.Render("PASS"), report.FilesScanned)
		return
	}

	fmt.Fprintf(w, "%s %d potential leak(s) in %d scanned file(s)\n",
		failStyle.Render("FAIL"), len(report.Findings), report.FilesScanned)
	fmt.Fprintln(w, "\nTo resolve:")
	fmt.Fprintln(w, "  - remove the secret; if it was ever committed, rotate it")
	fmt.Fprintf(w, "  - for a false positive, append %q to the line or add an\n", allowSignature)
	fmt.Fprintln(w, "    allowlist regex to your config file")
	fmt.Fprintln(w, "  - docs and samples should use placeholders like YOUR_API_KEY_HERE")
}

// PrintFinding writes one finding in the verbose multi-line format.
func PrintFinding(w io.Writer, f models.Finding) {
	fmt.Fprintf(w, "%-12s %s\n", "Finding:", snippet(f))
	fmt.Fprintf(w, "%-12s %s\n", "Secret:", secretStyle.Render(truncate(strings.TrimSpace(f.Secret), 100)))
	fmt.Fprintf(w, "%-12s %s\n", "RuleID:", f.RuleID)
	fmt.Fprintf(w, "%-12s %d\n", "Entropy:", f.Entropy)
	fmt.Fprintf(w, "%-12s %s\n", "File:", f.File)
	fmt.Fprintf(w, "%-12s %d\n", "Line:", f.StartLine)
	if f.Commit != "" {
		fmt.Fprintf(w, "%-12s %s\n", "Commit:", f.Commit)
		fmt.Fprintf(w, "%-12s %s\n", "Author:", f.Author)
		fmt.Fprintf(w, "%-12s %s\n", "Email:", f.Email)
		fmt.Fprintf(w, "%-12s %s\n", "Date:", f.Date)
	}
	fmt.Fprintf(w, "%-12s %s\n", "Fingerprint:", f.Fingerprint)
	fmt.Fprintln(w)
}

// snippet is the originating line with the match highlighted, truncated
// around the match so long lines stay readable.
func snippet(f models.Finding) string {
	line := strings.TrimSpace(f.Line)
	idx := strings.Index(line, f.Match)
	if idx < 0 {
		return truncate(line, maxSnippetLength)
	}

	before := line[:idx]
	if len(before) > 20 {
		before = "..." + before[len(before)-20:]
	}
	after := line[idx+len(f.Match):]
	if len(after) > 20 {
		after = after[:20] + "..."
	}
	return before + secretStyle.Render(truncate(f.Match, maxSnippetLength)) + after
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
