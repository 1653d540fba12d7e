package detect

import (
	"context"
	"strings"
	"time"

	"github.com/fatih/semgroup"
	"github.com/gitleaks/go-gitdiff/gitdiff"

	"leakgate/git"
	"leakgate/models"
)

// ScanGitHistory replays the repository history and evaluates every added
// line of every commit. Deleted and binary files are skipped, as are files
// matched by an exclude rule. The existence check does not apply here: the
// scanned content comes from the diff stream, not the worktree.
func (d *Detector) ScanGitHistory(source string) (models.Report, error) {
	diffFiles, err := git.Log(source)
	if err != nil {
		return models.Report{}, err
	}

	seen := make(map[string]bool)
	s := semgroup.NewGroup(context.Background(), int64(d.MaxWorkers))
	for diffFile := range diffFiles {
		diffFile := diffFile
		if diffFile.IsBinary || diffFile.IsDelete {
			continue
		}
		if d.Config.Allowlist.PathAllowed(diffFile.NewName) {
			continue
		}
		seen[diffFile.NewName] = true

		s.Go(func() error {
			for _, fragment := range diffFile.TextFragments {
				if fragment == nil {
					continue
				}
				added := strings.Split(fragment.Raw(gitdiff.OpAdd), "\n")
				base := int(fragment.NewPosition)
				for n, line := range added {
					for _, finding := range d.EvaluateLine(diffFile.NewName, base+n, line) {
						d.addFinding(augmentGitFinding(finding, diffFile))
					}
				}
			}
			return nil
		})
	}
	if err := s.Wait(); err != nil {
		return models.Report{}, err
	}

	report := models.Report{
		FilesScanned: len(seen),
		Findings:     d.findings,
	}
	report.Finalize()
	return report, nil
}

func augmentGitFinding(finding models.Finding, f *gitdiff.File) models.Finding {
	if f.PatchHeader == nil {
		return finding
	}
	finding.Commit = f.PatchHeader.SHA
	finding.Message = f.PatchHeader.Message()
	if f.PatchHeader.Author != nil {
		finding.Author = f.PatchHeader.Author.Name
		finding.Email = f.PatchHeader.Author.Email
	}
	finding.Date = f.PatchHeader.AuthorDate.UTC().Format(time.RFC3339)
	return finding
}
