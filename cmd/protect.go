package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"leakgate/config"
	"leakgate/detect"
	"leakgate/git"
	"leakgate/models"
)

var protectCmd = &cobra.Command{
	Use:   "protect",
	Short: "Scan staged changes before they are committed.",
	Long: `Scan the files staged for the pending commit and reject the commit when a
suspected secret is found. Intended to run as a pre-commit hook: exits 0 when
the scan passes and 1 when it fails.`,
	Run: func(cmd *cobra.Command, args []string) {
		protect(cmd)
	},
}

func init() {
	rootCmd.AddCommand(protectCmd)
}

func protect(cmd *cobra.Command) {
	start := time.Now()
	fmt.Printf("%s %s scanning staged changes...\n", start.Format("03:04PM"), config.Green("INF"))

	cfg := loadConfig(cmd)
	detector := detect.NewDetector(cfg)
	detector.Verbose, _ = cmd.Flags().GetBool("verbose")
	detector.Redact, _ = cmd.Flags().GetBool("redact")

	source, _ := cmd.Flags().GetString("source")
	files, err := git.StagedFiles(source)
	if err != nil {
		log.Fatal().Err(err).Msg("could not list staged files")
	}
	// staged paths are relative to the repository root
	for i, f := range files {
		files[i] = filepath.Join(source, f)
	}
	if len(files) == 0 {
		fmt.Printf("%s %s no staged files to scan\n", time.Now().Format("03:04PM"), config.Green("INF"))
		return
	}

	report := detector.Scan(files)
	fmt.Printf("%s %s scan completed in %dms\n",
		time.Now().Format("03:04PM"), config.Green("INF"), time.Since(start).Milliseconds())
	detect.WriteReport(os.Stdout, report)
	if report.Verdict == models.VerdictFail {
		os.Exit(1)
	}
}
