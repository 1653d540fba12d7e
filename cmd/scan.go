package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"leakgate/config"
	"leakgate/detect"
	"leakgate/models"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a repository history or a directory tree.",
	Long: `Scan a full git history (or, with --no-git, a directory tree) for exposed
application secrets such as API tokens or passwords.`,
	Run: func(cmd *cobra.Command, args []string) {
		scan(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Bool("no-git", false, "scan the directory tree instead of the git history")
}

func scan(cmd *cobra.Command) {
	start := time.Now()
	fmt.Printf("%s %s scanning for exposed secrets...\n", start.Format("03:04PM"), config.Green("INF"))

	cfg := loadConfig(cmd)
	detector := detect.NewDetector(cfg)
	detector.Verbose, _ = cmd.Flags().GetBool("verbose")
	detector.Redact, _ = cmd.Flags().GetBool("redact")

	source, _ := cmd.Flags().GetString("source")
	if source == "" {
		var err error
		source, err = os.Getwd()
		if err != nil {
			log.Fatal().Err(err).Msg("could not determine working directory")
		}
	}

	var (
		report models.Report
		err    error
	)
	if noGit, _ := cmd.Flags().GetBool("no-git"); noGit {
		report, err = detector.ScanDir(source)
	} else {
		report, err = detector.ScanGitHistory(source)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("scan failed")
	}

	fmt.Printf("%s %s scan completed in %dms\n",
		time.Now().Format("03:04PM"), config.Green("INF"), time.Since(start).Milliseconds())
	detect.WriteReport(os.Stdout, report)
	if report.Verdict == models.VerdictFail {
		os.Exit(1)
	}
}
