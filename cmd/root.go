package cmd

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"leakgate/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "leakgate",
	Short: "scan for leaked credentials before they reach source control.",
	Long: `leakgate inspects text for leaked credentials such as API keys, tokens,
and private keys, and rejects a pending commit when it finds one.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	rootCmd.PersistentFlags().StringP("source", "s", ".", "path to the repository or directory to scan")
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to a TOML config overriding the built-in catalog")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "show each finding as it is found (file, line, secret)")
	rootCmd.PersistentFlags().Bool("redact", false, "redact secrets from output")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}

// loadConfig reads the catalog: the built-in TOML unless --config points at
// a user-supplied file. A config that fails to parse or compile aborts the
// run before any file is scanned; silently skipping a broken pattern would
// silently weaken detection.
func loadConfig(cmd *cobra.Command) config.Config {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	v := viper.New()
	v.SetConfigType("toml")
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("unable to load scan config")
		}
	} else if err := v.ReadConfig(strings.NewReader(config.DefaultConfig)); err != nil {
		log.Fatal().Err(err).Msg("unable to load built-in scan config")
	}

	var vc config.ViperConfig
	if err := v.Unmarshal(&vc); err != nil {
		log.Fatal().Err(err).Msg("unable to unmarshal scan config")
	}
	cfg, err := vc.Translate()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid scan config")
	}
	cfg.Path = path
	return cfg
}
