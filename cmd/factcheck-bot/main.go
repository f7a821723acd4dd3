// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the factcheck-bot CLI. The bot
// receives Telegram messages over a webhook, searches the web for sources
// corroborating the message's claim, ranks them for relevance with a
// language model, and replies with a digest. The serve subcommand runs the
// webhook service; check runs the pipeline once from the command line;
// webhook manages the Bot API registration.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/factcheck-bot/internal/secrets"
	"github.com/pdiddy/factcheck-bot/internal/telegram"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the factcheck-bot CLI.
var rootCmd = &cobra.Command{
	Use:   "factcheck-bot",
	Short: "Telegram fact-checking assistant",
	Long: `factcheck-bot extracts a verifiable claim from a chat message, searches
the web for corroborating sources, scores them for relevance against the
claim, and replies with a ranked digest.

Run the webhook service with serve; try the pipeline on a piece of text
with check; register or remove the webhook with webhook set / delete.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./factcheck-bot.yaml or ~/.config/factcheck-bot/config.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets/", "directory of credential files")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("factcheck-bot")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "factcheck-bot"))
		}
	}

	viper.SetEnvPrefix("FACTCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("http.timeout", 10*time.Second)
	viper.SetDefault("http.user_agent", "factcheck-bot/"+version)
	viper.SetDefault("search.max_results", 10)
	viper.SetDefault("scoring.max_claim_len", 2000)
	viper.SetDefault("telegram.api_base", telegram.DefaultAPIBase)
	viper.SetDefault("telegram.max_attempts", 3)
	viper.SetDefault("telegram.retry_delay", time.Second)
	viper.SetDefault("pipeline.max_query_len", 100)
	viper.SetDefault("pipeline.min_score", 20)
	viper.SetDefault("pipeline.max_sources", 3)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.max_concurrent_runs", 16)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the service logger; --debug lowers the level.
func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if viper.GetBool("debug") {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
