// Copyright Zainab Saad, 2026. All rights reserved.

// Package main is the entry point for the bankassist CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// stringSetting resolves a string setting: explicit flag, then config key,
// then fallback.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

// sliceSetting resolves a string-slice setting the same way.
func sliceSetting(cmd *cobra.Command, flag, key string, fallback []string) []string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetStringSlice(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetStringSlice(key)
	}
	return fallback
}

// intSetting resolves an int setting the same way.
func intSetting(cmd *cobra.Command, flag, key string, fallback int) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

// rootCmd is the base command for the bankassist CLI.
var rootCmd = &cobra.Command{
	Use:   "bankassist",
	Short: "Convert bank product Q&A workbooks into retrieval-ready Markdown",
	Long: `bankassist converts bank product Q&A workbooks into Markdown blocks suitable
for retrieval. Each block carries a detected question, the formatted answer
(bulleted lists or pipe tables), and provenance frontmatter; account numbers,
card numbers, and other sensitive values are redacted on the way through.

Each stage is a subcommand: convert turns a workbook into a block document,
knowledge indexes block documents into a local SQLite database with full-text
search, and preview renders a block document as HTML for review.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bankassist.yaml or ~/.config/bankassist/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bankassist")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bankassist"))
		}
	}

	viper.SetEnvPrefix("BANKASSIST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
