package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apal9569/robodev-agent/internal/config"
	"github.com/apal9569/robodev-agent/internal/profile"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "robodev",
	Short: "Robotics engineering copilot",
	Long:  "robodev pairs a local generation backend with your engineering profile: daily news digests, brainstorming, code generation, and build diagnosis.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(brainstormCmd)
	rootCmd.AddCommand(codegenCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(shellCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("robodev %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// loadProfile reads the user profile from its fixed location.
func loadProfile() (profile.Profile, error) {
	p, err := profile.Load(config.ProfilePath())
	if err != nil {
		return profile.Profile{}, fmt.Errorf("loading profile: %w", err)
	}
	return p, nil
}
