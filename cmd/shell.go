package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apal9569/robodev-agent/internal/agent"
	"github.com/apal9569/robodev-agent/internal/config"
	"github.com/apal9569/robodev-agent/internal/llm"
	"github.com/apal9569/robodev-agent/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:     "shell",
	Aliases: []string{"i"},
	Short:   "Interactive mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		prof, err := loadProfile()
		if err != nil {
			return err
		}

		fmt.Printf("RoboDev interactive mode (model = %s, stack = %s)\n", prof.Model, prof.Stack)

		s := &shell.Shell{
			Agent:       agent.New(&prof, llm.New(cfg.Host(), prof.Model, prof.TaskModels)),
			Profile:     &prof,
			ProfilePath: config.ProfilePath(),
			In:          os.Stdin,
			Out:         os.Stdout,
		}
		return s.Run(context.Background())
	},
}
