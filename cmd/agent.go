package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apal9569/robodev-agent/internal/agent"
	"github.com/apal9569/robodev-agent/internal/config"
	"github.com/apal9569/robodev-agent/internal/llm"
)

var (
	flagCodegenLang string
	flagCodegenOut  string
	flagCodegenXML  string
	flagDiagnoseLog string
)

func newAgent() (*agent.Agent, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	prof, err := loadProfile()
	if err != nil {
		return nil, err
	}
	return agent.New(&prof, llm.New(cfg.Host(), prof.Model, prof.TaskModels)), nil
}

var brainstormCmd = &cobra.Command{
	Use:   "brainstorm <query>",
	Short: "Brainstorm robotics approaches",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newAgent()
		if err != nil {
			return err
		}
		out, err := a.Brainstorm(context.Background(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var codegenCmd = &cobra.Command{
	Use:   "codegen <query>",
	Short: "Generate code, config, or URDF/SDF artifacts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newAgent()
		if err != nil {
			return err
		}
		out, err := a.Codegen(context.Background(), strings.Join(args, " "),
			flagCodegenLang, flagCodegenXML, flagCodegenOut)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [log text]",
	Short: "Analyze build/compile failures",
	RunE: func(cmd *cobra.Command, args []string) error {
		var logText string
		switch {
		case flagDiagnoseLog != "":
			data, err := os.ReadFile(flagDiagnoseLog)
			if err != nil {
				return fmt.Errorf("reading log file: %w", err)
			}
			logText = string(data)
		case len(args) > 0:
			logText = strings.Join(args, " ")
		default:
			return fmt.Errorf("provide log text or --log <file>")
		}

		a, err := newAgent()
		if err != nil {
			return err
		}
		out, err := a.Diagnose(context.Background(), logText)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	codegenCmd.Flags().StringVar(&flagCodegenLang, "lang", "python", "language for generated code (python, cpp)")
	codegenCmd.Flags().StringVar(&flagCodegenOut, "out", "./generated", "output directory for generated files")
	codegenCmd.Flags().StringVar(&flagCodegenXML, "xml", "none", "XML artifact type (none, urdf, sdf)")
	diagnoseCmd.Flags().StringVar(&flagDiagnoseLog, "log", "", "path to a build log file")
}
