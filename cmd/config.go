package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apal9569/robodev-agent/internal/config"
	"github.com/apal9569/robodev-agent/internal/profile"
)

var (
	flagConfigShow bool
	flagConfigSet  []string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update your engineering profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		prof, err := loadProfile()
		if err != nil {
			return err
		}

		if len(flagConfigSet) > 0 {
			for _, kv := range flagConfigSet {
				key, value, ok := strings.Cut(kv, "=")
				if !ok {
					continue
				}
				value = strings.Trim(strings.TrimSpace(value), `"'`)
				if err := prof.Set(strings.TrimSpace(key), value); err != nil {
					return err
				}
			}
			if err := profile.Save(config.ProfilePath(), prof); err != nil {
				return fmt.Errorf("saving profile: %w", err)
			}
			fmt.Println("Updated configuration.")
			fmt.Println()
		}

		fmt.Println(prof.Pretty())
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigShow, "show", false, "show the current profile")
	configCmd.Flags().StringArrayVar(&flagConfigSet, "set", nil, `key=value pairs, e.g. --set stack=ROS2 --set sim=Gazebo`)
}
