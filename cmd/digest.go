package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apal9569/robodev-agent/internal/config"
	"github.com/apal9569/robodev-agent/internal/digest"
	"github.com/apal9569/robodev-agent/internal/feed"
	"github.com/apal9569/robodev-agent/internal/llm"
	"github.com/apal9569/robodev-agent/internal/mail"
)

var (
	flagDigestForce bool
	flagDigestEmail bool
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Build today's robotics news digest",
	Long: `Fetch the configured feeds, have the backend rank and summarize them
against your profile, and print a categorized report.

The digest is cached per calendar date; a second run on the same day
returns the cached report unless --force is given.`,
	RunE: runDigest,
}

func init() {
	digestCmd.Flags().BoolVar(&flagDigestForce, "force", false, "recompute even if today's digest is cached")
	digestCmd.Flags().BoolVar(&flagDigestEmail, "email", false, "email the digest via the configured transport")
}

func runDigest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	prof, err := loadProfile()
	if err != nil {
		return err
	}

	cache, err := digest.OpenCache(config.DigestCacheDir())
	if err != nil {
		return err
	}

	b := &digest.Builder{
		Fetcher: feed.NewFetcher(cfg.PerFeedCap()),
		Client:  llm.New(cfg.Host(), prof.Model, prof.TaskModels),
		Cache:   cache,
		Profile: prof,
		Feeds:   cfg.EnabledFeeds(),
		Logf: func(format string, a ...any) {
			fmt.Printf(format+"\n", a...)
		},
	}
	if flagDigestEmail {
		b.Mailer = mail.Dispatcher{ConfigPath: config.MailConfigPath()}
	}

	out, err := b.Build(context.Background(), digest.Options{
		Force: flagDigestForce,
		Email: flagDigestEmail,
	})
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
