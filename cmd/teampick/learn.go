package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abcgmn74-spec/teampick/internal/config"
	"github.com/abcgmn74-spec/teampick/internal/learn"
	"github.com/abcgmn74-spec/teampick/internal/report"
)

func learnCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "learn <token>...",
		Short: "Record that the given raw tokens mean a canonical team",
		Long: `Non-interactive correction: each token is normalized and mapped to the
given team, the mapping file is replaced atomically, and a history entry is
appended. Future resolutions of the tokens hit the learned mapping first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			reg := newRegistry(cfg)
			canonical, ok := reg.Canonical(target)
			if !ok {
				return fmt.Errorf("unknown team %q (see 'teampick teams')", target)
			}

			store, err := learn.Open(cfg.StorePath, cfg.HistoryPath)
			if err != nil {
				return fmt.Errorf("open learning store: %w", err)
			}

			n, err := store.ApplyCorrection(args, canonical)
			if errors.Is(err, learn.ErrNoSelection) {
				fmt.Fprintln(os.Stderr, "No tokens selected.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("apply correction: %w", err)
			}

			// drop the learned tokens from the review worklist
			if db, err := report.OpenDB(cfg.DBPath); err == nil {
				db.ClearUnknownTokens(args)
				db.Close()
			}

			fmt.Printf("Saved %d mappings -> %s\n", n, canonical)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "team", "", "Canonical team name (required)")
	cmd.MarkFlagRequired("team")

	return cmd
}
