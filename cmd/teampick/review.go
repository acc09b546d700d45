package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abcgmn74-spec/teampick/internal/config"
	"github.com/abcgmn74-spec/teampick/internal/learn"
	"github.com/abcgmn74-spec/teampick/internal/report"
	"github.com/abcgmn74-spec/teampick/internal/tui"
)

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Interactively map unknown tokens to canonical teams",
		Long: `Opens a TUI over the unknown-token worklist. Select tokens with space,
switch to the team panel with tab, and apply with enter. Every apply is
persisted atomically and recorded in the history log.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			store, err := learn.Open(cfg.StorePath, cfg.HistoryPath)
			if err != nil {
				return fmt.Errorf("open learning store: %w", err)
			}

			db, err := report.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			unknowns, err := db.AggregateUnknowns()
			if err != nil {
				return fmt.Errorf("aggregate unknowns: %w", err)
			}
			if len(unknowns) == 0 {
				fmt.Fprintln(os.Stderr, "Worklist is empty; parse an export first.")
				return nil
			}

			reg := newRegistry(cfg)
			applied, err := tui.Run(store, db, unknowns, reg.Teams())
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Committed %d corrections.\n", applied)
			return nil
		},
	}
}
