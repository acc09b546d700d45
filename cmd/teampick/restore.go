package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abcgmn74-spec/teampick/internal/config"
	"github.com/abcgmn74-spec/teampick/internal/learn"
)

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <history-index>",
		Short: "Roll the learned mapping back to a history snapshot",
		Long: `Replaces the learned mapping wholesale with the snapshot stored at the
given history index (see 'teampick history') and persists the replacement
atomically. Corrections made after that entry are discarded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid history index %q", args[0])
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			store, err := learn.Open(cfg.StorePath, cfg.HistoryPath)
			if err != nil {
				return fmt.Errorf("open learning store: %w", err)
			}

			if err := store.Restore(index); err != nil {
				return fmt.Errorf("restore: %w", err)
			}

			fmt.Printf("Restored snapshot %d (%d mappings).\n", index, store.Len())
			return nil
		},
	}
}
