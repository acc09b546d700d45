package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abcgmn74-spec/teampick/internal/config"
	"github.com/abcgmn74-spec/teampick/internal/learn"
)

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List correction history entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			store, err := learn.Open(cfg.StorePath, cfg.HistoryPath)
			if err != nil {
				return fmt.Errorf("open learning store: %w", err)
			}

			entries, err := store.History()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No history entries.")
				return nil
			}

			for i, e := range entries {
				fmt.Printf("%3d  %s  %-20s <- %s  (snapshot: %d mappings)\n",
					i, e.Time, e.MappedTo, strings.Join(e.RawItems, ", "), len(e.Snapshot))
			}
			return nil
		},
	}
}
