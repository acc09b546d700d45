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

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, learning store, history, and DB",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Learning store ===")
			fmt.Printf("  Path: %s\n", cfg.StorePath)
			store, err := learn.Open(cfg.StorePath, cfg.HistoryPath)
			switch {
			case errors.Is(err, learn.ErrCorruptStore):
				fmt.Println("  Status: CORRUPT - restore from history or remove the file")
				fmt.Printf("  Detail: %v\n", err)
			case err != nil:
				fmt.Printf("  Status: ERROR (%v)\n", err)
			default:
				if _, statErr := os.Stat(cfg.StorePath); os.IsNotExist(statErr) {
					fmt.Println("  Status: not created yet (empty mapping)")
				} else {
					fmt.Printf("  Status: OK (%d learned mappings)\n", store.Len())
				}
			}

			fmt.Println("\n=== History ===")
			fmt.Printf("  Path: %s\n", cfg.HistoryPath)
			if store != nil {
				entries, err := store.History()
				if err != nil {
					fmt.Printf("  Status: ERROR (%v)\n", err)
				} else {
					fmt.Printf("  Entries: %d\n", len(entries))
				}
			}

			fmt.Println("\n=== Database ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'teampick parse' first)")
				return nil
			}

			db, err := report.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			runs, err := db.RunCount()
			if err != nil {
				return fmt.Errorf("count runs: %w", err)
			}
			records, err := db.RecordCount()
			if err != nil {
				return fmt.Errorf("count records: %w", err)
			}
			unknowns, err := db.AggregateUnknowns()
			if err != nil {
				return fmt.Errorf("aggregate unknowns: %w", err)
			}

			fmt.Printf("  Parsed exports: %d\n", runs)
			fmt.Printf("  User records:   %d\n", records)
			fmt.Printf("  Worklist size:  %d distinct tokens\n", len(unknowns))

			if info, err := os.Stat(cfg.DBPath); err == nil {
				fmt.Printf("\n=== DB Size: %.1f KB ===\n", float64(info.Size())/1024)
			}
			return nil
		},
	}
}
