package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abcgmn74-spec/teampick/internal/config"
	"github.com/abcgmn74-spec/teampick/internal/render"
	"github.com/abcgmn74-spec/teampick/internal/report"
)

func unknownsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unknowns",
		Short: "Show the unresolved-token worklist across all parsed exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
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

			if term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Print(render.Unknowns(unknowns))
			} else {
				fmt.Print(render.UnknownsTSV(unknowns))
			}
			return nil
		},
	}
}
