package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abcgmn74-spec/teampick/internal/config"
	"github.com/abcgmn74-spec/teampick/internal/learn"
	"github.com/abcgmn74-spec/teampick/internal/render"
	"github.com/abcgmn74-spec/teampick/internal/report"
)

func parseCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "parse <file.txt>",
		Short: "Parse a chat export into per-user team-pick records",
		Long: `Segments the export into per-user blocks, classifies each line, resolves
team candidates against the learned mapping, alias dictionary and canonical
list, and stores the result. Output is an aligned table on a terminal and
TSV when piped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			store, err := learn.Open(cfg.StorePath, cfg.HistoryPath)
			if err != nil {
				return fmt.Errorf("open learning store: %w", err)
			}

			reg := newRegistry(cfg)
			resolver := newResolver(cfg, reg, store)

			db, err := report.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			res, cached, err := report.ImportFile(db, args[0], func(text string) *report.Result {
				return report.Build(text, cfg.Classifier.AccountKeywords, resolver)
			}, force)
			if err != nil {
				return err
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Print(render.Records(res))
			} else {
				fmt.Print(render.RecordsTSV(res))
			}

			status := res.Summary()
			if cached {
				status += " [cached; file unchanged]"
			}
			fmt.Fprintln(os.Stderr, status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-parse even if the file is unchanged")

	return cmd
}
