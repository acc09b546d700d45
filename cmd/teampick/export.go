package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abcgmn74-spec/teampick/internal/config"
	"github.com/abcgmn74-spec/teampick/internal/report"
)

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [file.txt]",
		Short: "Export stored records as CSV",
		Long: `Writes the stored records for the given export (default: the most
recently parsed one) as CSV to stdout or --out.`,
		Args: cobra.MaximumNArgs(1),
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

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				path, err = db.LatestRun()
				if err != nil {
					return fmt.Errorf("latest run: %w", err)
				}
				if path == "" {
					return fmt.Errorf("nothing parsed yet; run 'teampick parse' first")
				}
			}

			rows, err := db.GetRecords(path)
			if err != nil {
				return fmt.Errorf("load records: %w", err)
			}

			dst := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				dst = f
			}

			w := csv.NewWriter(dst)
			if err := w.Write(report.Header); err != nil {
				return err
			}
			for _, r := range rows {
				if err := w.Write([]string{r.Name, r.Contacts, r.Teams, r.Comments, r.Unresolved}); err != nil {
					return err
				}
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}

			if out != "" {
				fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", len(rows), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write CSV to this file instead of stdout")

	return cmd
}
