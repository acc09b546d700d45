package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abcgmn74-spec/teampick/internal/config"
	"github.com/abcgmn74-spec/teampick/internal/learn"
	"github.com/abcgmn74-spec/teampick/internal/resolve"
	"github.com/abcgmn74-spec/teampick/internal/team"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "teampick",
		Short:   "Team-pick parser - extract and normalize team picks from chat exports",
		Version: version,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(unknownsCmd())
	rootCmd.AddCommand(reviewCmd())
	rootCmd.AddCommand(learnCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(restoreCmd())
	rootCmd.AddCommand(teamsCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRegistry builds the canonical registry with config extras merged in.
func newRegistry(cfg *config.Config) *team.Registry {
	return team.NewRegistry(cfg.Teams.Extra, cfg.Teams.Aliases)
}

// newResolver wires the session's resolver against the learned store.
func newResolver(cfg *config.Config, reg *team.Registry, store *learn.Store) *resolve.Resolver {
	return resolve.New(reg, store, nil, resolve.Options{
		FuzzyCutoff:     cfg.Resolver.FuzzyCutoff,
		MaxCommentLen:   cfg.Resolver.MaxCommentLen,
		CommentKeywords: cfg.Resolver.CommentKeywords,
	})
}
