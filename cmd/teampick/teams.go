package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abcgmn74-spec/teampick/internal/config"
)

func teamsCmd() *cobra.Command {
	var showAliases bool

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List the canonical team registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			reg := newRegistry(cfg)
			for _, t := range reg.Teams() {
				fmt.Println(t)
			}

			if showAliases {
				fmt.Println()
				for _, p := range reg.AliasPairs() {
					fmt.Printf("%-25s -> %s\n", p[0], p[1])
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAliases, "aliases", false, "Also list the static alias dictionary")

	return cmd
}
