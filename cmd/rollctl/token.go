package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/handlers"
)

func newTokenCmd(opts *options) *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Work with roll button tokens",
	}

	decodeCmd := &cobra.Command{
		Use:   "decode [custom-id]",
		Short: "Decode the custom ID of a roll button",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := handlers.ParseRollToken(args[0])
			if err != nil {
				return err
			}

			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			known := "yes"
			if _, err := catalog.Parse(token.DiceSet); err != nil {
				known = "no"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "action:   %s (%s)\n", token.Kind, token.Kind.Label())
			fmt.Fprintf(out, "owner:    %s\n", token.OwnerID)
			fmt.Fprintf(out, "dice set: %s (known: %s)\n", token.DiceSet, known)
			return nil
		},
	}

	tokenCmd.AddCommand(decodeCmd)
	return tokenCmd
}
