package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		count   int
		setName string
		then    []string
	)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Roll dice and print the message the bot would post",
		Long: `Roll dice and print the message the bot would post. Follow-ups given
with --then are applied in order, for example:

  rollctl render --dice 3 --set pips --then reroll,all_in`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, cleanup, err := opts.provider()
			if err != nil {
				return err
			}
			defer cleanup()

			set := provider.Catalog.Default()
			if setName != "" {
				if set, err = provider.Catalog.Parse(setName); err != nil {
					return fmt.Errorf("unknown dice set %q, choose one of %v", setName, provider.Catalog.Names())
				}
			}

			h, err := provider.RollerService.Roll(count)
			if err != nil {
				return err
			}

			for _, name := range then {
				kind, err := roll.ParseFollowUp(strings.TrimSpace(name))
				if err != nil {
					return err
				}
				if err := provider.RollerService.Apply(h, kind); err != nil {
					return fmt.Errorf("%s: %w", kind.Label(), err)
				}
			}

			content, err := provider.Generator.RollMessage(h, set)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}

	renderCmd.Flags().IntVar(&count, "dice", 2, "number of dice to roll")
	renderCmd.Flags().StringVar(&setName, "set", "", "dice set to render with (default set if empty)")
	renderCmd.Flags().StringSliceVar(&then, "then", nil, "follow-ups to apply: reroll, free_reroll, all_in")

	return renderCmd
}
