package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newChannelCmd(opts *options) *cobra.Command {
	channelCmd := &cobra.Command{
		Use:   "channel",
		Short: "Inspect and change channel dice sets",
	}

	getCmd := &cobra.Command{
		Use:   "get [channel-id]",
		Short: "Show the dice set a channel rolls with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, cleanup, err := opts.provider()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			set, err := provider.SettingsService.GetDiceSet(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get dice set: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", args[0], set)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set [channel-id] [dice-set]",
		Short: "Change the dice set a channel rolls with",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, cleanup, err := opts.provider()
			if err != nil {
				return err
			}
			defer cleanup()

			set, err := provider.Catalog.Parse(args[1])
			if err != nil {
				return fmt.Errorf("unknown dice set %q, choose one of %v", args[1], provider.Catalog.Names())
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			if err := provider.SettingsService.SetDiceSet(ctx, args[0], set); err != nil {
				return fmt.Errorf("failed to set dice set: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", args[0], set)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every channel with a dice set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, cleanup, err := opts.provider()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			all, err := provider.SettingsService.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list channels: %w", err)
			}

			ids := make([]string, 0, len(all))
			for id := range all {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			for _, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, all[id])
			}
			return nil
		},
	}

	channelCmd.AddCommand(getCmd, setCmd, listCmd)
	return channelCmd
}
