package main

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
	"github.com/KirkDiggler/outgunned-bot/internal/events"
	"github.com/KirkDiggler/outgunned-bot/internal/services"
)

func newSimulateCmd(opts *options) *cobra.Command {
	var (
		sessions int
		workers  int
		verbose  bool
	)

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play independent roll sessions and check every message reads back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sessions < 1 {
				return fmt.Errorf("--sessions must be at least 1")
			}

			provider, cleanup, err := opts.provider()
			if err != nil {
				return err
			}
			defer cleanup()

			sets := provider.Catalog.Sets()
			counter := events.NewCounter()
			if !verbose {
				provider.Events.Unsubscribe(events.EventTypeRolled, events.LogListener{}.ID())
				provider.Events.Unsubscribe(events.EventTypeFollowUpApplied, events.LogListener{}.ID())
			}
			provider.Events.Subscribe(counter, events.EventTypeRolled, events.EventTypeFollowUpApplied)

			g, ctx := errgroup.WithContext(cmd.Context())
			if workers > 0 {
				g.SetLimit(workers)
			}

			for i := 0; i < sessions; i++ {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					set := sets[i%len(sets)]
					count := i%roll.MaxDice + 1

					if err := simulateSession(provider, set, count); err != nil {
						return fmt.Errorf("session %d (%d dice, %s): %w", i, count, set, err)
					}
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d sessions, %d rolls, %d follow-ups, every message read back\n",
				sessions, counter.Count(events.EventTypeRolled), counter.Count(events.EventTypeFollowUpApplied))
			return nil
		},
	}

	simulateCmd.Flags().IntVar(&sessions, "sessions", 100, "number of sessions to play")
	simulateCmd.Flags().IntVar(&workers, "workers", 0, "sessions in flight at once (0 for no limit)")
	simulateCmd.Flags().BoolVar(&verbose, "verbose", false, "log every roll")

	return simulateCmd
}

// simulateSession rolls, then keeps pressing the first offered button until
// the session is over. After every step the message is parsed back and must
// describe the same history.
func simulateSession(provider *services.Provider, set dice.DiceSet, count int) error {
	h, err := provider.RollerService.Roll(count)
	if err != nil {
		return err
	}
	if err := checkRoundTrip(provider, h, set); err != nil {
		return err
	}

	for {
		available := h.Available()
		if len(available) == 0 {
			return nil
		}

		if err := provider.RollerService.Apply(h, available[0]); err != nil {
			return fmt.Errorf("%s: %w", available[0].Label(), err)
		}

		if err := checkRoundTrip(provider, h, set); err != nil {
			return err
		}
	}
}

func checkRoundTrip(provider *services.Provider, h *roll.History, set dice.DiceSet) error {
	content, err := provider.Generator.RollMessage(h, set)
	if err != nil {
		return err
	}

	parsed, err := provider.Parser.ParseRoll(content, set)
	if err != nil {
		return fmt.Errorf("message did not parse: %w\n%s", err, content)
	}

	if !reflect.DeepEqual(parsed.Outcomes(), h.Outcomes()) || parsed.Rights() != h.Rights() {
		return fmt.Errorf("message read back differently\n%s", content)
	}
	return nil
}
