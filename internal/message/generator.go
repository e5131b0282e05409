package message

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/rulebook/outgunned"
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// Summarizer produces the free-text lines shown under the outcomes
type Summarizer func(h *roll.History) []string

// Generator renders histories and the simple command replies.
// It holds no state; identical inputs give identical text.
type Generator struct {
	summarize Summarizer
}

// GeneratorConfig configures a Generator
type GeneratorConfig struct {
	Summarizer Summarizer // Optional, defaults to the Outgunned summary
}

// NewGenerator creates a generator
func NewGenerator(cfg *GeneratorConfig) *Generator {
	g := &Generator{summarize: OutgunnedSummary}
	if cfg != nil && cfg.Summarizer != nil {
		g.summarize = cfg.Summarizer
	}
	return g
}

// RollMessage renders a history in format v1
func (g *Generator) RollMessage(h *roll.History, set dice.DiceSet) (string, error) {
	if h == nil || h.IsFresh() {
		return "", boterr.InvalidArgument("cannot render a roll that has not been made")
	}

	var b strings.Builder
	for _, o := range h.Outcomes() {
		rendered, err := set.Render(o.Dice)
		if err != nil {
			return "", boterr.Wrapf(err, "failed to render %s", o.Kind)
		}
		b.WriteString(outcomePrefix(o.Kind))
		b.WriteString(rendered)
		b.WriteString("\n")
	}

	if summary := g.summarize(h); len(summary) > 0 {
		b.WriteString("\n")
		for _, line := range summary {
			// a summary line must never be mistaken for the trailer or an outcome
			if strings.HasPrefix(line, trailerPrefix) || outcomeLine.MatchString(line) {
				continue
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString(trailer(h.Rights()))
	return b.String(), nil
}

// OutgunnedSummary scores the roll with the Outgunned rules
func OutgunnedSummary(h *roll.History) []string {
	initial, ok := h.Initial()
	if !ok {
		return nil
	}

	follow, ok := h.FollowUp()
	if !ok {
		return []string{"**Result:** " + outgunned.Evaluate(initial.Dice).String()}
	}

	res := outgunned.Resolve(follow.Kind, initial.Dice, follow.Dice)
	lines := []string{"**Result:** " + res.Final.String()}
	if res.Penalty != "" {
		lines = append(lines, res.Penalty)
	}
	return lines
}

// CoinMessage renders a coin flip
func (g *Generator) CoinMessage(heads bool) string {
	if heads {
		return "🪙 The coin lands on **Heads**."
	}
	return "🪙 The coin lands on **Tails**."
}

// D6Message renders a single die
func (g *Generator) D6Message(value int, set dice.DiceSet) (string, error) {
	face, err := set.Face(value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("**d6:** %s", face), nil
}

// SettingsMessage confirms a dice set change
func (g *Generator) SettingsMessage(set dice.DiceSet) string {
	return fmt.Sprintf("Set the dice set to %s", set.String())
}

// HelpMessage lists the commands
func (g *Generator) HelpMessage(catalog *dice.Catalog) string {
	var sets []string
	for _, set := range catalog.Sets() {
		sets = append(sets, fmt.Sprintf("`%s` (%s)", set.Name(), set.Label()))
	}

	lines := []string{
		"**Outgunned dice**",
		fmt.Sprintf("`/roll dice:<1-%d>` roll a pool of d6. Matching dice are successes.", roll.MaxDice),
		"After a roll you may use one follow-up:",
		"• **Re-roll** throws every die outside a success. No improvement costs one success.",
		"• **Free Re-roll** is the same without the penalty.",
		"• **All In** risks everything for a better result.",
		"Only the player who rolled can press the buttons.",
		"",
		"`/settings dice_set:<name>` choose how dice are drawn in this channel: " + strings.Join(sets, ", "),
		"`/coin` flip a coin",
		"`/d6` roll a single die",
		"`/help` show this message",
	}
	return strings.Join(lines, "\n")
}
