// Package roll holds the state of one roll session: the initial outcome,
// at most one follow-up outcome, and the one-time rights still held.
//
// A History guards its own transitions. Callers record outcomes through
// RecordInitial and RecordFollowUp and receive an illegal transition error
// when a guard fails, so a stale or forged button can never push a session
// past its terminal state.
package roll

import (
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// Outcome is the dice produced by one action, in rolled order
type Outcome struct {
	Kind Kind
	Dice []int
}

func (o Outcome) clone() Outcome {
	return Outcome{
		Kind: o.Kind,
		Dice: append([]int(nil), o.Dice...),
	}
}

// Rights are the one-time follow-ups the player still holds
type Rights struct {
	Reroll     bool
	FreeReroll bool
	AllIn      bool
}

// Has reports whether the right for kind is still held
func (r Rights) Has(kind Kind) bool {
	switch kind {
	case KindReroll:
		return r.Reroll
	case KindFreeReroll:
		return r.FreeReroll
	case KindAllIn:
		return r.AllIn
	}
	return false
}

func (r Rights) without(kind Kind) Rights {
	switch kind {
	case KindReroll:
		r.Reroll = false
	case KindFreeReroll:
		r.FreeReroll = false
	case KindAllIn:
		r.AllIn = false
	}
	return r
}

// History is the state of a roll session
type History struct {
	outcomes []Outcome
	rights   Rights
}

// New returns a fresh history with no outcomes
func New() *History {
	return &History{}
}

// Restore rebuilds a history from rendered data and checks it is one a
// Roller could have produced.
func Restore(outcomes []Outcome, rights Rights) (*History, error) {
	if len(outcomes) == 0 {
		return nil, boterr.Parsef("roll has no outcomes")
	}
	if len(outcomes) > 2 {
		return nil, boterr.Parsef("roll has %d outcomes, at most one follow-up is allowed", len(outcomes))
	}
	if outcomes[0].Kind != KindRoll {
		return nil, boterr.Parsef("first outcome is %s, expected %s", outcomes[0].Kind, KindRoll)
	}

	count := len(outcomes[0].Dice)
	for i, o := range outcomes {
		if i > 0 && !o.Kind.IsFollowUp() {
			return nil, boterr.Parsef("outcome %d has kind %q", i, o.Kind)
		}
		if err := checkDice(o.Dice); err != nil {
			return nil, boterr.WrapWithCode(err, boterr.CodeParse, "invalid outcome")
		}
		if len(o.Dice) != count {
			return nil, boterr.Parsef("outcome %d has %d dice, initial roll had %d", i, len(o.Dice), count)
		}
	}

	if len(outcomes) == 2 && rights.Has(outcomes[1].Kind) {
		return nil, boterr.Parsef("%s fired but its right is still held", outcomes[1].Kind)
	}
	// every roll grants a re-roll; only firing it takes the right away
	if !rights.Reroll && (len(outcomes) == 1 || outcomes[1].Kind != KindReroll) {
		return nil, boterr.Parsef("re-roll right is gone but no re-roll was made")
	}

	h := &History{rights: rights}
	for _, o := range outcomes {
		h.outcomes = append(h.outcomes, o.clone())
	}
	return h, nil
}

// RecordInitial stores the first outcome and the rights it grants. The
// re-roll right is always granted, whatever rights says.
func (h *History) RecordInitial(dice []int, rights Rights) error {
	if !h.IsFresh() {
		return boterr.IllegalTransitionf("roll already made")
	}
	if err := checkDice(dice); err != nil {
		return err
	}

	rights.Reroll = true
	h.outcomes = append(h.outcomes, Outcome{Kind: KindRoll, Dice: append([]int(nil), dice...)})
	h.rights = rights
	return nil
}

// RecordFollowUp appends the outcome of a follow-up and consumes its right.
// The session is terminal afterwards.
func (h *History) RecordFollowUp(kind Kind, dice []int) error {
	if !kind.IsFollowUp() {
		return boterr.InvalidArgumentf("%q is not a follow-up action", kind)
	}
	if !h.Can(kind) {
		return boterr.IllegalTransitionf("%s is not available", kind.Label()).
			WithMeta("kind", kind.String())
	}
	if err := checkDice(dice); err != nil {
		return err
	}
	if initial, _ := h.Initial(); len(dice) != len(initial.Dice) {
		return boterr.InvalidArgumentf("follow-up has %d dice, initial roll had %d", len(dice), len(initial.Dice))
	}

	h.outcomes = append(h.outcomes, Outcome{Kind: kind, Dice: append([]int(nil), dice...)})
	h.rights = h.rights.without(kind)
	return nil
}

// IsFresh reports whether no roll has been made yet
func (h *History) IsFresh() bool {
	return len(h.outcomes) == 0
}

// IsTerminal reports whether a follow-up has fired
func (h *History) IsTerminal() bool {
	return len(h.outcomes) > 1
}

// Can reports whether kind may be applied now
func (h *History) Can(kind Kind) bool {
	if h.IsFresh() || h.IsTerminal() {
		return false
	}
	return h.rights.Has(kind)
}

func (h *History) CanReroll() bool {
	return h.Can(KindReroll)
}

func (h *History) CanFreeReroll() bool {
	return h.Can(KindFreeReroll)
}

func (h *History) CanGoAllIn() bool {
	return h.Can(KindAllIn)
}

// Available lists the follow-ups that may be applied now, in button order
func (h *History) Available() []Kind {
	var out []Kind
	for _, k := range followUps {
		if h.Can(k) {
			out = append(out, k)
		}
	}
	return out
}

// Rights returns the raw right flags, ignoring terminal state
func (h *History) Rights() Rights {
	return h.rights
}

// Outcomes returns a copy of the outcomes in order
func (h *History) Outcomes() []Outcome {
	out := make([]Outcome, len(h.outcomes))
	for i, o := range h.outcomes {
		out[i] = o.clone()
	}
	return out
}

func (h *History) Len() int {
	return len(h.outcomes)
}

// Initial returns outcome 0
func (h *History) Initial() (Outcome, bool) {
	if h.IsFresh() {
		return Outcome{}, false
	}
	return h.outcomes[0].clone(), true
}

// Latest returns the most recent outcome
func (h *History) Latest() (Outcome, bool) {
	if h.IsFresh() {
		return Outcome{}, false
	}
	return h.outcomes[len(h.outcomes)-1].clone(), true
}

// FollowUp returns the follow-up outcome once the session is terminal
func (h *History) FollowUp() (Outcome, bool) {
	if !h.IsTerminal() {
		return Outcome{}, false
	}
	return h.outcomes[1].clone(), true
}

func checkDice(dice []int) error {
	if len(dice) < 1 || len(dice) > MaxDice {
		return boterr.InvalidArgumentf("a roll needs 1 to %d dice, got %d", MaxDice, len(dice))
	}
	for _, d := range dice {
		if d < 1 || d > 6 {
			return boterr.InvalidArgumentf("die value %d out of range", d)
		}
	}
	return nil
}
