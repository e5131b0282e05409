package roll

import (
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// Kind identifies the action that produced an outcome.
// The string value is the wire name used in button custom IDs.
type Kind string

const (
	KindRoll       Kind = "roll"
	KindReroll     Kind = "reroll"
	KindFreeReroll Kind = "free_reroll"
	KindAllIn      Kind = "all_in"
)

// MaxDice is the largest pool a single roll may throw
const MaxDice = 10

var followUps = []Kind{KindReroll, KindFreeReroll, KindAllIn}

var labels = map[Kind]string{
	KindRoll:       "Roll",
	KindReroll:     "Re-roll",
	KindFreeReroll: "Free Re-roll",
	KindAllIn:      "All In",
}

// FollowUps lists the follow-up actions in button order
func FollowUps() []Kind {
	out := make([]Kind, len(followUps))
	copy(out, followUps)
	return out
}

func (k Kind) String() string {
	return string(k)
}

// Label is the human name shown on buttons and in rendered messages
func (k Kind) Label() string {
	return labels[k]
}

func (k Kind) IsFollowUp() bool {
	return k == KindReroll || k == KindFreeReroll || k == KindAllIn
}

// ParseFollowUp resolves a wire name to a follow-up kind
func ParseFollowUp(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsFollowUp() {
		return "", boterr.InvalidArgumentf("unknown roll action %q", s)
	}
	return k, nil
}

// KindFromLabel is the inverse of Label
func KindFromLabel(label string) (Kind, error) {
	for k, l := range labels {
		if l == label {
			return k, nil
		}
	}
	return "", boterr.InvalidArgumentf("unknown outcome label %q", label)
}
