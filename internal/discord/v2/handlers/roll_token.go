package handlers

import (
	"regexp"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// RollDomain is the custom ID domain of the roll buttons
const RollDomain = "roll"

const rollTokenTarget = "user"

// Buttons already posted in channels use this layout, so it cannot change.
var (
	rollTokenPattern = regexp.MustCompile(`^roll:(reroll|free_reroll|all_in):user:([0-9]+):dice_set:(\w+)$`)
	ownerIDPattern   = regexp.MustCompile(`^[0-9]+$`)
	diceSetPattern   = regexp.MustCompile(`^\w+$`)
)

// RollToken is everything a roll button carries: the follow-up it performs,
// the player who owns the roll and the dice set the message is drawn in
type RollToken struct {
	Kind    roll.Kind
	OwnerID string
	DiceSet string
}

// Validate reports whether the token can be encoded and read back by ParseRollToken
func (t RollToken) Validate() error {
	if !t.Kind.IsFollowUp() {
		return boterr.InvalidArgumentf("%q is not a follow-up action", t.Kind)
	}
	if !ownerIDPattern.MatchString(t.OwnerID) || !diceSetPattern.MatchString(t.DiceSet) {
		return boterr.InvalidArgumentf("cannot build roll button for user %q with dice set %q", t.OwnerID, t.DiceSet)
	}
	return nil
}

// Encode renders the token as a custom ID
func (t RollToken) Encode() (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return core.NewCustomIDBuilder(RollDomain).Button(t.Kind.String(), rollTokenTarget, t.args()...)
}

// args are the custom ID parts after the action and target
func (t RollToken) args() []string {
	return []string{t.OwnerID, "dice_set", t.DiceSet}
}

// ParseRollToken reads a roll button custom ID. Anything that does not match
// the layout exactly is reported as a parse error.
func ParseRollToken(customID string) (RollToken, error) {
	m := rollTokenPattern.FindStringSubmatch(customID)
	if m == nil {
		return RollToken{}, boterr.Parsef("not a roll button: %q", customID)
	}

	kind, err := roll.ParseFollowUp(m[1])
	if err != nil {
		return RollToken{}, boterr.WrapWithCode(err, boterr.CodeParse, "unknown roll action")
	}

	return RollToken{
		Kind:    kind,
		OwnerID: m[2],
		DiceSet: m[3],
	}, nil
}
