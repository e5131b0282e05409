// Package message renders roll sessions as Discord text and reads them back.
//
// Format v1, one embed description:
//
//	**Roll:** 2 2 5
//	**Re-roll:** 2 2 6
//
//	**Result:** 1 Basic
//	-# outgunned v1 · rights - F A
//
// Outcome lines come first, one per action in order, with dice drawn in the
// channel's dice set. The last line is the trailer carrying the format
// version and the raw right flags (R, F, A or '-' once unavailable).
// Anything between the outcome block and the trailer is summary text and is
// ignored when reading, as long as it holds no further outcome lines.
package message

import (
	"fmt"
	"regexp"

	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
)

// FormatVersion is bumped whenever the layout read by Parser changes
const FormatVersion = 1

const trailerPrefix = "-# outgunned"

var (
	outcomeLine = regexp.MustCompile(`^\*\*(Roll|Re-roll|Free Re-roll|All In):\*\* (.+)$`)
	trailerLine = regexp.MustCompile(`^-# outgunned v(\d+) · rights ([R-]) ([F-]) ([A-])$`)
)

func outcomePrefix(kind roll.Kind) string {
	return fmt.Sprintf("**%s:** ", kind.Label())
}

func flag(held bool, mark string) string {
	if held {
		return mark
	}
	return "-"
}

func trailer(r roll.Rights) string {
	return fmt.Sprintf("%s v%d · rights %s %s %s", trailerPrefix, FormatVersion,
		flag(r.Reroll, "R"), flag(r.FreeReroll, "F"), flag(r.AllIn, "A"))
}
