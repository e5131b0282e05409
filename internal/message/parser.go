package message

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// Parser recovers a roll history from text written by Generator
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ParseRoll reads a v1 roll message. Any deviation from the format is a parse error;
// the parser never guesses a fallback state.
func (p *Parser) ParseRoll(content string, set dice.DiceSet) (*roll.History, error) {
	lines := splitLines(content)
	if len(lines) == 0 {
		return nil, boterr.Parsef("message is empty")
	}

	rights, err := parseTrailer(lines[len(lines)-1])
	if err != nil {
		return nil, err
	}

	body := lines[:len(lines)-1]

	var outcomes []roll.Outcome
	for i, line := range body {
		m := outcomeLine.FindStringSubmatch(line)
		if m == nil {
			if err := checkNoStrayOutcomes(body[i+1:]); err != nil {
				return nil, err
			}
			break
		}

		kind, err := roll.KindFromLabel(m[1])
		if err != nil {
			return nil, boterr.WrapWithCode(err, boterr.CodeParse, "unknown outcome")
		}
		values, err := set.Read(m[2])
		if err != nil {
			return nil, boterr.WrapWithCode(err, boterr.CodeParse, "unreadable dice").
				WithMeta("dice_set", set.String())
		}
		outcomes = append(outcomes, roll.Outcome{Kind: kind, Dice: values})
	}

	return roll.Restore(outcomes, rights)
}

// checkNoStrayOutcomes rejects outcome lines outside the leading block
func checkNoStrayOutcomes(rest []string) error {
	for _, line := range rest {
		if outcomeLine.MatchString(line) {
			return boterr.Parsef("outcome line %q after the summary", line)
		}
	}
	return nil
}

func parseTrailer(line string) (roll.Rights, error) {
	m := trailerLine.FindStringSubmatch(line)
	if m == nil {
		return roll.Rights{}, boterr.Parsef("missing roll trailer")
	}

	version, err := strconv.Atoi(m[1])
	if err != nil || version != FormatVersion {
		return roll.Rights{}, boterr.Parsef("unsupported roll format version %s", m[1])
	}

	return roll.Rights{
		Reroll:     m[2] == "R",
		FreeReroll: m[3] == "F",
		AllIn:      m[4] == "A",
	}, nil
}

// splitLines drops blank lines and trailing whitespace
func splitLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, " \t")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
