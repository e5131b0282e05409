package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice github.com/KirkDiggler/rpg-toolkit/dice Roller

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// Roller is the random source behind every die the bot throws
type Roller = toolkitdice.Roller

// NewRoller returns the toolkit's crypto-backed roller
func NewRoller() Roller {
	return toolkitdice.DefaultRoller
}

// RollD6 rolls count six-sided dice
func RollD6(r Roller, count int) ([]int, error) {
	if count < 1 {
		return nil, boterr.InvalidArgumentf("cannot roll %d dice", count)
	}

	values, err := r.RollN(count, Sides)
	if err != nil {
		return nil, boterr.Wrapf(err, "failed to roll %dd%d", count, Sides)
	}
	if len(values) != count {
		return nil, boterr.Internalf("roller returned %d dice, wanted %d", len(values), count)
	}
	for _, v := range values {
		if v < 1 || v > Sides {
			return nil, boterr.Internalf("roller returned %d for a d%d", v, Sides)
		}
	}

	return values, nil
}

// FlipCoin uses a d2 so coin flips share the same random source
func FlipCoin(r Roller) (heads bool, err error) {
	v, err := r.Roll(2)
	if err != nil {
		return false, boterr.Wrap(err, "failed to flip coin")
	}
	return v == 1, nil
}
