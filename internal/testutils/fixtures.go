package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
)

// AllRights holds every follow-up
var AllRights = roll.Rights{Reroll: true, FreeReroll: true, AllIn: true}

// CreateTestHistory records an initial roll and, when follow is set, the
// follow-up that came after it
func CreateTestHistory(t *testing.T, initial []int, rights roll.Rights, follow roll.Kind, after []int) *roll.History {
	t.Helper()

	h := roll.New()
	require.NoError(t, h.RecordInitial(initial, rights))
	if follow != "" {
		require.NoError(t, h.RecordFollowUp(follow, after))
	}
	return h
}

// CreateTestDiceSet returns a builtin dice set by name
func CreateTestDiceSet(t *testing.T, name string) dice.DiceSet {
	t.Helper()

	set, err := dice.BuiltinCatalog().Parse(name)
	require.NoError(t, err)
	return set
}
