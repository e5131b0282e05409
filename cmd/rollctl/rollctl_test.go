package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/handlers"
	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
	"github.com/KirkDiggler/outgunned-bot/internal/testutils"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestChannel_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "settings.db")

	out, err := run(t, "--db-dsn", dsn, "channel", "get", "100")
	require.NoError(t, err)
	assert.Equal(t, "100\tbasic\n", out)

	out, err = run(t, "--db-dsn", dsn, "channel", "set", "100", "pips")
	require.NoError(t, err)
	assert.Equal(t, "100\tpips\n", out)

	_, err = run(t, "--db-dsn", dsn, "channel", "set", "200", "emoji")
	require.NoError(t, err)

	out, err = run(t, "--db-dsn", dsn, "channel", "get", "100")
	require.NoError(t, err)
	assert.Equal(t, "100\tpips\n", out)

	out, err = run(t, "--db-dsn", dsn, "channel", "list")
	require.NoError(t, err)
	assert.Equal(t, "100\tpips\n200\temoji\n", out)
}

func TestChannel_Redis(t *testing.T) {
	mr, _ := testutils.NewMiniredisClient(t)
	url := "redis://" + mr.Addr()

	_, err := run(t, "--redis-url", url, "channel", "set", "100", "emoji")
	require.NoError(t, err)

	out, err := run(t, "--redis-url", url, "channel", "list")
	require.NoError(t, err)
	assert.Equal(t, "100\temoji\n", out)
}

func TestChannel_SetUnknownDiceSet(t *testing.T) {
	_, err := run(t, "channel", "set", "100", "runes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runes")
}

func TestChannel_DefaultSetFlag(t *testing.T) {
	out, err := run(t, "--default-set", "emoji", "channel", "get", "100")
	require.NoError(t, err)
	assert.Equal(t, "100\temoji\n", out)
}

func TestTokenDecode(t *testing.T) {
	id, err := handlers.RollToken{Kind: roll.KindAllIn, OwnerID: "12345", DiceSet: "pips"}.Encode()
	require.NoError(t, err)

	out, err := run(t, "token", "decode", id)
	require.NoError(t, err)
	assert.Contains(t, out, "action:   all_in")
	assert.Contains(t, out, "owner:    12345")
	assert.Contains(t, out, "dice set: pips (known: yes)")
}

func TestTokenDecode_Foreign(t *testing.T) {
	_, err := run(t, "token", "decode", "character:create:12345")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	out, err := run(t, "render", "--dice", "3", "--set", "pips")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "**Roll:** "))
	assert.Contains(t, out, "**Result:** ")
	assert.Contains(t, out, "-# outgunned v1 · rights R F")
}

func TestRender_FollowUp(t *testing.T) {
	out, err := run(t, "render", "--dice", "2", "--then", "free_reroll")
	require.NoError(t, err)

	assert.Contains(t, out, "**Free Re-roll:** ")
	assert.Regexp(t, `rights R - [A-]`, out)
}

func TestRender_Invalid(t *testing.T) {
	_, err := run(t, "render", "--dice", "11")
	assert.Error(t, err)

	_, err = run(t, "render", "--then", "roll")
	assert.Error(t, err)

	_, err = run(t, "render", "--set", "runes")
	assert.Error(t, err)
}

func TestSimulate(t *testing.T) {
	out, err := run(t, "simulate", "--sessions", "200", "--workers", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "200 sessions, 200 rolls")
	assert.Contains(t, out, "every message read back")
}

func TestSimulate_NeedsSessions(t *testing.T) {
	_, err := run(t, "simulate", "--sessions", "0")
	assert.Error(t, err)
}
