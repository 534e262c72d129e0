package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/mysticguide/internal/config"
	"github.com/arcanaland/mysticguide/internal/locale"
	"github.com/arcanaland/mysticguide/internal/logging"
	"github.com/arcanaland/mysticguide/internal/store"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func savedReadings(t *testing.T) []store.Reading {
	t.Helper()
	st, closer, err := store.Open("file", config.GetDataDir(), logging.Nop())
	require.NoError(t, err)
	defer closer.Close()
	return st.List()
}

func TestRead_OfflineSaved(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "read", "--offline", "--yes", "--save", "--spread", "three-card")
	require.NoError(t, err)
	assert.Contains(t, out, "Draw Cards for: Three-Card Spread")
	assert.Contains(t, out, "Mystic Interpretation")
	assert.Contains(t, out, "Your tarot reading has been saved.")

	readings := savedReadings(t)
	require.Len(t, readings, 1)
	assert.Equal(t, "Three-Card Spread", readings[0].SpreadName)
	assert.Len(t, readings[0].CardsInReading, 3)
	assert.NotEmpty(t, readings[0].Interpretation)
}

func TestRead_InteractivePrompts(t *testing.T) {
	setupEnv(t)

	// spread number, one Enter per card, then decline saving
	out, err := execute(t, "1\n\nn\n", "read", "--offline")
	require.NoError(t, err)
	assert.Contains(t, out, "Choose a Spread")
	assert.Contains(t, out, "Overall Guidance")
	assert.Contains(t, out, "Save this reading?")
	assert.NotContains(t, out, "has been saved")
	assert.Empty(t, savedReadings(t))
}

func TestRead_InteractiveSave(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "single\n\ny\n", "read", "--offline")
	require.NoError(t, err)
	assert.Len(t, savedReadings(t), 1)
}

func TestRead_UnknownSpread(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "read", "--offline", "--spread", "horseshoe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "horseshoe")
}

func TestRead_RequiresAPIKey(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "read", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--offline")
}

func TestRead_Locale(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "read", "--offline", "--yes", "--save", "--spread", "single", "--locale", "fr")
	require.NoError(t, err)
	assert.NotContains(t, out, "Your tarot reading has been saved.")
	assert.Len(t, savedReadings(t), 1)
}

func TestReadings(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "readings", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No Saved Readings Yet")

	for i := 0; i < 2; i++ {
		_, err = execute(t, "", "read", "--offline", "--yes", "--save", "--spread", "single")
		require.NoError(t, err)
	}
	readings := savedReadings(t)
	require.Len(t, readings, 2)

	out, err = execute(t, "", "readings", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, readings[0].ID)
	assert.Contains(t, out, readings[1].ID)
	assert.Less(t, strings.Index(out, readings[0].ID), strings.Index(out, readings[1].ID))

	out, err = execute(t, "", "readings", "show", readings[1].ID)
	require.NoError(t, err)
	assert.Contains(t, out, readings[1].CardsInReading[0].Card.Name)

	_, err = execute(t, "", "readings", "show", "missing")
	require.Error(t, err)

	out, err = execute(t, "", "readings", "rm", readings[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "The reading has been removed.")

	left := savedReadings(t)
	require.Len(t, left, 1)
	assert.Equal(t, readings[1].ID, left[0].ID)

	out, err = execute(t, "", "readings", "rm", "missing")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved reading with id missing.")
}

func TestSpreadsAndCards(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "spreads")
	require.NoError(t, err)
	assert.Contains(t, out, "Celtic Cross (Simplified)")
	assert.Contains(t, out, "The Challenge")

	out, err = execute(t, "", "cards", "--major")
	require.NoError(t, err)
	assert.Equal(t, 22, strings.Count(out, "\n"))
	assert.Contains(t, out, "The Fool")

	out, err = execute(t, "", "cards", "--suit", "cups")
	require.NoError(t, err)
	assert.Equal(t, 14, strings.Count(out, "\n"))
}

func TestShow(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "show", "MA0")
	require.NoError(t, err)
	assert.Contains(t, out, "The Fool")

	_, err = execute(t, "", "show", "nope")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "read", "--offline", "--yes", "--save", "--spread", "single")
	require.NoError(t, err)

	out, err := execute(t, "", "validate")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestConfig(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, config.GetConfigFilePath())
	assert.DirExists(t, config.GetDataDir())

	_, err = execute(t, "", "config", "set", "storage", "sqlite")
	require.NoError(t, err)

	out, err = execute(t, "", "config", "get", "storage")
	require.NoError(t, err)
	assert.Equal(t, "sqlite\n", out)

	out, err = execute(t, "", "config", "get")
	require.NoError(t, err)
	assert.Contains(t, out, `default_spread = "three-card"`)

	_, err = execute(t, "", "config", "set", "storage", "postgres")
	require.Error(t, err)

	_, err = execute(t, "", "config", "set", "colour", "blue")
	require.Error(t, err)
}

func TestRead_SQLiteStorage(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "config", "set", "storage", "sqlite")
	require.NoError(t, err)

	_, err = execute(t, "", "read", "--offline", "--yes", "--save", "--spread", "single")
	require.NoError(t, err)

	out, err := execute(t, "", "readings", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "Single Card Draw")
	assert.Empty(t, savedReadings(t))
}

// readOnlyKV serves stored values but refuses writes
type readOnlyKV struct {
	*store.MemoryKV
}

func (readOnlyKV) Set(string, []byte) error {
	return errors.New("read-only")
}

func TestRemoveReading_ReportsFailure(t *testing.T) {
	mem := store.NewMemoryKV()
	require.NoError(t, store.New(mem, logging.Nop()).SaveChecked(store.Reading{ID: "r1", Interpretation: "x"}))

	st := store.New(readOnlyKV{mem}, logging.Nop())
	bundle := locale.Load("en", logging.Nop())

	var out bytes.Buffer
	err := removeReading(&out, st, bundle, "r1")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.Contains(t, out.String(), "The reading could not be removed.")
	assert.NotContains(t, out.String(), "has been removed")

	_, ok := st.GetByID("r1")
	assert.True(t, ok)
}
