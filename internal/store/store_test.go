package store

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arcanaland/mysticguide/internal/card"
)

func sampleReading(id string) Reading {
	fool, _ := card.ByID("MA0")
	return Reading{
		ID:                id,
		SpreadName:        "Single Card Draw",
		SpreadDescription: "Quick insight.",
		CardsInReading: []card.Placed{
			{Card: fool, PositionName: "Overall Guidance", PositionDescription: "The main theme, answer, or advice."},
		},
		Interpretation: "A new beginning.",
		Date:           "2024-05-01T10:00:00Z",
	}
}

func readingIDs(readings []Reading) []string {
	out := make([]string, len(readings))
	for i, r := range readings {
		out[i] = r.ID
	}
	return out
}

// backends runs fn against every KV implementation
func backends(t *testing.T, fn func(t *testing.T, kv KV)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryKV())
	})
	t.Run("file", func(t *testing.T) {
		kv, err := NewFileKV(t.TempDir())
		require.NoError(t, err)
		fn(t, kv)
	})
	t.Run("sqlite", func(t *testing.T) {
		kv, err := OpenSQLiteKV(t.TempDir() + "/readings.db")
		require.NoError(t, err)
		t.Cleanup(func() { kv.Close() })
		fn(t, kv)
	})
}

func TestStore_ListEmpty(t *testing.T) {
	backends(t, func(t *testing.T, kv KV) {
		s := New(kv, nil)
		assert.Empty(t, s.List())
		assert.NotNil(t, s.List())
	})
}

func TestStore_SaveMostRecentFirst(t *testing.T) {
	backends(t, func(t *testing.T, kv KV) {
		s := New(kv, nil)
		s.Save(sampleReading("1"))
		s.Save(sampleReading("2"))
		s.Save(sampleReading("3"))

		assert.Equal(t, []string{"3", "2", "1"}, readingIDs(s.List()))
	})
}

func TestStore_Delete(t *testing.T) {
	backends(t, func(t *testing.T, kv KV) {
		s := New(kv, nil)
		s.Save(sampleReading("C"))
		s.Save(sampleReading("B"))
		s.Save(sampleReading("A"))
		require.Equal(t, []string{"A", "B", "C"}, readingIDs(s.List()))

		s.Delete("nonexistent")
		assert.Equal(t, []string{"A", "B", "C"}, readingIDs(s.List()))

		s.Delete("B")
		assert.Equal(t, []string{"A", "C"}, readingIDs(s.List()))
	})
}

func TestStore_GetByID(t *testing.T) {
	backends(t, func(t *testing.T, kv KV) {
		s := New(kv, nil)
		want := sampleReading("42")
		s.Save(want)

		got, ok := s.GetByID("42")
		require.True(t, ok)
		assert.Equal(t, want, got)

		_, ok = s.GetByID("missing")
		assert.False(t, ok)
	})
}

func TestStore_JSONShape(t *testing.T) {
	kv := NewMemoryKV()
	s := New(kv, nil)
	s.Save(sampleReading("1"))

	raw, ok, err := kv.Get(ReadingsKey)
	require.NoError(t, err)
	require.True(t, ok)

	var doc []map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc, 1)
	for _, field := range []string{"id", "spreadName", "spreadDescription", "cardsInReading", "interpretation", "date"} {
		assert.Contains(t, doc[0], field)
	}

	slot := doc[0]["cardsInReading"].([]any)[0].(map[string]any)
	assert.Contains(t, slot, "card")
	assert.Contains(t, slot, "positionName")
	assert.Contains(t, slot, "positionDescription")
	assert.NotContains(t, slot["card"], "suit")
}

func TestStore_UnavailableDegradesSilently(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	kv := NewMemoryKV()
	s := New(kv, zap.New(core))
	s.Save(sampleReading("1"))

	kv.Unavailable = true

	assert.Empty(t, s.List())
	s.Save(sampleReading("2"))
	s.Delete("1")
	_, ok := s.GetByID("1")
	assert.False(t, ok)
	assert.GreaterOrEqual(t, logs.Len(), 3)

	kv.Unavailable = false
	assert.Equal(t, []string{"1"}, readingIDs(s.List()))
}

func TestStore_CheckedErrors(t *testing.T) {
	kv := NewMemoryKV()
	kv.Unavailable = true
	s := New(kv, nil)

	assert.ErrorIs(t, s.SaveChecked(sampleReading("1")), ErrStorageUnavailable)
	assert.ErrorIs(t, s.DeleteChecked("1"), ErrStorageUnavailable)

	nilStore := New(nil, nil)
	assert.ErrorIs(t, nilStore.SaveChecked(sampleReading("1")), ErrStorageUnavailable)
	assert.Empty(t, nilStore.List())
}

func TestStore_CorruptCollection(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ReadingsKey, []byte("{not json")))
	s := New(kv, nil)

	_, err := s.load()
	assert.ErrorIs(t, err, ErrSerialization)
	assert.Empty(t, s.List())

	// A save replaces the unreadable collection.
	require.NoError(t, s.SaveChecked(sampleReading("1")))
	assert.Equal(t, []string{"1"}, readingIDs(s.List()))
}

func TestOpen(t *testing.T) {
	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			s, closer, err := Open(backend, dir, nil)
			require.NoError(t, err)
			s.Save(sampleReading("1"))
			require.NoError(t, closer.Close())

			s2, closer2, err := Open(backend, dir, nil)
			require.NoError(t, err)
			defer closer2.Close()
			assert.Equal(t, []string{"1"}, readingIDs(s2.List()))
		})
	}

	_, _, err := Open("redis", t.TempDir(), nil)
	assert.Error(t, err)
}

func TestFileKV_RejectsBadKeys(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		t.Run(fmt.Sprintf("%q", key), func(t *testing.T) {
			assert.Error(t, kv.Set(key, []byte("x")))
		})
	}
}
