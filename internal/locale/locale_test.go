package locale

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, "en", Resolve("en"))
	assert.Equal(t, "fr", Resolve("fr-CA"))
	assert.Equal(t, "es", Resolve("es_MX"))
	assert.Equal(t, "en", Resolve("ja"))
	assert.Equal(t, "en", Resolve("!!"))
	assert.Equal(t, "en", Resolve(""))
}

func TestLoad_Bundled(t *testing.T) {
	for _, loc := range Supported {
		t.Run(loc, func(t *testing.T) {
			b := Load(loc, nil)
			assert.Equal(t, loc, b.Locale)
			assert.True(t, b.Has("actions.startOver"))
			assert.True(t, b.Has("errors.drawAllCards"))
		})
	}
}

func TestLoad_BundlesShareIDs(t *testing.T) {
	en := Load("en", nil).IDs()
	require.NotEmpty(t, en)
	for _, loc := range []string{"es", "fr"} {
		assert.Equal(t, en, Load(loc, nil).IDs(), "locale %s", loc)
	}
}

func TestT_Placeholders(t *testing.T) {
	b := Load("en", nil)
	assert.Equal(t, "Draw Card (2 left)", b.T("actions.drawCard", "left", "2"))
	assert.Equal(t, "Your Three-Card Spread Reading", b.T("reading.title", "spread", "Three-Card Spread"))
}

func TestT_MissingFallsBackToID(t *testing.T) {
	b := Load("en", nil)
	assert.Equal(t, "no.such.key", b.T("no.such.key"))

	var nilBundle *Bundle
	assert.Equal(t, "x.y", nilBundle.T("x.y"))
}

func TestLoadFS_FailuresGiveEmptyBundle(t *testing.T) {
	missing := LoadFS(fstest.MapFS{}, "fr", nil)
	assert.Equal(t, "fr", missing.Locale)
	assert.Empty(t, missing.IDs())
	assert.Equal(t, "actions.startOver", missing.T("actions.startOver"))

	broken := LoadFS(fstest.MapFS{
		"messages/en.json": &fstest.MapFile{Data: []byte("{broken")},
	}, "en", nil)
	assert.Empty(t, broken.IDs())
}
