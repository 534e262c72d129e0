package deck

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/mysticguide/internal/card"
)

func ids(cards []card.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func sortedIDs(cards []card.Card) []string {
	out := ids(cards)
	sort.Strings(out)
	return out
}

func TestShuffle_IsPermutation(t *testing.T) {
	catalog := card.All()
	for seed := int64(0); seed < 20; seed++ {
		shuffled := Shuffle(catalog, rand.New(rand.NewSource(seed)))
		require.Len(t, shuffled, len(catalog))
		assert.Equal(t, sortedIDs(catalog), sortedIDs(shuffled))
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	catalog := card.All()
	before := ids(catalog)

	Shuffle(catalog, rand.New(rand.NewSource(42)))

	assert.Equal(t, before, ids(catalog))
}

func TestShuffle_SmallInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Empty(t, Shuffle(nil, rng))
	assert.Empty(t, Shuffle([]card.Card{}, rng))

	one := []card.Card{{ID: "x"}}
	assert.Equal(t, one, Shuffle(one, rng))
}

func TestShuffle_Deterministic(t *testing.T) {
	catalog := card.All()
	a := Shuffle(catalog, rand.New(rand.NewSource(7)))
	b := Shuffle(catalog, rand.New(rand.NewSource(7)))
	assert.Equal(t, ids(a), ids(b))
}

func TestShuffle_NilRand(t *testing.T) {
	catalog := card.All()
	assert.Len(t, Shuffle(catalog, nil), len(catalog))
}

func TestDeck_DrawShrinksByOne(t *testing.T) {
	d := New(card.All(), rand.New(rand.NewSource(3)))
	require.Equal(t, 78, d.Len())

	top, ok := d.Peek()
	require.True(t, ok)

	drawn, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, top.ID, drawn.ID)
	assert.Equal(t, 77, d.Len())
	assert.NotContains(t, ids(d.Cards()), drawn.ID)
}

func TestDeck_DrawEmpty(t *testing.T) {
	d := New(nil, nil)
	_, ok := d.Draw()
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())

	var nilDeck *Deck
	_, ok = nilDeck.Draw()
	assert.False(t, ok)
}

func TestDeck_ReturnsCopies(t *testing.T) {
	catalog := card.All()
	d := New(catalog, rand.New(rand.NewSource(3)))

	top, ok := d.Peek()
	require.True(t, ok)
	want := top.Keywords[0]

	top.Keywords[0] = "changed"
	d.Cards()[0].Keywords[0] = "changed"

	again, _ := d.Peek()
	assert.Equal(t, want, again.Keywords[0])
	assert.Equal(t, want, d.Cards()[0].Keywords[0])

	// The source cards are not shared with the deck either.
	catalog[0].Keywords[0] = "changed"
	for _, c := range d.Cards() {
		assert.NotContains(t, c.Keywords, "changed")
	}
}
