package deck

import (
	"math/rand"
	"time"

	"github.com/arcanaland/mysticguide/internal/card"
)

// NewRand returns a time-seeded random source
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Shuffle returns a uniformly random permutation of cards using Fisher-Yates.
// The input slice is not modified. A nil rng uses a time-seeded source.
func Shuffle(cards []card.Card, rng *rand.Rand) []card.Card {
	shuffled := make([]card.Card, len(cards))
	copy(shuffled, cards)

	if rng == nil {
		rng = NewRand()
	}

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}
