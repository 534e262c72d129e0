package deck

import (
	"math/rand"

	"github.com/arcanaland/mysticguide/internal/card"
)

// Deck is the ordered, shuffled pile cards are drawn from
type Deck struct {
	cards []card.Card
}

// New builds a deck holding a shuffled copy of cards
func New(cards []card.Card, rng *rand.Rand) *Deck {
	shuffled := Shuffle(cards, rng)
	for i := range shuffled {
		shuffled[i] = shuffled[i].Clone()
	}
	return &Deck{cards: shuffled}
}

// Draw removes and returns the top card. It reports false on an empty deck.
func (d *Deck) Draw() (card.Card, bool) {
	if d == nil || len(d.cards) == 0 {
		return card.Card{}, false
	}
	top := d.cards[0]
	d.cards = d.cards[1:]
	return top, true
}

// Peek returns the top card without removing it
func (d *Deck) Peek() (card.Card, bool) {
	if d == nil || len(d.cards) == 0 {
		return card.Card{}, false
	}
	return d.cards[0].Clone(), true
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in draw order
func (d *Deck) Cards() []card.Card {
	if d == nil {
		return nil
	}
	out := make([]card.Card, len(d.cards))
	for i, c := range d.cards {
		out[i] = c.Clone()
	}
	return out
}
