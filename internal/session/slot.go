package session

import "github.com/arcanaland/mysticguide/internal/card"

// Slot is one spread position in a session. It is either empty or holds the
// card drawn into that position.
type Slot struct {
	placed *card.Placed
}

// EmptySlot returns a slot with nothing drawn into it
func EmptySlot() Slot {
	return Slot{}
}

// FilledSlot returns a slot holding p
func FilledSlot(p card.Placed) Slot {
	p.Card = p.Card.Clone()
	return Slot{placed: &p}
}

// Filled reports whether a card has been drawn into the slot
func (s Slot) Filled() bool {
	return s.placed != nil
}

// Placed returns the drawn card and its position, if any
func (s Slot) Placed() (card.Placed, bool) {
	if s.placed == nil {
		return card.Placed{}, false
	}
	p := *s.placed
	p.Card = p.Card.Clone()
	return p, true
}
