package card

// Card represents a tarot card
type Card struct {
	ID       string   `json:"id"`               // Catalog ID (e.g., MA0, MIW1, MICC4)
	Name     string   `json:"name"`             // Display name
	Meaning  string   `json:"meaning"`          // General meaning handed to the interpreter
	Image    string   `json:"image"`            // Image reference (e.g., /images/tarot/cups-01.jpg)
	Keywords []string `json:"keywords"`         // Lower-cased name words
	Suit     string   `json:"suit,omitempty"`   // For minor arcana (Wands, Cups, Swords, Pentacles)
	Number   int      `json:"number,omitempty"` // For minor arcana (Ace=1, Page=11 ... King=14)
}

// Clone returns a copy of c that shares no slices with it
func (c Card) Clone() Card {
	c.Keywords = append([]string(nil), c.Keywords...)
	return c
}

// IsMinor reports whether the card belongs to the minor arcana
func (c Card) IsMinor() bool {
	return c.Suit != ""
}

// SpreadPosition is one slot of a spread
type SpreadPosition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Spread is a named, ordered list of positions
type Spread struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	CardCount   int              `json:"cardCount"`
	Positions   []SpreadPosition `json:"positions"`
}

// Valid reports whether the spread has a positive card count matching its positions
func (s Spread) Valid() bool {
	return s.CardCount > 0 && len(s.Positions) == s.CardCount
}

// Placed is a card drawn into a spread position
type Placed struct {
	Card                Card   `json:"card"`
	PositionName        string `json:"positionName"`
	PositionDescription string `json:"positionDescription"`
}
