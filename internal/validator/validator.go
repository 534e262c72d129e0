package validator

import (
	"fmt"

	"github.com/arcanaland/mysticguide/internal/card"
	"github.com/arcanaland/mysticguide/internal/store"
)

const expectedCardCount = 78

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Cards    []card.Card
	Spreads  []card.Spread
	Readings []store.Reading
	Results  ValidationResults
}

func NewValidator(cards []card.Card, spreads []card.Spread, readings []store.Reading) *Validator {
	return &Validator{
		Cards:    cards,
		Spreads:  spreads,
		Readings: readings,
		Results:  ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.validateCatalog()
	v.validateSpreads()
	v.validateReadings()

	return v.Results
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateCatalog checks the card table is a complete deck with unique ids
func (v *Validator) validateCatalog() {
	if len(v.Cards) != expectedCardCount {
		v.errorf("catalog has %d cards (expected %d)", len(v.Cards), expectedCardCount)
	}

	seen := make(map[string]bool, len(v.Cards))
	suits := make(map[string]int)
	for i, c := range v.Cards {
		if c.ID == "" {
			v.errorf("card %d has no id", i)
			continue
		}
		if seen[c.ID] {
			v.errorf("duplicate card id: %s", c.ID)
		}
		seen[c.ID] = true

		if c.Name == "" {
			v.errorf("card %s has no name", c.ID)
		}
		if c.Meaning == "" {
			v.errorf("card %s has no meaning", c.ID)
		}
		if c.Image == "" {
			v.warnf("card %s has no image", c.ID)
		}
		if len(c.Keywords) == 0 {
			v.warnf("card %s has no keywords", c.ID)
		}
		if c.IsMinor() {
			suits[c.Suit]++
			if c.Number < 1 || c.Number > 14 {
				v.errorf("card %s has number %d (expected 1-14)", c.ID, c.Number)
			}
		}
	}

	for suit, n := range suits {
		if n != 14 {
			v.errorf("suit %s has %d cards (expected 14)", suit, n)
		}
	}
}

// validateSpreads checks every spread has one position per card
func (v *Validator) validateSpreads() {
	if len(v.Spreads) == 0 {
		v.errorf("no spreads defined")
	}

	seen := make(map[string]bool, len(v.Spreads))
	for _, s := range v.Spreads {
		if s.ID == "" {
			v.errorf("spread %q has no id", s.Name)
		} else if seen[s.ID] {
			v.errorf("duplicate spread id: %s", s.ID)
		}
		seen[s.ID] = true

		if s.CardCount <= 0 {
			v.errorf("spread %s has card count %d (must be positive)", s.ID, s.CardCount)
		}
		if len(s.Positions) != s.CardCount {
			v.errorf("spread %s has %d positions for %d cards", s.ID, len(s.Positions), s.CardCount)
		}
		if s.CardCount > expectedCardCount {
			v.errorf("spread %s needs %d cards but the deck has %d", s.ID, s.CardCount, expectedCardCount)
		}
		for i, p := range s.Positions {
			if p.Name == "" {
				v.errorf("spread %s position %d has no name", s.ID, i)
			}
		}
	}
}

// validateReadings checks the saved reading collection
func (v *Validator) validateReadings() {
	spreadsByName := make(map[string]card.Spread, len(v.Spreads))
	for _, s := range v.Spreads {
		spreadsByName[s.Name] = s
	}

	seen := make(map[string]bool, len(v.Readings))
	for i, r := range v.Readings {
		label := r.ID
		if label == "" {
			v.errorf("saved reading %d has no id", i)
			label = fmt.Sprintf("#%d", i)
		} else if seen[r.ID] {
			v.errorf("duplicate saved reading id: %s", r.ID)
		}
		seen[r.ID] = true

		if r.Interpretation == "" {
			v.errorf("saved reading %s has no interpretation", label)
		}
		if r.Date == "" {
			v.warnf("saved reading %s has no date", label)
		}

		drawn := make(map[string]bool, len(r.CardsInReading))
		for j, p := range r.CardsInReading {
			if p.Card.ID == "" {
				v.errorf("saved reading %s slot %d is empty", label, j)
				continue
			}
			if drawn[p.Card.ID] {
				v.errorf("saved reading %s draws %s twice", label, p.Card.ID)
			}
			drawn[p.Card.ID] = true
		}

		spread, ok := spreadsByName[r.SpreadName]
		if !ok {
			v.warnf("saved reading %s uses unknown spread %q", label, r.SpreadName)
			continue
		}
		if len(r.CardsInReading) != spread.CardCount {
			v.errorf("saved reading %s has %d cards for %s (expected %d)",
				label, len(r.CardsInReading), spread.Name, spread.CardCount)
		}
	}
}
