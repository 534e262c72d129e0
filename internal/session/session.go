// Package session drives one tarot reading: spread selection, sequential
// card draws, the interpretation request, and saving the result.
//
// A Session exclusively owns its deck and slots. All transitions run
// synchronously on the caller's goroutine; only RequestReading blocks, on the
// interpreter.
package session

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arcanaland/mysticguide/internal/card"
	"github.com/arcanaland/mysticguide/internal/deck"
	"github.com/arcanaland/mysticguide/internal/interpret"
	"github.com/arcanaland/mysticguide/internal/store"
)

// State is a step of the draw flow
type State int

const (
	SpreadSelection State = iota
	CardSelection
	ReadingDisplay
)

func (s State) String() string {
	switch s {
	case SpreadSelection:
		return "spreadSelection"
	case CardSelection:
		return "cardSelection"
	case ReadingDisplay:
		return "readingDisplay"
	default:
		return "unknown"
	}
}

// Saver receives completed readings. Saving is best effort.
type Saver interface {
	Save(r store.Reading)
}

// Session holds the mutable state of one reading flow
type Session struct {
	state          State
	spread         *card.Spread
	slots          []Slot
	cursor         int
	deck           *deck.Deck
	interpretation string
	loading        atomic.Bool

	catalog     []card.Card
	rng         *rand.Rand
	interpreter interpret.Interpreter
	saver       Saver
	now         func() time.Time
	newID       func(time.Time) string
	logger      *zap.Logger
}

// Option configures a Session
type Option func(*Session)

// WithRand sets the random source used for shuffling
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithClock sets the clock used to date saved readings
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDGenerator sets how reading ids are derived from the save time
func WithIDGenerator(newID func(time.Time) string) Option {
	return func(s *Session) { s.newID = newID }
}

// WithLogger sets the session logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithCatalog replaces the card catalog the deck is built from
func WithCatalog(cards []card.Card) Option {
	return func(s *Session) { s.catalog = cards }
}

// New starts a session in SpreadSelection with a freshly shuffled deck
func New(interpreter interpret.Interpreter, saver Saver, opts ...Option) *Session {
	s := &Session{
		catalog:     card.All(),
		interpreter: interpreter,
		saver:       saver,
		now:         time.Now,
		newID:       NewReadingID,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = deck.NewRand()
	}
	s.deck = deck.New(s.catalog, s.rng)
	return s
}

// NewReadingID returns a unique UUIDv7 whose timestamp is t, so ids sort by
// the time the reading was saved.
func NewReadingID(t time.Time) string {
	id, err := uuid.NewRandom()
	if err != nil {
		return strconv.FormatInt(t.UnixNano(), 10)
	}
	ms := uint64(t.UnixMilli())
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}
	id[6] = id[6]&0x0f | 0x70
	return id.String()
}

// SelectSpread starts drawing for spread
func (s *Session) SelectSpread(spread card.Spread) error {
	if s.state != SpreadSelection {
		return fmt.Errorf("%w: select spread from %s", ErrInvalidTransition, s.state)
	}
	if !spread.Valid() {
		return fmt.Errorf("%w: %s has %d positions for %d cards",
			ErrInvalidSpread, spread.ID, len(spread.Positions), spread.CardCount)
	}

	spread.Positions = append([]card.SpreadPosition(nil), spread.Positions...)
	s.spread = &spread
	s.slots = make([]Slot, spread.CardCount)
	for i := range s.slots {
		s.slots[i] = EmptySlot()
	}
	s.cursor = 0
	s.deck = deck.New(s.catalog, s.rng)
	s.interpretation = ""
	s.state = CardSelection

	s.logger.Debug("spread selected", zap.String("spread", spread.ID), zap.Int("cards", spread.CardCount))
	return nil
}

// DrawCard draws the top card of the deck into the next position. It is a
// no-op returning false outside CardSelection, once every position is filled,
// or when the deck is empty.
func (s *Session) DrawCard() bool {
	if s.state != CardSelection || s.spread == nil || s.cursor >= s.spread.CardCount || s.deck.Len() == 0 {
		return false
	}

	c, _ := s.deck.Draw()
	position := s.spread.Positions[s.cursor]
	s.slots[s.cursor] = FilledSlot(card.Placed{
		Card:                c,
		PositionName:        position.Name,
		PositionDescription: position.Description,
	})
	s.cursor++

	s.logger.Debug("card drawn", zap.String("card", c.ID), zap.String("position", position.Name))
	return true
}

// RequestReading asks the interpreter for a reading of the drawn cards. It is
// rejected with a ValidationError until every position is filled. On failure
// the drawn cards are kept and an InterpretationError is returned.
func (s *Session) RequestReading(ctx context.Context) error {
	if s.state != CardSelection {
		return fmt.Errorf("%w: request reading from %s", ErrInvalidTransition, s.state)
	}
	if !s.complete() {
		return &ValidationError{
			MessageID: MsgDrawAllCards,
			Message:   "please draw all cards for the spread",
		}
	}
	if s.interpreter == nil {
		return &InterpretationError{Err: fmt.Errorf("no interpreter configured")}
	}

	req := interpret.Request{SpreadName: s.spread.Name}
	for _, slot := range s.slots {
		p, _ := slot.Placed()
		req.Cards = append(req.Cards, interpret.CardInput{Name: p.Card.Name, Meaning: p.Card.Meaning})
	}

	s.loading.Store(true)
	resp, err := s.interpreter.Interpret(ctx, req)
	s.loading.Store(false)

	if err == nil && strings.TrimSpace(resp.Reading) == "" {
		err = ErrEmptyReading
	}
	if err != nil {
		s.logger.Error("generating reading", zap.String("spread", s.spread.ID), zap.Error(err))
		return &InterpretationError{Err: err}
	}

	s.interpretation = resp.Reading
	s.state = ReadingDisplay
	return nil
}

// SaveReading builds a Reading from the session and hands it to the saver.
// Every call creates a new record with a new id.
func (s *Session) SaveReading() (store.Reading, error) {
	if s.state != ReadingDisplay || s.interpretation == "" || !s.complete() {
		return store.Reading{}, fmt.Errorf("%w: save reading from %s", ErrInvalidTransition, s.state)
	}

	now := s.now()
	r := store.Reading{
		ID:                s.newID(now),
		SpreadName:        s.spread.Name,
		SpreadDescription: s.spread.Description,
		CardsInReading:    s.placed(),
		Interpretation:    s.interpretation,
		Date:              now.UTC().Format(time.RFC3339),
	}

	if s.saver != nil {
		s.saver.Save(r)
	}
	s.logger.Debug("reading saved", zap.String("id", r.ID))
	return r, nil
}

// Reset returns to SpreadSelection with a reshuffled full deck
func (s *Session) Reset() {
	s.state = SpreadSelection
	s.spread = nil
	s.slots = nil
	s.cursor = 0
	s.interpretation = ""
	s.deck = deck.New(s.catalog, s.rng)
}

func (s *Session) complete() bool {
	if s.spread == nil || s.cursor != s.spread.CardCount || len(s.slots) != s.spread.CardCount {
		return false
	}
	for _, slot := range s.slots {
		if !slot.Filled() {
			return false
		}
	}
	return true
}

func (s *Session) placed() []card.Placed {
	out := make([]card.Placed, 0, len(s.slots))
	for _, slot := range s.slots {
		if p, ok := slot.Placed(); ok {
			out = append(out, p)
		}
	}
	return out
}

// State returns the current step
func (s *Session) State() State { return s.state }

// Spread returns the active spread
func (s *Session) Spread() (card.Spread, bool) {
	if s.spread == nil {
		return card.Spread{}, false
	}
	return *s.spread, true
}

// Slots returns a copy of the position slots
func (s *Session) Slots() []Slot {
	return append([]Slot(nil), s.slots...)
}

// Cursor returns the index of the next position to draw into
func (s *Session) Cursor() int { return s.cursor }

// Deck returns the remaining cards in draw order
func (s *Session) Deck() []card.Card { return s.deck.Cards() }

// Interpretation returns the generated reading, empty until one is obtained
func (s *Session) Interpretation() string { return s.interpretation }

// Loading reports whether an interpretation request is outstanding
func (s *Session) Loading() bool { return s.loading.Load() }

// CardsLeft returns how many positions are still to be drawn
func (s *Session) CardsLeft() int {
	if s.spread == nil {
		return 0
	}
	return s.spread.CardCount - s.cursor
}

// NextPosition returns the position the next draw will fill
func (s *Session) NextPosition() (card.SpreadPosition, bool) {
	if s.spread == nil || s.cursor >= s.spread.CardCount {
		return card.SpreadPosition{}, false
	}
	return s.spread.Positions[s.cursor], true
}
