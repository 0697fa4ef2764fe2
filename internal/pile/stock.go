package pile

import "github.com/sde-casino/solitaire/internal/card"

// Stock is the face-down reserve pile. The last element is the top,
// the next card to be drawn.
type Stock struct {
	cards []card.Card
}

// NewStock builds a stock from cards in bottom-to-top order.
func NewStock(cards []card.Card) *Stock {
	return &Stock{cards: append([]card.Card(nil), cards...)}
}

// Len returns the number of cards remaining.
func (s *Stock) Len() int {
	return len(s.cards)
}

// Cards returns the pile bottom-to-top. Must not be mutated by the caller.
func (s *Stock) Cards() []card.Card {
	return s.cards
}

// PopTop removes and returns the top card.
func (s *Stock) PopTop() card.Card {
	n := len(s.cards)
	c := s.cards[n-1]
	s.cards = s.cards[:n-1]
	return c
}

// PushTop appends a card to the top of the stock (used by reset-stock).
func (s *Stock) PushTop(c card.Card) {
	s.cards = append(s.cards, c)
}

// Clone returns a deep copy of the stock.
func (s *Stock) Clone() *Stock {
	return NewStock(s.cards)
}
