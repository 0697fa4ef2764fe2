package pile

import "github.com/sde-casino/solitaire/internal/card"

// Talon (the waste pile) holds cards drawn from the stock, always
// face-up. Only the top card is playable.
type Talon struct {
	cards []card.Card
}

// NewTalon builds a talon from cards in bottom-to-top order.
func NewTalon(cards []card.Card) *Talon {
	return &Talon{cards: append([]card.Card(nil), cards...)}
}

// Len returns the number of cards on the talon.
func (t *Talon) Len() int {
	return len(t.cards)
}

// Cards returns the pile bottom-to-top. Must not be mutated by the caller.
func (t *Talon) Cards() []card.Card {
	return t.cards
}

// Top returns the top card and true, or the zero value and false if empty.
func (t *Talon) Top() (card.Card, bool) {
	if len(t.cards) == 0 {
		return card.Card{}, false
	}
	return t.cards[len(t.cards)-1], true
}

// PopTop removes and returns the top card.
func (t *Talon) PopTop() card.Card {
	n := len(t.cards)
	c := t.cards[n-1]
	t.cards = t.cards[:n-1]
	return c
}

// PushTop appends a card to the top of the talon (used by draw-from-stock).
func (t *Talon) PushTop(c card.Card) {
	t.cards = append(t.cards, c)
}

// Clone returns a deep copy of the talon.
func (t *Talon) Clone() *Talon {
	return NewTalon(t.cards)
}
