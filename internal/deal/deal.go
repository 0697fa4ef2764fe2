// Package deal builds the initial legal Klondike layout from an
// ordered 52-card sequence supplied by the deck source (spec §4.2).
package deal

import (
	"errors"

	"github.com/sde-casino/solitaire/internal/card"
	"github.com/sde-casino/solitaire/internal/game"
	"github.com/sde-casino/solitaire/internal/pile"
)

// InvalidDeck is returned when the input sequence does not hold
// exactly 52 cards or contains duplicates.
var InvalidDeck = errors.New("deal: input is not exactly 52 distinct cards")

// Build deals tableau slot i with i+1 cards (only the top face-up),
// puts the remaining 24 cards face-down on the stock, and leaves
// foundations and talon empty. deckID is retained on the resulting
// game for traceability only (spec §3).
func Build(deckID string, cards []card.Card) (*game.Game, error) {
	if err := validate(cards); err != nil {
		return nil, err
	}

	var tableau [7]*pile.Tableau
	pos := 0
	for col := 0; col < 7; col++ {
		n := col + 1
		slots := make([]pile.Slot, n)
		for i := 0; i < n; i++ {
			slots[i] = pile.Slot{Card: cards[pos], FaceUp: i == n-1}
			pos++
		}
		tableau[col] = pile.NewTableau(slots)
	}

	stock := pile.NewStock(cards[pos:])

	var foundations [4]*pile.Foundation
	for i, s := range card.Suits {
		foundations[i] = pile.NewFoundation(s)
	}

	return game.New(deckID, tableau, foundations, stock, pile.NewTalon(nil)), nil
}

func validate(cards []card.Card) error {
	if len(cards) != 52 {
		return InvalidDeck
	}
	seen := make(map[card.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return InvalidDeck
		}
		seen[c] = true
	}
	return nil
}
