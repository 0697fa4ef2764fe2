// Package game defines the Game aggregate: the seven tableau columns,
// four foundations, the stock, and the talon, bundled together with
// the deck id they were dealt from. It owns serialisation
// (snapshot/restore) and the on-demand win check; it does not itself
// validate or execute moves — that is the engine package's job.
package game

import (
	"github.com/sde-casino/solitaire/internal/card"
	"github.com/sde-casino/solitaire/internal/pile"
)

// Game is the aggregate of every pile in one Klondike game.
type Game struct {
	DeckID      string
	Tableau     [7]*pile.Tableau
	Foundations [4]*pile.Foundation
	Stock       *pile.Stock
	Talon       *pile.Talon
	Won         bool
}

// New builds a Game from already-constructed piles. Used by the deal
// builder and by Restore; callers that accept untrusted piles should
// call Validate afterwards.
func New(deckID string, tableau [7]*pile.Tableau, foundations [4]*pile.Foundation, stock *pile.Stock, talon *pile.Talon) *Game {
	return &Game{
		DeckID:      deckID,
		Tableau:     tableau,
		Foundations: foundations,
		Stock:       stock,
		Talon:       talon,
	}
}

// Clone returns a deep copy of the game, used by the engine to
// implement atomic moves: every precondition is checked first, only
// the clone is mutated, and the clone is returned only on success, so
// the original is never touched.
func (g *Game) Clone() *Game {
	clone := &Game{DeckID: g.DeckID, Won: g.Won}
	for i, t := range g.Tableau {
		clone.Tableau[i] = t.Clone()
	}
	for i, f := range g.Foundations {
		clone.Foundations[i] = f.Clone()
	}
	clone.Stock = g.Stock.Clone()
	clone.Talon = g.Talon.Clone()
	return clone
}

// foundationIndex returns the fixed slot index for a suit, matching
// the order in card.Suits.
func foundationIndex(s card.Suit) int {
	for i, suit := range card.Suits {
		if suit == s {
			return i
		}
	}
	return -1
}

// Foundation returns the foundation slot for a suit.
func (g *Game) Foundation(s card.Suit) *pile.Foundation {
	return g.Foundations[foundationIndex(s)]
}

// CheckWin evaluates and records the win condition from spec §4.3.7:
// every foundation holds exactly 13 cards topped by a King.
func (g *Game) CheckWin() bool {
	for _, f := range g.Foundations {
		if !f.Complete() {
			return false
		}
	}
	g.Won = true
	return true
}

// AllCards returns the 52-card multiset currently held across every
// pile, used to validate card conservation.
func (g *Game) AllCards() []card.Card {
	cards := make([]card.Card, 0, 52)
	for _, t := range g.Tableau {
		for _, s := range t.Slots() {
			cards = append(cards, s.Card)
		}
	}
	for _, f := range g.Foundations {
		cards = append(cards, f.Cards()...)
	}
	cards = append(cards, g.Stock.Cards()...)
	cards = append(cards, g.Talon.Cards()...)
	return cards
}

// Validate checks every per-pile invariant plus the cross-pile
// card-conservation invariant from spec §3 and §8.
func (g *Game) Validate() error {
	for _, t := range g.Tableau {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for _, f := range g.Foundations {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return validateFullDeck(g.AllCards())
}

func validateFullDeck(cards []card.Card) error {
	if len(cards) != 52 {
		return errWrongCardCount
	}
	seen := make(map[card.Card]bool, 52)
	for _, c := range cards {
		if seen[c] {
			return errDuplicateCard
		}
		seen[c] = true
	}
	full := card.FullDeck()
	for _, c := range full {
		if !seen[c] {
			return errMissingCard
		}
	}
	return nil
}
