package game

import (
	"fmt"

	"github.com/sde-casino/solitaire/internal/card"
	"github.com/sde-casino/solitaire/internal/pile"
)

// CardSnapshot is the serialisable form of one tableau slot.
type CardSnapshot struct {
	Rank   int    `json:"rank"`
	Suit   string `json:"suit"`
	FaceUp bool   `json:"face_up"`
}

// PlainCard is a card with no visibility bit, used for
// foundation, stock, and talon snapshots where visibility is implied
// by the pile itself.
type PlainCard struct {
	Rank int    `json:"rank"`
	Suit string `json:"suit"`
}

// Snapshot is a complete, deterministic serialisation of a Game: field
// order is fixed and slices preserve pile order, so two snapshots of
// equal game state compare equal (spec §4.4, §8 atomicity note — the
// test suite relies on snapshot equality).
type Snapshot struct {
	DeckID      string            `json:"deck_id"`
	Tableau     [7][]CardSnapshot `json:"tableau"`
	Foundations [4][]PlainCard    `json:"foundations"`
	Stock       []PlainCard       `json:"stock"`
	Talon       []PlainCard       `json:"talon"`
	Won         bool              `json:"won"`
}

// Snapshot serialises the current game state.
func (g *Game) Snapshot() Snapshot {
	var snap Snapshot
	snap.DeckID = g.DeckID
	snap.Won = g.Won

	for i, t := range g.Tableau {
		slots := t.Slots()
		out := make([]CardSnapshot, len(slots))
		for j, s := range slots {
			out[j] = CardSnapshot{Rank: int(s.Card.Rank), Suit: s.Card.Suit.String(), FaceUp: s.FaceUp}
		}
		snap.Tableau[i] = out
	}
	for i, f := range g.Foundations {
		snap.Foundations[i] = plainCards(f.Cards())
	}
	snap.Stock = plainCards(g.Stock.Cards())
	snap.Talon = plainCards(g.Talon.Cards())
	return snap
}

func plainCards(cards []card.Card) []PlainCard {
	out := make([]PlainCard, len(cards))
	for i, c := range cards {
		out[i] = PlainCard{Rank: int(c.Rank), Suit: c.Suit.String()}
	}
	return out
}

// Restore reconstructs a Game from a snapshot, failing with
// CorruptSnapshot if the snapshot's card multiset is not exactly the
// 52-card deck or any per-pile invariant is violated (spec §4.4).
func Restore(snap Snapshot) (*Game, error) {
	var tableau [7]*pile.Tableau
	for i, col := range snap.Tableau {
		slots := make([]pile.Slot, len(col))
		for j, cs := range col {
			suit, err := card.ParseSuit(cs.Suit)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", CorruptSnapshot, err)
			}
			rank := card.Rank(cs.Rank)
			if !rank.Valid() {
				return nil, fmt.Errorf("%w: invalid rank %d", CorruptSnapshot, cs.Rank)
			}
			slots[j] = pile.Slot{Card: card.Card{Rank: rank, Suit: suit}, FaceUp: cs.FaceUp}
		}
		tableau[i] = pile.NewTableau(slots)
	}

	var foundations [4]*pile.Foundation
	for i, suit := range card.Suits {
		cards, err := plainToCards(snap.Foundations[i])
		if err != nil {
			return nil, err
		}
		f := pile.NewFoundation(suit)
		for _, c := range cards {
			f.Push(c)
		}
		foundations[i] = f
	}

	stockCards, err := plainToCards(snap.Stock)
	if err != nil {
		return nil, err
	}
	talonCards, err := plainToCards(snap.Talon)
	if err != nil {
		return nil, err
	}

	g := New(snap.DeckID, tableau, foundations, pile.NewStock(stockCards), pile.NewTalon(talonCards))
	g.Won = snap.Won

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", CorruptSnapshot, err)
	}
	return g, nil
}

func plainToCards(plain []PlainCard) ([]card.Card, error) {
	cards := make([]card.Card, len(plain))
	for i, p := range plain {
		suit, err := card.ParseSuit(p.Suit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", CorruptSnapshot, err)
		}
		rank := card.Rank(p.Rank)
		if !rank.Valid() {
			return nil, fmt.Errorf("%w: invalid rank %d", CorruptSnapshot, p.Rank)
		}
		cards[i] = card.Card{Rank: rank, Suit: suit}
	}
	return cards, nil
}
