package game

import (
	"testing"

	"github.com/sde-casino/solitaire/internal/card"
	"github.com/sde-casino/solitaire/internal/pile"
)

func newEmptyGame(deckID string) *Game {
	var tableau [7]*pile.Tableau
	for i := range tableau {
		tableau[i] = pile.NewTableau(nil)
	}
	var foundations [4]*pile.Foundation
	for i, s := range card.Suits {
		foundations[i] = pile.NewFoundation(s)
	}
	return New(deckID, tableau, foundations, pile.NewStock(nil), pile.NewTalon(nil))
}

func fullDeckOnStock(deckID string) *Game {
	g := newEmptyGame(deckID)
	deck := card.FullDeck()
	g.Stock = pile.NewStock(deck[:])
	return g
}

func TestValidateAcceptsFullDeckOnStock(t *testing.T) {
	g := fullDeckOnStock("deck-1")
	if err := g.Validate(); err != nil {
		t.Errorf("expected a full, untouched deck to validate, got %v", err)
	}
}

func TestValidateRejectsMissingCard(t *testing.T) {
	g := newEmptyGame("deck-1")
	deck := card.FullDeck()
	g.Stock = pile.NewStock(deck[:51]) // drop the last card
	if err := g.Validate(); err == nil {
		t.Error("expected validation failure for a 51-card deck")
	}
}

func TestValidateRejectsDuplicateCard(t *testing.T) {
	g := newEmptyGame("deck-1")
	deck := card.FullDeck()
	cards := append([]card.Card(nil), deck[:51]...)
	cards = append(cards, deck[0]) // duplicate the first card
	g.Stock = pile.NewStock(cards)
	if err := g.Validate(); err == nil {
		t.Error("expected validation failure for a duplicated card")
	}
}

func TestCheckWin(t *testing.T) {
	g := newEmptyGame("deck-1")
	for i, s := range card.Suits {
		for r := card.Ace; r <= card.King; r++ {
			g.Foundations[i].Push(card.Card{Rank: r, Suit: s})
		}
	}
	if !g.CheckWin() {
		t.Fatal("expected win with all foundations complete")
	}
	if !g.Won {
		t.Error("Won flag should be set after CheckWin reports a win")
	}
}

func TestCheckWin_IncompleteFoundation(t *testing.T) {
	g := newEmptyGame("deck-1")
	g.Foundations[0].Push(card.Card{Rank: card.Ace, Suit: card.Spades})
	if g.CheckWin() {
		t.Error("did not expect a win with an incomplete foundation")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := fullDeckOnStock("deck-1")
	clone := g.Clone()
	clone.Stock.PopTop()
	if g.Stock.Len() == clone.Stock.Len() {
		t.Error("mutating the clone's stock should not affect the original")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	g := fullDeckOnStock("deck-42")
	snap := g.Snapshot()

	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	restoredSnap := restored.Snapshot()

	if restoredSnap.DeckID != snap.DeckID {
		t.Errorf("deck id mismatch: got %q want %q", restoredSnap.DeckID, snap.DeckID)
	}
	if len(restoredSnap.Stock) != len(snap.Stock) {
		t.Errorf("stock length mismatch: got %d want %d", len(restoredSnap.Stock), len(snap.Stock))
	}
	for i := range snap.Stock {
		if restoredSnap.Stock[i] != snap.Stock[i] {
			t.Errorf("stock[%d] mismatch: got %+v want %+v", i, restoredSnap.Stock[i], snap.Stock[i])
		}
	}
}

func TestRestoreRejectsCorruptSnapshot(t *testing.T) {
	g := fullDeckOnStock("deck-1")
	snap := g.Snapshot()
	snap.Stock = snap.Stock[1:] // drop a card, breaking card conservation

	if _, err := Restore(snap); err == nil {
		t.Error("expected Restore to reject a snapshot missing a card")
	}
}
