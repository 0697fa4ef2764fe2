package pile

import (
	"testing"

	"github.com/sde-casino/solitaire/internal/card"
)

func TestTableauValidate_EmptyIsValid(t *testing.T) {
	tab := NewTableau(nil)
	if err := tab.Validate(); err != nil {
		t.Errorf("empty tableau should validate, got %v", err)
	}
}

func TestTableauValidate_TopFaceDownRejected(t *testing.T) {
	tab := NewTableau([]Slot{
		{Card: card.Card{Rank: card.Two, Suit: card.Spades}, FaceUp: false},
	})
	if err := tab.Validate(); err == nil {
		t.Error("expected error for face-down top card")
	}
}

func TestTableauValidate_FaceDownMustBePrefix(t *testing.T) {
	tab := NewTableau([]Slot{
		{Card: card.Card{Rank: card.King, Suit: card.Spades}, FaceUp: true},
		{Card: card.Card{Rank: card.Queen, Suit: card.Hearts}, FaceUp: false},
		{Card: card.Card{Rank: card.Jack, Suit: card.Spades}, FaceUp: true},
	})
	if err := tab.Validate(); err == nil {
		t.Error("expected error for face-down card after a face-up card")
	}
}

func TestTableauValidate_AdjacencyRankAndColour(t *testing.T) {
	good := NewTableau([]Slot{
		{Card: card.Card{Rank: card.King, Suit: card.Spades}, FaceUp: true},
		{Card: card.Card{Rank: card.Queen, Suit: card.Hearts}, FaceUp: true},
	})
	if err := good.Validate(); err != nil {
		t.Errorf("King(black) then Queen(red) should validate, got %v", err)
	}

	sameColour := NewTableau([]Slot{
		{Card: card.Card{Rank: card.King, Suit: card.Spades}, FaceUp: true},
		{Card: card.Card{Rank: card.Queen, Suit: card.Clubs}, FaceUp: true},
	})
	if err := sameColour.Validate(); err == nil {
		t.Error("expected error for same-colour adjacency")
	}

	wrongRank := NewTableau([]Slot{
		{Card: card.Card{Rank: card.King, Suit: card.Spades}, FaceUp: true},
		{Card: card.Card{Rank: card.Jack, Suit: card.Hearts}, FaceUp: true},
	})
	if err := wrongRank.Validate(); err == nil {
		t.Error("expected error for non-consecutive rank adjacency")
	}
}

func TestTableauDetachAndRevealTop(t *testing.T) {
	tab := NewTableau([]Slot{
		{Card: card.Card{Rank: card.Eight, Suit: card.Clubs}, FaceUp: false},
		{Card: card.Card{Rank: card.Six, Suit: card.Spades}, FaceUp: true},
		{Card: card.Card{Rank: card.Five, Suit: card.Hearts}, FaceUp: true},
	})
	moved := tab.DetachSuffix(1)
	if len(moved) != 1 || !moved[0].Card.Equal(card.Card{Rank: card.Five, Suit: card.Hearts}) {
		t.Fatalf("unexpected detached suffix: %+v", moved)
	}
	if tab.Len() != 2 {
		t.Fatalf("tableau length = %d, want 2", tab.Len())
	}
	if flipped := tab.RevealTop(); flipped {
		t.Error("top was already face-up, RevealTop should report no flip")
	}

	tab.DetachSuffix(1)
	if flipped := tab.RevealTop(); !flipped {
		t.Error("expected RevealTop to flip the newly exposed card")
	}
	if top, _ := tab.Top(); !top.Equal(card.Card{Rank: card.Eight, Suit: card.Clubs}) {
		t.Errorf("unexpected new top card: %+v", top)
	}
}
