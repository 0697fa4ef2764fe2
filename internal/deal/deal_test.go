package deal

import (
	"testing"

	"github.com/sde-casino/solitaire/internal/card"
)

func TestBuildLayout(t *testing.T) {
	deck := card.FullDeck()
	g, err := Build("deck-1", deck[:])
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for col := 0; col < 7; col++ {
		want := col + 1
		if got := g.Tableau[col].Len(); got != want {
			t.Errorf("tableau[%d] length = %d, want %d", col, got, want)
		}
		slots := g.Tableau[col].Slots()
		for i, s := range slots {
			wantFaceUp := i == len(slots)-1
			if s.FaceUp != wantFaceUp {
				t.Errorf("tableau[%d][%d].FaceUp = %v, want %v", col, i, s.FaceUp, wantFaceUp)
			}
		}
	}

	if got := g.Stock.Len(); got != 24 {
		t.Errorf("stock length = %d, want 24", got)
	}
	for _, f := range g.Foundations {
		if f.Len() != 0 {
			t.Errorf("expected empty foundation, got %d cards", f.Len())
		}
	}
	if g.Talon.Len() != 0 {
		t.Errorf("expected empty talon, got %d cards", g.Talon.Len())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("dealt game should validate, got %v", err)
	}
}

func TestBuildRejectsTooFewCards(t *testing.T) {
	deck := card.FullDeck()
	_, err := Build("deck-1", deck[:51])
	if err != InvalidDeck {
		t.Errorf("Build with 51 cards: got %v, want InvalidDeck", err)
	}
}

func TestBuildRejectsDuplicates(t *testing.T) {
	deck := card.FullDeck()
	cards := append([]card.Card(nil), deck[:51]...)
	cards = append(cards, deck[0])
	_, err := Build("deck-1", cards)
	if err != InvalidDeck {
		t.Errorf("Build with a duplicate card: got %v, want InvalidDeck", err)
	}
}
