// Package engine is the rules kernel: it validates and executes the
// six Klondike move kinds from spec §4.3 against a *game.Game,
// maintaining face-up/face-down state, auto-reveal, and win detection.
// Every operation is atomic — it either commits every mutation or
// makes none — and single-threaded with respect to any one game
// (spec §5); callers that share a Game across goroutines must
// serialise access themselves (see the session package).
package engine

import (
	"github.com/sde-casino/solitaire/internal/card"
	"github.com/sde-casino/solitaire/internal/game"
	"github.com/sde-casino/solitaire/internal/pile"
)

// Engine executes moves against one Game. It holds no state of its
// own; a single Engine value may be reused across games.
type Engine struct{}

// New returns a ready-to-use Engine.
func New() *Engine {
	return &Engine{}
}

// checkNotOver rejects every operation once the game has been won
// (spec §4.3.7: "the game is frozen to further moves").
func checkNotOver(g *game.Game) error {
	if g.Won {
		return ErrGameOver
	}
	return nil
}

// TableauToTableau moves the top count cards of tableau column from
// onto tableau column to (spec §4.3.1).
func (e *Engine) TableauToTableau(g *game.Game, from, to, count int) (*game.Game, error) {
	if err := checkNotOver(g); err != nil {
		return nil, err
	}
	// Spec step 1 groups from != to, range checks, and count >= 1 ahead
	// of the pile-specific checks below but names no dedicated error
	// code for them; a non-positive count is reported as InvalidCount,
	// everything else as IllegalPlacement (an invalid target).
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if from == to || from < 0 || from > 6 || to < 0 || to > 6 {
		return nil, ErrIllegalPlacement
	}

	next := g.Clone()
	src := next.Tableau[from]
	dst := next.Tableau[to]

	if src.Len() == 0 {
		return nil, ErrEmptySource
	}
	if count > src.Len() {
		return nil, ErrInvalidCount
	}

	bottomIdx := src.Len() - count
	movingBottom := src.At(bottomIdx)
	if !movingBottom.FaceUp {
		return nil, ErrFaceDownMove
	}
	if !canPlaceOnTableau(dst, movingBottom.Card) {
		return nil, ErrIllegalPlacement
	}

	moving := src.DetachSuffix(count)
	dst.Append(moving...)
	src.RevealTop()

	return next, nil
}

// TableauToFoundation moves the top card of tableau column from onto
// the foundation for suit (spec §4.3.2).
func (e *Engine) TableauToFoundation(g *game.Game, from int, suit card.Suit) (*game.Game, error) {
	if err := checkNotOver(g); err != nil {
		return nil, err
	}
	if from < 0 || from > 6 {
		return nil, ErrIllegalPlacement
	}

	next := g.Clone()
	src := next.Tableau[from]

	top, ok := src.Top()
	if !ok {
		return nil, ErrEmptySource
	}
	if top.Suit != suit {
		return nil, ErrSuitMismatch
	}
	foundation := next.Foundation(suit)
	if !foundation.Accepts(top) {
		return nil, ErrIllegalPlacement
	}

	src.DetachSuffix(1)
	foundation.Push(top)
	src.RevealTop()
	next.CheckWin()

	return next, nil
}

// TalonToFoundation moves the top talon card onto the foundation for
// suit (spec §4.3.3).
func (e *Engine) TalonToFoundation(g *game.Game, suit card.Suit) (*game.Game, error) {
	if err := checkNotOver(g); err != nil {
		return nil, err
	}

	next := g.Clone()
	top, ok := next.Talon.Top()
	if !ok {
		return nil, ErrEmptyTalon
	}
	if top.Suit != suit {
		return nil, ErrSuitMismatch
	}
	foundation := next.Foundation(suit)
	if !foundation.Accepts(top) {
		return nil, ErrIllegalPlacement
	}

	next.Talon.PopTop()
	foundation.Push(top)
	next.CheckWin()

	return next, nil
}

// TalonToTableau moves the top talon card onto tableau column to
// (spec §4.3.4).
func (e *Engine) TalonToTableau(g *game.Game, to int) (*game.Game, error) {
	if err := checkNotOver(g); err != nil {
		return nil, err
	}
	if to < 0 || to > 6 {
		return nil, ErrIllegalPlacement
	}

	next := g.Clone()
	top, ok := next.Talon.Top()
	if !ok {
		return nil, ErrEmptyTalon
	}
	dst := next.Tableau[to]
	if !canPlaceOnTableau(dst, top) {
		return nil, ErrIllegalPlacement
	}

	next.Talon.PopTop()
	dst.Append(pile.Slot{Card: top, FaceUp: true})

	return next, nil
}

// DrawFromStock moves up to three cards from the stock to the talon,
// one at a time, each becoming face-up (spec §4.3.5).
func (e *Engine) DrawFromStock(g *game.Game) (*game.Game, error) {
	if err := checkNotOver(g); err != nil {
		return nil, err
	}

	next := g.Clone()
	if next.Stock.Len() == 0 {
		return nil, ErrEmptyStock
	}

	for i := 0; i < 3 && next.Stock.Len() > 0; i++ {
		c := next.Stock.PopTop()
		next.Talon.PushTop(c)
	}

	return next, nil
}

// ResetStock moves every card from the talon back to the stock,
// reversing the talon's order relative to the stock (spec §4.3.6).
func (e *Engine) ResetStock(g *game.Game) (*game.Game, error) {
	if err := checkNotOver(g); err != nil {
		return nil, err
	}

	next := g.Clone()
	if next.Talon.Len() == 0 {
		return nil, ErrEmptyTalon
	}
	if next.Stock.Len() != 0 {
		return nil, ErrStockNotEmpty
	}

	for next.Talon.Len() > 0 {
		c := next.Talon.PopTop()
		next.Stock.PushTop(c)
	}

	return next, nil
}

// canPlaceOnTableau implements the destination-placement rule shared
// by every move that lands on a tableau column (spec §4.3.1 step 4):
// an empty column accepts only a King, otherwise the top card must be
// one rank higher and the opposite colour.
func canPlaceOnTableau(dst interface {
	Top() (card.Card, bool)
}, moving card.Card) bool {
	top, ok := dst.Top()
	if !ok {
		return moving.Rank == card.King
	}
	return top.Rank == moving.Rank+1 && top.Colour() != moving.Colour()
}

