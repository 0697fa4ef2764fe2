// Package deck provides the engine's view of the external "deck of
// cards" source: an opaque shuffled deck, drawn from in whatever order
// the source hands cards back. The engine treats the returned cards as
// already shuffled — it never reshuffles (spec §6, deck source contract).
package deck

import (
	"context"
	"errors"

	"github.com/sde-casino/solitaire/internal/card"
)

// Unavailable wraps any transport failure, non-200 response, or
// malformed payload from a Source, surfaced to the façade as
// DeckSourceUnavailable (spec §7).
var Unavailable = errors.New("deck: source unavailable")

// Source is the external deck-of-cards collaborator, consumed but not
// owned by the engine (spec §6).
type Source interface {
	// NewDeck requests a freshly shuffled deck and returns its opaque
	// id plus the full 52-card sequence in the order it will be drawn.
	NewDeck(ctx context.Context) (deckID string, cards [52]card.Card, err error)

	// Draw returns the next n cards from a previously issued deck.
	Draw(ctx context.Context, deckID string, n int) ([]card.Card, error)
}

// ShuffleFunc shuffles a slice of cards in place, grounded in the
// teacher's own pluggable-shuffle design (solitaire.NewGame(shuffle)).
type ShuffleFunc func([]card.Card)
