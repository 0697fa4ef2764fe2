package game

import "errors"

var (
	errWrongCardCount = errors.New("game: pile union does not total 52 cards")
	errDuplicateCard  = errors.New("game: a card appears more than once across the piles")
	errMissingCard    = errors.New("game: a card from the 52-card deck is missing")
)

// CorruptSnapshot is returned by Restore when the snapshot fails
// per-pile or cross-pile validation (spec §4.4, §7).
var CorruptSnapshot = errors.New("game: snapshot failed invariant validation")
