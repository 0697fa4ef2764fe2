package pile

import "errors"

// These describe invariant violations surfaced during Validate, used
// internally by the game aggregate to reject a corrupt snapshot with
// CorruptSnapshot (spec §4.4). They are not part of the engine's
// caller-visible rule-violation taxonomy.
var (
	errTableauTopFaceDown = errors.New("pile: tableau top card is face-down")
	errTableauFaceDownGap = errors.New("pile: tableau face-down cards are not a contiguous prefix")
	errTableauAdjacency   = errors.New("pile: tableau adjacent face-up cards violate rank/colour sequencing")
	errFoundationSuit     = errors.New("pile: foundation contains a card of the wrong suit")
	errFoundationSequence = errors.New("pile: foundation ranks are not a gapless run starting at ace")
)
