// Package pile implements the four pile abstractions of a Klondike
// game — tableau column, foundation slot, stock, and talon — each
// enforcing its own invariants independently of the rules kernel that
// drives moves between them.
package pile

import "github.com/sde-casino/solitaire/internal/card"

// Slot is one (card, face-up) pair inside a TableauSlot.
type Slot struct {
	Card   card.Card
	FaceUp bool
}

// Tableau is an ordered sequence of (card, face-up) pairs. Index 0 is
// the bottom of the column; the last element is the top, the only
// position new cards may be appended to or removed from.
//
// Invariants (spec §3):
//   - if non-empty, the top card is face-up
//   - all face-down cards form a contiguous prefix starting at index 0
//   - every adjacent face-up pair (lower, upper) satisfies
//     upper.Rank+1 == lower.Rank and upper.Colour != lower.Colour
type Tableau struct {
	slots []Slot
}

// NewTableau builds a tableau column from its slots in bottom-to-top
// order. It does not validate invariants; callers that accept
// untrusted input should call Validate.
func NewTableau(slots []Slot) *Tableau {
	t := &Tableau{slots: append([]Slot(nil), slots...)}
	return t
}

// Len returns the number of cards in the column.
func (t *Tableau) Len() int {
	return len(t.slots)
}

// Slots returns the column's slots bottom-to-top. The returned slice
// must not be mutated by the caller.
func (t *Tableau) Slots() []Slot {
	return t.slots
}

// Top returns the top (accessible) card and true, or the zero value
// and false if the column is empty.
func (t *Tableau) Top() (card.Card, bool) {
	if len(t.slots) == 0 {
		return card.Card{}, false
	}
	return t.slots[len(t.slots)-1].Card, true
}

// At returns the slot at index i.
func (t *Tableau) At(i int) Slot {
	return t.slots[i]
}

// Clone returns a deep copy of the column.
func (t *Tableau) Clone() *Tableau {
	return NewTableau(t.slots)
}

// DetachSuffix removes and returns the top count slots, in unchanged
// (bottom-to-top) order. The caller is responsible for checking that
// count is in range.
func (t *Tableau) DetachSuffix(count int) []Slot {
	n := len(t.slots)
	moving := append([]Slot(nil), t.slots[n-count:]...)
	t.slots = t.slots[:n-count]
	return moving
}

// Append adds slots to the top of the column, in order.
func (t *Tableau) Append(slots ...Slot) {
	t.slots = append(t.slots, slots...)
}

// RevealTop flips the top card face-up if the column is non-empty and
// its top card is currently face-down. Returns whether a flip occurred.
func (t *Tableau) RevealTop() bool {
	if len(t.slots) == 0 {
		return false
	}
	top := len(t.slots) - 1
	if t.slots[top].FaceUp {
		return false
	}
	t.slots[top].FaceUp = true
	return true
}

// FaceUpFrom returns the index of the first face-up slot, or -1 if the
// column has no face-up cards.
func (t *Tableau) FaceUpFrom() int {
	for i, s := range t.slots {
		if s.FaceUp {
			return i
		}
	}
	return -1
}

// Validate checks the tableau-column invariants from spec §3 and §8.
func (t *Tableau) Validate() error {
	n := len(t.slots)
	if n == 0 {
		return nil
	}
	if !t.slots[n-1].FaceUp {
		return errTableauTopFaceDown
	}
	seenFaceUp := false
	for _, s := range t.slots {
		if s.FaceUp {
			seenFaceUp = true
			continue
		}
		if seenFaceUp {
			return errTableauFaceDownGap
		}
	}
	var prev *Slot
	for i := range t.slots {
		s := t.slots[i]
		if !s.FaceUp {
			prev = nil
			continue
		}
		if prev != nil {
			lower, upper := *prev, s
			if upper.Card.Rank+1 != lower.Card.Rank || upper.Card.Colour() == lower.Card.Colour() {
				return errTableauAdjacency
			}
		}
		prev = &t.slots[i]
	}
	return nil
}
