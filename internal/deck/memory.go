package deck

import (
	"context"
	"fmt"
	"sync"

	"github.com/sde-casino/solitaire/internal/card"
)

// MemorySource is a self-contained Source that shuffles a fresh 52-card
// deck in place using an injected ShuffleFunc, grounded in the
// teacher's own NewGame(shuffle ShuffleFunc) design. It is used for
// tests and for local/offline play where no external deck service is
// configured.
type MemorySource struct {
	shuffle ShuffleFunc

	mu    sync.Mutex
	next  int
	decks map[string][]card.Card
}

// NewMemorySource returns a Source that shuffles with the given
// function. A nil shuffle leaves the fixed FullDeck order in place,
// which is useful for deterministic tests.
func NewMemorySource(shuffle ShuffleFunc) *MemorySource {
	return &MemorySource{shuffle: shuffle, decks: make(map[string][]card.Card)}
}

func (s *MemorySource) NewDeck(ctx context.Context) (string, [52]card.Card, error) {
	cards := card.FullDeck()
	dealt := cards[:]
	if s.shuffle != nil {
		s.shuffle(dealt)
	}

	s.mu.Lock()
	s.next++
	id := fmt.Sprintf("mem-%d", s.next)
	s.decks[id] = append([]card.Card(nil), dealt...)
	s.mu.Unlock()

	return id, cards, nil
}

func (s *MemorySource) Draw(ctx context.Context, deckID string, n int) ([]card.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, ok := s.decks[deckID]
	if !ok {
		return nil, fmt.Errorf("%w: unknown deck %q", Unavailable, deckID)
	}
	if n > len(remaining) {
		n = len(remaining)
	}
	drawn := remaining[:n]
	s.decks[deckID] = remaining[n:]
	return append([]card.Card(nil), drawn...), nil
}
