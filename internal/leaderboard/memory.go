package leaderboard

import (
	"context"
	"sort"
	"sync"
)

// MemoryLeaderboard is an in-process Leaderboard used for tests and
// for running the façade without a configured leaderboard service.
type MemoryLeaderboard struct {
	mu   sync.Mutex
	rows map[string]*Row
}

// NewMemoryLeaderboard returns an empty leaderboard.
func NewMemoryLeaderboard() *MemoryLeaderboard {
	return &MemoryLeaderboard{rows: make(map[string]*Row)}
}

func (l *MemoryLeaderboard) GameStarted(ctx context.Context, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.rows[userID]
	if !ok {
		r = &Row{UserID: userID}
		l.rows[userID] = r
	}
	r.PlayedGames++
	return nil
}

func (l *MemoryLeaderboard) GameWon(ctx context.Context, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.rows[userID]
	if !ok {
		return UnknownUser
	}
	r.GamesWon++
	return nil
}

func (l *MemoryLeaderboard) Rows(ctx context.Context) ([]Row, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Row, 0, len(l.rows))
	for _, r := range l.rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GamesWon != out[j].GamesWon {
			return out[i].GamesWon > out[j].GamesWon
		}
		return out[i].PlayedGames > out[j].PlayedGames
	})
	return out, nil
}
