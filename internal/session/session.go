// Package session maps an opaque session id to a running Game and
// serialises the engine operations issued against it. Sessions are
// process-local, persist for the process lifetime, and have no
// eviction policy (spec §4.5).
package session

import (
	"errors"
	"sync"

	"github.com/sde-casino/solitaire/internal/game"
)

// UnknownSession is returned by Get when no game is registered under
// the given id.
var UnknownSession = errors.New("session: unknown session id")

// entry pairs a game with the mutex that serialises moves against it.
// Distinct sessions use distinct mutexes so concurrent requests to
// different sessions never block each other (spec §5).
type entry struct {
	mu   sync.Mutex
	game *game.Game
}

// Registry is a process-local, concurrency-safe session table.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*entry)}
}

// Create registers g under id, replacing any existing game at that id.
func (r *Registry) Create(id string, g *game.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &entry{game: g}
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// With runs fn against the game registered under id, holding that
// session's lock for the duration so concurrent requests to the same
// session serialise (spec §5). It returns UnknownSession if id is not
// registered. Whatever Game fn returns (typically the post-move
// state) becomes the session's new authoritative state.
func (r *Registry) With(id string, fn func(g *game.Game) (*game.Game, error)) (*game.Game, error) {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, UnknownSession
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := fn(e.game)
	if err != nil {
		return nil, err
	}
	e.game = next
	return next, nil
}

// Get returns a snapshot-safe read of the game registered under id
// without mutating it.
func (r *Registry) Get(id string) (*game.Game, error) {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, UnknownSession
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game, nil
}
