package dossier

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownSession is returned for session ids the registry does not track.
var ErrUnknownSession = errors.New("unknown session")

// Registry tracks live entry sessions by id.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: map[string]*Session{}, now: time.Now}
}

// NewRegistryAt injects the clock used by new sessions.
func NewRegistryAt(now func() time.Time) *Registry {
	return &Registry{sessions: map[string]*Session{}, now: now}
}

// Create starts an empty session and returns its id.
func (r *Registry) Create() (string, *Session) {
	id := uuid.NewString()
	sess := NewSessionAt(r.now)
	r.mu.Lock()
	r.sessions[id] = sess
	r.mu.Unlock()
	return id, sess
}

// Get resolves a session by id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[id]
	if !ok {
		return nil, ErrUnknownSession
	}
	return sess, nil
}

// Delete discards a session. Deleting an unknown id is a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
