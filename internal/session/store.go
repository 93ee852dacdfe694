package session

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// CookieName is the session cookie carried between the browser and the API.
const CookieName = "rvh_session"

// Store keeps OAuth tokens per browser session, in memory only. Sessions do
// not survive a restart; the user simply re-authenticates.
type Store struct {
	mu     sync.RWMutex
	tokens map[string]*oauth2.Token
}

// NewStore creates a new empty session store.
func NewStore() *Store {
	return &Store{tokens: make(map[string]*oauth2.Token)}
}

// Create stores a token under a fresh session ID and returns the ID.
func (s *Store) Create(token *oauth2.Token) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.tokens[id] = token
	s.mu.Unlock()
	return id
}

// Get returns the token for a session ID, if the session exists.
func (s *Store) Get(id string) (*oauth2.Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[id]
	return token, ok
}

// Update replaces the token of an existing session, e.g. after a refresh.
func (s *Store) Update(id string, token *oauth2.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[id]; ok {
		s.tokens[id] = token
	}
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.tokens, id)
	s.mu.Unlock()
}
