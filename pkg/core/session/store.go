package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"finsight/pkg/core/assistant"
	"finsight/pkg/core/llm"
	"finsight/pkg/core/ratio"
)

// State is everything the service remembers for one interactive user: the
// latest analysis and the chat assistant layered on it. It lives only in
// process memory; uploading a new file replaces the analysis and ending the
// session discards everything.
type State struct {
	ID        string
	Assistant *assistant.Session

	mu      sync.RWMutex
	rows    []ratio.Row
	liq     ratio.Liquidity
	context string
}

// SetAnalysis replaces the session's analysis. The chat assistant is left
// untouched: an Active dialogue keeps the system instruction it was created
// with, so its context goes stale until the user resets the chat.
func (s *State) SetAnalysis(rows []ratio.Row, liq ratio.Liquidity, contextBlock string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = rows
	s.liq = liq
	s.context = contextBlock
}

// Analysis returns the current annotated table and liquidity metric.
func (s *State) Analysis() ([]ratio.Row, ratio.Liquidity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows, s.liq, s.rows != nil
}

// Context returns the serialized analysis context used to seed the chat, or
// the no-data placeholder when nothing has been uploaded yet.
func (s *State) Context() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.context == "" {
		return assistant.NoDataContext
	}
	return s.context
}

// Store hands out per-user session state with a sliding TTL. Expired
// sessions simply vanish; there is no persistence to recover them from.
type Store struct {
	provider llm.Provider
	ttl      time.Duration
	cache    *gocache.Cache
}

func NewStore(provider llm.Provider, ttl time.Duration) *Store {
	return &Store{
		provider: provider,
		ttl:      ttl,
		cache:    gocache.New(ttl, ttl/2),
	}
}

// Get returns the session for id, refreshing its TTL.
func (s *Store) Get(id string) (*State, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	st := v.(*State)
	s.cache.Set(id, st, s.ttl)
	return st, true
}

// GetOrCreate returns the session for id, creating a fresh one when id is
// empty or unknown (expired sessions get a new identity, not a resurrection).
func (s *Store) GetOrCreate(id string) *State {
	if st, ok := s.Get(id); ok {
		return st
	}
	st := &State{
		ID:        uuid.NewString(),
		Assistant: assistant.NewSession(s.provider),
	}
	s.cache.Set(st.ID, st, s.ttl)
	return st
}
