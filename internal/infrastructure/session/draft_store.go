package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/plantpass/pos-api/internal/domain/entity"
)

// DraftStore keeps active order drafts in memory, keyed by draft id. Drafts
// are session state, not data: if this process restarts they are simply
// re-entered, and the backend remains the only durable store.
//
// Every stored draft carries a revision. Writers read a snapshot, work on a
// clone (possibly across a gateway round trip), and commit against the
// revision they started from; a commit against a stale revision is refused,
// which is how a response arriving after the draft was reset or re-edited
// gets dropped instead of clobbering newer state.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]*entity.OrderDraft

	ttl       time.Duration
	sweepTick time.Duration
}

// NewDraftStore creates a store that sweeps drafts untouched for ttl.
func NewDraftStore(ttl, sweepInterval time.Duration) *DraftStore {
	s := &DraftStore{
		drafts:    make(map[string]*entity.OrderDraft),
		ttl:       ttl,
		sweepTick: sweepInterval,
	}
	if sweepInterval > 0 {
		go s.sweepLoop()
	}
	return s
}

// NewID returns a fresh draft id.
func (s *DraftStore) NewID() string {
	return uuid.New().String()
}

// Put inserts a new draft at revision 1.
func (s *DraftStore) Put(d *entity.OrderDraft) {
	now := time.Now()
	d.Revision = 1
	d.CreatedAt = now
	d.UpdatedAt = now

	s.mu.Lock()
	s.drafts[d.ID] = d.Clone()
	s.mu.Unlock()
}

// Get returns a deep copy of the draft so callers can mutate freely.
func (s *DraftStore) Get(id string) (*entity.OrderDraft, bool) {
	s.mu.RLock()
	d, ok := s.drafts[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// Commit stores d only if the draft still exists at expectRev. It returns
// false when the draft was deleted, reset, or modified since the caller
// read it; the caller must then discard its (stale) result.
func (s *DraftStore) Commit(d *entity.OrderDraft, expectRev int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.drafts[d.ID]
	if !ok || cur.Revision != expectRev {
		return false
	}

	d.Revision = expectRev + 1
	d.CreatedAt = cur.CreatedAt
	d.UpdatedAt = time.Now()
	s.drafts[d.ID] = d.Clone()
	return true
}

// Delete removes a draft outright.
func (s *DraftStore) Delete(id string) {
	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
}

// Len reports the number of live drafts.
func (s *DraftStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts)
}

func (s *DraftStore) sweepLoop() {
	ticker := time.NewTicker(s.sweepTick)
	defer ticker.Stop()

	for range ticker.C {
		s.sweep()
	}
}

func (s *DraftStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, d := range s.drafts {
		if d.UpdatedAt.Before(cutoff) {
			delete(s.drafts, id)
		}
	}
}
