// Package session holds the per-sign-in caches of a citizen's
// submitted records. Each Store is explicitly constructed at session
// start and dropped at sign-out; nothing here is ambient or global.
package session

import (
	"sort"
	"sync"
	"time"
)

// Entry is the cached view of one submitted record.
type Entry struct {
	ID        string
	CreatedAt time.Time
	Value     any
}

// Store caches the most recently fetched list of records for one
// owner, newest first. It is bounded: past the limit the oldest
// entries are evicted, so a long session cannot grow it without bound.
// Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
}

// NewStore creates a cache bounded to limit entries. A non-positive
// limit falls back to 100.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = 100
	}
	return &Store{limit: limit}
}

// Replace installs a freshly fetched list, sorted newest first. The
// previous contents are discarded entirely.
func (s *Store) Replace(entries []Entry) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > s.limit {
		sorted = sorted[:s.limit]
	}

	s.mu.Lock()
	s.entries = sorted
	s.mu.Unlock()
}

// Append adds a just-created record without a refetch. The new entry
// goes to the front since it is the newest.
func (s *Store) Append(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]Entry{e}, s.entries...)
	if len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}
}

// Entries returns a snapshot of the cached list, newest first.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Contains reports whether a record with the given id is cached.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Session bundles the per-owner caches torn down together at sign-out.
type Session struct {
	OwnerID      string
	Applications *Store
	Grievances   *Store
}

// New creates the caches for a freshly signed-in owner.
func New(ownerID string, limit int) *Session {
	return &Session{
		OwnerID:      ownerID,
		Applications: NewStore(limit),
		Grievances:   NewStore(limit),
	}
}
