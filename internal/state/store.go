package state

import (
	"sync"
	"time"

	"github.com/five82/roster/internal/employee"
)

// Snapshot represents the record list at one point in time.
type Snapshot struct {
	Records     []employee.Record
	Version     uint64 // increases by one per mutation
	LastUpdated time.Time
}

// Store owns the authoritative record list. All mutation goes through its
// methods; every successful mutation publishes a fresh Snapshot.
//
// The zero value is an empty store ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	changes  Broadcaster[Snapshot]
}

// All returns a copy of the current records in insertion order.
func (s *Store) All() []employee.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.snapshot.Records)
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	return snap
}

// Get returns the record with the given id.
func (s *Store) Get(id int64) (employee.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := indexOf(s.snapshot.Records, id); i >= 0 {
		return s.snapshot.Records[i], true
	}
	return employee.Record{}, false
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot.Records)
}

// ReplaceAll swaps in a whole new list. A list carrying the same id twice is
// rejected and the store is left untouched.
func (s *Store) ReplaceAll(records []employee.Record) error {
	seen := make(map[int64]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			return &DuplicateIDError{ID: r.ID}
		}
		seen[r.ID] = struct{}{}
	}

	s.mu.Lock()
	s.snapshot.Records = cloneRecords(records)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

// Insert appends r.
func (s *Store) Insert(r employee.Record) error {
	s.mu.Lock()
	if indexOf(s.snapshot.Records, r.ID) >= 0 {
		s.mu.Unlock()
		return &DuplicateIDError{ID: r.ID}
	}
	s.snapshot.Records = append(cloneRecords(s.snapshot.Records), r)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

// Update replaces the record stored under id. The stored record keeps id as
// its identity whatever r.ID says.
func (s *Store) Update(id int64, r employee.Record) error {
	s.mu.Lock()
	i := indexOf(s.snapshot.Records, id)
	if i < 0 {
		s.mu.Unlock()
		return &NotFoundError{ID: id}
	}
	r.ID = id
	records := cloneRecords(s.snapshot.Records)
	records[i] = r
	s.snapshot.Records = records
	snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

// Remove deletes the record stored under id.
func (s *Store) Remove(id int64) error {
	s.mu.Lock()
	i := indexOf(s.snapshot.Records, id)
	if i < 0 {
		s.mu.Unlock()
		return &NotFoundError{ID: id}
	}
	records := make([]employee.Record, 0, len(s.snapshot.Records)-1)
	records = append(records, s.snapshot.Records[:i]...)
	records = append(records, s.snapshot.Records[i+1:]...)
	s.snapshot.Records = records
	snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

// Subscribe registers fn for change notifications. fn receives the current
// snapshot before Subscribe returns and every later one after each mutation.
// Snapshots handed to subscribers are shared and must be treated as read-only.
//
// Store mutations never modify a published slice in place; each one builds a
// new slice. A snapshot older than the last one published is dropped, but
// concurrent mutators may still reach a callback in either order, so
// subscribers that care compare Version.
func (s *Store) Subscribe(fn func(Snapshot)) Subscription {
	return s.changes.Subscribe(fn)
}

// Unsubscribe stops notifications for sub.
func (s *Store) Unsubscribe(sub Subscription) {
	s.changes.Unsubscribe(sub)
}

// publish delivers snap unless a later version was already published.
func (s *Store) publish(snap Snapshot) {
	s.changes.PublishNewer(snap, func(v, last Snapshot) bool {
		return v.Version > last.Version
	})
}

// commitLocked bumps the version and returns the snapshot to publish.
// Callers hold s.mu for writing.
func (s *Store) commitLocked() Snapshot {
	s.snapshot.Version++
	s.snapshot.LastUpdated = time.Now()
	return s.snapshot
}

func indexOf(records []employee.Record, id int64) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func cloneRecords(records []employee.Record) []employee.Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]employee.Record, len(records))
	copy(dup, records)
	return dup
}
