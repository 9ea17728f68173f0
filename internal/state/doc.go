// Package state owns the authoritative in-memory employee list.
//
// # Overview
//
// Store holds the canonical record list for a session. It is populated by
// the initial REST fetch, replaced wholesale on every full reload, and
// mutated in place by the command coordinator when the user confirms an
// add, edit or delete.
//
// # Change Notification
//
// Every successful mutation publishes a Snapshot through a Broadcaster, a
// replay-last-value observer list:
//
//	store.Subscribe(fn)
//	→ fn(current snapshot)        immediately, before Subscribe returns
//	store.Insert(r)
//	→ fn(snapshot with r)         on the mutating goroutine
//
// A subscriber that registers late still sees the current state first, so
// the view engine never has to ask separately for the initial list.
//
// # Integrity Errors
//
// The store rejects operations that would break its invariants:
//
//   - Insert of an id already present: *DuplicateIDError (ErrDuplicateID)
//   - ReplaceAll with a list holding an id twice: *DuplicateIDError
//   - Update or Remove of a missing id: *NotFoundError (ErrNotFound)
//
// These are programmer-facing: they mean the coordinator and the store
// disagree about what exists. The store is left unchanged when they occur.
//
// # Concurrency
//
// Store uses a sync.RWMutex. Reads return copies. Mutations build
// a new slice rather than editing the published one, so snapshots handed to
// subscribers stay valid forever. Callbacks run outside the lock.
//
// The zero value is an empty store ready to use:
//
//	var store state.Store
package state
