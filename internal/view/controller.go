package view

import (
	"slices"
	"sync"

	"github.com/five82/roster/internal/employee"
	"github.com/five82/roster/internal/state"
)

// Source is the record feed a Controller follows. *state.Store satisfies it.
type Source interface {
	Subscribe(fn func(state.Snapshot)) state.Subscription
	Unsubscribe(sub state.Subscription)
}

var _ Source = (*state.Store)(nil)

// Controller keeps the derived table page in step with the store and the
// view state. Any input change (new snapshot, filter, sort, page, page size)
// runs the same full recomputation and notifies subscribers once.
type Controller struct {
	mu       sync.Mutex
	source   Source
	sub      state.Subscription
	records  []employee.Record
	version  uint64
	state    State
	current  Derived
	revision uint64
	views    *state.Broadcaster[Derived]
}

// NewController attaches to src and computes the first page right away from
// the snapshot src replays on subscribe.
func NewController(src Source, pageSize int) *Controller {
	c := &Controller{
		source: src,
		state:  DefaultState(pageSize),
	}
	c.current = Derive(nil, c.state)
	c.views = state.NewBroadcaster(c.current)
	if src != nil {
		sub := src.Subscribe(c.onSnapshot)
		c.mu.Lock()
		c.sub = sub
		c.mu.Unlock()
	}
	return c
}

// Close detaches the controller from its source. The last page stays
// available through CurrentView.
func (c *Controller) Close() {
	c.mu.Lock()
	sub := c.sub
	c.sub = 0
	c.mu.Unlock()

	if c.source != nil && sub != 0 {
		c.source.Unsubscribe(sub)
	}
}

// SetFilter replaces the filter text and returns to the first page.
func (c *Controller) SetFilter(text string) {
	c.apply(func(st *State) {
		st.Filter = text
		st.PageIndex = 0
	})
}

// SetSort selects the sort column and direction. FieldNone or DirectionNone
// keep the filter order.
func (c *Controller) SetSort(field employee.Field, dir Direction) {
	c.apply(func(st *State) {
		st.Sort = SortSpec{Field: field, Direction: dir}
	})
}

// ToggleSort applies SortSpec.Toggle for field.
func (c *Controller) ToggleSort(field employee.Field) {
	c.apply(func(st *State) {
		st.Sort = st.Sort.Toggle(field)
	})
}

// SetPage moves to page index. Negative indexes are stored as 0; indexes past
// the last page are kept and produce an empty page.
func (c *Controller) SetPage(index int) {
	c.apply(func(st *State) {
		st.PageIndex = max(index, 0)
	})
}

// SetPageSize changes the page size while keeping the first visible row on
// screen. Sizes below 1 are ignored.
func (c *Controller) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	c.apply(func(st *State) {
		first := st.PageIndex * st.PageSize
		st.PageIndex = first / size
		st.PageSize = size
	})
}

// State returns the current view state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentView returns the latest computed page.
func (c *Controller) CurrentView() Derived {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.current
	d.Rows = slices.Clone(c.current.Rows)
	return d
}

// Subscribe registers fn; it receives the current page immediately and a
// new one after every recomputation. Pages are shared between subscribers
// and must be treated as read-only. A page older than the last one published
// is never delivered, but concurrent publishes may still reach a callback in
// either order; compare Revision when that matters.
func (c *Controller) Subscribe(fn func(Derived)) state.Subscription {
	return c.views.Subscribe(fn)
}

// Unsubscribe stops notifications for sub.
func (c *Controller) Unsubscribe(sub state.Subscription) {
	c.views.Unsubscribe(sub)
}

func (c *Controller) onSnapshot(snap state.Snapshot) {
	c.mu.Lock()
	if snap.Version < c.version {
		c.mu.Unlock()
		return
	}
	c.records = snap.Records
	c.version = snap.Version
	d := c.recomputeLocked()
	c.mu.Unlock()

	c.publish(d)
}

// apply is the single path by which view state changes: mutate, recompute,
// notify.
func (c *Controller) apply(mutate func(*State)) {
	c.mu.Lock()
	mutate(&c.state)
	d := c.recomputeLocked()
	c.mu.Unlock()

	c.publish(d)
}

// publish hands d to subscribers unless a later revision got there first.
func (c *Controller) publish(d Derived) {
	c.views.PublishNewer(d, newerRevision)
}

func newerRevision(d, last Derived) bool {
	return d.Revision > last.Revision
}

func (c *Controller) recomputeLocked() Derived {
	c.revision++
	c.current = Derive(c.records, c.state)
	c.current.Revision = c.revision
	return c.current
}
