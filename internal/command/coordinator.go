package command

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/oklog/ulid/v2"

	"github.com/five82/roster/internal/employee"
	"github.com/five82/roster/internal/state"
)

var (
	// ErrBusy is returned when an action is requested while another one
	// still awaits confirmation.
	ErrBusy = errors.New("another action is awaiting confirmation")
	// ErrNoPending is returned by Confirm when nothing awaits confirmation.
	ErrNoPending = errors.New("no action is awaiting confirmation")
)

// Store is the local record list the coordinator mutates.
type Store interface {
	Get(id int64) (employee.Record, bool)
	Insert(r employee.Record) error
	Update(id int64, r employee.Record) error
	Remove(id int64) error
}

// Remote mirrors confirmed mutations to the backing service.
type Remote interface {
	Create(ctx context.Context, r employee.Record) error
	Update(ctx context.Context, id int64, r employee.Record) error
	Delete(ctx context.Context, id int64) error
}

var _ Store = (*state.Store)(nil)

// Options tune a Coordinator.
type Options struct {
	// Timeout bounds each remote call. Zero uses 10s.
	Timeout time.Duration
	// OnRemoteDone, when set, is called on the remote call's goroutine once
	// it finishes. intent.Record is the record as applied to the store, so an
	// add reports the confirmed id. err is nil on success.
	OnRemoteDone func(intent Intent, err error)
}

const defaultRemoteTimeout = 10 * time.Second

// Coordinator runs the add/edit/delete flow: request → dialog → confirm or
// cancel. A confirmed action is applied to the store immediately and then
// sent to the remote service in the background. A failed remote call is
// logged and nothing else: the local change stays.
type Coordinator struct {
	store  Store
	remote Remote
	opts   Options

	mu       sync.Mutex
	dialog   Dialog
	pending  *Intent
	inflight sync.WaitGroup
}

// New builds a Coordinator. remote may be nil, in which case confirmed
// actions only change the store.
func New(store Store, remote Remote, dialog Dialog, opts Options) *Coordinator {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultRemoteTimeout
	}
	return &Coordinator{
		store:  store,
		remote: remote,
		dialog: dialog,
		opts:   opts,
	}
}

// SetDialog replaces the confirmation collaborator.
func (c *Coordinator) SetDialog(d Dialog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialog = d
}

// RequestAdd asks for confirmation to add r.
func (c *Coordinator) RequestAdd(r employee.Record) (Intent, error) {
	return c.request(KindAdd, r)
}

// RequestEdit asks for confirmation to edit the record stored under id.
func (c *Coordinator) RequestEdit(id int64) (Intent, error) {
	r, ok := c.store.Get(id)
	if !ok {
		return Intent{}, &state.NotFoundError{ID: id}
	}
	return c.request(KindEdit, r)
}

// RequestDelete asks for confirmation to delete the record stored under id.
func (c *Coordinator) RequestDelete(id int64) (Intent, error) {
	r, ok := c.store.Get(id)
	if !ok {
		return Intent{}, &state.NotFoundError{ID: id}
	}
	return c.request(KindDelete, r)
}

func (c *Coordinator) request(kind Kind, r employee.Record) (Intent, error) {
	c.mu.Lock()
	if c.pending != nil {
		c.mu.Unlock()
		return Intent{}, ErrBusy
	}
	intent := Intent{ID: ulid.Make(), Kind: kind, Record: r}
	c.pending = &intent
	dialog := c.dialog
	c.mu.Unlock()

	glog.V(1).Infof("[cmd %s] %s of record %d awaiting confirmation", intent.ID, kind, r.ID)
	if dialog != nil {
		dialog.Open(intent)
	}
	return intent, nil
}

// Confirm accepts the pending intent. payload carries the values entered in
// the dialog; for edit its ID is ignored and for delete it is ignored
// entirely. The store is updated before Confirm returns; the remote call
// runs afterwards on its own goroutine.
//
// An edit or delete whose record disappeared while the dialog was open is a
// no-op. A store error on add (the id is taken) is returned.
func (c *Coordinator) Confirm(payload employee.Record) error {
	c.mu.Lock()
	intent := c.pending
	c.pending = nil
	c.mu.Unlock()

	if intent == nil {
		return ErrNoPending
	}

	// applied is the intent as carried out: for add and edit its Record is
	// what was written to the store.
	applied := *intent

	switch intent.Kind {
	case KindAdd:
		rec := payload
		applied.Record = rec
		if err := c.store.Insert(rec); err != nil {
			glog.Errorf("[cmd %s] add of record %d rejected by store: %v", intent.ID, rec.ID, err)
			return fmt.Errorf("add record %d: %w", rec.ID, err)
		}
		c.dispatch(applied, func(ctx context.Context) error {
			return c.remote.Create(ctx, rec)
		})

	case KindEdit:
		id := intent.Record.ID
		rec := payload
		rec.ID = id
		applied.Record = rec
		if err := c.store.Update(id, rec); err != nil {
			return c.vanished(*intent, err)
		}
		c.dispatch(applied, func(ctx context.Context) error {
			return c.remote.Update(ctx, id, rec)
		})

	case KindDelete:
		id := intent.Record.ID
		if err := c.store.Remove(id); err != nil {
			return c.vanished(*intent, err)
		}
		c.dispatch(applied, func(ctx context.Context) error {
			return c.remote.Delete(ctx, id)
		})

	default:
		return fmt.Errorf("unknown intent kind %d", intent.Kind)
	}

	glog.Infof("[cmd %s] %s of record %d applied locally", applied.ID, applied.Kind, applied.Record.ID)
	return nil
}

// vanished turns a not-found store error into the documented no-op.
func (c *Coordinator) vanished(intent Intent, err error) error {
	if errors.Is(err, state.ErrNotFound) {
		glog.Infof("[cmd %s] %s of record %d skipped: record no longer exists", intent.ID, intent.Kind, intent.Record.ID)
		return nil
	}
	glog.Errorf("[cmd %s] %s of record %d rejected by store: %v", intent.ID, intent.Kind, intent.Record.ID, err)
	return fmt.Errorf("%s record %d: %w", intent.Kind, intent.Record.ID, err)
}

// Cancel drops the pending intent without touching the store or the remote
// service.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	intent := c.pending
	c.pending = nil
	c.mu.Unlock()

	if intent != nil {
		glog.V(1).Infof("[cmd %s] %s of record %d cancelled", intent.ID, intent.Kind, intent.Record.ID)
	}
}

// Pending returns the intent awaiting confirmation, if any.
func (c *Coordinator) Pending() (Intent, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return Intent{}, false
	}
	return *c.pending, true
}

// Phase reports whether an intent awaits confirmation.
func (c *Coordinator) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != nil {
		return AwaitingConfirmation
	}
	return Idle
}

// Wait blocks until every remote call started so far has finished.
func (c *Coordinator) Wait() {
	c.inflight.Wait()
}

// dispatch runs call in the background. Calls are never cancelled or
// retried; when two calls for the same record overlap, whichever the server
// processes last wins.
func (c *Coordinator) dispatch(intent Intent, call func(ctx context.Context) error) {
	if c.remote == nil {
		return
	}
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), c.opts.Timeout)
		defer cancel()

		start := time.Now()
		err := call(ctx)
		if err != nil {
			glog.Warningf("[cmd %s] remote %s of record %d failed after %s, local change kept: %v",
				intent.ID, intent.Kind, intent.Record.ID, time.Since(start).Round(time.Millisecond), err)
		} else {
			glog.Infof("[cmd %s] remote %s of record %d done in %s",
				intent.ID, intent.Kind, intent.Record.ID, time.Since(start).Round(time.Millisecond))
		}
		if c.opts.OnRemoteDone != nil {
			c.opts.OnRemoteDone(intent, err)
		}
	}()
}
