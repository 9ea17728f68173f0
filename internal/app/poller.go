package app

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/five82/roster/internal/employee"
)

const maxBackoff = 30 * time.Second

// Lister fetches the full record list.
type Lister interface {
	List(ctx context.Context) ([]employee.Record, error)
}

// Replacer takes a freshly fetched list.
type Replacer interface {
	ReplaceAll(records []employee.Record) error
}

// StartPoller launches a background goroutine that reloads the full list
// every interval until ctx is cancelled. Failed reloads are logged and the
// next attempt backs off exponentially up to maxBackoff. A non-positive
// interval disables polling. It returns immediately.
func StartPoller(ctx context.Context, store Replacer, client Lister, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		failures := 0
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			if err := refresh(ctx, store, client); err != nil {
				if ctx.Err() != nil {
					return
				}
				failures++
				wait := calculateBackoff(failures, interval)
				glog.Warningf("[reload] attempt failed (%d in a row), next in %s: %v", failures, wait, err)
				timer.Reset(wait)
				continue
			}
			if failures > 0 {
				glog.Infof("[reload] recovered after %d failed attempts", failures)
			}
			failures = 0
			timer.Reset(interval)
		}
	}()
}

// calculateBackoff doubles base once per consecutive failure, capped at
// maxBackoff (or base itself when base is already larger).
func calculateBackoff(failures int, base time.Duration) time.Duration {
	limit := max(maxBackoff, base)
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= limit {
			return limit
		}
	}
	return wait
}

// refresh replaces the store's contents with the remote list.
func refresh(ctx context.Context, store Replacer, client Lister) error {
	records, err := client.List(ctx)
	if err != nil {
		return fmt.Errorf("list employees: %w", err)
	}
	if err := store.ReplaceAll(records); err != nil {
		return fmt.Errorf("replace records: %w", err)
	}
	glog.V(1).Infof("[reload] loaded %d records", len(records))
	return nil
}
