package ui

import (
	"sync"

	"github.com/five82/roster/internal/command"
)

// dialogHost is the model's command.Dialog. The coordinator calls Open from
// inside a Request call made by Update; Update then takes the intent and
// shows the matching modal.
type dialogHost struct {
	mu      sync.Mutex
	pending *command.Intent
}

var _ command.Dialog = (*dialogHost)(nil)

func (h *dialogHost) Open(intent command.Intent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = &intent
}

func (h *dialogHost) take() (command.Intent, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending == nil {
		return command.Intent{}, false
	}
	intent := *h.pending
	h.pending = nil
	return intent, true
}
