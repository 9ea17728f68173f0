package command

import (
	"github.com/oklog/ulid/v2"

	"github.com/five82/roster/internal/employee"
)

// Kind is the user action an intent stands for.
type Kind int

const (
	KindAdd Kind = iota + 1
	KindEdit
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindEdit:
		return "edit"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Intent is a user action waiting for confirmation. Record is the payload
// shown to the user: the blank or prefilled record for add, the stored
// record for edit and delete.
type Intent struct {
	ID     ulid.ULID
	Kind   Kind
	Record employee.Record
}

// Phase is the coordinator's state.
type Phase int

const (
	Idle Phase = iota
	AwaitingConfirmation
)

func (p Phase) String() string {
	if p == AwaitingConfirmation {
		return "awaiting-confirmation"
	}
	return "idle"
}

// Dialog is the confirmation collaborator. Open presents the intent; the
// user's answer comes back later through Coordinator.Confirm or
// Coordinator.Cancel, possibly from inside Open itself.
type Dialog interface {
	Open(intent Intent)
}

// DialogFunc adapts a function to Dialog.
type DialogFunc func(Intent)

// Open calls f(intent).
func (f DialogFunc) Open(intent Intent) { f(intent) }
