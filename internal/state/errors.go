package state

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed store errors.
var (
	ErrDuplicateID = errors.New("duplicate record id")
	ErrNotFound    = errors.New("record not found")
)

// DuplicateIDError reports an insert of an ID that is already stored.
type DuplicateIDError struct {
	ID int64
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("record %d already exists", e.ID)
}

// Is reports whether target is ErrDuplicateID.
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// NotFoundError reports an update or removal of an ID that is not stored.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record %d not found", e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
