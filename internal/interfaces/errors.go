package interfaces

import "fmt"

// DeletionBlockedError is returned when a delete cannot proceed because
// dependent rows still reference the target (e.g. a venue with shows).
type DeletionBlockedError struct {
	Resource   string
	References map[string]int64
}

func (e *DeletionBlockedError) Error() string {
	return "deletion blocked"
}

// PersistenceError wraps a store-level failure during a write. The wrapped
// error keeps the underlying *pq.Error reachable through errors.As so
// handlers can distinguish unique (23505) from foreign-key (23503)
// violations. The in-flight transaction has already been rolled back by
// the time a PersistenceError is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
