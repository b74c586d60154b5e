package storage

import "fmt"

// CapacityError reports that a Save would exceed what the backend can
// hold. The previous contents stay intact.
type CapacityError struct {
	Size  int64 // bytes the payload needed
	Limit int64 // bytes available, 0 when the backend could not say
}

func (e *CapacityError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("store is full: %d bytes needed, %d allowed", e.Size, e.Limit)
	}
	return "store is full"
}

// CorruptDataError reports a persisted payload that is not a JSON array
// at all. Load recovers from it by treating the history as empty; the
// type exists for diagnostics, not for control flow in callers.
type CorruptDataError struct {
	Path   string
	Reason string
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt round data in %s: %s", e.Path, e.Reason)
}
