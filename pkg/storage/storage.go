// Package storage persists round records. Two backends implement the
// same contract: a single JSON file and a SQLite database. The store
// owns the canonical round list; callers re-read it for every operation
// and never keep a mutable copy between operations.
package storage

import (
	"fmt"

	"fairway/pkg/round"
)

// Store is the persistence contract. Load returns rounds newest first.
// Save replaces the whole collection; from the caller's point of view a
// Save either fully happens or leaves the previous contents intact.
type Store interface {
	Load() ([]round.Round, error)
	Save(rounds []round.Round) error
	Clear() error
	Close() error
}

// Append loads the current rounds, prepends r and saves. The new round
// becomes the most recent entry. Fails if the id is already taken.
func Append(s Store, r round.Round) error {
	rounds, err := s.Load()
	if err != nil {
		return err
	}
	for _, existing := range rounds {
		if existing.ID == r.ID {
			return fmt.Errorf("round id %s already exists", r.ID)
		}
	}
	return s.Save(append([]round.Round{r}, rounds...))
}

// Delete removes the round with the given id. Returns false when no
// stored round has that id.
func Delete(s Store, id string) (bool, error) {
	rounds, err := s.Load()
	if err != nil {
		return false, err
	}
	kept := rounds[:0]
	found := false
	for _, r := range rounds {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return false, nil
	}
	return true, s.Save(kept)
}
