package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"fairway/internal/utils"
	"fairway/pkg/round"
)

// DefaultCapacity caps the JSON payload at 5 MiB, roughly what a browser
// localStorage slot holds. Far more than 20 scored rounds ever need.
const DefaultCapacity = 5 << 20

// FileStore keeps the whole round list as one JSON array in a single
// file. Every Save rewrites the file through a temp-file rename, so a
// reader never observes a partial write.
type FileStore struct {
	path     string
	capacity int64
}

// NewFileStore returns a store backed by the JSON file at path.
// capacity <= 0 selects DefaultCapacity.
func NewFileStore(path string, capacity int64) *FileStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &FileStore{path: path, capacity: capacity}
}

// Load reads the stored rounds, newest first. Entries that fail the
// structural check are dropped, not surfaced: a corrupt entry must never
// take the rest of the history down with it. A payload that is not a
// JSON array at all resets the history to empty.
func (f *FileStore) Load() ([]round.Round, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	if !gjson.ValidBytes(data) {
		utils.Log.Warnf("resetting history: %v", &CorruptDataError{Path: f.path, Reason: "payload is not valid JSON"})
		return nil, nil
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		utils.Log.Warnf("resetting history: %v", &CorruptDataError{Path: f.path, Reason: "payload is not a JSON array"})
		return nil, nil
	}

	var rounds []round.Round
	dropped := 0
	parsed.ForEach(func(_, entry gjson.Result) bool {
		if !validRecord(entry) {
			dropped++
			return true
		}
		var r round.Round
		if err := json.Unmarshal([]byte(entry.Raw), &r); err != nil {
			dropped++
			return true
		}
		rounds = append(rounds, r)
		return true
	})
	if dropped > 0 {
		utils.Log.Warnf("dropped %d corrupt round record(s) from %s", dropped, f.path)
	}
	return rounds, nil
}

// Save replaces the stored collection with rounds, preserving order.
// Fails with a CapacityError when the payload would exceed the byte
// budget; the previous contents stay untouched.
func (f *FileStore) Save(rounds []round.Round) error {
	if rounds == nil {
		rounds = []round.Round{}
	}
	payload, err := json.MarshalIndent(rounds, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding rounds: %w", err)
	}
	if int64(len(payload)) > f.capacity {
		return &CapacityError{Size: int64(len(payload)), Limit: f.capacity}
	}

	lock, err := utils.NewStoreLock(f.path)
	if err != nil {
		return err
	}
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// Clear removes the whole history.
func (f *FileStore) Clear() error {
	lock, err := utils.NewStoreLock(f.path)
	if err != nil {
		return err
	}
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (f *FileStore) Close() error { return nil }

// validRecord is the structural check for one persisted entry: the six
// record fields present with the right JSON kinds. Semantic range checks
// happened when the round was created, so they are not repeated here.
func validRecord(entry gjson.Result) bool {
	if !entry.IsObject() {
		return false
	}
	id := entry.Get("id")
	date := entry.Get("date")
	if id.Type != gjson.String || id.Str == "" {
		return false
	}
	if date.Type != gjson.String || date.Str == "" {
		return false
	}
	for _, field := range []string{"score", "courseRating", "slope", "differential"} {
		if entry.Get(field).Type != gjson.Number {
			return false
		}
	}
	return true
}
