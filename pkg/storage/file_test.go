package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"fairway/pkg/round"
)

func tmpStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rounds.json")
	return NewFileStore(path, 0), path
}

func sampleRounds() []round.Round {
	return []round.Round{
		{ID: "r3", Date: "2026-08-29", Score: 85, CourseRating: 71.5, Slope: 120, Differential: 12.7},
		{ID: "r2", Date: "2026-08-20", Score: 90, CourseRating: 72, Slope: 113, Differential: 18.0, Course: "Pebble Creek"},
		{ID: "r1", Date: "2026-08-10", Score: 95, CourseRating: 70, Slope: 130, Differential: 21.7},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, _ := tmpStore(t)
	want := sampleRounds()

	if err := store.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store, _ := tmpStore(t)
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %d rounds", len(got))
	}
}

func TestFileStoreDropsCorruptEntries(t *testing.T) {
	store, path := tmpStore(t)
	payload := `[
		{"id":"ok","date":"2026-08-29","score":90,"courseRating":72,"slope":113,"differential":18.0},
		{"id":"missing-slope","date":"2026-08-20","score":88,"courseRating":71,"differential":16.1},
		{"id":"","date":"2026-08-19","score":88,"courseRating":71,"slope":110,"differential":16.1},
		{"id":"bad-kind","date":"2026-08-18","score":"eighty","courseRating":71,"slope":110,"differential":16.1},
		"not even an object"
	]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("expected only the valid round to survive, got %+v", got)
	}
}

func TestFileStoreResetsNonArrayPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{{{`},
		{"object instead of array", `{"id":"x"}`},
		{"bare string", `"hello"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, path := tmpStore(t)
			if err := os.WriteFile(path, []byte(tt.payload), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := store.Load()
			if err != nil {
				t.Fatalf("corrupt payload must not error: %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("expected reset to empty, got %+v", got)
			}
		})
	}
}

func TestFileStoreCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.json")
	store := NewFileStore(path, 64) // fits nothing real

	before := sampleRounds()[:1]
	if err := NewFileStore(path, 0).Save(before); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	err := store.Save(sampleRounds())
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityError, got %v", err)
	}

	// The previous payload must be untouched after a rejected save.
	got, err := NewFileStore(path, 0).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, before) {
		t.Fatalf("rejected save clobbered the store: %+v", got)
	}
}

func TestFileStoreClear(t *testing.T) {
	store, _ := tmpStore(t)
	if err := store.Save(sampleRounds()); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history after clear, got %d rounds", len(got))
	}
	// Clearing an already-empty store is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestAppendPrepends(t *testing.T) {
	store, _ := tmpStore(t)
	older := round.Round{ID: "r1", Date: "2026-08-10", Score: 95, CourseRating: 70, Slope: 130, Differential: 21.7}
	newer := round.Round{ID: "r2", Date: "2026-08-29", Score: 85, CourseRating: 71.5, Slope: 120, Differential: 12.7}

	if err := Append(store, older); err != nil {
		t.Fatal(err)
	}
	if err := Append(store, newer); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "r2" || got[1].ID != "r1" {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestAppendRejectsDuplicateID(t *testing.T) {
	store, _ := tmpStore(t)
	r := sampleRounds()[0]
	if err := Append(store, r); err != nil {
		t.Fatal(err)
	}
	if err := Append(store, r); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
}

func TestDelete(t *testing.T) {
	store, _ := tmpStore(t)
	if err := store.Save(sampleRounds()); err != nil {
		t.Fatal(err)
	}

	found, err := Delete(store, "r2")
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected r2 to be found")
	}
	got, _ := store.Load()
	if len(got) != 2 || got[0].ID != "r3" || got[1].ID != "r1" {
		t.Fatalf("unexpected remainder: %+v", got)
	}

	found, err = Delete(store, "nope")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("deleting an unknown id must report not found")
	}
}
