package main

import (
	"flag"
	"fmt"

	"fairway/pkg/round"
	"fairway/pkg/storage"
	"fairway/pkg/whs"
)

func main() {
	// Usage: go run main.go -store /path/to/rounds.json

	storeFlag := flag.String("store", "rounds.json", "Path to the JSON round store")

	// Parse the command-line flags
	flag.Parse()

	store := storage.NewFileStore(*storeFlag, 0)

	// Record a round: validate-then-create, same as the CLI does.
	r := round.New("2026-08-29", 90, 72.0, 113, "Pebble Creek")
	if err := storage.Append(store, r); err != nil {
		fmt.Println("append failed:", err)
		return
	}

	rounds, err := store.Load()
	if err != nil {
		fmt.Println("load failed:", err)
		return
	}

	for _, rec := range rounds {
		fmt.Println(rec.Date, rec.Score, rec.Differential)
	}

	if index, ok := whs.HandicapIndex(round.Differentials(rounds)); ok {
		fmt.Printf("handicap index: %.1f\n", index)
	} else {
		fmt.Println("no handicap index yet")
	}
}
