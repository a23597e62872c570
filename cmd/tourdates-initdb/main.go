package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/parth/tourdates/internal/storage"
	"github.com/parth/tourdates/internal/tourdate"
)

var (
	dbPath   = flag.String("db", os.Getenv("TOURDATES_DB"), "Path for the database file (or env: TOURDATES_DB)")
	force    = flag.Bool("force", false, "Overwrite any existing database at the target path")
	seedFile = flag.String("seed", "seed_data.json", "Path to a JSON array of performances to seed")
	noSeed   = flag.Bool("no-seed", false, "Create an empty schema without inserting sample data")
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	flag.Parse()

	path := *dbPath
	if path == "" {
		path = storage.DefaultPath
	}

	store, err := storage.Initialise(path, *force)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initialising database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Created database at %s\n", path)

	if *noSeed {
		return
	}

	records, err := loadSeedRecords(*seedFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading seed data: %v\n", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Println("No seed data found, leaving database empty")
		return
	}

	inserted, err := store.SeedPerformances(context.Background(), records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding database: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seeded %d tour dates from %s\n", inserted, *seedFile)
}

// loadSeedRecords reads starter rows from a JSON file. A missing file is
// not an error, it just means there is nothing to seed.
func loadSeedRecords(path string) ([]tourdate.Performance, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []tourdate.Performance
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
