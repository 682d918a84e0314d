// Command migrate imports the JSON catalog file into the Postgres packages
// table. Packages already present (by package id) are skipped, so the import
// is safe to re-run.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"

	config "github.com/madinahgate/umrah_travel/configs"
	"github.com/madinahgate/umrah_travel/database"
	"github.com/madinahgate/umrah_travel/models"
	"github.com/madinahgate/umrah_travel/storage"
)

func main() {
	file := flag.String("file", "data/umrahPackages.json", "catalog file to import")
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("🔥 Failed to read catalog file: %v", err)
	}

	var grouped models.GroupedPackages
	if err := json.Unmarshal(data, &grouped); err != nil {
		log.Fatalf("🔥 Failed to parse catalog file: %v", err)
	}

	db, err := database.Connect(config.MustConfig("DATABASE_URL"))
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	store := storage.NewDBStore(db)

	ctx := context.Background()
	var imported, skipped, failed int
	for _, pkg := range grouped.All() {
		if pkg.PackageID == "" {
			log.Printf("Skipping %q: no package id", pkg.PackageTitle)
			skipped++
			continue
		}

		_, err := store.Get(ctx, pkg.PackageID)
		if err == nil {
			skipped++
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			log.Fatalf("🔥 Failed to check %s: %v", pkg.PackageID, err)
		}

		pkg.Normalize()
		if err := store.Insert(ctx, pkg); err != nil {
			log.Printf("🔥 Failed to import %s: %v", pkg.PackageID, err)
			failed++
			continue
		}
		imported++
	}

	log.Printf("✅ Migration complete: %d imported, %d skipped, %d failed", imported, skipped, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
