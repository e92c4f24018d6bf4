// Seed is the operational CLI for the catalog and the preference store.
//
// Usage:
//
//	seed seed            re-run the catalog loader (idempotent)
//	seed verify          print the catalog integrity report
//	seed clear-preloaded drop seeded meals and diets, keep user rows
//	seed bonus-migrate   rewrite legacy daily bonus entries
package main

import (
	"encoding/json"
	"log"
	"os"

	"nutrialarm/database"
	"nutrialarm/internal/catalog"
	"nutrialarm/internal/repository"
	"nutrialarm/internal/settings"

	"github.com/joho/godotenv"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: seed <seed|verify|clear-preloaded|bonus-migrate>")
	}

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	store, err := settings.NewRedisStore()
	if err != nil {
		log.Fatalf("Failed to connect to preference store: %v", err)
	}

	mealRepo := repository.NewMealRepository(db)
	dietRepo := repository.NewDietRepository(db)
	loader := catalog.NewLoader(mealRepo, dietRepo, store)

	switch os.Args[1] {
	case "seed":
		if err := loader.Initialize(); err != nil {
			log.Fatalf("Catalog seed failed: %v", err)
		}
		log.Println("Catalog seeded")

	case "verify":
		report, err := loader.VerifyIntegrity()
		if err != nil {
			log.Fatalf("Integrity check failed: %v", err)
		}
		out, _ := json.MarshalIndent(report, "", "  ")
		os.Stdout.Write(append(out, '\n'))
		if !report.Consistent {
			os.Exit(1)
		}

	case "clear-preloaded":
		if err := dietRepo.DeletePreloaded(); err != nil {
			log.Fatalf("Failed to clear preloaded diets: %v", err)
		}
		if err := mealRepo.DeletePreloaded(); err != nil {
			log.Fatalf("Failed to clear preloaded meals: %v", err)
		}
		if err := store.Delete(settings.KeyCatalogVersion); err != nil {
			log.Printf("Warning: could not clear catalog version stamp: %v", err)
		}
		log.Println("Preloaded catalog cleared")

	case "bonus-migrate":
		migrated, err := store.NormalizeDailyBonus()
		if err != nil {
			log.Fatalf("Bonus migration failed: %v", err)
		}
		log.Printf("Normalized %d legacy daily bonus entries", migrated)

	default:
		log.Fatalf("unknown command %q", os.Args[1])
	}
}
