// Package catalog seeds the fixed meal/diet catalog into the relational store.
package catalog

import (
	"fmt"
	"log"

	"nutrialarm/internal/models"
	"nutrialarm/internal/repository"
	"nutrialarm/internal/settings"
)

// Version is stamped into the settings store after a successful seed. Bump it
// when the catalog data changes to force a re-seed on next startup.
const Version = "1"

type Loader struct {
	meals    repository.MealRepository
	diets    repository.DietRepository
	settings settings.Store
}

func NewLoader(meals repository.MealRepository, diets repository.DietRepository, st settings.Store) *Loader {
	return &Loader{meals: meals, diets: diets, settings: st}
}

// Initialize seeds the catalog if it is not already present. It is idempotent:
// a matching version stamp or a non-empty data probe makes it a no-op. Seeding
// uses delete-then-insert on catalog-tagged rows only, so a failed run is safe
// to retry. Errors are returned, never thrown through startup.
func (l *Loader) Initialize() error {
	stamp, err := l.settings.String(settings.KeyCatalogVersion)
	if err != nil {
		return fmt.Errorf("catalog: reading version stamp: %w", err)
	}
	if stamp == Version {
		return nil
	}

	// Data probe: breakfast meals present means a previous seed completed but
	// the stamp was lost. Re-stamp without touching data.
	count, err := l.meals.CountPreloadedByType(models.MealBreakfast)
	if err != nil {
		return fmt.Errorf("catalog: probing for seeded data: %w", err)
	}
	if count > 0 {
		return l.settings.SetString(settings.KeyCatalogVersion, Version)
	}

	log.Println("Seeding preloaded catalog...")

	if err := l.diets.DeletePreloaded(); err != nil {
		return fmt.Errorf("catalog: clearing preloaded diets: %w", err)
	}
	if err := l.meals.DeletePreloaded(); err != nil {
		return fmt.Errorf("catalog: clearing preloaded meals: %w", err)
	}

	if err := l.meals.CreateInBatches(preloadedMeals()); err != nil {
		return fmt.Errorf("catalog: inserting meals: %w", err)
	}
	if err := l.diets.CreateInBatches(preloadedDiets()); err != nil {
		return fmt.Errorf("catalog: inserting diets: %w", err)
	}
	if err := l.diets.CreateCrossRefs(preloadedCrossRefs()); err != nil {
		return fmt.Errorf("catalog: inserting diet-meal links: %w", err)
	}

	if err := l.settings.SetString(settings.KeyCatalogVersion, Version); err != nil {
		return fmt.Errorf("catalog: writing version stamp: %w", err)
	}

	log.Println("Preloaded catalog seeded successfully")
	return nil
}

// IntegrityReport summarizes what the catalog tables actually hold.
// Inconsistency is reported in the struct, not as an error.
type IntegrityReport struct {
	MealsByType map[models.MealType]int64 `json:"meals_by_type"`
	DietCount   int64                     `json:"diet_count"`
	Consistent  bool                      `json:"consistent"`
}

// VerifyIntegrity recounts seeded rows per meal type and diets. The catalog is
// consistent when every slot has at least one preloaded meal and all diets are
// present.
func (l *Loader) VerifyIntegrity() (*IntegrityReport, error) {
	report := &IntegrityReport{
		MealsByType: make(map[models.MealType]int64, len(models.AllMealTypes)),
		Consistent:  true,
	}

	for _, mt := range models.AllMealTypes {
		count, err := l.meals.CountPreloadedByType(mt)
		if err != nil {
			return nil, err
		}
		report.MealsByType[mt] = count
		if count == 0 {
			report.Consistent = false
		}
	}

	dietCount, err := l.diets.CountPreloaded()
	if err != nil {
		return nil, err
	}
	report.DietCount = dietCount
	if dietCount < int64(len(preloadedDiets())) {
		report.Consistent = false
	}

	return report, nil
}
