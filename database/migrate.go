package database

import (
	"log"

	"nutrialarm/internal/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Diet{},
		&models.DietMealCrossRef{},
		&models.UserMealPreference{},
		&models.Alarm{},
		&models.MealConsumption{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
