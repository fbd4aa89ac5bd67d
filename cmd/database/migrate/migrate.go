package migration

import (
	"NutriTrack-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		log.Fatalf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodLogEntry{}); err != nil {
		log.Fatalf("Error migrating food log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ExerciseLogEntry{}); err != nil {
		log.Fatalf("Error migrating exercise log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WaterLogEntry{}); err != nil {
		log.Fatalf("Error migrating water log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.StreakState{}); err != nil {
		log.Fatalf("Error migrating streak state database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Transaction{}); err != nil {
		log.Fatalf("Error migrating transaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
