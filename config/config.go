package config

import (
	"fmt"
	"log"
	"os"

	"github.com/jackunq19/daily-fuel-tracker/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// LoadEnv reads .env if present. Running without one is fine (containers
// pass real environment variables), so a missing file is not fatal.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// The food catalog is compiled in, so only account and tracking
	// tables live in postgres.
	err = DB.AutoMigrate(
		&models.User{},
		&models.DailyGoal{},
		&models.WorkoutDay{},
		&models.Exercise{},
		&models.ExerciseSet{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
