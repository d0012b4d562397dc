package database

import (
	"fmt"
	"os"

	"samaj-backend/logger"
	"samaj-backend/models/booking"
	"samaj-backend/models/contact"
	"samaj-backend/models/content"
	"samaj-backend/models/form"
	"samaj-backend/models/log"
	"samaj-backend/models/outbox"
	"samaj-backend/models/samuhlagan"
	"samaj-backend/models/studentaward"
	"samaj-backend/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the PostgreSQL connection, migrates the schema and seeds
// the form gates.
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	username := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, username, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := migrate(DB); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := SeedForms(DB); err != nil {
		logger.Error("Failed to seed form gates", err)
		return nil, err
	}

	return DB, nil
}

// migrate runs AutoMigrate in dependency order so foreign keys resolve
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&booking.Booking{},
		&samuhlagan.SamuhLagan{},
		&studentaward.StudentAward{},
		&form.Form{},
		&content.HomeContent{},
		&content.GalleryItem{},
		&contact.ContactMessage{},
		&outbox.Email{},
		&log.Log{},
	)
}
