package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"todosapp/internal/models"
)

// ConnectDB opens the database. A postgres DSN is used when provided;
// with no DSN a local sqlite file keeps dev setup at zero.
func ConnectDB(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open("todosapp.db")
	}

	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}

func ProcessMigrations(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Todo{})
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database migrations complete")
}
