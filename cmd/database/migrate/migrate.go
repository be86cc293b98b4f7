package migration

import (
	"movelist-backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Person{}); err != nil {
		log.Fatalf("Error migrating person database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AppSettings{}); err != nil {
		log.Fatalf("Error migrating settings database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Item{}); err != nil {
		log.Fatalf("Error migrating item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
