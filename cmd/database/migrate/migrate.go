package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/ysabouh/hama-togather-sub000/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(
		&entities.Neighborhood{},
		&entities.FamilyCategory{},
		&entities.IncomeLevel{},
		&entities.NeedAssessment{},
		&entities.NeedType{},
	); err != nil {
		log.Fatalf("Error migrating reference database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Family{}); err != nil {
		log.Fatalf("Error migrating family database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NeedEntry{}); err != nil {
		log.Fatalf("Error migrating need entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AuditEntry{}); err != nil {
		log.Fatalf("Error migrating audit entry database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
