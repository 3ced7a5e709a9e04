package main

import (
	"log"

	"github.com/ysabouh/hama-togather-sub000/cmd/config"
	migration "github.com/ysabouh/hama-togather-sub000/cmd/database/migrate"
	"github.com/ysabouh/hama-togather-sub000/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("Error creating app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
