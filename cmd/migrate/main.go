package main

import (
	"flag"
	"fmt"
	"log"

	"gauth-backend/pkg/config"
	"gauth-backend/pkg/database"
	"gauth-backend/pkg/logger"
)

func main() {
	command := flag.String("command", "up", "Migration command: up, down, version")
	flag.Parse()

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	appLogger := logger.New("info")

	if cfg.Driver != config.DriverPostgres {
		// sqlite schemas come from DB_AUTO_MIGRATE instead.
		log.Fatalf("Migrations only work with PostgreSQL. Current driver: %s", cfg.Driver)
	}

	dsn, err := cfg.DSN()
	if err != nil {
		log.Fatalf("PostgreSQL config error: %v", err)
	}

	switch *command {
	case "up":
		if err := database.ApplyMigrations(dsn, appLogger); err != nil {
			log.Fatalf("Migration up failed: %v", err)
		}
	case "down":
		if err := database.RollbackMigration(dsn); err != nil {
			log.Fatalf("Migration down failed: %v", err)
		}
		fmt.Println("Rolled back one migration")
	case "version":
		version, dirty, err := database.MigrationVersion(dsn)
		if err != nil {
			log.Fatalf("Failed to get version: %v", err)
		}
		fmt.Printf("Current version: %d (dirty: %v)\n", version, dirty)
	default:
		log.Fatalf("Unknown command: %s (supported: up, down, version)", *command)
	}
}
