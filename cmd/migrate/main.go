package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"tool-rental-backend/internal/bootstrap"
	"tool-rental-backend/internal/config"
	"tool-rental-backend/internal/logger"
	"tool-rental-backend/internal/repository/memory"
	"tool-rental-backend/internal/repository/postgres"
	"tool-rental-backend/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	configPath := flag.String("config", "", "Path to configuration file")
	command := flag.String("command", "up", "Migration command: up, down, status")
	seed := flag.Bool("seed", false, "Upsert the built-in tool catalog after migrating")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Database.Validate(); err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := bootstrap.OpenDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}

	switch *command {
	case "up":
		if err := goose.Up(db, "."); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, "."); err != nil {
			log.Fatalf("Failed to rollback migrations: %v", err)
		}
		logger.Info("Migrations rolled back successfully")
	case "status":
		if err := goose.Status(db, "."); err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}
	default:
		log.Fatalf("Unknown command: %s", *command)
	}

	if *seed {
		store := postgres.NewStore(db)
		ctx := context.Background()
		for _, tool := range memory.DefaultTools() {
			if err := store.UpsertTool(ctx, &tool); err != nil {
				log.Fatalf("Failed to seed tool %s: %v", tool.Code, err)
			}
		}
		logger.Info("Tool catalog seeded", "tools", len(memory.DefaultTools()))
	}
}
