package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"social-media/config"
	"social-media/internal/repository"
	"social-media/internal/services"
	"social-media/pkg/database"

	"gorm.io/gorm"
)

const usage = `
Social Media - Database CLI Tool

Usage:
  migrate [command]

Commands:
  up          Create or update the accounts and messages tables
  status      Show database connection status and table sizes
  seed-dev    Seed with development/test accounts and messages
  truncate    Truncate all tables (DANGEROUS)

Examples:
  go run ./cmd/migrate up
  go run ./cmd/migrate seed-dev
`

func main() {
	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	cfg := config.LoadConfig()
	db, err := database.Connect(cfg, nil)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer database.Close(db)

	switch command {
	case "up":
		runMigrationsUp(db)
	case "status":
		showStatus(db)
	case "seed-dev":
		runSeedDevelopment(db)
	case "truncate":
		runTruncate(db)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func runMigrationsUp(db *gorm.DB) {
	log.Println("Running migrations UP...")

	if err := repository.InitSchema(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully")
}

func showStatus(db *gorm.DB) {
	log.Println("Checking database status...")

	if err := database.NewHealthChecker(db).Ping(context.Background()); err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Database connection: OK")

	for _, table := range []string{"accounts", "messages"} {
		if !database.TableExists(db, table) {
			log.Printf("Table %-10s does not exist", table)
			continue
		}
		count, err := database.GetTableCount(db, table)
		if err != nil {
			log.Printf("Error counting table %s: %v", table, err)
			continue
		}
		log.Printf("Table %-10s exists (%d rows)", table, count)
	}
}

func runSeedDevelopment(db *gorm.DB) {
	log.Println("Seeding database (development mode)...")

	accountRepo := repository.NewAccountRepository(db)
	accounts := services.NewAccountService(accountRepo)
	messages := services.NewMessageService(repository.NewMessageRepository(db), accountRepo)

	result, err := database.SeedDevelopment(context.Background(), nil, accounts, messages)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seed Summary:")
	log.Printf("   - Accounts: %d", len(result.Accounts))
	log.Printf("   - Messages: %d", len(result.Messages))
	log.Println("Development seeding completed")
}

func runTruncate(db *gorm.DB) {
	log.Println("WARNING: This will TRUNCATE all tables!")

	if err := repository.TruncateAll(db); err != nil {
		log.Fatalf("Truncate failed: %v", err)
	}

	log.Println("All tables truncated")
}
