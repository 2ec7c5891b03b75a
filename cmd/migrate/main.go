package main

import (
	"flag"
	"log"
	"os"

	"taskdeck/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down")
		dir     = flag.String("dir", "migrations", "Migrations directory")
	)
	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	switch *command {
	case "up":
		if err := db.ApplyMigrations(*dir, dsn); err != nil {
			log.Fatalf("migration up failed: %v", err)
		}
		log.Println("migrations applied")
	case "down":
		if err := db.RollbackMigrations(*dir, dsn); err != nil {
			log.Fatalf("migration down failed: %v", err)
		}
		log.Println("migrations rolled back")
	default:
		log.Fatalf("unknown command: %s (supported: up, down)", *command)
	}
}
