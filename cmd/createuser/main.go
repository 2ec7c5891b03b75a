package main

import (
	"context"
	"log"

	"taskdeck/internal/config"
	"taskdeck/internal/db"
	"taskdeck/internal/repository"
	"taskdeck/internal/service"

	"github.com/spf13/pflag"
)

// Dev helper: registers a user (or logs in when it already exists) and
// prints a token for manual API poking.
func main() {
	username := pflag.String("username", "testuser", "username to create")
	password := pflag.String("password", "secret1", "password (min 6 chars)")
	pflag.Parse()

	cfg := config.Load()

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	auth := service.NewAuthService(repository.NewUserRepository(pool), tokens, cfg.BcryptCost)

	ctx := context.Background()

	token, err := auth.Register(ctx, *username, *password)
	if err != nil {
		log.Printf("register failed (%v), trying login", err)
		token, err = auth.Login(ctx, *username, *password)
		if err != nil {
			log.Fatalf("login failed: %v", err)
		}
	}

	log.Printf("token=%s\n", token)
}
