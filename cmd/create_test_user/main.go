package main

import (
	"context"
	"log"
	"os"

	"simon_webapp/internal/db"
	"simon_webapp/internal/repository"
	"simon_webapp/internal/service"
)

func main() {
	// expects DATABASE_URL and JWT_SECRET env vars
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	username := os.Getenv("TEST_USERNAME")
	if username == "" {
		username = "testuser"
	}
	password := os.Getenv("TEST_PASSWORD")
	if password == "" {
		password = "test-password-1"
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	repo := repository.NewUserRepository(pool)
	auth := service.NewAuthService(repo)
	ctx := context.Background()

	u, err := repo.GetByUsername(ctx, username)
	if err == nil {
		log.Printf("user already exists id=%d\n", u.ID)
	} else {
		u, err = auth.Register(ctx, username, password)
		if err != nil {
			log.Fatalf("create user failed: %v", err)
		}
		log.Printf("user created id=%d\n", u.ID)
	}

	// verify credentials work
	u2, err := auth.Login(ctx, username, password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	log.Printf("fetched user id=%d username=%s created_at=%v\n", u2.ID, u2.Username, u2.CreatedAt)

	// initialize JWT and print token
	service.InitJWT()
	token, err := service.GenerateJWT(u2.ID)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
