// Command devtoken creates (or reuses) a user by email and prints a bearer
// token for it. Intended for local development and API testing:
//
//	go run ./cmd/devtoken -email dev@example.com
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/nestegghq/nestegg/internal/app"
	"github.com/nestegghq/nestegg/internal/config"
	"github.com/nestegghq/nestegg/internal/logger"
	"github.com/nestegghq/nestegg/internal/repository"
)

func main() {
	email := flag.String("email", "dev@example.com", "user email")
	name := flag.String("name", "Dev User", "user name")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), "")

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	user, err := a.UserService.ByEmail(*email)
	if err == repository.ErrUserNotFound {
		user, err = a.UserService.Create(*email, *name)
	}
	if err != nil {
		slog.Error("failed to get or create user", "error", err, "email", *email)
		os.Exit(1)
	}

	token, err := a.AuthService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		os.Exit(1)
	}

	fmt.Printf("user_id: %s\ntoken: %s\n", user.ID, token)
}
