// Command token-generator prints a signed bearer token for local testing.
// Production tokens come from the identity service; both share auth.jwt_secret.
//
// Usage:
//
//	token-generator -user 6f1c9a3e-...  [-config config.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/config"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/auth"
)

func main() {
	configFile := flag.String("config", "", "path to a config file")
	user := flag.String("user", "", "user id to put in the token (random when empty)")
	flag.Parse()

	token, userID, err := generate(*configFile, *user)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token-generator:", err)
		os.Exit(1)
	}
	fmt.Printf("User:  %s\nToken: %s\n", userID, token)
}

func generate(configFile, user string) (string, uuid.UUID, error) {
	userID := uuid.New()
	if user != "" {
		parsed, err := uuid.Parse(user)
		if err != nil {
			return "", uuid.Nil, fmt.Errorf("invalid -user: %w", err)
		}
		userID = parsed
	}

	cfg, err := config.LoadWithOptions(config.Options{ConfigFile: configFile, EnvFiles: []string{".env"}})
	if err != nil {
		return "", uuid.Nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return "", uuid.Nil, err
	}

	token, err := jwtService.GenerateToken(context.Background(), userID)
	if err != nil {
		return "", uuid.Nil, err
	}
	return token, userID, nil
}
