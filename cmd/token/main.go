// Command token issues a signed bearer token for local use against the
// posts API. The signing secret is read from JWT_SECRET.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/welldanyogia/webrana-posts-backend/internal/auth"
)

func main() {
	subject := flag.String("sub", "", "token subject (required)")
	roles := flag.String("roles", "USER", "comma-separated roles, e.g. USER,ADMIN")
	ttl := flag.Duration("ttl", auth.DefaultTokenTTL, "token lifetime")
	flag.Parse()

	token, err := issue(*subject, *roles, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

func issue(subject, roleList string, ttl time.Duration) (string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to load .env: %w", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET is required")
	}

	return auth.NewTokenManager(secret, ttl).Issue(subject, parseRoles(roleList)...)
}

func parseRoles(list string) []auth.Role {
	var roles []auth.Role
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		roles = append(roles, auth.ParseRole(name))
	}
	return roles
}
