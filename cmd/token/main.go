// Command token issues an access token for calling the catalog API. It is
// used by operators and import jobs that need admin rights.
//
// Usage:
//
//	token --role=admin --ttl=24h
//
// Requires AUTH_JWT_SECRET (and optionally AUTH_JWT_ISSUER) like the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/goods-search/internal/auth"
	"github.com/heartmarshall/goods-search/internal/config"
)

func main() {
	role := flag.String("role", "admin", "role claim of the token")
	subject := flag.String("subject", "", "user ID (UUID); random when empty")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if *subject != "" {
		userID, err = uuid.Parse(*subject)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --subject %q: %v\n", *subject, err)
			os.Exit(1)
		}
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).GenerateAccessToken(userID, *role)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
}
