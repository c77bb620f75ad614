// Command token issues an access token for local development and smoke tests
// against /query. Tokens are normally issued by the identity service.
//
// Usage:
//
//	token -user <uuid>                    sign for an existing user id
//	token -email <email> [-name <name>]   sign for the user with that email,
//	                                      creating it (or renaming it) as needed
//
// Both forms need DATABASE_DSN and AUTH_JWT_SECRET.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkshelf-backend/internal/adapter/postgres"
	"github.com/heartmarshall/linkshelf-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/linkshelf-backend/internal/auth"
	"github.com/heartmarshall/linkshelf-backend/internal/config"
	"github.com/heartmarshall/linkshelf-backend/internal/domain"
)

type userStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Upsert(ctx context.Context, email, name string) (*domain.User, error)
}

func main() {
	userFlag := flag.String("user", "", "user id (UUID) to put in the token subject")
	email := flag.String("email", "", "email of the user to sign for")
	name := flag.String("name", "", "display name used with -email")
	flag.Parse()

	if *userFlag == "" && *email == "" {
		log.Fatal("one of -user or -email is required")
	}

	authCfg, err := config.LoadSection[config.AuthConfig]()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	dbCfg, err := config.LoadSection[config.DatabaseConfig]()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, *dbCfg, nil)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	u, err := resolveUser(ctx, user.New(pool), *userFlag, *email, *name)
	if err != nil {
		log.Fatalf("resolve user: %v", err)
	}
	log.Printf("user %s <%s>", u.ID, u.Email)

	token, err := auth.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL).GenerateAccessToken(u.ID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
}

// resolveUser finds the user a token is issued for. An id must name a stored
// user. An email reuses the stored user unless name asks for a rename, and
// creates the user when none matches.
func resolveUser(ctx context.Context, users userStore, rawID, email, name string) (*domain.User, error) {
	if rawID != "" {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", rawID, err)
		}
		return users.GetByID(ctx, id)
	}

	email = strings.TrimSpace(email)
	if name == "" {
		u, err := users.GetByEmail(ctx, email)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return users.Upsert(ctx, email, name)
}
