package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.Name, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedLink inserts a link with a fresh UUIDv7 id. Consecutive calls produce
// ascending ids.
func SeedLink(t *testing.T, pool *pgxpool.Pool) domain.Link {
	t.Helper()

	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("testhelper: SeedLink id: %v", err)
	}

	suffix := uniqueSuffix()
	link := domain.Link{
		ID:          id.String(),
		Title:       "Link " + suffix,
		URL:         "https://example.com/" + suffix,
		Description: "seeded link",
		ImageURL:    "https://example.com/" + suffix + ".png",
		Category:    "test",
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO links (id, title, url, description, image_url, category, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		link.ID, link.Title, link.URL, link.Description, link.ImageURL, link.Category, link.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLink: %v", err)
	}

	return link
}
