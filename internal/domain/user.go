package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can be associated with links.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

// LinkUser is a user together with the link it is associated with.
// Batch lookups return these so callers can group users per link.
type LinkUser struct {
	LinkID string
	User   User
}
