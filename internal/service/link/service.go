// Package link implements the links use cases: forward cursor pagination over
// the link collection, link lookup, link creation and bookmarking.
package link

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
)

type linkRepo interface {
	FindMany(ctx context.Context, filter domain.LinkFilter) ([]domain.Link, error)
	GetByID(ctx context.Context, id string) (*domain.Link, error)
	Create(ctx context.Context, link domain.Link) (*domain.Link, error)
	AddUser(ctx context.Context, linkID string, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides link operations.
type Service struct {
	links       linkRepo
	tx          txManager
	maxPageSize int
	log         *slog.Logger
}

// NewService creates a new link service. maxPageSize caps the "first"
// argument of ListLinks; zero disables the cap.
func NewService(
	log *slog.Logger,
	links linkRepo,
	tx txManager,
	maxPageSize int,
) *Service {
	return &Service{
		links:       links,
		tx:          tx,
		maxPageSize: maxPageSize,
		log:         log.With("service", "link"),
	}
}
