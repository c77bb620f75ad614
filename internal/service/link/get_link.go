package link

import (
	"context"
	"fmt"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
)

// GetLink returns a single link by id.
func (s *Service) GetLink(ctx context.Context, id string) (*domain.Link, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	link, err := s.links.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get link: %w", err)
	}
	return link, nil
}
