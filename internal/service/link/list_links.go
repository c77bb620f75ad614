package link

import (
	"context"
	"fmt"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
)

// ListLinks returns the page of at most First links that follow After, in
// store order. HasNextPage reports whether any link follows the page's last one.
func (s *Service) ListLinks(ctx context.Context, input ListLinksInput) (*domain.LinkConnection, error) {
	if err := input.Validate(s.maxPageSize); err != nil {
		return nil, err
	}

	page, err := s.links.FindMany(ctx, domain.LinkFilter{
		Limit:      input.First,
		Cursor:     input.After,
		SkipCursor: input.After != nil,
	})
	if err != nil {
		return nil, fmt.Errorf("find links: %w", err)
	}

	if len(page) == 0 {
		return &domain.LinkConnection{Edges: []domain.Edge{}}, nil
	}

	lastID := page[len(page)-1].ID
	one := 1
	next, err := s.links.FindMany(ctx, domain.LinkFilter{
		Limit:      &one,
		Cursor:     &lastID,
		SkipCursor: true,
	})
	if err != nil {
		return nil, fmt.Errorf("look ahead of %s: %w", lastID, err)
	}

	edges := make([]domain.Edge, len(page))
	for i, l := range page {
		edges[i] = domain.Edge{Cursor: l.ID, Node: l}
	}

	return &domain.LinkConnection{
		PageInfo: domain.PageInfo{
			EndCursor:   &lastID,
			HasNextPage: len(next) > 0,
		},
		Edges: edges,
	}, nil
}
