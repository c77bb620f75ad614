package link

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
	"github.com/heartmarshall/linkshelf-backend/pkg/ctxutil"
)

// CreateLink stores a new link on behalf of the session user.
func (s *Service) CreateLink(ctx context.Context, input CreateLinkInput) (*domain.Link, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	link, err := s.links.Create(ctx, domain.Link{
		Title:       input.Title,
		URL:         input.URL,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("create link: %w", err)
	}

	s.log.InfoContext(ctx, "link created",
		slog.String("user_id", userID.String()),
		slog.String("link_id", link.ID),
	)

	return link, nil
}
