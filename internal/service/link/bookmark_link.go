package link

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
	"github.com/heartmarshall/linkshelf-backend/pkg/ctxutil"
)

// BookmarkLink adds the session user to the link's users. Bookmarking the
// same link twice is a no-op.
func (s *Service) BookmarkLink(ctx context.Context, id string) (*domain.Link, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := validateID(id); err != nil {
		return nil, err
	}

	var link *domain.Link
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		link, getErr = s.links.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get link: %w", getErr)
		}

		if err := s.links.AddUser(txCtx, id, userID); err != nil {
			return fmt.Errorf("add link user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "link bookmarked",
		slog.String("user_id", userID.String()),
		slog.String("link_id", id),
	)

	return link, nil
}
