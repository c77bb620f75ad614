package resolver

import (
	"context"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
	"github.com/heartmarshall/linkshelf-backend/internal/service/link"
	"github.com/heartmarshall/linkshelf-backend/internal/transport/graphql/dataloader"
)

// Links is the resolver for the links field.
func (r *queryResolver) Links(ctx context.Context, first *int, after *string) (*domain.LinkConnection, error) {
	return r.link.ListLinks(ctx, link.ListLinksInput{
		First: first,
		After: after,
	})
}

// Link is the resolver for the link field.
func (r *queryResolver) Link(ctx context.Context, id string) (*domain.Link, error) {
	return r.link.GetLink(ctx, id)
}

// CreateLink is the resolver for the createLink field.
func (r *mutationResolver) CreateLink(ctx context.Context, title, url, imageURL, category, description string) (*domain.Link, error) {
	return r.link.CreateLink(ctx, link.CreateLinkInput{
		Title:       title,
		URL:         url,
		ImageURL:    imageURL,
		Category:    category,
		Description: description,
	})
}

// BookmarkLink is the resolver for the bookmarkLink field.
func (r *mutationResolver) BookmarkLink(ctx context.Context, id string) (*domain.Link, error) {
	return r.link.BookmarkLink(ctx, id)
}

// Users is the resolver for the users field.
func (r *linkResolver) Users(ctx context.Context, obj *domain.Link) func() ([]domain.User, error) {
	return dataloader.FromContext(ctx).UsersByLinkID.Load(ctx, obj.ID)
}
