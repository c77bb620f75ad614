package graphql

import (
	"context"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
)

// ResolverRoot gives the schema access to the per-type resolvers.
type ResolverRoot interface {
	Query() QueryResolver
	Mutation() MutationResolver
	Link() LinkResolver
}

// QueryResolver resolves the fields of the Query type.
type QueryResolver interface {
	Links(ctx context.Context, first *int, after *string) (*domain.LinkConnection, error)
	Link(ctx context.Context, id string) (*domain.Link, error)
}

// MutationResolver resolves the fields of the Mutation type.
type MutationResolver interface {
	CreateLink(ctx context.Context, title, url, imageURL, category, description string) (*domain.Link, error)
	BookmarkLink(ctx context.Context, id string) (*domain.Link, error)
}

// LinkResolver resolves the computed fields of the Link type.
// Users returns a thunk so that loads for a whole page are batched.
type LinkResolver interface {
	Users(ctx context.Context, obj *domain.Link) func() ([]domain.User, error)
}
