// Package resolver implements the GraphQL resolvers of the links API on top
// of the link service.
package resolver

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
	"github.com/heartmarshall/linkshelf-backend/internal/service/link"
	gql "github.com/heartmarshall/linkshelf-backend/internal/transport/graphql"
)

// linkService defines what resolver needs from Link service.
type linkService interface {
	ListLinks(ctx context.Context, input link.ListLinksInput) (*domain.LinkConnection, error)
	GetLink(ctx context.Context, id string) (*domain.Link, error)
	CreateLink(ctx context.Context, input link.CreateLinkInput) (*domain.Link, error)
	BookmarkLink(ctx context.Context, id string) (*domain.Link, error)
}

var _ gql.ResolverRoot = (*Resolver)(nil)

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	link linkService
	log  *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(log *slog.Logger, links linkService) *Resolver {
	return &Resolver{
		link: links,
		log:  log.With("component", "graphql"),
	}
}

// Query returns the Query type resolver.
func (r *Resolver) Query() gql.QueryResolver { return &queryResolver{r} }

// Mutation returns the Mutation type resolver.
func (r *Resolver) Mutation() gql.MutationResolver { return &mutationResolver{r} }

// Link returns the Link type resolver.
func (r *Resolver) Link() gql.LinkResolver { return &linkResolver{r} }

type queryResolver struct{ *Resolver }

type mutationResolver struct{ *Resolver }

type linkResolver struct{ *Resolver }
